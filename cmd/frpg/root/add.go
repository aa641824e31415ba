package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"focusrpg/internal/engine"
	"focusrpg/internal/ui"
)

func newAddCmd() *cobra.Command {
	var note string
	var est int
	var taskContext string
	var due string
	var impact int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Capture a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in := engine.CreateTaskInput{
				Title:      args[0],
				EstMinutes: est,
				Context:    taskContext,
				Impact:     impact,
			}
			if note != "" {
				in.Note = &note
			}
			if due != "" {
				in.DueDate = &due
			}

			t, err := svc.CreateTask(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"), t.ID, t.Title,
				ui.Muted.Render(fmt.Sprintf("(score %d)", t.PriorityScore)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&note, "note", "n", "", "Optional note")
	cmd.Flags().IntVarP(&est, "est", "e", 10, "Estimated minutes")
	cmd.Flags().StringVarP(&taskContext, "context", "c", "work", "Context tag")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().IntVarP(&impact, "impact", "i", 1, "Impact weight")

	return cmd
}
