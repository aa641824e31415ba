package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"focusrpg/internal/engine"
	"focusrpg/internal/ui"
)

func newEditCmd() *cobra.Command {
	var title string
	var note string
	var est int
	var taskContext string
	var due string
	var status string
	var impact int

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update task fields",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("id must be an integer")
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

			id, _ := strconv.ParseInt(args[0], 10, 64)

			// Only flags the user set become part of the patch.
			var patch engine.TaskPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("note") {
				patch.Note = &note
			}
			if cmd.Flags().Changed("est") {
				patch.EstMinutes = &est
			}
			if cmd.Flags().Changed("context") {
				patch.Context = &taskContext
			}
			if cmd.Flags().Changed("due") {
				patch.DueDate = &due
			}
			if cmd.Flags().Changed("status") {
				patch.Status = &status
			}
			if cmd.Flags().Changed("impact") {
				patch.Impact = &impact
			}

			t, err := svc.UpdateTask(ctx, id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
				ui.Good.Render(ui.IconDone+" Updated"), t.ID, t.Title,
				ui.Muted.Render(fmt.Sprintf("(score %d)", t.PriorityScore)))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&note, "note", "n", "", "New note")
	cmd.Flags().IntVarP(&est, "est", "e", 0, "New estimated minutes")
	cmd.Flags().StringVarP(&taskContext, "context", "c", "", "New context tag")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&status, "status", "s", "", "New status (open|doing|done)")
	cmd.Flags().IntVarP(&impact, "impact", "i", 0, "New impact weight")

	return cmd
}
