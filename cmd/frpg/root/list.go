package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"focusrpg/internal/ui"
)

func newListCmd() *cobra.Command {
	var status string
	var top int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks by priority",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks, err := svc.ListTasks(ctx, status)
			if err != nil {
				return err
			}
			if top > 0 && len(tasks) > top {
				tasks = tasks[:top]
			}

			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no tasks)"))
				return nil
			}
			for _, t := range tasks {
				due := ""
				if t.DueDate != nil && *t.DueDate != "" {
					due = ui.Muted.Render(" due " + *t.DueDate)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "#%d [%s] %s %s%s\n",
					t.ID, ui.StatusText(t.Status), t.Title,
					ui.Muted.Render(fmt.Sprintf("(score %d, est %dm, %s)", t.PriorityScore, t.EstMinutes, t.Context)),
					due)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "open", "Filter by status (open|doing|done)")
	cmd.Flags().IntVarP(&top, "top", "t", 0, "Show only the top N tasks")

	return cmd
}
