package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"focusrpg/internal/ui"
)

func newStatsCmd() *cobra.Command {
	var showLedger bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show today's stats and streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			stats, err := svc.Stats(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Daily Stats"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Points", stats.TotalPoints))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Tasks done", stats.TasksDone))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Sessions logged", stats.SessionsLogged))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%d %s", stats.StreakDays, ui.IconFire)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Distractions today", stats.DistractionsToday))

			if showLedger {
				entries, err := svc.ListLedger(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "")
				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconCoin+" Ledger"))
				for _, e := range entries {
					sign := "+"
					if e.Delta < 0 {
						sign = ""
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s%d %s %s\n", sign, e.Delta, e.Reason,
						ui.Muted.Render(e.CreatedAt.Format("2006-01-02 15:04")))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showLedger, "ledger", "l", false, "Also print the point ledger")

	return cmd
}
