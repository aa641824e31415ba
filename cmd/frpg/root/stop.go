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

func newStopCmd() *cobra.Command {
	var completed bool
	var distracts int
	var est int

	cmd := &cobra.Command{
		Use:   "stop <session_id>",
		Short: "Stop a focus session",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("session_id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("session_id must be an integer")
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

			sessionID, _ := strconv.ParseInt(args[0], 10, 64)
			res, err := svc.StopSession(ctx, engine.StopSessionInput{
				SessionID:  sessionID,
				Completed:  completed,
				Distracts:  distracts,
				EstMinutes: est,
			})
			if err != nil {
				return err
			}
			if res.AlreadyEnded {
				fmt.Fprintf(cmd.OutOrStdout(), "%s session %d already ended %s\n",
					ui.Warn.Render(ui.IconWarn+" No-op:"), sessionID,
					ui.Muted.Render(fmt.Sprintf("(%d min)", res.DurationMin)))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d min, %s\n",
				ui.Good.Render(ui.IconTimer+" Stopped:"), res.DurationMin,
				ui.Gold.Render(fmt.Sprintf("+%d pts", res.EarnedPoints)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&completed, "completed", "c", false, "Task was finished during the session")
	cmd.Flags().IntVarP(&distracts, "distracts", "d", 0, "Distraction count for the session")
	cmd.Flags().IntVarP(&est, "est", "e", 25, "Estimated minutes (drives the payout)")

	return cmd
}
