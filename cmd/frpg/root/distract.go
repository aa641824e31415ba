package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"focusrpg/internal/ui"
)

func newDistractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distract <session_id>",
		Short: "Record a distraction on a session",
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
			count, err := svc.RecordDistraction(ctx, sessionID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d %s\n",
				ui.Warn.Render(ui.IconBolt+" Noted:"), count,
				ui.Muted.Render("distractions this session"))
			return nil
		},
	}

	return cmd
}
