package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"focusrpg/internal/ui"
)

func newRedeemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redeem <reward_id>",
		Short: "Spend points on a reward",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("reward_id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("reward_id must be an integer")
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

			rewardID, _ := strconv.ParseInt(args[0], 10, 64)
			balance, err := svc.Redeem(ctx, rewardID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Good.Render(ui.IconGift+" Redeemed!"),
				ui.LabelValue("Balance", fmt.Sprintf("%d pts", balance)))
			return nil
		},
	}

	return cmd
}
