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

func newRewardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewards",
		Short: "List rewards",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			rewards, err := svc.ListRewards(ctx)
			if err != nil {
				return err
			}
			balance, err := svc.LedgerRepo().Balance(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconGift, "Rewards"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", fmt.Sprintf("%d pts", balance)))
			for _, r := range rewards {
				last := "never redeemed"
				if r.LastRedeemedAt != nil {
					last = "last " + r.LastRedeemedAt.Format("2006-01-02 15:04")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "#%d %s %s\n", r.ID, r.Name,
					ui.Muted.Render(fmt.Sprintf("(%d pts, cooldown %dm, %s)", r.CostPoints, r.CooldownMin, last)))
			}
			return nil
		},
	}

	cmd.AddCommand(newRewardsAddCmd())
	return cmd
}

func newRewardsAddCmd() *cobra.Command {
	var cooldown int

	cmd := &cobra.Command{
		Use:   "add <name> <cost>",
		Short: "Define a new reward",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("name and cost are required")
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return errors.New("cost must be an integer")
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

			cost, _ := strconv.Atoi(args[1])
			r, err := svc.CreateReward(ctx, engine.CreateRewardInput{
				Name:        args[0],
				CostPoints:  cost,
				CooldownMin: cooldown,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"), r.ID, r.Name,
				ui.Muted.Render(fmt.Sprintf("(%d pts, cooldown %dm)", r.CostPoints, r.CooldownMin)))
			return nil
		},
	}

	cmd.Flags().IntVar(&cooldown, "cooldown", 0, "Cooldown in minutes between redemptions")
	return cmd
}
