package engine

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"focusrpg/internal/storage"
)

type CreateRewardInput struct {
	Name        string
	CostPoints  int
	CooldownMin int
}

func (s *Service) CreateReward(ctx context.Context, in CreateRewardInput) (*storage.Reward, error) {
	name, err := normalizeTitle(in.Name)
	if err != nil {
		return nil, err
	}
	if in.CostPoints < 0 {
		return nil, fmt.Errorf("cost must be non-negative")
	}
	if in.CooldownMin < 0 {
		return nil, fmt.Errorf("cooldown must be non-negative")
	}

	id, err := s.rewards.Insert(ctx, name, in.CostPoints, in.CooldownMin)
	if err != nil {
		return nil, err
	}
	return s.rewards.Get(ctx, id)
}

func (s *Service) ListRewards(ctx context.Context) ([]storage.Reward, error) {
	return s.rewards.ListAll(ctx)
}

// Redeem spends points on a reward. The affordability check, the debit,
// and the cooldown stamp run in one transaction, so two concurrent
// redemptions against a balance sufficient for only one cannot both
// pass the check. Returns the new balance.
func (s *Service) Redeem(ctx context.Context, rewardID int64) (int, error) {
	var newBalance int
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		rewards := storage.NewRewardRepo(tx)
		ledger := storage.NewLedgerRepo(tx)

		reward, err := rewards.Get(ctx, rewardID)
		if err != nil {
			return err
		}
		if reward == nil {
			return NotFoundError{Kind: "reward", ID: rewardID}
		}

		balance, err := ledger.Balance(ctx)
		if err != nil {
			return err
		}
		if balance < reward.CostPoints {
			return InsufficientPointsError{Cost: reward.CostPoints, Balance: balance}
		}

		now := s.now()
		if reward.LastRedeemedAt != nil {
			readyAt := reward.LastRedeemedAt.Add(time.Duration(reward.CooldownMin) * time.Minute)
			if now.Before(readyAt) {
				return CooldownError{RewardID: reward.ID, ReadyAt: readyAt}
			}
		}

		if _, err := ledger.Append(ctx, -reward.CostPoints, "redeem:"+reward.Name, now); err != nil {
			return err
		}
		if err := rewards.MarkRedeemed(ctx, reward.ID, now); err != nil {
			return err
		}

		newBalance = balance - reward.CostPoints
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}
