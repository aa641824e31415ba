package engine

import (
	"fmt"
	"time"
)

// NotFoundError indicates the referenced entity does not exist. It is a
// client-visible failure and is never retried internally.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// InsufficientPointsError is an expected, user-correctable condition:
// the ledger balance does not cover the reward cost.
type InsufficientPointsError struct {
	Cost    int
	Balance int
}

func (e InsufficientPointsError) Error() string {
	return fmt.Sprintf("not enough points: need %d, have %d", e.Cost, e.Balance)
}

// CooldownError is returned when a reward is redeemed again before its
// cooldown has elapsed.
type CooldownError struct {
	RewardID int64
	ReadyAt  time.Time
}

func (e CooldownError) Error() string {
	return fmt.Sprintf("reward %d on cooldown until %s", e.RewardID, e.ReadyAt.Format(time.RFC3339))
}
