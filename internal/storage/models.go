package storage

import "time"

type Task struct {
	ID            int64
	Title         string
	Note          *string
	EstMinutes    int
	Context       string
	DueDate       *string
	CreatedAt     time.Time
	Status        string
	Impact        int
	PriorityScore int
}

type FocusSession struct {
	ID            int64
	TaskID        int64
	Start         time.Time
	End           *time.Time
	DurationMin   int
	Completed     bool
	DistractCount int
}

type LedgerEntry struct {
	ID        int64
	Delta     int
	Reason    string
	CreatedAt time.Time
}

type Reward struct {
	ID             int64
	Name           string
	CostPoints     int
	CooldownMin    int
	LastRedeemedAt *time.Time
}

type TriggerEntry struct {
	ID          int64
	TriggerType string
	Note        *string
	Timestamp   time.Time
}
