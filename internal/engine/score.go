package engine

import (
	"time"

	"focusrpg/internal/storage"
)

const (
	// DueTodayWeight is added when the due date equals today.
	DueTodayWeight = 3

	// OverdueWeight is added when the due date has passed.
	OverdueWeight = 5

	// FreshnessWindowDays: tasks created within this many whole days get
	// a +1 recency bump.
	FreshnessWindowDays = 3

	// DueDateLayout is the calendar-date form accepted for due dates.
	DueDateLayout = "2006-01-02"
)

// ParseDueDate parses a YYYY-MM-DD due date. Empty or malformed input
// means "no due date", never an error.
func ParseDueDate(value *string) (time.Time, bool) {
	if value == nil || *value == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(DueDateLayout, *value)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Score computes the priority rank of a task as of now. Pure: equal
// inputs always yield equal outputs.
//
//	score = is_due_today*3 + is_overdue*5 + impact + freshness
//
// The stored Task.PriorityScore is a cache of this value, recomputed on
// every task mutation; it is never authoritative.
func Score(t *storage.Task, now time.Time) int {
	today := dateOf(now)

	dueToday := 0
	overdue := 0
	if due, ok := ParseDueDate(t.DueDate); ok {
		switch {
		case due.Equal(today):
			dueToday = 1
		case due.Before(today):
			overdue = 1
		}
	}

	freshness := 0
	// Whole-day component of the age, truncated toward zero.
	if int(now.Sub(t.CreatedAt)/(24*time.Hour)) <= FreshnessWindowDays {
		freshness = 1
	}

	return dueToday*DueTodayWeight + overdue*OverdueWeight + t.Impact + freshness
}

// dateOf truncates an instant to its UTC calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
