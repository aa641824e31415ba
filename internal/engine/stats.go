package engine

import (
	"context"
	"time"

	"focusrpg/internal/storage"
)

type DailyStats struct {
	TotalPoints       int
	TasksDone         int
	SessionsLogged    int
	StreakDays        int
	DistractionsToday int
}

// Stats aggregates the ledger and session history into today's numbers.
func (s *Service) Stats(ctx context.Context) (*DailyStats, error) {
	balance, err := s.ledger.Balance(ctx)
	if err != nil {
		return nil, err
	}
	tasksDone, err := s.tasks.CountByStatus(ctx, StatusDone)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := dateOf(now)

	distractionsToday := 0
	for _, sess := range sessions {
		if sess.End != nil && dateOf(*sess.End).Equal(today) {
			distractionsToday += sess.DistractCount
		}
	}

	return &DailyStats{
		TotalPoints:       balance,
		TasksDone:         tasksDone,
		SessionsLogged:    len(sessions),
		StreakDays:        completionStreak(sessions, now),
		DistractionsToday: distractionsToday,
	}, nil
}

// completionStreak counts consecutive calendar days ending today with at
// least one completed session. A day without a completion breaks the
// streak, today included.
func completionStreak(sessions []storage.FocusSession, now time.Time) int {
	completed := map[time.Time]bool{}
	for _, sess := range sessions {
		if sess.Completed && sess.End != nil {
			completed[dateOf(*sess.End)] = true
		}
	}
	if len(completed) == 0 {
		return 0
	}

	streak := 0
	day := dateOf(now)
	for completed[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func (s *Service) ListLedger(ctx context.Context) ([]storage.LedgerEntry, error) {
	return s.ledger.ListAll(ctx)
}
