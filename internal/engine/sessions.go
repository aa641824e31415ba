package engine

import (
	"context"
	"database/sql"
	"time"

	"focusrpg/internal/storage"
)

const (
	// SessionBasePoints is paid for every completed session.
	SessionBasePoints = 5

	// EstMinutesPerPoint: each full 10 estimated minutes adds a point.
	EstMinutesPerPoint = 10

	// OnTimeBonus is added when the session ends on or before the
	// task's due date.
	OnTimeBonus = 3

	// ReasonSessionCompleted tags ledger credits from finished sessions.
	ReasonSessionCompleted = "completed_focus_session"
)

type StartSessionResult struct {
	SessionID int64
	TaskTitle string
}

type StopSessionInput struct {
	SessionID  int64
	Completed  bool
	Distracts  int
	EstMinutes int
}

type StopSessionResult struct {
	EarnedPoints int
	DurationMin  int
	AlreadyEnded bool
}

// StartSession opens a focus session against the task and moves it to
// doing. Callers guarantee at most one active session per task.
func (s *Service) StartSession(ctx context.Context, taskID int64) (*StartSessionResult, error) {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, NotFoundError{Kind: "task", ID: taskID}
	}

	var sessionID int64
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		sessions := storage.NewSessionRepo(tx)
		tasks := storage.NewTaskRepo(tx)

		id, err := sessions.Insert(ctx, taskID, s.now())
		if err != nil {
			return err
		}
		sessionID = id
		return tasks.UpdateStatus(ctx, taskID, StatusDoing)
	})
	if err != nil {
		return nil, err
	}

	return &StartSessionResult{SessionID: sessionID, TaskTitle: task.Title}, nil
}

// RecordDistraction bumps the session's distraction counter. Ended
// sessions are not rejected: the counter stays writable at any time.
func (s *Service) RecordDistraction(ctx context.Context, sessionID int64) (int, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	if sess == nil {
		return 0, NotFoundError{Kind: "session", ID: sessionID}
	}

	if err := s.sessions.IncrementDistraction(ctx, sessionID); err != nil {
		return 0, err
	}
	return sess.DistractCount + 1, nil
}

// StopSession finalizes a session. Stopping an already-ended session is
// a no-op that earns nothing, so retries never double-pay. The session
// finalize, the task status change, and the ledger credit commit as one
// transaction.
//
// The distraction count from the input replaces whatever
// RecordDistraction accumulated during the session.
func (s *Service) StopSession(ctx context.Context, in StopSessionInput) (*StopSessionResult, error) {
	var res StopSessionResult
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		sessions := storage.NewSessionRepo(tx)
		tasks := storage.NewTaskRepo(tx)
		ledger := storage.NewLedgerRepo(tx)

		sess, err := sessions.Get(ctx, in.SessionID)
		if err != nil {
			return err
		}
		if sess == nil {
			return NotFoundError{Kind: "session", ID: in.SessionID}
		}
		if sess.End != nil {
			res = StopSessionResult{DurationMin: sess.DurationMin, AlreadyEnded: true}
			return nil
		}

		end := s.now()
		duration := int(end.Sub(sess.Start) / time.Minute)
		if duration < 1 {
			duration = 1
		}
		if err := sessions.Finalize(ctx, sess.ID, end, duration, in.Completed, in.Distracts); err != nil {
			return err
		}

		points := 0
		task, err := tasks.Get(ctx, sess.TaskID)
		if err != nil {
			return err
		}
		if task != nil {
			if in.Completed {
				if err := tasks.UpdateStatus(ctx, task.ID, StatusDone); err != nil {
					return err
				}
				points = sessionPoints(in.EstMinutes, end, task.DueDate)
			} else {
				// Abandoned: release the task back to the pool.
				if err := tasks.UpdateStatus(ctx, task.ID, StatusOpen); err != nil {
					return err
				}
			}
		}

		if points > 0 {
			if _, err := ledger.Append(ctx, points, ReasonSessionCompleted, end); err != nil {
				return err
			}
		}

		res = StopSessionResult{EarnedPoints: points, DurationMin: duration}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func sessionPoints(estMinutes int, endedAt time.Time, dueDate *string) int {
	points := SessionBasePoints + estMinutes/EstMinutesPerPoint
	if due, ok := ParseDueDate(dueDate); ok && !dateOf(endedAt).After(due) {
		points += OnTimeBonus
	}
	return points
}
