package engine

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"focusrpg/internal/storage"
)

// Task status values. A task is created open, moves to doing when a
// session starts, and ends done (completed) or back open (abandoned).
const (
	StatusOpen  = "open"
	StatusDoing = "doing"
	StatusDone  = "done"
)

// Service is the single entry point for the presentation layer. It owns
// the storage handle and the clock; there is no package-level state.
type Service struct {
	db       *sql.DB
	tasks    *storage.TaskRepo
	sessions *storage.SessionRepo
	ledger   *storage.LedgerRepo
	rewards  *storage.RewardRepo
	triggers *storage.TriggerRepo

	// now supplies the current instant (UTC). Overridable in tests.
	now func() time.Time
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:       db,
		tasks:    storage.NewTaskRepo(db),
		sessions: storage.NewSessionRepo(db),
		ledger:   storage.NewLedgerRepo(db),
		rewards:  storage.NewRewardRepo(db),
		triggers: storage.NewTriggerRepo(db),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) TaskRepo() *storage.TaskRepo       { return s.tasks }
func (s *Service) SessionRepo() *storage.SessionRepo { return s.sessions }
func (s *Service) LedgerRepo() *storage.LedgerRepo   { return s.ledger }
func (s *Service) RewardRepo() *storage.RewardRepo   { return s.rewards }
func (s *Service) TriggerRepo() *storage.TriggerRepo { return s.triggers }

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errors.New("title is required")
	}
	return t, nil
}

func validStatus(status string) bool {
	switch status {
	case StatusOpen, StatusDoing, StatusDone:
		return true
	default:
		return false
	}
}
