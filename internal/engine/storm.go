package engine

import (
	"context"

	"focusrpg/internal/storage"
)

// RescueChecklist is the fixed crisis-protocol script shown whenever a
// storm is logged.
var RescueChecklist = []string{
	"Write a 3-item rescue list on paper.",
	"Spend 5 minutes on the first item.",
	"Ping a buddy or schedule a body-double session.",
	"If still stuck: 10 jumping jacks, cold water, then back for 5 minutes.",
}

// LogTrigger records a crisis trigger and returns the rescue checklist.
// An empty trigger type defaults to "storm".
func (s *Service) LogTrigger(ctx context.Context, triggerType string, note *string) ([]string, error) {
	if triggerType == "" {
		triggerType = "storm"
	}
	if _, err := s.triggers.Insert(ctx, triggerType, note, s.now()); err != nil {
		return nil, err
	}
	return RescueChecklist, nil
}

func (s *Service) ListTriggerLogs(ctx context.Context) ([]storage.TriggerEntry, error) {
	return s.triggers.ListAll(ctx)
}
