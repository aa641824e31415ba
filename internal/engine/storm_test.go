package engine

import (
	"context"
	"testing"
	"time"
)

func TestLogTriggerDefaultsAndOrder(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	at := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	setNow(svc, at)
	checklist, err := svc.LogTrigger(ctx, "", nil)
	if err != nil {
		t.Fatalf("LogTrigger: %v", err)
	}
	if len(checklist) != len(RescueChecklist) {
		t.Fatalf("checklist len=%d, want %d", len(checklist), len(RescueChecklist))
	}

	setNow(svc, at.Add(time.Hour))
	note := "doomscrolling"
	if _, err := svc.LogTrigger(ctx, "overwhelm", &note); err != nil {
		t.Fatalf("LogTrigger: %v", err)
	}

	logs, err := svc.ListTriggerLogs(ctx)
	if err != nil {
		t.Fatalf("ListTriggerLogs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("logs=%d, want 2", len(logs))
	}
	// Newest first.
	if logs[0].TriggerType != "overwhelm" {
		t.Fatalf("head type=%q, want overwhelm", logs[0].TriggerType)
	}
	if logs[1].TriggerType != "storm" {
		t.Fatalf("tail type=%q, want storm (default)", logs[1].TriggerType)
	}
	if logs[0].Note == nil || *logs[0].Note != "doomscrolling" {
		t.Fatalf("note not round-tripped: %+v", logs[0].Note)
	}
}
