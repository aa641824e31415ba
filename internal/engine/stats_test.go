package engine

import (
	"context"
	"testing"
	"time"
)

// completeSessionOn runs a full completed session ending at the given
// instant.
func completeSessionOn(t *testing.T, svc *Service, taskID int64, end time.Time) {
	t.Helper()
	ctx := context.Background()

	setNow(svc, end.Add(-20*time.Minute))
	sess, err := svc.StartSession(ctx, taskID)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	setNow(svc, end)
	if _, err := svc.StopSession(ctx, StopSessionInput{SessionID: sess.SessionID, Completed: true, EstMinutes: 20}); err != nil {
		t.Fatalf("StopSession: %v", err)
	}
}

func TestStreakConsecutiveDays(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	task := mustCreateTask(t, svc, CreateTaskInput{Title: "Daily practice"})
	for day := 1; day <= 3; day++ {
		completeSessionOn(t, svc, task.ID, time.Date(2024, 1, day, 10, 0, 0, 0, time.UTC))
	}

	setNow(svc, time.Date(2024, 1, 3, 23, 0, 0, 0, time.UTC))
	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.StreakDays != 3 {
		t.Fatalf("streak=%d, want 3", stats.StreakDays)
	}
}

func TestStreakBrokenByGap(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	task := mustCreateTask(t, svc, CreateTaskInput{Title: "Daily practice"})
	completeSessionOn(t, svc, task.ID, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	// Jan 2 skipped.
	completeSessionOn(t, svc, task.ID, time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC))

	setNow(svc, time.Date(2024, 1, 3, 23, 0, 0, 0, time.UTC))
	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.StreakDays != 1 {
		t.Fatalf("streak=%d, want 1", stats.StreakDays)
	}
}

func TestStreakZeroWithoutCompletionToday(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	task := mustCreateTask(t, svc, CreateTaskInput{Title: "Yesterday only"})
	completeSessionOn(t, svc, task.ID, time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC))

	// A gap at today itself gives zero, regardless of earlier activity.
	setNow(svc, time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC))
	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.StreakDays != 0 {
		t.Fatalf("streak=%d, want 0", stats.StreakDays)
	}
}

func TestStreakIgnoresAbandonedSessions(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	task := mustCreateTask(t, svc, CreateTaskInput{Title: "Half-hearted"})

	end := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)
	setNow(svc, end.Add(-10*time.Minute))
	sess, _ := svc.StartSession(ctx, task.ID)
	setNow(svc, end)
	if _, err := svc.StopSession(ctx, StopSessionInput{SessionID: sess.SessionID, Completed: false}); err != nil {
		t.Fatalf("StopSession: %v", err)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.StreakDays != 0 {
		t.Fatalf("streak=%d, want 0 (abandoned sessions don't count)", stats.StreakDays)
	}
}

func TestDailyStatsCounters(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	today := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)

	task := mustCreateTask(t, svc, CreateTaskInput{Title: "Tracked"})
	other := mustCreateTask(t, svc, CreateTaskInput{Title: "Untouched"})
	_ = other

	// Yesterday: a completed session with 2 distractions.
	setNow(svc, today.AddDate(0, 0, -1))
	s1, _ := svc.StartSession(ctx, task.ID)
	setNow(svc, today.AddDate(0, 0, -1).Add(15*time.Minute))
	if _, err := svc.StopSession(ctx, StopSessionInput{SessionID: s1.SessionID, Completed: true, Distracts: 2, EstMinutes: 15}); err != nil {
		t.Fatalf("stop s1: %v", err)
	}

	// Today: a completed session with 3 distractions.
	setNow(svc, today)
	s2, _ := svc.StartSession(ctx, task.ID)
	setNow(svc, today.Add(20*time.Minute))
	if _, err := svc.StopSession(ctx, StopSessionInput{SessionID: s2.SessionID, Completed: true, Distracts: 3, EstMinutes: 20}); err != nil {
		t.Fatalf("stop s2: %v", err)
	}

	setNow(svc, today.Add(time.Hour))
	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.SessionsLogged != 2 {
		t.Fatalf("sessions=%d, want 2", stats.SessionsLogged)
	}
	if stats.TasksDone != 1 {
		t.Fatalf("tasks done=%d, want 1", stats.TasksDone)
	}
	if stats.DistractionsToday != 3 {
		t.Fatalf("distractions today=%d, want 3 (yesterday's excluded)", stats.DistractionsToday)
	}

	// The reported total always equals the independent sum of deltas.
	entries, _ := svc.ListLedger(ctx)
	sum := 0
	for _, e := range entries {
		sum += e.Delta
	}
	if stats.TotalPoints != sum {
		t.Fatalf("total=%d, ledger sum=%d", stats.TotalPoints, sum)
	}
	if stats.StreakDays != 2 {
		t.Fatalf("streak=%d, want 2", stats.StreakDays)
	}
}
