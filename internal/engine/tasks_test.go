package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

func intPtr(n int) *int { return &n }

func TestCreateTaskDefaults(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	task := mustCreateTask(t, svc, CreateTaskInput{Title: "  Trim me  "})
	if task.Title != "Trim me" {
		t.Fatalf("title=%q, want trimmed", task.Title)
	}
	if task.EstMinutes != 10 || task.Context != "work" || task.Impact != 1 {
		t.Fatalf("defaults not applied: %+v", task)
	}
	if task.Status != StatusOpen {
		t.Fatalf("status=%q, want open", task.Status)
	}
	// Fresh, no due date: impact + freshness.
	if task.PriorityScore != 2 {
		t.Fatalf("score=%d, want 2", task.PriorityScore)
	}
}

func TestCreateTaskEmptyTitle(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	if _, err := svc.CreateTask(context.Background(), CreateTaskInput{Title: "   "}); err == nil {
		t.Fatalf("expected error for empty title")
	}
}

func TestUpdateTaskPartialPatch(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	setNow(svc, now)
	task := mustCreateTask(t, svc, CreateTaskInput{Title: "Original", Impact: 1})

	updated, err := svc.UpdateTask(ctx, task.ID, TaskPatch{
		Impact:  intPtr(4),
		DueDate: strPtr("2024-03-05"),
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Title != "Original" {
		t.Fatalf("title changed unexpectedly: %q", updated.Title)
	}
	if updated.Impact != 4 {
		t.Fatalf("impact=%d, want 4", updated.Impact)
	}
	// Score recomputed from the merged fields: due today + impact + fresh.
	if updated.PriorityScore != 3+4+1 {
		t.Fatalf("score=%d, want 8", updated.PriorityScore)
	}
}

func TestUpdateTaskInvalidStatus(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	task := mustCreateTask(t, svc, CreateTaskInput{Title: "Strict"})
	if _, err := svc.UpdateTask(ctx, task.ID, TaskPatch{Status: strPtr("paused")}); err == nil {
		t.Fatalf("expected error for invalid status")
	}
}

func TestUpdateTaskNotFound(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	_, err := svc.UpdateTask(context.Background(), 9999, TaskPatch{Impact: intPtr(2)})
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err=%v, want NotFoundError", err)
	}
}

func TestMalformedDueDateIsNotAnError(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	task := mustCreateTask(t, svc, CreateTaskInput{Title: "Loose", DueDate: strPtr("whenever"), Impact: 2})
	// Degrades to no due date: impact + freshness only.
	if task.PriorityScore != 3 {
		t.Fatalf("score=%d, want 3", task.PriorityScore)
	}
}

func TestCompleteTaskAwardsNothing(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	task := mustCreateTask(t, svc, CreateTaskInput{Title: "Quiet finish"})
	if err := svc.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}

	after, _ := svc.TaskRepo().Get(ctx, task.ID)
	if after.Status != StatusDone {
		t.Fatalf("status=%q, want done", after.Status)
	}
	balance, _ := svc.LedgerRepo().Balance(ctx)
	if balance != 0 {
		t.Fatalf("balance=%d, want 0 (explicit completion pays nothing)", balance)
	}
}

func TestDeleteTask(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	task := mustCreateTask(t, svc, CreateTaskInput{Title: "Doomed"})
	if err := svc.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	gone, err := svc.TaskRepo().Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if gone != nil {
		t.Fatalf("task still present after delete")
	}

	var nf NotFoundError
	if err := svc.DeleteTask(ctx, task.ID); !errors.As(err, &nf) {
		t.Fatalf("second delete err=%v, want NotFoundError", err)
	}
}
