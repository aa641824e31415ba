package engine

import (
	"context"
	"testing"
	"time"

	"focusrpg/internal/storage"
)

func strPtr(s string) *string { return &s }

func TestScore(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		due     *string
		created time.Time
		impact  int
		want    int
	}{
		{
			name:    "due today, fresh",
			due:     strPtr("2024-03-05"),
			created: now.Add(-24 * time.Hour),
			impact:  2,
			want:    3 + 2 + 1,
		},
		{
			name:    "overdue, fresh",
			due:     strPtr("2024-03-04"),
			created: now.Add(-24 * time.Hour),
			impact:  2,
			want:    5 + 2 + 1,
		},
		{
			name:    "due in the future",
			due:     strPtr("2024-03-10"),
			created: now.Add(-24 * time.Hour),
			impact:  2,
			want:    2 + 1,
		},
		{
			name:    "no due date, stale",
			due:     nil,
			created: now.Add(-10 * 24 * time.Hour),
			impact:  3,
			want:    3,
		},
		{
			name:    "freshness boundary at three whole days",
			due:     nil,
			created: now.Add(-3*24*time.Hour - time.Hour),
			impact:  1,
			want:    1 + 1, // 3 days 1 hour truncates to 3 days, still fresh
		},
		{
			name:    "stale past four days",
			due:     nil,
			created: now.Add(-4 * 24 * time.Hour),
			impact:  1,
			want:    1,
		},
		{
			name:    "malformed due date degrades to none",
			due:     strPtr("soon"),
			created: now.Add(-24 * time.Hour),
			impact:  2,
			want:    2 + 1,
		},
		{
			name:    "empty due date degrades to none",
			due:     strPtr(""),
			created: now.Add(-24 * time.Hour),
			impact:  2,
			want:    2 + 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := storage.Task{DueDate: tc.due, CreatedAt: tc.created, Impact: tc.impact}
			if got := Score(&task, now); got != tc.want {
				t.Fatalf("Score=%d, want %d", got, tc.want)
			}
			// Pure: same inputs, same output.
			if again := Score(&task, now); again != tc.want {
				t.Fatalf("Score not deterministic: %d then %d", tc.want, again)
			}
		})
	}
}

func TestRankingOrder(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	base := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)

	// Low impact first so insertion order differs from rank order.
	setNow(svc, base)
	low := mustCreateTask(t, svc, CreateTaskInput{Title: "low", Impact: 1})
	setNow(svc, base.Add(time.Minute))
	high := mustCreateTask(t, svc, CreateTaskInput{Title: "high", Impact: 5})
	setNow(svc, base.Add(2*time.Minute))
	tied := mustCreateTask(t, svc, CreateTaskInput{Title: "tied", Impact: 1})

	tasks, err := svc.ListTasks(ctx, StatusOpen)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("len=%d, want 3", len(tasks))
	}
	if tasks[0].ID != high.ID {
		t.Fatalf("first=%d, want high %d", tasks[0].ID, high.ID)
	}
	// Equal scores rank oldest first.
	if tasks[1].ID != low.ID || tasks[2].ID != tied.ID {
		t.Fatalf("tie order=[%d %d], want [%d %d]", tasks[1].ID, tasks[2].ID, low.ID, tied.ID)
	}
}

func TestTopTasksLimit(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		mustCreateTask(t, svc, CreateTaskInput{Title: "task", Impact: i + 1})
	}

	top, err := svc.TopTasks(ctx, 5)
	if err != nil {
		t.Fatalf("TopTasks: %v", err)
	}
	if len(top) != 5 {
		t.Fatalf("len=%d, want 5", len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i-1].PriorityScore < top[i].PriorityScore {
			t.Fatalf("not sorted by score desc at %d", i)
		}
	}
}
