package engine

import (
	"context"
	"fmt"

	"focusrpg/internal/storage"
)

type CreateTaskInput struct {
	Title      string
	Note       *string
	EstMinutes int
	Context    string
	DueDate    *string
	Impact     int
}

// TaskPatch enumerates every updatable task field. Nil means "leave
// unchanged". Applied by mergeTask; no field is set by name.
type TaskPatch struct {
	Title      *string
	Note       *string
	EstMinutes *int
	Context    *string
	DueDate    *string
	Status     *string
	Impact     *int
}

func (s *Service) CreateTask(ctx context.Context, in CreateTaskInput) (*storage.Task, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}

	est := in.EstMinutes
	if est <= 0 {
		est = 10
	}
	taskCtx := in.Context
	if taskCtx == "" {
		taskCtx = "work"
	}
	impact := in.Impact
	if impact <= 0 {
		impact = 1
	}

	now := s.now()
	seed := storage.Task{
		Title:      title,
		Note:       in.Note,
		EstMinutes: est,
		Context:    taskCtx,
		DueDate:    in.DueDate,
		CreatedAt:  now,
		Status:     StatusOpen,
		Impact:     impact,
	}
	seed.PriorityScore = Score(&seed, now)

	id, err := s.tasks.Insert(ctx, storage.TaskInsert{
		Title:         seed.Title,
		Note:          seed.Note,
		EstMinutes:    seed.EstMinutes,
		Context:       seed.Context,
		DueDate:       seed.DueDate,
		CreatedAt:     seed.CreatedAt,
		Status:        seed.Status,
		Impact:        seed.Impact,
		PriorityScore: seed.PriorityScore,
	})
	if err != nil {
		return nil, err
	}
	return s.tasks.Get(ctx, id)
}

// UpdateTask merges the patch into the task and recomputes the priority
// score from the merged fields.
func (s *Service) UpdateTask(ctx context.Context, id int64, patch TaskPatch) (*storage.Task, error) {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, NotFoundError{Kind: "task", ID: id}
	}

	if err := mergeTask(t, patch); err != nil {
		return nil, err
	}
	t.PriorityScore = Score(t, s.now())

	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func mergeTask(t *storage.Task, patch TaskPatch) error {
	if patch.Title != nil {
		title, err := normalizeTitle(*patch.Title)
		if err != nil {
			return err
		}
		t.Title = title
	}
	if patch.Note != nil {
		t.Note = patch.Note
	}
	if patch.EstMinutes != nil {
		if *patch.EstMinutes <= 0 {
			return fmt.Errorf("est_minutes must be positive")
		}
		t.EstMinutes = *patch.EstMinutes
	}
	if patch.Context != nil {
		t.Context = *patch.Context
	}
	if patch.DueDate != nil {
		t.DueDate = patch.DueDate
	}
	if patch.Status != nil {
		if !validStatus(*patch.Status) {
			return fmt.Errorf("invalid status: %q", *patch.Status)
		}
		t.Status = *patch.Status
	}
	if patch.Impact != nil {
		if *patch.Impact <= 0 {
			return fmt.Errorf("impact must be positive")
		}
		t.Impact = *patch.Impact
	}
	return nil
}

// CompleteTask marks a task done without a session. No points are
// awarded; only finished focus sessions pay out.
func (s *Service) CompleteTask(ctx context.Context, id int64) error {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return NotFoundError{Kind: "task", ID: id}
	}
	return s.tasks.UpdateStatus(ctx, id, StatusDone)
}

func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return NotFoundError{Kind: "task", ID: id}
	}
	return s.tasks.Delete(ctx, id)
}

func (s *Service) ListTasks(ctx context.Context, status string) ([]storage.Task, error) {
	if !validStatus(status) {
		return nil, fmt.Errorf("invalid status: %q", status)
	}
	return s.tasks.ListByStatus(ctx, status)
}

// TopTasks returns the n highest-priority open tasks; the dashboard
// shows the top 5.
func (s *Service) TopTasks(ctx context.Context, n int) ([]storage.Task, error) {
	return s.tasks.ListOpenTop(ctx, n)
}
