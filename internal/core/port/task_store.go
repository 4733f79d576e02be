package port

import (
	"context"
	"time"

	"github.com/bornholm/roster/internal/core/model"
)

type TaskStore interface {
	// ListTasks returns every task of the event
	ListTasks(ctx context.Context) ([]model.Task, error)

	// GetTask returns a task by its id, or ErrNotFound
	GetTask(ctx context.Context, id model.TaskID) (model.Task, error)

	// CreateTask persists a new task and returns the stored record
	CreateTask(ctx context.Context, task model.Task) (model.Task, error)

	// ReplaceTask overwrites the assignment fields of a task with the given
	// replacement and returns the stored record. There is no field merge: the
	// replacement must hold the complete desired state.
	// When ExpectedVersion is set and differs from the stored version,
	// ErrConflict is returned and nothing is written.
	ReplaceTask(ctx context.Context, id model.TaskID, replacement TaskReplacement) (model.Task, error)
}

type TaskReplacement struct {
	Lead        *string
	Volunteers  []string
	SlotsNeeded int
	Notes       string
	UpdatedBy   string
	UpdatedAt   time.Time

	ExpectedVersion *int
}

// ReplacementFrom builds the full replacement matching the given task state.
func ReplacementFrom(task model.Task) TaskReplacement {
	task = task.Clone()

	return TaskReplacement{
		Lead:        task.Lead,
		Volunteers:  task.Volunteers,
		SlotsNeeded: task.SlotsNeeded,
		Notes:       task.Notes,
		UpdatedBy:   task.UpdatedBy,
		UpdatedAt:   task.UpdatedAt,
	}
}

// Apply returns a copy of the task with the replacement written over it,
// version excluded.
func (r TaskReplacement) Apply(task model.Task) model.Task {
	next := task.Clone()

	next.Lead = nil
	if r.Lead != nil && *r.Lead != "" {
		next.Lead = model.StringPtr(*r.Lead)
	}

	next.Volunteers = append([]string{}, r.Volunteers...)
	next.SlotsNeeded = r.SlotsNeeded
	next.Notes = r.Notes
	next.UpdatedBy = r.UpdatedBy
	next.UpdatedAt = r.UpdatedAt

	return next
}
