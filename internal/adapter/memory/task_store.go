package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/bornholm/roster/internal/core/model"
	"github.com/bornholm/roster/internal/core/port"
	"github.com/pkg/errors"
)

type TaskStore struct {
	mutex sync.RWMutex
	tasks map[model.TaskID]model.Task
	// order keeps the creation order of the tasks
	order []model.TaskID
}

// ListTasks implements port.TaskStore.
func (s *TaskStore) ListTasks(ctx context.Context) ([]model.Task, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	tasks := make([]model.Task, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, s.tasks[id].Clone())
	}

	return tasks, nil
}

// GetTask implements port.TaskStore.
func (s *TaskStore) GetTask(ctx context.Context, id model.TaskID) (model.Task, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	task, exists := s.tasks[id]
	if !exists {
		return model.Task{}, errors.WithStack(port.ErrNotFound)
	}

	return task.Clone(), nil
}

// CreateTask implements port.TaskStore.
func (s *TaskStore) CreateTask(ctx context.Context, task model.Task) (model.Task, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if task.ID == "" {
		task.ID = model.NewTaskID()
	}

	if _, exists := s.tasks[task.ID]; exists {
		return model.Task{}, errors.Errorf("task '%s' already exists", task.ID)
	}

	stored := task.Clone()
	stored.Version = 1

	s.tasks[stored.ID] = stored
	s.order = append(s.order, stored.ID)

	return stored.Clone(), nil
}

// ReplaceTask implements port.TaskStore.
func (s *TaskStore) ReplaceTask(ctx context.Context, id model.TaskID, replacement port.TaskReplacement) (model.Task, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, exists := s.tasks[id]
	if !exists {
		return model.Task{}, errors.WithStack(port.ErrNotFound)
	}

	if replacement.ExpectedVersion != nil && *replacement.ExpectedVersion != current.Version {
		return model.Task{}, errors.Wrapf(port.ErrConflict, "task '%s' is at version %d, expected %d", id, current.Version, *replacement.ExpectedVersion)
	}

	next := replacement.Apply(current)
	next.Version = current.Version + 1

	s.tasks[id] = next

	return next.Clone(), nil
}

// Reset removes every stored task.
func (s *TaskStore) Reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.tasks = make(map[model.TaskID]model.Task)
	s.order = slices.Delete(s.order, 0, len(s.order))
}

func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make(map[model.TaskID]model.Task),
		order: make([]model.TaskID, 0),
	}
}

var _ port.TaskStore = &TaskStore{}
