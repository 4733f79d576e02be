package cache

import (
	"context"
	"sync"
	"time"

	"github.com/bornholm/roster/internal/core/model"
	"github.com/bornholm/roster/internal/core/port"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const listKey = "tasks"

type TaskStore struct {
	backend   port.TaskStore
	listCache *expirable.LRU[string, []model.Task]
	taskCache *expirable.LRU[model.TaskID, model.Task]

	// generation is bumped after every write. A read only fills the
	// cache if no write landed between its backend read and the fill.
	mutex      sync.Mutex
	generation uint64
}

// ListTasks implements [port.TaskStore].
func (s *TaskStore) ListTasks(ctx context.Context) ([]model.Task, error) {
	if tasks, exists := s.listCache.Get(listKey); exists {
		return cloneTasks(tasks), nil
	}

	generation := s.currentGeneration()

	tasks, err := s.backend.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	s.fill(generation, func() {
		s.listCache.Add(listKey, cloneTasks(tasks))
	})

	return tasks, nil
}

// GetTask implements [port.TaskStore].
func (s *TaskStore) GetTask(ctx context.Context, id model.TaskID) (model.Task, error) {
	if task, exists := s.taskCache.Get(id); exists {
		return task.Clone(), nil
	}

	generation := s.currentGeneration()

	task, err := s.backend.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, err
	}

	s.fill(generation, func() {
		s.taskCache.Add(id, task.Clone())
	})

	return task, nil
}

// CreateTask implements [port.TaskStore].
func (s *TaskStore) CreateTask(ctx context.Context, task model.Task) (model.Task, error) {
	defer s.invalidate(func() {
		s.listCache.Purge()
	})

	return s.backend.CreateTask(ctx, task)
}

// ReplaceTask implements [port.TaskStore].
func (s *TaskStore) ReplaceTask(ctx context.Context, id model.TaskID, replacement port.TaskReplacement) (model.Task, error) {
	defer s.invalidate(func() {
		s.listCache.Purge()
		s.taskCache.Remove(id)
	})

	return s.backend.ReplaceTask(ctx, id, replacement)
}

func (s *TaskStore) currentGeneration() uint64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.generation
}

func (s *TaskStore) fill(generation uint64, add func()) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.generation != generation {
		return
	}

	add()
}

func (s *TaskStore) invalidate(evict func()) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.generation++
	evict()
}

func cloneTasks(tasks []model.Task) []model.Task {
	cloned := make([]model.Task, len(tasks))
	for i, t := range tasks {
		cloned[i] = t.Clone()
	}
	return cloned
}

func NewTaskStore(backend port.TaskStore, size int, ttl time.Duration) *TaskStore {
	return &TaskStore{
		backend:   backend,
		listCache: expirable.NewLRU[string, []model.Task](1, nil, ttl),
		taskCache: expirable.NewLRU[model.TaskID, model.Task](size, nil, ttl),
	}
}

var _ port.TaskStore = &TaskStore{}
