package cache

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/bornholm/roster/internal/adapter/memory"
	"github.com/bornholm/roster/internal/core/model"
	"github.com/bornholm/roster/internal/core/port"
	"github.com/bornholm/roster/internal/core/port/testsuite"
	"github.com/pkg/errors"
)

func TestTaskStore(t *testing.T) {
	testsuite.TestTaskStore(t, func(t *testing.T) (port.TaskStore, error) {
		return NewTaskStore(memory.NewTaskStore(), 32, time.Minute), nil
	})
}

type countingStore struct {
	port.TaskStore
	lists int
	gets  int
}

func (s *countingStore) ListTasks(ctx context.Context) ([]model.Task, error) {
	s.lists++
	return s.TaskStore.ListTasks(ctx)
}

func (s *countingStore) GetTask(ctx context.Context, id model.TaskID) (model.Task, error) {
	s.gets++
	return s.TaskStore.GetTask(ctx, id)
}

func TestTaskStoreCachesReads(t *testing.T) {
	ctx := context.Background()

	backend := &countingStore{TaskStore: memory.NewTaskStore()}
	store := NewTaskStore(backend, 32, time.Minute)

	created, err := store.CreateTask(ctx, model.Task{
		Day:         "Thursday",
		Section:     "Setup",
		Task:        "Set tables",
		Volunteers:  []string{},
		SlotsNeeded: 2,
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for range 3 {
		if _, err := store.ListTasks(ctx); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if _, err := store.GetTask(ctx, created.ID); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	if e, g := 1, backend.lists; e != g {
		t.Errorf("backend.lists: expected %d, got %d", e, g)
	}

	if e, g := 1, backend.gets; e != g {
		t.Errorf("backend.gets: expected %d, got %d", e, g)
	}

	// Mutating a returned task must not leak into the cache
	tasks, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	tasks[0].Volunteers = append(tasks[0].Volunteers, "Intruder")

	replacement := port.ReplacementFrom(created)
	replacement.Volunteers = []string{"Ann"}

	if _, err := store.ReplaceTask(ctx, created.ID, replacement); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	fetched, err := store.GetTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(fetched.Volunteers); e != g {
		t.Fatalf("len(fetched.Volunteers): expected %d, got %d", e, g)
	}

	if e, g := "Ann", fetched.Volunteers[0]; e != g {
		t.Errorf("fetched.Volunteers[0]: expected %s, got %s", e, g)
	}

	if e, g := 2, backend.gets; e != g {
		t.Errorf("backend.gets: expected %d, got %d", e, g)
	}

	if _, err := store.ListTasks(ctx); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, backend.lists; e != g {
		t.Errorf("backend.lists: expected %d, got %d", e, g)
	}
}

// interleavingStore runs afterRead once, between a backend read and the
// moment the cache would store its result.
type interleavingStore struct {
	port.TaskStore
	afterRead func()
}

func (s *interleavingStore) ListTasks(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.TaskStore.ListTasks(ctx)
	s.interleave()
	return tasks, err
}

func (s *interleavingStore) GetTask(ctx context.Context, id model.TaskID) (model.Task, error) {
	task, err := s.TaskStore.GetTask(ctx, id)
	s.interleave()
	return task, err
}

func (s *interleavingStore) interleave() {
	if s.afterRead == nil {
		return
	}

	afterRead := s.afterRead
	s.afterRead = nil
	afterRead()
}

func TestTaskStoreDropsReadsOverlappingWrites(t *testing.T) {
	ctx := context.Background()

	backend := &interleavingStore{TaskStore: memory.NewTaskStore()}
	store := NewTaskStore(backend, 32, time.Minute)

	created, err := store.CreateTask(ctx, model.Task{
		Day:         "Thursday",
		Section:     "Setup",
		Task:        "Set tables",
		Volunteers:  []string{},
		SlotsNeeded: 2,
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	signUp := func(name string) func() {
		return func() {
			current, err := backend.TaskStore.GetTask(ctx, created.ID)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			replacement := port.ReplacementFrom(current)
			replacement.Volunteers = append(replacement.Volunteers, name)

			if _, err := store.ReplaceTask(ctx, created.ID, replacement); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}
		}
	}

	backend.afterRead = signUp("Ann")

	if _, err := store.ListTasks(ctx); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	tasks, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(tasks); e != g {
		t.Fatalf("len(tasks): expected %d, got %d", e, g)
	}

	if e, g := []string{"Ann"}, tasks[0].Volunteers; !slices.Equal(e, g) {
		t.Errorf("tasks[0].Volunteers: expected %v, got %v", e, g)
	}

	if e, g := created.Version+1, tasks[0].Version; e != g {
		t.Errorf("tasks[0].Version: expected %d, got %d", e, g)
	}

	backend.afterRead = signUp("Bob")

	if _, err := store.GetTask(ctx, created.ID); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	fetched, err := store.GetTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := []string{"Ann", "Bob"}, fetched.Volunteers; !slices.Equal(e, g) {
		t.Errorf("fetched.Volunteers: expected %v, got %v", e, g)
	}

	if e, g := created.Version+2, fetched.Version; e != g {
		t.Errorf("fetched.Version: expected %d, got %d", e, g)
	}
}
