package testsuite

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/bornholm/roster/internal/core/model"
	"github.com/bornholm/roster/internal/core/port"
	"github.com/pkg/errors"
)

func TestTaskStore(t *testing.T, factory func(t *testing.T) (port.TaskStore, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.TaskStore) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "CreateThenList",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				task := newTestTask("Carve turkeys", "Buffet Service")
				task.Lead = model.StringPtr("Samantha")
				task.Volunteers = []string{"Lee"}
				task.SlotsNeeded = 2
				task.Notes = "bring knives"

				created, err := store.CreateTask(ctx, task)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := task.ID, created.ID; e != g {
					t.Errorf("created.ID: expected %s, got %s", e, g)
				}

				tasks, err := store.ListTasks(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				idx := slices.IndexFunc(tasks, func(t model.Task) bool { return t.ID == task.ID })
				if idx == -1 {
					t.Fatalf("created task %s not found in list", task.ID)
				}

				listed := tasks[idx]

				assertSameAssignment(t, task, listed)

				if e, g := task.Day, listed.Day; e != g {
					t.Errorf("listed.Day: expected %s, got %s", e, g)
				}

				if e, g := task.Time, listed.Time; e != g {
					t.Errorf("listed.Time: expected %s, got %s", e, g)
				}

				if e, g := task.Section, listed.Section; e != g {
					t.Errorf("listed.Section: expected %s, got %s", e, g)
				}

				if e, g := task.Task, listed.Task; e != g {
					t.Errorf("listed.Task: expected %s, got %s", e, g)
				}

				return nil
			},
		},
		{
			Name: "GetUnknownTask",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				_, err := store.GetTask(ctx, model.NewTaskID())
				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "ReplaceUnknownTask",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				_, err := store.ReplaceTask(ctx, model.NewTaskID(), port.TaskReplacement{UpdatedBy: "test"})
				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "ReplaceIsFullRecord",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				task := newTestTask("Set tables", "Setup")
				task.Lead = model.StringPtr("Kim")
				task.Volunteers = []string{"Sam", "Lee"}
				task.SlotsNeeded = 3
				task.Notes = "hall A"

				created, err := store.CreateTask(ctx, task)
				if err != nil {
					return errors.WithStack(err)
				}

				stampedAt := time.Date(2025, time.November, 26, 9, 0, 0, 0, time.UTC)

				replaced, err := store.ReplaceTask(ctx, created.ID, port.TaskReplacement{
					Volunteers:  []string{"Lee"},
					SlotsNeeded: 4,
					UpdatedBy:   "coordinator",
					UpdatedAt:   stampedAt,
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if replaced.Lead != nil {
					t.Errorf("replaced.Lead: expected nil, got %q", *replaced.Lead)
				}

				if e, g := "", replaced.Notes; e != g {
					t.Errorf("replaced.Notes: expected %q, got %q", e, g)
				}

				if e, g := []string{"Lee"}, replaced.Volunteers; !slices.Equal(e, g) {
					t.Errorf("replaced.Volunteers: expected %v, got %v", e, g)
				}

				if e, g := 4, replaced.SlotsNeeded; e != g {
					t.Errorf("replaced.SlotsNeeded: expected %d, got %d", e, g)
				}

				if e, g := "coordinator", replaced.UpdatedBy; e != g {
					t.Errorf("replaced.UpdatedBy: expected %s, got %s", e, g)
				}

				if e, g := stampedAt, replaced.UpdatedAt; !e.Equal(g) {
					t.Errorf("replaced.UpdatedAt: expected %v, got %v", e, g)
				}

				if e, g := created.Version+1, replaced.Version; e != g {
					t.Errorf("replaced.Version: expected %d, got %d", e, g)
				}

				fetched, err := store.GetTask(ctx, created.ID)
				if err != nil {
					return errors.WithStack(err)
				}

				assertSameAssignment(t, replaced, fetched)

				if e, g := created.Task, fetched.Task; e != g {
					t.Errorf("fetched.Task: expected %s, got %s", e, g)
				}

				return nil
			},
		},
		{
			Name: "LastWriterWins",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				task := newTestTask("Wash dishes", "Cleanup")
				task.SlotsNeeded = 3

				snapshot, err := store.CreateTask(ctx, task)
				if err != nil {
					return errors.WithStack(err)
				}

				first := port.ReplacementFrom(snapshot)
				first.Volunteers = append(first.Volunteers, "Ann")
				first.UpdatedBy = "first"

				if _, err := store.ReplaceTask(ctx, snapshot.ID, first); err != nil {
					return errors.WithStack(err)
				}

				second := port.ReplacementFrom(snapshot)
				second.Volunteers = append(second.Volunteers, "Bob")
				second.UpdatedBy = "second"

				if _, err := store.ReplaceTask(ctx, snapshot.ID, second); err != nil {
					return errors.WithStack(err)
				}

				fetched, err := store.GetTask(ctx, snapshot.ID)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := []string{"Bob"}, fetched.Volunteers; !slices.Equal(e, g) {
					t.Errorf("fetched.Volunteers: expected %v, got %v", e, g)
				}

				if e, g := "second", fetched.UpdatedBy; e != g {
					t.Errorf("fetched.UpdatedBy: expected %s, got %s", e, g)
				}

				return nil
			},
		},
		{
			Name: "StaleVersionIsRejected",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				task := newTestTask("Greet guests", "Front door")
				task.SlotsNeeded = 2

				snapshot, err := store.CreateTask(ctx, task)
				if err != nil {
					return errors.WithStack(err)
				}

				version := snapshot.Version

				first := port.ReplacementFrom(snapshot)
				first.Volunteers = []string{"Ann"}
				first.ExpectedVersion = &version

				if _, err := store.ReplaceTask(ctx, snapshot.ID, first); err != nil {
					return errors.WithStack(err)
				}

				second := port.ReplacementFrom(snapshot)
				second.Volunteers = []string{"Bob"}
				second.ExpectedVersion = &version

				_, err = store.ReplaceTask(ctx, snapshot.ID, second)
				if !errors.Is(err, port.ErrConflict) {
					t.Errorf("err: expected port.ErrConflict, got %+v", err)
				}

				fetched, err := store.GetTask(ctx, snapshot.ID)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := []string{"Ann"}, fetched.Volunteers; !slices.Equal(e, g) {
					t.Errorf("fetched.Volunteers: expected %v, got %v", e, g)
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := context.Background()

			store, err := factory(t)
			if err != nil {
				t.Fatalf("could not create store: %+v", errors.WithStack(err))
			}

			if err := tc.Run(t, ctx, store); err != nil {
				t.Fatalf("could not run test: %+v", errors.WithStack(err))
			}
		})
	}
}

func newTestTask(name string, section string) model.Task {
	now := time.Now().UTC().Truncate(time.Second)

	return model.Task{
		ID:         model.NewTaskID(),
		Day:        "Thursday",
		Time:       "12:00",
		Section:    section,
		Task:       name,
		Volunteers: []string{},
		UpdatedBy:  "testsuite",
		UpdatedAt:  now,
		CreatedAt:  now,
	}
}

func assertSameAssignment(t *testing.T, expected model.Task, got model.Task) {
	t.Helper()

	if e, g := expected.LeadName(), got.LeadName(); e != g {
		t.Errorf("Lead: expected %q, got %q", e, g)
	}

	if e, g := expected.Volunteers, got.Volunteers; !slices.Equal(e, g) {
		t.Errorf("Volunteers: expected %v, got %v", e, g)
	}

	if e, g := expected.SlotsNeeded, got.SlotsNeeded; e != g {
		t.Errorf("SlotsNeeded: expected %d, got %d", e, g)
	}

	if e, g := expected.Notes, got.Notes; e != g {
		t.Errorf("Notes: expected %q, got %q", e, g)
	}

	if e, g := expected.UpdatedBy, got.UpdatedBy; e != g {
		t.Errorf("UpdatedBy: expected %q, got %q", e, g)
	}

	if e, g := expected.UpdatedAt, got.UpdatedAt; !e.Equal(g) {
		t.Errorf("UpdatedAt: expected %v, got %v", e, g)
	}
}
