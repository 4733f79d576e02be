package seed

import (
	"context"
	"testing"

	"github.com/bornholm/roster/internal/adapter/memory"
	"github.com/bornholm/roster/internal/core/assignment"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const testSeed = `
tasks:
  - day: Thursday
    time: "10:00 AM"
    section: Buffet Service
    task: Carve turkeys
    lead: Samantha
    slotsNeeded: 2
  - day: Thursday
    time: "9:00"
    section: Setup
    task: Set tables
    leadOffered: true
    volunteers: [Ann, Bob]
    slotsNeeded: 4
    notes: hall A
`

func TestLoadAndApply(t *testing.T) {
	ctx := context.Background()

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/seed.yml", []byte(testSeed), 0o644); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	file, err := Load(fs, "/seed.yml")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(file.Tasks); e != g {
		t.Fatalf("len(file.Tasks): expected %d, got %d", e, g)
	}

	store := memory.NewTaskStore()
	engine := assignment.NewEngine(assignment.WithDays("Wednesday", "Thursday"))

	created, err := Apply(ctx, store, engine, file, DefaultActor)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, created; e != g {
		t.Errorf("created: expected %d, got %d", e, g)
	}

	tasks, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Samantha", tasks[0].LeadName(); e != g {
		t.Errorf("tasks[0].LeadName(): expected %s, got %s", e, g)
	}

	if e, g := 2, len(tasks[1].Volunteers); e != g {
		t.Errorf("len(tasks[1].Volunteers): expected %d, got %d", e, g)
	}

	if !tasks[1].LeadOffered {
		t.Errorf("tasks[1].LeadOffered: expected true")
	}

	if e, g := DefaultActor, tasks[1].UpdatedBy; e != g {
		t.Errorf("tasks[1].UpdatedBy: expected %s, got %s", e, g)
	}

	// A second run leaves a populated store untouched
	created, err = Apply(ctx, store, engine, file, DefaultActor)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, created; e != g {
		t.Errorf("created: expected %d, got %d", e, g)
	}
}

func TestApplyRejectsInvalidEntry(t *testing.T) {
	ctx := context.Background()

	slots := 1
	file := &File{
		Tasks: []Entry{
			{Day: "Thursday", Section: "Setup", Task: "Fold napkins", SlotsNeeded: &slots},
			{Day: "Thursday", Section: "Setup", Task: "Set tables", Volunteers: []string{"Ann", "Bob"}, SlotsNeeded: &slots},
		},
	}

	store := memory.NewTaskStore()

	created, err := Apply(ctx, store, assignment.NewEngine(), file, DefaultActor)
	if !errors.Is(err, assignment.ErrInvalidTask) {
		t.Errorf("err: expected assignment.ErrInvalidTask, got %+v", err)
	}

	if e, g := 0, created; e != g {
		t.Errorf("created: expected %d, got %d", e, g)
	}

	// The valid entry ahead of the bad one must not have been written
	tasks, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, len(tasks); e != g {
		t.Errorf("len(tasks): expected %d, got %d", e, g)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(afero.NewMemMapFs(), "/missing.yml"); err == nil {
		t.Errorf("err: expected an error, got nil")
	}
}
