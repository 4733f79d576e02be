package task

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/bornholm/roster/internal/adapter/memory"
	"github.com/bornholm/roster/internal/command/common"
	"github.com/bornholm/roster/internal/core/assignment"
	"github.com/bornholm/roster/internal/core/model"
	"github.com/bornholm/roster/internal/core/service"
	"github.com/bornholm/roster/internal/http/handler/api"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

type testEnv struct {
	planner *service.Planner
	server  *httptest.Server
	task    model.Task
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	planner := service.NewPlanner(memory.NewTaskStore(), service.WithPlannerDays("Wednesday", "Thursday"))

	mux := http.NewServeMux()
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", api.NewHandler(planner)))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	slots := 1
	task, err := planner.CreateTask(context.Background(), assignment.NewTask{
		Day:         "Thursday",
		Time:        "2:00 PM",
		Section:     "Kitchen",
		Task:        "Carve turkey",
		LeadOffered: true,
		SlotsNeeded: &slots,
	}, "test")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return &testEnv{planner: planner, server: server, task: task}
}

func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var output bytes.Buffer

	app := &cli.App{
		Name:     "roster",
		Commands: Commands(),
		Writer:   &output,
	}

	err := app.RunContext(context.Background(), append([]string{"roster"}, args...))

	return output.String(), err
}

func (e *testEnv) current(t *testing.T) model.Task {
	t.Helper()

	task, err := e.planner.GetTask(context.Background(), e.task.ID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return task
}

func TestAssignAndRemoveCommands(t *testing.T) {
	env := newTestEnv(t)
	taskID := string(env.task.ID)

	if _, err := env.run(t, "assign", "--server", env.server.URL, taskID, "Ann"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	task := env.current(t)

	if e, g := []string{"Ann"}, task.Volunteers; !slices.Equal(e, g) {
		t.Errorf("task.Volunteers: expected %v, got %v", e, g)
	}

	if e, g := common.DefaultCoordinator, task.UpdatedBy; e != g {
		t.Errorf("task.UpdatedBy: expected %q, got %q", e, g)
	}

	_, err := env.run(t, "assign", "--server", env.server.URL, taskID, "Bob")
	if e, g := true, errors.Is(err, assignment.ErrTaskFull); e != g {
		t.Errorf("assign on full task: expected TaskFull, got %v", err)
	}

	if _, err := env.run(t, "assign", "--server", env.server.URL, "--lead", "--coordinator", "Dana", taskID, "Carl"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	task = env.current(t)

	if e, g := "Carl", task.LeadName(); e != g {
		t.Errorf("task.LeadName(): expected %q, got %q", e, g)
	}

	if e, g := "Dana", task.UpdatedBy; e != g {
		t.Errorf("task.UpdatedBy: expected %q, got %q", e, g)
	}

	if _, err := env.run(t, "remove", "--server", env.server.URL, taskID, "Carl"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := false, env.current(t).HasLead(); e != g {
		t.Errorf("task.HasLead(): expected %v, got %v", e, g)
	}

	if _, err := env.run(t, "add-slot", "--server", env.server.URL, "--atomic", taskID); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, env.current(t).SlotsNeeded; e != g {
		t.Errorf("task.SlotsNeeded: expected %d, got %d", e, g)
	}
}

// signUpAfterRead makes another coordinator sign Bob up right after each
// snapshot read served to the command.
func signUpAfterRead(t *testing.T, env *testEnv) {
	t.Helper()

	ctx := context.Background()
	if _, err := env.planner.AddSlot(ctx, env.task.ID, "test"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	handler := env.server.Config.Handler

	env.server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			handler.ServeHTTP(w, r)
			return
		}

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, r)

		if _, err := env.planner.AssignPerson(ctx, env.task.ID, "Bob", false, "other"); err != nil {
			t.Errorf("%+v", errors.WithStack(err))
		}

		for key, values := range recorder.Header() {
			w.Header()[key] = values
		}

		w.WriteHeader(recorder.Code)
		w.Write(recorder.Body.Bytes())
	})
}

func TestStrictAssignDetectsConcurrentWrite(t *testing.T) {
	env := newTestEnv(t)
	signUpAfterRead(t, env)

	_, err := env.run(t, "assign", "--server", env.server.URL, "--strict", string(env.task.ID), "Ann")
	if err == nil {
		t.Fatal("expected a conflict error")
	}

	if e, g := []string{"Bob"}, env.current(t).Volunteers; !slices.Equal(e, g) {
		t.Errorf("task.Volunteers: expected %v, got %v", e, g)
	}
}

func TestAssignLastWriterWins(t *testing.T) {
	env := newTestEnv(t)
	signUpAfterRead(t, env)

	if _, err := env.run(t, "assign", "--server", env.server.URL, string(env.task.ID), "Ann"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	// Bob was not part of the snapshot the command replaced the task with
	if e, g := []string{"Ann"}, env.current(t).Volunteers; !slices.Equal(e, g) {
		t.Errorf("task.Volunteers: expected %v, got %v", e, g)
	}
}

func TestReplaceRequest(t *testing.T) {
	task := model.Task{SlotsNeeded: 2, Notes: "bring knives"}

	req := ReplaceRequest(task, "Dana")

	if req.Lead == nil || *req.Lead != "" {
		t.Errorf("req.Lead: expected an empty lead clearing the stored one, got %v", req.Lead)
	}

	if req.Volunteers == nil {
		t.Error("req.Volunteers: expected an empty list, got nil")
	}

	if e, g := 2, *req.SlotsNeeded; e != g {
		t.Errorf("req.SlotsNeeded: expected %d, got %d", e, g)
	}

	if e, g := "Dana", req.UpdatedBy; e != g {
		t.Errorf("req.UpdatedBy: expected %q, got %q", e, g)
	}
}

func TestListCommand(t *testing.T) {
	env := newTestEnv(t)

	output, err := env.run(t, "list", "--server", env.server.URL, "--unfilled")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := true, bytes.Contains([]byte(output), []byte("Carve turkey")); e != g {
		t.Errorf("list output: expected task name in %q", output)
	}
}

func TestCreateCommandSlots(t *testing.T) {
	type testCase struct {
		Args          []string
		ExpectedSlots int
	}

	testCases := map[string]testCase{
		"omitted": {
			Args:          []string{"--task", "Fold napkins", "--day", "Thursday"},
			ExpectedSlots: 0,
		},
		"explicit": {
			Args:          []string{"--task", "Fold napkins", "--day", "Thursday", "--slots", "3"},
			ExpectedSlots: 3,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t)

			args := append([]string{"create", "--server", env.server.URL}, tc.Args...)

			if _, err := env.run(t, args...); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			tasks, err := env.planner.ListTasks(context.Background(), "Fold napkins", false)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := 1, len(tasks); e != g {
				t.Fatalf("len(tasks): expected %d, got %d", e, g)
			}

			if e, g := tc.ExpectedSlots, tasks[0].SlotsNeeded; e != g {
				t.Errorf("tasks[0].SlotsNeeded: expected %d, got %d", e, g)
			}
		})
	}
}
