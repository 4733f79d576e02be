package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bornholm/roster/internal/adapter/memory"
	"github.com/bornholm/roster/internal/core/service"
	"github.com/bornholm/roster/internal/http/handler/api"
	"github.com/pkg/errors"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	planner := service.NewPlanner(memory.NewTaskStore(), service.WithPlannerDays("Wednesday", "Thursday"))

	mux := http.NewServeMux()
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", api.NewHandler(planner)))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	baseURL, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return New(WithBaseURL(baseURL))
}

func TestClient(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	slots := 1

	created, err := client.CreateTask(ctx, api.CreateTaskRequest{
		Task:        "Set tables",
		Day:         "Thursday",
		Time:        "10:00",
		Section:     "Setup",
		SlotsNeeded: &slots,
		UpdatedBy:   "test",
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	task, err := client.AssignPerson(ctx, created.ID, api.AssignPersonRequest{Name: "Ann", UpdatedBy: "test"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := []string{"Ann"}, task.Volunteers; !slices.Equal(e, g) {
		t.Errorf("task.Volunteers: expected %v, got %v", e, g)
	}

	_, err = client.AssignPerson(ctx, created.ID, api.AssignPersonRequest{Name: "Bob", UpdatedBy: "test"})

	var clientErr *Error
	if !errors.As(err, &clientErr) {
		t.Fatalf("err: expected *Error, got %+v", err)
	}

	if e, g := http.StatusBadRequest, clientErr.StatusCode; e != g {
		t.Errorf("clientErr.StatusCode: expected %d, got %d", e, g)
	}

	if e, g := "TaskFull", clientErr.Kind; e != g {
		t.Errorf("clientErr.Kind: expected %s, got %s", e, g)
	}

	stale := created.Version
	_, err = client.UpdateTask(ctx, created.ID, api.UpdateTaskRequest{Volunteers: []string{}, UpdatedBy: "test", Version: &stale})
	if !errors.As(err, &clientErr) || !clientErr.IsConflict() {
		t.Errorf("err: expected a conflict, got %+v", err)
	}

	tasks, err := client.ListTasks(ctx, WithListTasksQuery("ann"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(tasks); e != g {
		t.Errorf("len(tasks): expected %d, got %d", e, g)
	}

	summary, err := client.Summary(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 100, summary.PercentFilled; e != g {
		t.Errorf("summary.PercentFilled: expected %d, got %d", e, g)
	}

	_, err = client.GetTask(ctx, "unknown")
	if !errors.As(err, &clientErr) || !clientErr.IsNotFound() {
		t.Errorf("err: expected not found, got %+v", err)
	}
}

func TestRateLimitTransport(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	httpClient := &http.Client{
		Transport: &RateLimitTransport{
			Base:        http.DefaultTransport,
			MaxRetries:  2,
			DefaultWait: time.Millisecond,
		},
	}

	res, err := httpClient.Get(server.URL)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}
	defer res.Body.Close()

	if e, g := http.StatusNoContent, res.StatusCode; e != g {
		t.Errorf("res.StatusCode: expected %d, got %d", e, g)
	}

	if e, g := int32(2), calls.Load(); e != g {
		t.Errorf("calls: expected %d, got %d", e, g)
	}
}
