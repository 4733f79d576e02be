package service

import (
	"context"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/roster/internal/core/assignment"
	"github.com/bornholm/roster/internal/core/model"
	"github.com/bornholm/roster/internal/core/port"
	"github.com/bornholm/roster/internal/core/query"
	"github.com/bornholm/roster/internal/metrics"
	"github.com/pkg/errors"
)

const (
	OperationCreate  = "create"
	OperationUpdate  = "update"
	OperationAssign  = "assign"
	OperationRemove  = "remove"
	OperationAddSlot = "add_slot"
)

// Planner binds the assignment engine to a task store.
type Planner struct {
	store     port.TaskStore
	engine    *assignment.Engine
	queryOpts []query.OptionFunc

	extrasSection string
}

type TaskUpdate struct {
	// Lead is kept when nil and cleared when empty
	Lead *string
	// Volunteers is kept when nil
	Volunteers []string
	// SlotsNeeded is kept when nil
	SlotsNeeded *int
	// Notes is kept when nil
	Notes *string

	ExpectedVersion *int
}

func NewPlanner(store port.TaskStore, funcs ...PlannerOptionFunc) *Planner {
	opts := NewPlannerOptions(funcs...)

	return &Planner{
		store: store,
		engine: assignment.NewEngine(
			assignment.WithDays(opts.Days...),
			assignment.WithClock(opts.Clock),
		),
		queryOpts: []query.OptionFunc{
			query.WithDays(opts.Days...),
			query.WithMasterSection(opts.MasterSection),
			query.WithExtrasSection(opts.ExtrasSection),
		},
		extrasSection: opts.ExtrasSection,
	}
}

// Engine returns the assignment engine used by the planner.
func (p *Planner) Engine() *assignment.Engine {
	return p.engine
}

// ListTasks returns the tasks matching q, optionally restricted to the ones
// with open positions, sorted by time.
func (p *Planner) ListTasks(ctx context.Context, q string, unfilledOnly bool) ([]model.Task, error) {
	tasks, err := p.store.ListTasks(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	refreshGauges(tasks)

	return query.Sort(query.Filter(tasks, q, unfilledOnly), p.queryOpts...), nil
}

func (p *Planner) GetTask(ctx context.Context, id model.TaskID) (model.Task, error) {
	task, err := p.store.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, errors.WithStack(err)
	}

	return task, nil
}

func (p *Planner) CreateTask(ctx context.Context, req assignment.NewTask, actor string) (model.Task, error) {
	task, err := p.engine.CreateTask(req, actor)
	if err != nil {
		return model.Task{}, p.observe(ctx, OperationCreate, "", err)
	}

	created, err := p.store.CreateTask(ctx, task)
	if err != nil {
		return model.Task{}, p.observe(ctx, OperationCreate, task.ID, errors.WithStack(err))
	}

	p.observe(ctx, OperationCreate, created.ID, nil)

	return created, nil
}

// UpdateTask writes the full assignment state of a task. Fields left nil in
// the update keep their stored value. Without an expected version the write
// is last-writer-wins.
func (p *Planner) UpdateTask(ctx context.Context, id model.TaskID, update TaskUpdate, actor string) (model.Task, error) {
	current, err := p.store.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, p.observe(ctx, OperationUpdate, id, errors.WithStack(err))
	}

	req := assignment.Replacement{
		Lead:        current.Lead,
		Volunteers:  current.Volunteers,
		SlotsNeeded: current.SlotsNeeded,
		Notes:       current.Notes,
	}

	if update.Lead != nil {
		req.Lead = update.Lead
	}

	if update.Volunteers != nil {
		req.Volunteers = update.Volunteers
	}

	if update.SlotsNeeded != nil {
		req.SlotsNeeded = *update.SlotsNeeded
	}

	if update.Notes != nil {
		req.Notes = *update.Notes
	}

	next, err := p.engine.Replace(current, req, actor)
	if err != nil {
		return model.Task{}, p.observe(ctx, OperationUpdate, id, err)
	}

	replacement := port.ReplacementFrom(next)
	replacement.ExpectedVersion = update.ExpectedVersion

	replaced, err := p.store.ReplaceTask(ctx, id, replacement)
	if err != nil {
		return model.Task{}, p.observe(ctx, OperationUpdate, id, errors.WithStack(err))
	}

	p.observe(ctx, OperationUpdate, id, nil)

	return replaced, nil
}

func (p *Planner) AssignPerson(ctx context.Context, id model.TaskID, name string, asLead bool, actor string) (model.Task, error) {
	return p.mutate(ctx, OperationAssign, id, func(task model.Task) (model.Task, error) {
		return p.engine.AssignPerson(task, name, asLead, actor)
	})
}

func (p *Planner) RemovePerson(ctx context.Context, id model.TaskID, name string, actor string) (model.Task, error) {
	return p.mutate(ctx, OperationRemove, id, func(task model.Task) (model.Task, error) {
		return p.engine.RemovePerson(task, name, actor)
	})
}

func (p *Planner) AddSlot(ctx context.Context, id model.TaskID, actor string) (model.Task, error) {
	return p.mutate(ctx, OperationAddSlot, id, func(task model.Task) (model.Task, error) {
		return p.engine.AddSlot(task, actor)
	})
}

func (p *Planner) Search(ctx context.Context, q string) (query.SearchResult, error) {
	tasks, err := p.store.ListTasks(ctx)
	if err != nil {
		return query.SearchResult{}, errors.WithStack(err)
	}

	result := query.Search(query.Sort(tasks, p.queryOpts...), q)

	return result, nil
}

func (p *Planner) Schedule(ctx context.Context, q string, unfilledOnly bool) (query.Schedule, error) {
	tasks, err := p.store.ListTasks(ctx)
	if err != nil {
		return query.Schedule{}, errors.WithStack(err)
	}

	// Extras are listed whatever the filters
	regular := make([]model.Task, 0, len(tasks))
	extras := make([]model.Task, 0)
	for _, t := range tasks {
		if t.Section == p.extrasSection {
			extras = append(extras, t)
		} else {
			regular = append(regular, t)
		}
	}

	filtered := append(query.Filter(regular, q, unfilledOnly), extras...)

	return query.GroupByDayAndSection(filtered, p.queryOpts...), nil
}

func (p *Planner) Summary(ctx context.Context) (query.Summary, error) {
	tasks, err := p.store.ListTasks(ctx)
	if err != nil {
		return query.Summary{}, errors.WithStack(err)
	}

	refreshGauges(tasks)

	return query.Summarize(tasks, p.queryOpts...), nil
}

// mutate reads a fresh snapshot, applies fn and writes the result back,
// guarded by the version that was read. A concurrent write in between fails
// with port.ErrConflict and is not retried.
func (p *Planner) mutate(ctx context.Context, operation string, id model.TaskID, fn func(task model.Task) (model.Task, error)) (model.Task, error) {
	current, err := p.store.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, p.observe(ctx, operation, id, errors.WithStack(err))
	}

	next, err := fn(current)
	if err != nil {
		return model.Task{}, p.observe(ctx, operation, id, err)
	}

	version := current.Version

	replacement := port.ReplacementFrom(next)
	replacement.ExpectedVersion = &version

	replaced, err := p.store.ReplaceTask(ctx, id, replacement)
	if err != nil {
		return model.Task{}, p.observe(ctx, operation, id, errors.WithStack(err))
	}

	p.observe(ctx, operation, id, nil)

	return replaced, nil
}

func (p *Planner) observe(ctx context.Context, operation string, id model.TaskID, err error) error {
	attrs := []any{
		slog.String("operation", operation),
		slog.String("taskID", string(id)),
	}

	outcome := metrics.OutcomeSuccess

	switch {
	case err == nil:
		slog.InfoContext(ctx, "task updated", attrs...)

	case errors.Is(err, port.ErrConflict):
		outcome = metrics.OutcomeConflict
		slog.WarnContext(ctx, "task changed concurrently", append(attrs, slogx.Error(err))...)

	case errors.Is(err, port.ErrNotFound):
		outcome = metrics.OutcomeRejected
		slog.DebugContext(ctx, "task not found", attrs...)

	default:
		if kind, ok := assignment.KindOf(err); ok {
			outcome = metrics.OutcomeRejected
			slog.DebugContext(ctx, "operation rejected", append(attrs, slog.String("kind", string(kind)))...)
		} else {
			outcome = metrics.OutcomeError
			slog.ErrorContext(ctx, "operation failed", append(attrs, slogx.Error(err))...)
		}
	}

	metrics.Operations.WithLabelValues(operation, outcome).Inc()

	return err
}

func refreshGauges(tasks []model.Task) {
	var filled, total int
	for _, t := range tasks {
		f, n := t.Positions()
		filled += f
		total += n
	}

	metrics.Tasks.Set(float64(len(tasks)))
	metrics.Positions.WithLabelValues(metrics.StateFilled).Set(float64(filled))
	metrics.Positions.WithLabelValues(metrics.StateOpen).Set(float64(total - filled))
}
