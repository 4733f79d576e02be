package assignment

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bornholm/roster/internal/core/model"
)

// Engine validates assignment requests against a task snapshot and computes
// the next state to persist. It never mutates the snapshots it is given.
type Engine struct {
	days  []string
	clock func() time.Time
}

func NewEngine(funcs ...OptionFunc) *Engine {
	opts := NewOptions(funcs...)
	return &Engine{
		days:  opts.Days,
		clock: opts.Clock,
	}
}

// AssignPerson assigns name to the task, as its lead or as a new volunteer.
// A lead assignment overwrites any existing lead.
func (e *Engine) AssignPerson(task model.Task, name string, asLead bool, actor string) (model.Task, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return model.Task{}, err
	}

	next := task.Clone()

	if asLead {
		next.Lead = &name
		e.stamp(&next, actor)
		return next, nil
	}

	if ContainsVolunteer(next.Volunteers, name) {
		return model.Task{}, newError(KindDuplicateVolunteer, "%s is already signed up for this task", name)
	}

	if len(next.Volunteers) >= next.SlotsNeeded {
		return model.Task{}, newError(KindTaskFull, "task '%s' is already full (%d/%d)", next.Task, len(next.Volunteers), next.SlotsNeeded)
	}

	next.Volunteers = append(next.Volunteers, name)
	e.stamp(&next, actor)

	return next, nil
}

// RemovePerson removes the first volunteer exactly matching name or, failing
// that, clears the lead if it exactly matches name.
func (e *Engine) RemovePerson(task model.Task, name string, actor string) (model.Task, error) {
	next := task.Clone()

	if idx := slices.Index(next.Volunteers, name); idx != -1 {
		next.Volunteers = slices.Delete(next.Volunteers, idx, idx+1)
		e.stamp(&next, actor)
		return next, nil
	}

	if next.Lead != nil && *next.Lead == name {
		next.Lead = nil
		e.stamp(&next, actor)
		return next, nil
	}

	return model.Task{}, newError(KindNotFound, "%s is not assigned to task '%s'", name, next.Task)
}

// AddSlot increases the capacity of the task by one.
func (e *Engine) AddSlot(task model.Task, actor string) (model.Task, error) {
	next := task.Clone()
	next.SlotsNeeded++
	e.stamp(&next, actor)
	return next, nil
}

type NewTask struct {
	Day         string
	Time        string
	Section     string
	Task        string
	Lead        *string
	LeadOffered bool
	Volunteers  []string
	SlotsNeeded *int
	Notes       string
}

// CreateTask builds a new task with a freshly allocated id.
func (e *Engine) CreateTask(req NewTask, actor string) (model.Task, error) {
	task := model.Task{
		ID:          model.NewTaskID(),
		Day:         strings.TrimSpace(req.Day),
		Time:        strings.TrimSpace(req.Time),
		Section:     strings.TrimSpace(req.Section),
		Task:        strings.TrimSpace(req.Task),
		LeadOffered: req.LeadOffered,
		Volunteers:  []string{},
		Notes:       req.Notes,
	}

	if task.Task == "" {
		return model.Task{}, newError(KindInvalidTask, "task name is required")
	}

	if task.Day == "" {
		return model.Task{}, newError(KindInvalidTask, "day is required")
	}

	if task.Section == "" {
		return model.Task{}, newError(KindInvalidTask, "section is required")
	}

	if len(e.days) > 0 && !slices.Contains(e.days, task.Day) {
		return model.Task{}, newError(KindInvalidTask, "unknown event day '%s'", task.Day)
	}

	if req.SlotsNeeded != nil {
		task.SlotsNeeded = *req.SlotsNeeded
	}

	if req.Lead != nil && strings.TrimSpace(*req.Lead) != "" {
		lead := strings.TrimSpace(*req.Lead)
		task.Lead = &lead
	}

	for _, v := range req.Volunteers {
		task.Volunteers = append(task.Volunteers, strings.TrimSpace(v))
	}

	if err := Validate(task); err != nil {
		return model.Task{}, asInvalidTask(err)
	}

	now := e.clock()
	task.CreatedAt = now
	e.stamp(&task, actor)

	return task, nil
}

type Replacement struct {
	Lead        *string
	Volunteers  []string
	SlotsNeeded int
	Notes       string
}

// Replace validates a full-record write of the assignment fields of current.
// Slots can not be removed through a replace.
func (e *Engine) Replace(current model.Task, req Replacement, actor string) (model.Task, error) {
	next := current.Clone()

	next.Lead = nil
	if req.Lead != nil && strings.TrimSpace(*req.Lead) != "" {
		lead := strings.TrimSpace(*req.Lead)
		next.Lead = &lead
	}

	next.Volunteers = make([]string, 0, len(req.Volunteers))
	for _, v := range req.Volunteers {
		next.Volunteers = append(next.Volunteers, strings.TrimSpace(v))
	}

	next.SlotsNeeded = req.SlotsNeeded
	next.Notes = req.Notes

	if next.SlotsNeeded < current.SlotsNeeded {
		return model.Task{}, newError(KindInvalidTask, "slots can not be removed (%d < %d)", next.SlotsNeeded, current.SlotsNeeded)
	}

	if err := Validate(next); err != nil {
		return model.Task{}, asInvalidTask(err)
	}

	e.stamp(&next, actor)

	return next, nil
}

func (e *Engine) stamp(task *model.Task, actor string) {
	task.UpdatedBy = actor
	task.UpdatedAt = e.clock()
}

// NormalizeName trims name and checks it is neither empty nor too long.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return "", newError(KindEmptyName, "please enter a valid name")
	}

	if utf8.RuneCountInString(name) > model.MaxNameLength {
		return "", newError(KindNameTooLong, "name is too long (max %d characters)", model.MaxNameLength)
	}

	return name, nil
}

// SamePerson compares two names ignoring case and surrounding spaces.
func SamePerson(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func ContainsVolunteer(volunteers []string, name string) bool {
	return slices.ContainsFunc(volunteers, func(v string) bool {
		return SamePerson(v, name)
	})
}

func asInvalidTask(err error) error {
	if kind, ok := KindOf(err); ok && kind == KindInvalidTask {
		return err
	}

	return newError(KindInvalidTask, "invalid task: %s", err.Error())
}
