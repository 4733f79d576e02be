package model

import (
	"slices"
	"time"

	"github.com/rs/xid"
)

// MaxNameLength is the maximum number of characters of a lead or volunteer name.
const MaxNameLength = 100

type TaskID string

func NewTaskID() TaskID {
	return TaskID(xid.New().String())
}

type Role string

const (
	RoleLead      Role = "lead"
	RoleVolunteer Role = "volunteer"
)

// Task is a unit of event work with a bounded number of volunteer slots
// and an optional lead position.
type Task struct {
	ID      TaskID
	Day     string
	Time    string
	Section string
	Task    string

	// Lead is nil when the lead position is open.
	Lead        *string
	LeadOffered bool

	// Volunteers is kept in assignment order.
	Volunteers  []string
	SlotsNeeded int
	Notes       string

	UpdatedBy string
	UpdatedAt time.Time
	CreatedAt time.Time

	// Version is incremented by the store on every write.
	Version int
}

// HasLead reports whether a lead is currently assigned.
func (t Task) HasLead() bool {
	return t.Lead != nil && *t.Lead != ""
}

// LeadName returns the assigned lead or an empty string.
func (t Task) LeadName() string {
	if t.Lead == nil {
		return ""
	}

	return *t.Lead
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	clone := t

	if t.Lead != nil {
		lead := *t.Lead
		clone.Lead = &lead
	}

	clone.Volunteers = slices.Clone(t.Volunteers)
	if clone.Volunteers == nil {
		clone.Volunteers = []string{}
	}

	return clone
}

// Positions returns the number of filled and total positions of the task,
// lead included when one is assigned or offered.
func (t Task) Positions() (filled int, total int) {
	filled = len(t.Volunteers)
	total = t.SlotsNeeded

	if t.HasLead() {
		filled++
	}

	if t.HasLead() || t.LeadOffered {
		total++
	}

	return filled, total
}

// IsFilled reports whether every volunteer slot is taken.
func (t Task) IsFilled() bool {
	return len(t.Volunteers) >= t.SlotsNeeded
}

func StringPtr(s string) *string {
	return &s
}
