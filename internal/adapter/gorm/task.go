package gorm

import (
	"time"

	"github.com/bornholm/roster/internal/core/model"
)

type Task struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	// UpdatedAt is stamped by the engine
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`

	Day     string `gorm:"index"`
	Time    string
	Section string `gorm:"index"`
	Task    string

	Lead        *string
	LeadOffered bool
	Volunteers  []string `gorm:"serializer:json"`
	SlotsNeeded int
	Notes       string

	UpdatedBy string

	Version int
}

func fromTask(t model.Task) *Task {
	volunteers := t.Volunteers
	if volunteers == nil {
		volunteers = []string{}
	}

	var lead *string
	if t.HasLead() {
		lead = model.StringPtr(*t.Lead)
	}

	return &Task{
		ID:          string(t.ID),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		Day:         t.Day,
		Time:        t.Time,
		Section:     t.Section,
		Task:        t.Task,
		Lead:        lead,
		LeadOffered: t.LeadOffered,
		Volunteers:  append([]string{}, volunteers...),
		SlotsNeeded: t.SlotsNeeded,
		Notes:       t.Notes,
		UpdatedBy:   t.UpdatedBy,
		Version:     t.Version,
	}
}

func (t *Task) toModel() model.Task {
	task := model.Task{
		ID:          model.TaskID(t.ID),
		Day:         t.Day,
		Time:        t.Time,
		Section:     t.Section,
		Task:        t.Task,
		LeadOffered: t.LeadOffered,
		Volunteers:  append([]string{}, t.Volunteers...),
		SlotsNeeded: t.SlotsNeeded,
		Notes:       t.Notes,
		UpdatedBy:   t.UpdatedBy,
		UpdatedAt:   t.UpdatedAt,
		CreatedAt:   t.CreatedAt,
		Version:     t.Version,
	}

	if t.Lead != nil && *t.Lead != "" {
		task.Lead = model.StringPtr(*t.Lead)
	}

	return task
}
