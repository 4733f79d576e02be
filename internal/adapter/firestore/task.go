package firestore

import (
	"time"

	"github.com/bornholm/roster/internal/core/model"
)

type taskDocument struct {
	Day         string    `firestore:"day"`
	Time        string    `firestore:"time"`
	Section     string    `firestore:"section"`
	Task        string    `firestore:"task"`
	Lead        *string   `firestore:"lead"`
	LeadOffered bool      `firestore:"leadOffered"`
	Volunteers  []string  `firestore:"volunteers"`
	SlotsNeeded int       `firestore:"slotsNeeded"`
	Notes       string    `firestore:"notes"`
	UpdatedBy   string    `firestore:"updatedBy"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
	CreatedAt   time.Time `firestore:"createdAt"`
	Version     int       `firestore:"version"`
}

func fromTask(t model.Task) taskDocument {
	doc := taskDocument{
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

	if t.HasLead() {
		doc.Lead = model.StringPtr(*t.Lead)
	}

	return doc
}

func (d taskDocument) toModel(id string) model.Task {
	task := model.Task{
		ID:          model.TaskID(id),
		Day:         d.Day,
		Time:        d.Time,
		Section:     d.Section,
		Task:        d.Task,
		LeadOffered: d.LeadOffered,
		Volunteers:  append([]string{}, d.Volunteers...),
		SlotsNeeded: d.SlotsNeeded,
		Notes:       d.Notes,
		UpdatedBy:   d.UpdatedBy,
		UpdatedAt:   d.UpdatedAt,
		CreatedAt:   d.CreatedAt,
		Version:     d.Version,
	}

	if d.Lead != nil && *d.Lead != "" {
		task.Lead = model.StringPtr(*d.Lead)
	}

	return task
}
