package api

import (
	"time"

	"github.com/bornholm/roster/internal/core/model"
	"github.com/bornholm/roster/internal/core/query"
)

type Task struct {
	ID          model.TaskID `json:"id"`
	Day         string       `json:"day"`
	Time        string       `json:"time"`
	Section     string       `json:"section"`
	Task        string       `json:"task"`
	Lead        *string      `json:"lead"`
	LeadOffered bool         `json:"leadOffered"`
	Volunteers  []string     `json:"volunteers"`
	SlotsNeeded int          `json:"slotsNeeded"`
	Notes       string       `json:"notes"`
	UpdatedBy   string       `json:"updatedBy"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	CreatedAt   time.Time    `json:"createdAt"`
	Version     int          `json:"version"`
}

func fromTask(t model.Task) *Task {
	volunteers := t.Volunteers
	if volunteers == nil {
		volunteers = []string{}
	}

	return &Task{
		ID:          t.ID,
		Day:         t.Day,
		Time:        t.Time,
		Section:     t.Section,
		Task:        t.Task,
		Lead:        t.Lead,
		LeadOffered: t.LeadOffered,
		Volunteers:  volunteers,
		SlotsNeeded: t.SlotsNeeded,
		Notes:       t.Notes,
		UpdatedBy:   t.UpdatedBy,
		UpdatedAt:   t.UpdatedAt,
		CreatedAt:   t.CreatedAt,
		Version:     t.Version,
	}
}

// ToModel converts the transport representation back to a task.
func (t *Task) ToModel() model.Task {
	task := model.Task{
		ID:          t.ID,
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

func fromTasks(tasks []model.Task) []*Task {
	results := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		results = append(results, fromTask(t))
	}
	return results
}

type ListTasksResponse struct {
	Tasks []*Task `json:"tasks"`
}

type TaskResponse struct {
	Task *Task `json:"task"`
}

type CreateTaskRequest struct {
	Task        string   `json:"task"`
	Day         string   `json:"day"`
	Time        string   `json:"time"`
	Section     string   `json:"section"`
	Lead        *string  `json:"lead,omitempty"`
	LeadOffered bool     `json:"leadOffered,omitempty"`
	Volunteers  []string `json:"volunteers,omitempty"`
	SlotsNeeded *int     `json:"slotsNeeded,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	UpdatedBy   string   `json:"updatedBy"`
}

type UpdateTaskRequest struct {
	// ID is only read when the update is posted on the collection
	ID          model.TaskID `json:"id,omitempty"`
	Lead        *string      `json:"lead,omitempty"`
	Volunteers  []string     `json:"volunteers"`
	SlotsNeeded *int         `json:"slotsNeeded,omitempty"`
	Notes       *string      `json:"notes,omitempty"`
	UpdatedBy   string       `json:"updatedBy"`
	Version     *int         `json:"version,omitempty"`
}

type AssignPersonRequest struct {
	Name      string `json:"name"`
	AsLead    bool   `json:"asLead"`
	UpdatedBy string `json:"updatedBy"`
}

type RemovePersonRequest struct {
	Name      string `json:"name"`
	UpdatedBy string `json:"updatedBy"`
}

type AddSlotRequest struct {
	UpdatedBy string `json:"updatedBy"`
}

type PersonMatch struct {
	Name   string       `json:"name"`
	Role   model.Role   `json:"role"`
	TaskID model.TaskID `json:"taskId"`
	Task   string       `json:"task"`
	Day    string       `json:"day"`
	Time   string       `json:"time"`
}

type SearchResponse struct {
	Tasks  []*Task        `json:"tasks"`
	People []*PersonMatch `json:"people"`
}

func fromSearchResult(result query.SearchResult) SearchResponse {
	people := make([]*PersonMatch, 0, len(result.People))
	for _, p := range result.People {
		people = append(people, &PersonMatch{
			Name:   p.Name,
			Role:   p.Role,
			TaskID: p.Task.ID,
			Task:   p.Task.Task,
			Day:    p.Task.Day,
			Time:   p.Task.Time,
		})
	}

	return SearchResponse{
		Tasks:  fromTasks(result.Tasks),
		People: people,
	}
}

type DaySchedule struct {
	Day    string  `json:"day"`
	Tasks  []*Task `json:"tasks"`
	Master []*Task `json:"master"`
	Extras []*Task `json:"extras"`
}

type ScheduleResponse struct {
	Days []*DaySchedule `json:"days"`
}

func fromSchedule(schedule query.Schedule) ScheduleResponse {
	days := make([]*DaySchedule, 0, len(schedule.Days))
	for _, d := range schedule.Days {
		days = append(days, &DaySchedule{
			Day:    d.Day,
			Tasks:  fromTasks(d.Tasks),
			Master: fromTasks(d.Master),
			Extras: fromTasks(d.Extras),
		})
	}

	return ScheduleResponse{Days: days}
}

type Counts struct {
	Tasks         int `json:"tasks"`
	Positions     int `json:"positions"`
	Filled        int `json:"filled"`
	Open          int `json:"open"`
	PercentFilled int `json:"percentFilled"`
}

func fromCounts(c query.Counts) Counts {
	return Counts{
		Tasks:         c.Tasks,
		Positions:     c.Positions,
		Filled:        c.Filled,
		Open:          c.Open(),
		PercentFilled: c.PercentFilled(),
	}
}

type DaySummary struct {
	Day string `json:"day"`
	Counts
}

type SummaryResponse struct {
	Counts
	Days []*DaySummary `json:"days"`
}

func fromSummary(summary query.Summary) SummaryResponse {
	days := make([]*DaySummary, 0, len(summary.Days))
	for _, d := range summary.Days {
		days = append(days, &DaySummary{
			Day:    d.Day,
			Counts: fromCounts(d.Counts),
		})
	}

	return SummaryResponse{
		Counts: fromCounts(summary.Counts),
		Days:   days,
	}
}
