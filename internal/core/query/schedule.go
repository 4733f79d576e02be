package query

import (
	"slices"

	"github.com/bornholm/roster/internal/core/model"
)

type DaySchedule struct {
	Day string
	// Tasks holds the regular tasks of the day ordered by time
	Tasks []model.Task
	// Master holds the master section entries, turkey first
	Master []model.Task
	// Extras holds the extras section entries ordered by time
	Extras []model.Task
}

type Schedule struct {
	Days []DaySchedule
}

// GroupByDayAndSection buckets the tasks per day, separating the master and
// extras sections from the regular tasks. Configured days come first in their
// configured order, other days follow alphabetically.
func GroupByDayAndSection(tasks []model.Task, funcs ...OptionFunc) Schedule {
	opts := NewOptions(funcs...)

	byDay := make(map[string][]model.Task)
	for _, t := range tasks {
		byDay[t.Day] = append(byDay[t.Day], t)
	}

	days := make([]string, 0, len(byDay))
	for _, d := range opts.Days {
		if _, exists := byDay[d]; exists && !slices.Contains(days, d) {
			days = append(days, d)
		}
	}

	others := make([]string, 0)
	for d := range byDay {
		if !slices.Contains(days, d) {
			others = append(others, d)
		}
	}
	slices.Sort(others)
	days = append(days, others...)

	schedule := Schedule{
		Days: make([]DaySchedule, 0, len(days)),
	}

	for _, d := range days {
		day := DaySchedule{
			Day:    d,
			Tasks:  make([]model.Task, 0),
			Master: make([]model.Task, 0),
			Extras: make([]model.Task, 0),
		}

		for _, t := range byDay[d] {
			switch t.Section {
			case opts.ExtrasSection:
				day.Extras = append(day.Extras, t)
			case opts.MasterSection:
				day.Master = append(day.Master, t)
			default:
				day.Tasks = append(day.Tasks, t)
			}
		}

		day.Tasks = Sort(day.Tasks, funcs...)
		day.Master = SortMasterSection(day.Master)
		day.Extras = Sort(day.Extras, funcs...)

		schedule.Days = append(schedule.Days, day)
	}

	return schedule
}
