package query

import (
	"github.com/bornholm/roster/internal/core/model"
)

type Counts struct {
	Tasks     int
	Positions int
	Filled    int
}

// Open returns the number of positions still to fill.
func (c Counts) Open() int {
	return c.Positions - c.Filled
}

// PercentFilled returns the filled ratio as a rounded percentage.
func (c Counts) PercentFilled() int {
	if c.Positions == 0 {
		return 0
	}

	return (c.Filled*100 + c.Positions/2) / c.Positions
}

func (c *Counts) add(task model.Task) {
	filled, total := task.Positions()
	c.Tasks++
	c.Filled += filled
	c.Positions += total
}

type DaySummary struct {
	Day string
	Counts
}

type Summary struct {
	Counts
	Days []DaySummary
}

// Summarize counts filled and total positions, lead positions included,
// over the whole event and per day.
func Summarize(tasks []model.Task, funcs ...OptionFunc) Summary {
	schedule := GroupByDayAndSection(tasks, funcs...)

	summary := Summary{
		Days: make([]DaySummary, 0, len(schedule.Days)),
	}

	for _, day := range schedule.Days {
		daySummary := DaySummary{Day: day.Day}

		for _, group := range [][]model.Task{day.Tasks, day.Master, day.Extras} {
			for _, t := range group {
				daySummary.add(t)
				summary.add(t)
			}
		}

		summary.Days = append(summary.Days, daySummary)
	}

	return summary
}
