package query

import (
	"github.com/bornholm/roster/internal/core/model"
)

// FilterUnfilled keeps the tasks with at least one open lead or volunteer position.
func FilterUnfilled(tasks []model.Task) []model.Task {
	unfilled := make([]model.Task, 0)
	for _, t := range tasks {
		if filled, total := t.Positions(); filled < total {
			unfilled = append(unfilled, t)
		}
	}
	return unfilled
}

// Filter keeps the tasks matching the query and, if unfilledOnly is set, having open positions.
func Filter(tasks []model.Task, query string, unfilledOnly bool) []model.Task {
	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !MatchesTask(t, query) {
			continue
		}

		if unfilledOnly {
			if filled, total := t.Positions(); filled >= total {
				continue
			}
		}

		filtered = append(filtered, t)
	}
	return filtered
}
