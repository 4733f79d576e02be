package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/bornholm/roster/internal/core/model"
)

const unknownTime = 24 * 60

// Sort returns a copy of the tasks ordered by time of day. Tasks of the
// master section sharing the same time are ordered turkey entries first, then
// by task name. Other ties keep their input order.
func Sort(tasks []model.Task, funcs ...OptionFunc) []model.Task {
	opts := NewOptions(funcs...)

	sorted := slices.Clone(tasks)

	slices.SortStableFunc(sorted, func(a, b model.Task) int {
		return cmp.Compare(minutesOf(a), minutesOf(b))
	})

	// Reorder master entries among the slots they already occupy in each run
	// of equal times, leaving other sections in place.
	for start := 0; start < len(sorted); {
		end := start + 1
		for end < len(sorted) && minutesOf(sorted[end]) == minutesOf(sorted[start]) {
			end++
		}

		positions := make([]int, 0)
		entries := make([]model.Task, 0)
		for i := start; i < end; i++ {
			if sorted[i].Section == opts.MasterSection {
				positions = append(positions, i)
				entries = append(entries, sorted[i])
			}
		}

		if len(entries) > 1 {
			entries = SortMasterSection(entries)
			for i, pos := range positions {
				sorted[pos] = entries[i]
			}
		}

		start = end
	}

	return sorted
}

// SortMasterSection orders the master section entries turkey first, then by
// task name, ignoring time.
func SortMasterSection(tasks []model.Task) []model.Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, compareMasterEntries)
	return sorted
}

func compareMasterEntries(a, b model.Task) int {
	aIsTurkey, bIsTurkey := isTurkey(a), isTurkey(b)

	switch {
	case aIsTurkey && !bIsTurkey:
		return -1
	case !aIsTurkey && bIsTurkey:
		return 1
	}

	return strings.Compare(a.Task, b.Task)
}

func isTurkey(task model.Task) bool {
	return strings.Contains(strings.ToLower(task.Task), "turkey")
}

func minutesOf(task model.Task) int {
	minutes, ok := ParseTime(task.Time)
	if !ok {
		return unknownTime
	}

	return minutes
}
