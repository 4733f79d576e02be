package assignment

import (
	"github.com/bornholm/roster/internal/core/model"
)

// Validate checks that task satisfies every assignment invariant.
func Validate(task model.Task) error {
	if task.SlotsNeeded < 0 {
		return newError(KindInvalidTask, "slots needed can not be negative (%d)", task.SlotsNeeded)
	}

	if len(task.Volunteers) > task.SlotsNeeded {
		return newError(KindInvalidTask, "%d volunteers for %d slots", len(task.Volunteers), task.SlotsNeeded)
	}

	if task.Lead != nil {
		if _, err := checkStoredName(*task.Lead); err != nil {
			return err
		}
	}

	for i, v := range task.Volunteers {
		if _, err := checkStoredName(v); err != nil {
			return err
		}

		for _, other := range task.Volunteers[:i] {
			if SamePerson(v, other) {
				return newError(KindDuplicateVolunteer, "%s is listed more than once", v)
			}
		}
	}

	return nil
}

func checkStoredName(name string) (string, error) {
	normalized, err := NormalizeName(name)
	if err != nil {
		return "", err
	}

	if normalized != name {
		return "", newError(KindInvalidTask, "name '%s' has surrounding spaces", name)
	}

	return normalized, nil
}
