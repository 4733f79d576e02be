package query

import (
	"strings"

	"github.com/bornholm/roster/internal/core/model"
)

type PersonMatch struct {
	Name string
	Role model.Role
	Task model.Task
}

type SearchResult struct {
	// Tasks whose name, lead or volunteers match the query
	Tasks []model.Task
	// People holds one entry per matching (person, role, task)
	People []PersonMatch
}

// MatchesTask reports whether the task name, lead or any volunteer contains
// the query, ignoring case. An empty query matches every task.
func MatchesTask(task model.Task, query string) bool {
	query = normalizeQuery(query)
	if query == "" {
		return true
	}

	if contains(task.Task, query) || contains(task.LeadName(), query) {
		return true
	}

	for _, v := range task.Volunteers {
		if contains(v, query) {
			return true
		}
	}

	return false
}

func Search(tasks []model.Task, query string) SearchResult {
	query = normalizeQuery(query)

	result := SearchResult{
		Tasks:  make([]model.Task, 0),
		People: make([]PersonMatch, 0),
	}

	for _, task := range tasks {
		if MatchesTask(task, query) {
			result.Tasks = append(result.Tasks, task)
		}

		if query == "" {
			continue
		}

		if task.HasLead() && contains(task.LeadName(), query) {
			result.People = append(result.People, PersonMatch{Name: task.LeadName(), Role: model.RoleLead, Task: task})
		}

		for _, v := range task.Volunteers {
			if contains(v, query) {
				result.People = append(result.People, PersonMatch{Name: v, Role: model.RoleVolunteer, Task: task})
			}
		}
	}

	return result
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func contains(s string, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}
