package mcp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bornholm/roster/internal/core/model"
	"github.com/bornholm/roster/internal/core/query"
	"github.com/mark3labs/mcp-go/mcp"
)

func formatTasks(tasks []model.Task) []mcp.Content {
	content := make([]mcp.Content, 0, len(tasks))
	for _, t := range tasks {
		content = append(content, formatTask(t))
	}

	return content
}

func formatTask(task model.Task) mcp.Content {
	var sb strings.Builder

	sb.WriteString("# Task ")
	sb.WriteString(task.Task)
	sb.WriteString("\n\n")

	sb.WriteString("**ID:** ")
	sb.WriteString(string(task.ID))
	sb.WriteString("\n\n")

	sb.WriteString("**When:** ")
	sb.WriteString(task.Day)
	if task.Time != "" {
		sb.WriteString(", ")
		sb.WriteString(task.Time)
	}
	sb.WriteString("\n\n")

	sb.WriteString("**Section:** ")
	sb.WriteString(task.Section)
	sb.WriteString("\n\n")

	switch {
	case task.HasLead():
		sb.WriteString("**Lead:** ")
		sb.WriteString(task.LeadName())
		sb.WriteString("\n\n")
	case task.LeadOffered:
		sb.WriteString("**Lead:** open\n\n")
	}

	sb.WriteString("**Volunteers:** ")
	if len(task.Volunteers) == 0 {
		sb.WriteString("none")
	} else {
		sb.WriteString(strings.Join(task.Volunteers, ", "))
	}
	sb.WriteString(" (")
	sb.WriteString(strconv.Itoa(len(task.Volunteers)))
	sb.WriteString("/")
	sb.WriteString(strconv.Itoa(task.SlotsNeeded))
	sb.WriteString(")\n\n")

	if task.Notes != "" {
		sb.WriteString("**Notes:**\n")
		sb.WriteString(task.Notes)
		sb.WriteString("\n")
	}

	return mcp.TextContent{
		Type: "text",
		Text: sb.String(),
	}
}

func formatPeople(people []query.PersonMatch) mcp.Content {
	var sb strings.Builder

	sb.WriteString("# People\n\n")

	for _, p := range people {
		fmt.Fprintf(&sb, "- %s, %s of '%s' (%s %s, ID %s)\n", p.Name, p.Role, p.Task.Task, p.Task.Day, p.Task.Time, p.Task.ID)
	}

	return mcp.TextContent{
		Type: "text",
		Text: sb.String(),
	}
}

func formatSummary(summary query.Summary) mcp.Content {
	var sb strings.Builder

	sb.WriteString("# Summary\n\n")
	writeCounts(&sb, "Event", summary.Counts)

	for _, d := range summary.Days {
		writeCounts(&sb, d.Day, d.Counts)
	}

	return mcp.TextContent{
		Type: "text",
		Text: sb.String(),
	}
}

func writeCounts(sb *strings.Builder, label string, c query.Counts) {
	fmt.Fprintf(sb, "- **%s:** %d/%d positions filled (%d%%), %d open over %d tasks\n",
		label, c.Filled, c.Positions, c.PercentFilled(), c.Open(), c.Tasks)
}
