package task

import (
	"fmt"
	"io"
	"strings"

	"github.com/bornholm/roster/internal/http/handler/api"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	openStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	fullStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func renderTasks(w io.Writer, tasks []*api.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No task.")
		return
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "DAY", "TIME", "SECTION", "TASK", "LEAD", "VOLUNTEERS", "SLOTS", "UPDATED")

	for _, t := range tasks {
		filled, total := t.ToModel().Positions()

		slots := fmt.Sprintf("%d/%d", filled, total)
		if filled < total {
			slots = openStyle.Render(slots)
		} else {
			slots = fullStyle.Render(slots)
		}

		updated := ""
		if !t.UpdatedAt.IsZero() {
			updated = fmt.Sprintf("%s by %s", humanize.Time(t.UpdatedAt), t.UpdatedBy)
		}

		tbl.Row(
			string(t.ID),
			t.Day,
			t.Time,
			t.Section,
			t.Task,
			t.ToModel().LeadName(),
			strings.Join(t.Volunteers, ", "),
			slots,
			updated,
		)
	}

	fmt.Fprintln(w, tbl.Render())
}

func renderTask(w io.Writer, t *api.Task) {
	filled, total := t.ToModel().Positions()

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s (%s)", t.Task, t.ID)))
	fmt.Fprintf(w, "  when:       %s %s\n", t.Day, t.Time)
	fmt.Fprintf(w, "  section:    %s\n", t.Section)
	fmt.Fprintf(w, "  lead:       %s\n", t.ToModel().LeadName())
	fmt.Fprintf(w, "  volunteers: %s\n", strings.Join(t.Volunteers, ", "))
	fmt.Fprintf(w, "  positions:  %d/%d\n", filled, total)
	if t.Notes != "" {
		fmt.Fprintf(w, "  notes:      %s\n", t.Notes)
	}
	fmt.Fprintf(w, "  version:    %d, updated %s by %s\n", t.Version, humanize.Time(t.UpdatedAt), t.UpdatedBy)
}

func renderPeople(w io.Writer, people []*api.PersonMatch) {
	if len(people) == 0 {
		return
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "ROLE", "TASK", "DAY", "TIME")

	for _, p := range people {
		tbl.Row(p.Name, string(p.Role), p.Task, p.Day, p.Time)
	}

	fmt.Fprintln(w, tbl.Render())
}

func renderSchedule(w io.Writer, schedule *api.ScheduleResponse) {
	for _, day := range schedule.Days {
		fmt.Fprintln(w, titleStyle.Render(day.Day))

		renderTasks(w, append(append([]*api.Task{}, day.Tasks...), day.Master...))

		if len(day.Extras) > 0 {
			fmt.Fprintln(w, titleStyle.Render(day.Day+" extras"))
			renderTasks(w, day.Extras)
		}
	}
}

func renderSummary(w io.Writer, summary *api.SummaryResponse) {
	fmt.Fprintln(w, titleStyle.Render("Event"))
	renderCounts(w, summary.Counts)

	for _, day := range summary.Days {
		fmt.Fprintln(w, titleStyle.Render(day.Day))
		renderCounts(w, day.Counts)
	}
}

func renderCounts(w io.Writer, c api.Counts) {
	fmt.Fprintf(w, "  tasks:     %s\n", humanize.Comma(int64(c.Tasks)))
	fmt.Fprintf(w, "  positions: %s\n", humanize.Comma(int64(c.Positions)))
	fmt.Fprintf(w, "  filled:    %s (%d%%)\n", humanize.Comma(int64(c.Filled)), c.PercentFilled)
	fmt.Fprintf(w, "  open:      %s\n", humanize.Comma(int64(c.Open)))
}
