package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/projections"
)

const ganttLabelWidth = 22

// FormatGantt renders the timeline view as text: one lane per project,
// one bar row per task. The zoom level sets how many characters a day
// occupies on the timeline.
func FormatGantt(chart projections.GanttChart, zoom int) string {
	perDay := charsPerDay(zoom)

	var b strings.Builder
	if !chart.Start.IsZero() {
		fmt.Fprintf(&b, "%s %s %s\n\n",
			Dim(chart.Start.Format("2006-01-02")),
			Dim("…"),
			Dim(chart.End.Format("2006-01-02")))
	}

	for _, row := range chart.Rows {
		lane := "Unassigned"
		if row.Project != nil {
			lane = row.Project.Name
		}
		b.WriteString(StyleHeader.Render(lane) + "\n")

		if len(row.Tasks) == 0 {
			b.WriteString("  " + Dim("no tasks") + "\n")
		}
		for _, t := range row.Tasks {
			b.WriteString("  " + ganttBar(t, chart, perDay) + "\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func ganttBar(t domain.Task, chart projections.GanttChart, perDay int) string {
	name := t.Name
	if len(name) > ganttLabelWidth {
		name = name[:ganttLabelWidth-1] + "…"
	}
	label := fmt.Sprintf("%-*s", ganttLabelWidth, name)

	offsetDays := int(domain.DateOnly(t.StartDate).Sub(domain.DateOnly(chart.Start)).Hours() / 24)
	if offsetDays < 0 {
		offsetDays = 0
	}
	length := t.DurationDays() * perDay
	if length < 1 {
		length = 1
	}

	bar := strings.Repeat(" ", offsetDays*perDay) +
		StatusColor(t.Status).Render(strings.Repeat("▓", length))
	return label + " " + bar
}

// charsPerDay maps the zoom level (10-100) onto a 1-5 character day width.
func charsPerDay(zoom int) int {
	if zoom < domain.ZoomMin {
		zoom = domain.ZoomMin
	}
	if zoom > domain.ZoomMax {
		zoom = domain.ZoomMax
	}
	return 1 + (zoom-domain.ZoomMin)*4/(domain.ZoomMax-domain.ZoomMin)
}
