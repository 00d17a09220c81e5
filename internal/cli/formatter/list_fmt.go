package formatter

import (
	"github.com/alexanderramin/cadence/internal/projections"
)

// FormatList renders the flat task list view as a table.
func FormatList(rows []projections.ListRow) string {
	headers := []string{"ID", "TASK", "PROJECT", "SECTION", "STATUS", "PRIORITY", "DATES", "PROGRESS"}
	out := make([][]string, 0, len(rows))

	for _, r := range rows {
		project := r.ProjectName
		if project == "" {
			project = Dim("--")
		}
		section := r.SectionName
		if section == "" {
			section = Dim("--")
		}
		out = append(out, []string{
			TruncID(r.Task.ID),
			Bold(r.Task.Name),
			project,
			section,
			StatusPill(r.Task.Status),
			PriorityBadge(r.Task.Priority),
			FormatDateRange(r.Task.StartDate, r.Task.EndDate),
			RenderProgress(r.Task.Progress, 8),
		})
	}

	return RenderBox("Tasks", RenderTable(headers, out))
}
