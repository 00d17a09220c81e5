package projections

import (
	"sort"

	"github.com/alexanderramin/cadence/internal/domain"
)

// ListRow is one flat-list entry with owning project/section names
// resolved for display.
type ListRow struct {
	Task        domain.Task
	ProjectName string
	SectionName string
}

// List flattens the visible tasks into rows sorted by start date, then
// name. Dangling project/section references resolve to empty names.
func List(s domain.Snapshot, f Filter) []ListRow {
	tasks := VisibleTasks(s, f)
	sort.SliceStable(tasks, func(i, j int) bool {
		if !tasks[i].StartDate.Equal(tasks[j].StartDate) {
			return tasks[i].StartDate.Before(tasks[j].StartDate)
		}
		return tasks[i].Name < tasks[j].Name
	})

	rows := make([]ListRow, 0, len(tasks))
	for _, t := range tasks {
		row := ListRow{Task: t}
		if p := s.ProjectByID(t.ProjectID); p != nil {
			row.ProjectName = p.Name
		}
		if sec := s.SectionByID(t.SectionID); sec != nil {
			row.SectionName = sec.Name
		}
		rows = append(rows, row)
	}
	return rows
}
