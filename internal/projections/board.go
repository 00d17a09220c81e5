package projections

import "github.com/alexanderramin/cadence/internal/domain"

// BoardColumn is one kanban column: a status and the filtered tasks in it.
type BoardColumn struct {
	Status domain.TaskStatus
	Tasks  []domain.Task
}

// Board groups the visible tasks into the fixed status columns
// todo → in_progress → review → done. Every column is present even when
// empty, so the view's layout is stable.
func Board(s domain.Snapshot, f Filter) []BoardColumn {
	cols := make([]BoardColumn, len(domain.BoardColumns))
	index := make(map[domain.TaskStatus]int, len(cols))
	for i, status := range domain.BoardColumns {
		cols[i] = BoardColumn{Status: status}
		index[status] = i
	}
	for _, t := range VisibleTasks(s, f) {
		if i, ok := index[t.Status]; ok {
			cols[i].Tasks = append(cols[i].Tasks, t)
		}
	}
	return cols
}
