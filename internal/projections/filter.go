// Package projections derives the four read-only views (gantt, board,
// calendar, list) from a snapshot. Projections never mutate state; they
// recompute from whatever snapshot the bus last broadcast.
package projections

import (
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
)

// Filter narrows the visible task set. Zero value matches everything.
type Filter struct {
	Search     string // case-insensitive substring over name and description
	AssigneeID string // empty means any assignee
}

// Match reports whether the task passes the filter.
func (f Filter) Match(t *domain.Task) bool {
	if f.AssigneeID != "" && !t.AssignedTo(f.AssigneeID) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Name), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) {
			return false
		}
	}
	return true
}

// VisibleTasks returns the tasks passing the filter, in snapshot order.
func VisibleTasks(s domain.Snapshot, f Filter) []domain.Task {
	var out []domain.Task
	for i := range s.Tasks {
		if f.Match(&s.Tasks[i]) {
			out = append(out, s.Tasks[i])
		}
	}
	return out
}
