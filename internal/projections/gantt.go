package projections

import (
	"sort"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// GanttRow is one timeline lane: a project (nil for unassigned tasks)
// and its tasks sorted by start date.
type GanttRow struct {
	Project *domain.Project
	Tasks   []domain.Task
}

// GanttChart is the timeline view: project lanes plus the overall span
// covered by the visible tasks.
type GanttChart struct {
	Rows  []GanttRow
	Start time.Time
	End   time.Time
}

// Gantt builds the timeline projection. Projects keep snapshot order;
// tasks without a project collect into a trailing unassigned lane.
func Gantt(s domain.Snapshot, f Filter) GanttChart {
	visible := VisibleTasks(s, f)

	byProject := make(map[string][]domain.Task)
	var unassigned []domain.Task
	for _, t := range visible {
		if t.ProjectID == "" {
			unassigned = append(unassigned, t)
			continue
		}
		byProject[t.ProjectID] = append(byProject[t.ProjectID], t)
	}

	var chart GanttChart
	for i := range s.Projects {
		p := s.Projects[i]
		tasks := byProject[p.ID]
		sortByStart(tasks)
		chart.Rows = append(chart.Rows, GanttRow{Project: &p, Tasks: tasks})
	}
	if len(unassigned) > 0 {
		sortByStart(unassigned)
		chart.Rows = append(chart.Rows, GanttRow{Tasks: unassigned})
	}

	for i, t := range visible {
		if i == 0 || t.StartDate.Before(chart.Start) {
			chart.Start = t.StartDate
		}
		if i == 0 || t.EndDate.After(chart.End) {
			chart.End = t.EndDate
		}
	}
	return chart
}

func sortByStart(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if !tasks[i].StartDate.Equal(tasks[j].StartDate) {
			return tasks[i].StartDate.Before(tasks[j].StartDate)
		}
		return tasks[i].Name < tasks[j].Name
	})
}
