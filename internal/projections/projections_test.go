package projections

import (
	"testing"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFilter_Match(t *testing.T) {
	task := testutil.NewTestTask("Write report",
		testutil.WithDescription("quarterly numbers"),
		testutil.WithAssignees("u1"))

	cases := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"zero filter", Filter{}, true},
		{"name substring", Filter{Search: "report"}, true},
		{"case insensitive", Filter{Search: "WRITE"}, true},
		{"description substring", Filter{Search: "quarterly"}, true},
		{"no match", Filter{Search: "unrelated"}, false},
		{"assignee match", Filter{AssigneeID: "u1"}, true},
		{"assignee miss", Filter{AssigneeID: "u2"}, false},
		{"both must pass", Filter{Search: "report", AssigneeID: "u2"}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.filter.Match(&task), tc.name)
	}
}

func TestBoard_GroupsByStatus(t *testing.T) {
	snap := domain.Snapshot{Tasks: []domain.Task{
		testutil.NewTestTask("A", testutil.WithStatus(domain.TaskTodo)),
		testutil.NewTestTask("B", testutil.WithStatus(domain.TaskDone)),
		testutil.NewTestTask("C", testutil.WithStatus(domain.TaskTodo)),
	}}

	cols := Board(snap, Filter{})
	require.Len(t, cols, 4)
	assert.Equal(t, domain.TaskTodo, cols[0].Status)
	assert.Len(t, cols[0].Tasks, 2)
	assert.Empty(t, cols[1].Tasks)
	assert.Empty(t, cols[2].Tasks)
	assert.Len(t, cols[3].Tasks, 1)
	assert.Equal(t, "B", cols[3].Tasks[0].Name)
}

func TestGantt_LanesAndSpan(t *testing.T) {
	p1 := testutil.NewTestProject("P1")
	snap := domain.Snapshot{
		Projects: []domain.Project{p1},
		Tasks: []domain.Task{
			testutil.NewTestTask("Late", testutil.WithProject(p1.ID),
				testutil.WithDates(day(2024, 2, 1), day(2024, 2, 10))),
			testutil.NewTestTask("Early", testutil.WithProject(p1.ID),
				testutil.WithDates(day(2024, 1, 10), day(2024, 1, 12))),
			testutil.NewTestTask("Orphan",
				testutil.WithDates(day(2024, 3, 1), day(2024, 3, 2))),
		},
	}

	chart := Gantt(snap, Filter{})
	require.Len(t, chart.Rows, 2)
	require.NotNil(t, chart.Rows[0].Project)
	assert.Equal(t, "Early", chart.Rows[0].Tasks[0].Name, "tasks sorted by start")
	assert.Nil(t, chart.Rows[1].Project, "unassigned lane trails")
	assert.Equal(t, day(2024, 1, 10), chart.Start)
	assert.Equal(t, day(2024, 3, 2), chart.End)
}

func TestCalendar_BucketsByDay(t *testing.T) {
	snap := domain.Snapshot{
		SelectedDate: day(2024, 1, 15),
		Tasks: []domain.Task{
			testutil.NewTestTask("Span", testutil.WithDates(day(2024, 1, 3), day(2024, 1, 5))),
			testutil.NewTestTask("Outside", testutil.WithDates(day(2024, 2, 1), day(2024, 2, 2))),
		},
	}

	month := Calendar(snap, Filter{})
	assert.Equal(t, 2024, month.Year)
	assert.Equal(t, time.January, month.Month)
	require.Len(t, month.Days, 31)

	// Multi-day task appears on each covered day, and only those.
	for _, cell := range month.Days {
		d := cell.Date.Day()
		if d >= 3 && d <= 5 {
			assert.Len(t, cell.Tasks, 1, "day %d", d)
		} else {
			assert.Empty(t, cell.Tasks, "day %d", d)
		}
	}
}

func TestList_SortedAndResolved(t *testing.T) {
	p1 := testutil.NewTestProject("Launch")
	s1 := testutil.NewTestSection(p1.ID, "Prep")
	snap := domain.Snapshot{
		Projects: []domain.Project{p1},
		Sections: []domain.Section{s1},
		Tasks: []domain.Task{
			testutil.NewTestTask("B", testutil.WithSection(p1.ID, s1.ID),
				testutil.WithDates(day(2024, 1, 2), day(2024, 1, 3))),
			testutil.NewTestTask("A",
				testutil.WithDates(day(2024, 1, 1), day(2024, 1, 2))),
		},
	}

	rows := List(snap, Filter{})
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Task.Name)
	assert.Empty(t, rows[0].ProjectName, "dangling reference resolves to empty")
	assert.Equal(t, "Launch", rows[1].ProjectName)
	assert.Equal(t, "Prep", rows[1].SectionName)
}

func TestProjections_FilterApplied(t *testing.T) {
	snap := domain.Snapshot{
		SelectedDate: day(2024, 1, 1),
		Tasks: []domain.Task{
			testutil.NewTestTask("keep", testutil.WithAssignees("u1")),
			testutil.NewTestTask("drop"),
		},
	}
	f := Filter{AssigneeID: "u1"}

	assert.Len(t, VisibleTasks(snap, f), 1)
	assert.Len(t, List(snap, f), 1)
	cols := Board(snap, f)
	total := 0
	for _, c := range cols {
		total += len(c.Tasks)
	}
	assert.Equal(t, 1, total)
}
