package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/projections"
	"github.com/alexanderramin/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func viewFixture() domain.Snapshot {
	s := domain.DefaultSnapshot(testutil.FixedNow)
	p := testutil.NewTestProject("Website")
	s.Projects = []domain.Project{p}
	s.Tasks = []domain.Task{
		testutil.NewTestTask("Design mockups",
			testutil.WithProject(p.ID),
			testutil.WithDates(day(2), day(5)),
			testutil.WithStatus(domain.TaskInProgress),
			testutil.WithProgress(40)),
		testutil.NewTestTask("Write copy",
			testutil.WithProject(p.ID),
			testutil.WithDates(day(4), day(8)),
			testutil.WithStatus(domain.TaskTodo)),
	}
	return s
}

func TestFormatBoard_ShowsColumnsAndTasks(t *testing.T) {
	s := viewFixture()
	out := FormatBoard(projections.Board(s, projections.Filter{}))

	assert.Contains(t, out, "TODO")
	assert.Contains(t, out, "IN PROGRESS")
	assert.Contains(t, out, "REVIEW")
	assert.Contains(t, out, "DONE")
	assert.Contains(t, out, "Design mockups")
	assert.Contains(t, out, "Write copy")
}

func TestFormatGantt_LanesAndBars(t *testing.T) {
	s := viewFixture()
	out := FormatGantt(projections.Gantt(s, projections.Filter{}), s.ZoomLevel)

	assert.Contains(t, out, "Website")
	assert.Contains(t, out, "Design mockups")
	assert.Contains(t, out, "▓")
	assert.Contains(t, out, "2024-01-02")
	assert.Contains(t, out, "2024-01-08")
}

func TestFormatGantt_UnassignedLane(t *testing.T) {
	s := viewFixture()
	s.Tasks = append(s.Tasks, testutil.NewTestTask("Floating",
		testutil.WithDates(day(3), day(3))))

	out := FormatGantt(projections.Gantt(s, projections.Filter{}), s.ZoomLevel)
	assert.Contains(t, out, "Unassigned")
	assert.Contains(t, out, "Floating")
}

func TestFormatCalendar_MarksBusyDays(t *testing.T) {
	s := viewFixture()
	s.SelectedDate = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	out := FormatCalendar(projections.Calendar(s, projections.Filter{}), s.SelectedDate)
	assert.Contains(t, out, "JANUARY 2024")
	assert.Contains(t, out, "MON")
	// Jan 2 carries one task, Jan 4 carries two overlapping tasks.
	assert.Contains(t, out, "·1")
	assert.Contains(t, out, "·2")
}

func TestFormatList_ResolvesNames(t *testing.T) {
	s := viewFixture()
	out := FormatList(projections.List(s, projections.Filter{}))

	assert.Contains(t, out, "Design mockups")
	assert.Contains(t, out, "Website")
	assert.Contains(t, out, "2024-01-02")
}

func TestCharsPerDay_ZoomScale(t *testing.T) {
	assert.Equal(t, 1, charsPerDay(domain.ZoomMin))
	assert.Equal(t, 5, charsPerDay(domain.ZoomMax))
	assert.Equal(t, 1, charsPerDay(0))   // clamps low
	assert.Equal(t, 5, charsPerDay(999)) // clamps high
}
