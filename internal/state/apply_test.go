package state

import (
	"errors"
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

// requireValidation asserts err is a *ValidationError with the given code.
func requireValidation(t *testing.T, err error, code ValidationCode) {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, code, verr.Code)
}

func TestAddTask_UnderProjectAndSection(t *testing.T) {
	p1 := testutil.NewTestProject("P1")
	s1 := testutil.NewTestSection(p1.ID, "S1")

	snap := domain.Snapshot{Projects: []domain.Project{p1}, Sections: []domain.Section{s1}}
	task := testutil.NewTestTask("T1",
		testutil.WithSection(p1.ID, s1.ID),
		testutil.WithDates(day(2024, 1, 1), day(2024, 1, 5)),
	)

	next, err := Apply(snap, AddTask{Task: task})
	require.NoError(t, err)
	require.Len(t, next.Tasks, 1)
	assert.Equal(t, p1.ID, next.Tasks[0].ProjectID)
	assert.Equal(t, s1.ID, next.Tasks[0].SectionID)
}

func TestAddTask_EmptyNameRejected(t *testing.T) {
	snap := domain.Snapshot{}
	_, err := Apply(snap, AddTask{Task: testutil.NewTestTask("")})
	requireValidation(t, err, CodeEmptyName)
}

func TestAddTask_InvalidDateRangeRejected(t *testing.T) {
	snap := domain.Snapshot{Tasks: []domain.Task{testutil.NewTestTask("existing")}}

	bad := testutil.NewTestTask("T", testutil.WithDates(day(2024, 2, 10), day(2024, 2, 1)))
	next, err := Apply(snap, AddTask{Task: bad})
	requireValidation(t, err, CodeInvalidDateRange)
	assert.Contains(t, err.Error(), "invalid date range")
	assert.Equal(t, snap, next, "state must be unchanged on rejection")
}

func TestAddTask_UnknownProjectRejected(t *testing.T) {
	snap := domain.Snapshot{}
	task := testutil.NewTestTask("T", testutil.WithProject("nope"))
	_, err := Apply(snap, AddTask{Task: task})
	requireValidation(t, err, CodeUnknownProject)
}

func TestAddTask_SectionProjectMismatchRejected(t *testing.T) {
	p1 := testutil.NewTestProject("P1")
	p2 := testutil.NewTestProject("P2")
	s2 := testutil.NewTestSection(p2.ID, "S2")
	snap := domain.Snapshot{
		Projects: []domain.Project{p1, p2},
		Sections: []domain.Section{s2},
	}

	task := testutil.NewTestTask("T", testutil.WithSection(p1.ID, s2.ID))
	_, err := Apply(snap, AddTask{Task: task})
	requireValidation(t, err, CodeSectionProjectMismatch)
}

func TestAddTask_DefaultsAndClamp(t *testing.T) {
	task := testutil.NewTestTask("T", testutil.WithProgress(250))
	task.Status = ""
	task.Priority = ""

	next, err := Apply(domain.Snapshot{}, AddTask{Task: task})
	require.NoError(t, err)
	got := next.Tasks[0]
	assert.Equal(t, domain.TaskTodo, got.Status)
	assert.Equal(t, domain.PriorityMedium, got.Priority)
	assert.Equal(t, 100, got.Progress)
}

func TestAddProject_EmptyNameRejected(t *testing.T) {
	_, err := Apply(domain.Snapshot{}, AddProject{Project: domain.Project{ID: "p"}})
	requireValidation(t, err, CodeEmptyName)
}

func TestAddUser_EmptyNameRejected(t *testing.T) {
	_, err := Apply(domain.Snapshot{}, AddUser{User: domain.User{ID: "u"}})
	requireValidation(t, err, CodeEmptyName)

	next, err := Apply(domain.Snapshot{}, AddUser{User: testutil.NewTestUser("Dana")})
	require.NoError(t, err)
	require.Len(t, next.Users, 1)
}

func TestAddSection_RequiresExistingProject(t *testing.T) {
	sec := testutil.NewTestSection("missing", "S")
	_, err := Apply(domain.Snapshot{}, AddSection{Section: sec})
	requireValidation(t, err, CodeUnknownProject)
}

func TestAddLink_RequiresExistingEndpoints(t *testing.T) {
	t1 := testutil.NewTestTask("T1")
	snap := domain.Snapshot{Tasks: []domain.Task{t1}}

	_, err := Apply(snap, AddLink{Link: testutil.NewTestLink(t1.ID, "missing")})
	requireValidation(t, err, CodeUnknownTask)

	t2 := testutil.NewTestTask("T2")
	snap.Tasks = append(snap.Tasks, t2)
	next, err := Apply(snap, AddLink{Link: testutil.NewTestLink(t1.ID, t2.ID)})
	require.NoError(t, err)
	require.Len(t, next.Links, 1)
	assert.Equal(t, domain.LinkFinishToStart, next.Links[0].Kind)
}

func TestUpdateTask_ShallowMerge(t *testing.T) {
	task := testutil.NewTestTask("T1", testutil.WithDescription("keep me"))
	snap := domain.Snapshot{Tasks: []domain.Task{task}}

	name := "renamed"
	prio := domain.PriorityHigh
	next, err := Apply(snap, UpdateTask{ID: task.ID, Patch: TaskPatch{Name: &name, Priority: &prio}})
	require.NoError(t, err)
	got := next.Tasks[0]
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.Equal(t, "keep me", got.Description, "unpatched fields survive the merge")
}

func TestUpdateTask_UnknownIDNoOp(t *testing.T) {
	snap := domain.Snapshot{Tasks: []domain.Task{testutil.NewTestTask("T1")}}
	name := "x"
	next, err := Apply(snap, UpdateTask{ID: "missing", Patch: TaskPatch{Name: &name}})
	require.NoError(t, err)
	assert.Equal(t, snap, next)
}

func TestUpdateTask_RejectsReversedDates(t *testing.T) {
	task := testutil.NewTestTask("T1", testutil.WithDates(day(2024, 1, 1), day(2024, 1, 5)))
	snap := domain.Snapshot{Tasks: []domain.Task{task}}

	late := day(2024, 1, 10)
	next, err := Apply(snap, UpdateTask{ID: task.ID, Patch: TaskPatch{StartDate: &late}})
	requireValidation(t, err, CodeInvalidDateRange)
	assert.Equal(t, snap, next)
}

func TestUpdateTask_ProgressClamped(t *testing.T) {
	task := testutil.NewTestTask("T1")
	snap := domain.Snapshot{Tasks: []domain.Task{task}}

	for _, tc := range []struct{ in, want int }{{-10, 0}, {0, 0}, {55, 55}, {100, 100}, {150, 100}} {
		next, err := Apply(snap, UpdateTask{ID: task.ID, Patch: TaskPatch{Progress: &tc.in}})
		require.NoError(t, err)
		assert.Equal(t, tc.want, next.Tasks[0].Progress, "input %d", tc.in)
	}
}

func TestUpdateTaskStatus(t *testing.T) {
	task := testutil.NewTestTask("T1")
	snap := domain.Snapshot{Tasks: []domain.Task{task}}

	next, err := Apply(snap, UpdateTaskStatus{ID: task.ID, Status: domain.TaskDone})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskDone, next.Tasks[0].Status)

	same, err := Apply(snap, UpdateTaskStatus{ID: "missing", Status: domain.TaskDone})
	require.NoError(t, err)
	assert.Equal(t, snap, same)
}

func TestUpdateTaskDates_Rechecks(t *testing.T) {
	task := testutil.NewTestTask("T1")
	snap := domain.Snapshot{Tasks: []domain.Task{task}}

	next, err := Apply(snap, UpdateTaskDates{ID: task.ID, Start: day(2024, 3, 1), End: day(2024, 3, 8)})
	require.NoError(t, err)
	assert.Equal(t, day(2024, 3, 1), next.Tasks[0].StartDate)
	assert.Equal(t, day(2024, 3, 8), next.Tasks[0].EndDate)

	_, err = Apply(snap, UpdateTaskDates{ID: task.ID, Start: day(2024, 3, 8), End: day(2024, 3, 1)})
	requireValidation(t, err, CodeInvalidDateRange)
}

func TestSelectTask_SetAndClear(t *testing.T) {
	task := testutil.NewTestTask("T1")
	snap := domain.Snapshot{Tasks: []domain.Task{task}}

	next, err := Apply(snap, SelectTask{ID: task.ID})
	require.NoError(t, err)
	assert.Equal(t, task.ID, next.SelectedTaskID)

	cleared, err := Apply(next, SelectTask{ID: ""})
	require.NoError(t, err)
	assert.Empty(t, cleared.SelectedTaskID)

	// Unknown id is a no-op, not an error.
	same, err := Apply(snap, SelectTask{ID: "missing"})
	require.NoError(t, err)
	assert.Equal(t, snap, same)
}

func TestSetZoom_Clamped(t *testing.T) {
	for _, tc := range []struct{ in, want int }{{5, 10}, {10, 10}, {40, 40}, {100, 100}, {500, 100}} {
		next, err := Apply(domain.Snapshot{}, SetZoom{Level: tc.in})
		require.NoError(t, err)
		assert.Equal(t, tc.want, next.ZoomLevel, "input %d", tc.in)
	}
}

func TestSetView(t *testing.T) {
	next, err := Apply(domain.Snapshot{CurrentView: domain.ViewGantt}, SetView{View: domain.ViewBoard})
	require.NoError(t, err)
	assert.Equal(t, domain.ViewBoard, next.CurrentView)

	same, err := Apply(next, SetView{View: domain.ViewMode("spreadsheet")})
	require.NoError(t, err)
	assert.Equal(t, domain.ViewBoard, same.CurrentView, "invalid view modes are ignored")
}

func TestSetSelectedDate_NormalizedToDate(t *testing.T) {
	next, err := Apply(domain.Snapshot{}, SetSelectedDate{Date: time.Date(2024, 5, 20, 15, 4, 5, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, day(2024, 5, 20), next.SelectedDate)
}

func TestSetUsers_WholesaleReplacement(t *testing.T) {
	snap := domain.Snapshot{Users: []domain.User{testutil.NewTestUser("Old")}}
	roster := []domain.User{testutil.NewTestUser("Ada"), testutil.NewTestUser("Grace")}

	next, err := Apply(snap, SetUsers{Users: roster})
	require.NoError(t, err)
	require.Len(t, next.Users, 2)
	assert.Equal(t, "Ada", next.Users[0].Name)
}

func TestSetState_ReplacesEverything(t *testing.T) {
	incoming := domain.Snapshot{
		Tasks:       []domain.Task{testutil.NewTestTask("T")},
		CurrentView: domain.ViewCalendar,
		ZoomLevel:   70,
	}
	next, err := Apply(domain.DefaultSnapshot(testutil.FixedNow), SetState{State: incoming})
	require.NoError(t, err)
	assert.Equal(t, incoming, next)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	task := testutil.NewTestTask("T1", testutil.WithAssignees("u1"))
	snap := domain.Snapshot{Tasks: []domain.Task{task}}
	want := snap.Clone()

	name := "changed"
	users := []string{"u2", "u3"}
	_, err := Apply(snap, UpdateTask{ID: task.ID, Patch: TaskPatch{Name: &name, Assignees: &users}})
	require.NoError(t, err)
	assert.Equal(t, want, snap, "input snapshot must not be mutated")
}

func TestValidationError_ErrorsAs(t *testing.T) {
	_, err := Apply(domain.Snapshot{}, AddTask{Task: testutil.NewTestTask("")})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}
