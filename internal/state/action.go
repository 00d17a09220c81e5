package state

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// Action is one typed mutation or selection-change message. The set is
// closed: every action is declared in this file and handled by Apply.
// Dialog and CLI collaborators build actions; nothing else mutates state.
type Action interface {
	// Name returns the wire name of the action (e.g. "ADD_TASK"),
	// used by observers and the action log.
	Name() string
}

// Bulk replacement actions. Used for hydration and for wholesale external
// updates such as a team-roster editor submitting a full users list.
// No validation beyond type shape; the caller is trusted.

type SetState struct{ State domain.Snapshot }

type SetTasks struct{ Tasks []domain.Task }

type SetProjects struct{ Projects []domain.Project }

type SetSections struct{ Sections []domain.Section }

type SetLinks struct{ Links []domain.Link }

type SetUsers struct{ Users []domain.User }

// Add actions insert a new entity with a caller-supplied unique id.

type AddTask struct{ Task domain.Task }

type AddProject struct{ Project domain.Project }

type AddSection struct{ Section domain.Section }

type AddLink struct{ Link domain.Link }

type AddUser struct{ User domain.User }

// Update actions shallow-merge a partial patch into the entity matched by
// id. An unknown id is a silent no-op.

type TaskPatch struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	Progress    *int
	ProjectID   *string
	SectionID   *string
	Assignees   *[]string
}

type ProjectPatch struct {
	Name      *string
	Color     *string
	Status    *domain.ProjectStatus
	StartDate **time.Time
	EndDate   **time.Time
}

type SectionPatch struct {
	Name  *string
	Color *string
}

type UserPatch struct {
	Name   *string
	Color  *string
	Avatar *string
}

type UpdateTask struct {
	ID    string
	Patch TaskPatch
}

type UpdateProject struct {
	ID    string
	Patch ProjectPatch
}

type UpdateSection struct {
	ID    string
	Patch SectionPatch
}

type UpdateUser struct {
	ID    string
	Patch UserPatch
}

type UpdateTaskStatus struct {
	ID     string
	Status domain.TaskStatus
}

type UpdateTaskDates struct {
	ID    string
	Start time.Time
	End   time.Time
}

// Delete actions remove the entity by id and cascade per the rules in
// cascade.go.

type DeleteTask struct{ ID string }

type DeleteProject struct{ ID string }

type DeleteSection struct{ ID string }

type DeleteLink struct{ ID string }

type DeleteUser struct{ ID string }

// Selection and view actions assign into the selection/view fields.
// An empty id clears the corresponding selection.

type SelectTask struct{ ID string }

type SelectProject struct{ ID string }

type SelectSection struct{ ID string }

type SetView struct{ View domain.ViewMode }

type SetZoom struct{ Level int }

type SetSelectedDate struct{ Date time.Time }

func (SetState) Name() string         { return "SET_STATE" }
func (SetTasks) Name() string         { return "SET_TASKS" }
func (SetProjects) Name() string      { return "SET_PROJECTS" }
func (SetSections) Name() string      { return "SET_SECTIONS" }
func (SetLinks) Name() string         { return "SET_LINKS" }
func (SetUsers) Name() string         { return "SET_USERS" }
func (AddTask) Name() string          { return "ADD_TASK" }
func (AddProject) Name() string       { return "ADD_PROJECT" }
func (AddSection) Name() string       { return "ADD_SECTION" }
func (AddLink) Name() string          { return "ADD_LINK" }
func (AddUser) Name() string          { return "ADD_USER" }
func (UpdateTask) Name() string       { return "UPDATE_TASK" }
func (UpdateProject) Name() string    { return "UPDATE_PROJECT" }
func (UpdateSection) Name() string    { return "UPDATE_SECTION" }
func (UpdateUser) Name() string       { return "UPDATE_USER" }
func (UpdateTaskStatus) Name() string { return "UPDATE_TASK_STATUS" }
func (UpdateTaskDates) Name() string  { return "UPDATE_TASK_DATES" }
func (DeleteTask) Name() string       { return "DELETE_TASK" }
func (DeleteProject) Name() string    { return "DELETE_PROJECT" }
func (DeleteSection) Name() string    { return "DELETE_SECTION" }
func (DeleteLink) Name() string       { return "DELETE_LINK" }
func (DeleteUser) Name() string       { return "DELETE_USER" }
func (SelectTask) Name() string       { return "SELECT_TASK" }
func (SelectProject) Name() string    { return "SELECT_PROJECT" }
func (SelectSection) Name() string    { return "SELECT_SECTION" }
func (SetView) Name() string          { return "SET_VIEW" }
func (SetZoom) Name() string          { return "SET_ZOOM" }
func (SetSelectedDate) Name() string  { return "SET_SELECTED_DATE" }
