package domain

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectArchived  ProjectStatus = "archived"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskReview     TaskStatus = "review"
	TaskDone       TaskStatus = "done"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type LinkKind string

const (
	LinkFinishToStart  LinkKind = "finish_to_start"
	LinkStartToStart   LinkKind = "start_to_start"
	LinkFinishToFinish LinkKind = "finish_to_finish"
	LinkStartToFinish  LinkKind = "start_to_finish"
)

type ViewMode string

const (
	ViewGantt    ViewMode = "gantt"
	ViewBoard    ViewMode = "board"
	ViewCalendar ViewMode = "calendar"
	ViewList     ViewMode = "list"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"todo": true, "in_progress": true, "review": true, "done": true,
}

// ValidTaskPriorities is the canonical set of accepted task priority strings.
var ValidTaskPriorities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

// ValidViewModes is the canonical set of accepted view mode strings.
var ValidViewModes = map[string]bool{
	"gantt": true, "board": true, "calendar": true, "list": true,
}

// ValidProjectStatuses is the canonical set of accepted project status strings.
var ValidProjectStatuses = map[string]bool{
	"active": true, "completed": true, "archived": true,
}

// ValidLinkKinds is the canonical set of accepted dependency kind strings.
var ValidLinkKinds = map[string]bool{
	"finish_to_start": true, "start_to_start": true,
	"finish_to_finish": true, "start_to_finish": true,
}

// BoardColumns is the fixed column order used by the board projection.
var BoardColumns = []TaskStatus{TaskTodo, TaskInProgress, TaskReview, TaskDone}

// Zoom bounds for the gantt timeline.
const (
	ZoomMin = 10
	ZoomMax = 100
)
