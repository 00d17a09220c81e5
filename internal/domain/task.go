package domain

import (
	"slices"
	"time"
)

type Task struct {
	ID          string
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Status      TaskStatus
	Priority    TaskPriority
	Progress    int // 0-100
	ProjectID   string
	SectionID   string
	Assignees   []string
}

// HasValidDates reports whether the task's date range is ordered
// (StartDate on or before EndDate).
func (t *Task) HasValidDates() bool {
	return !t.StartDate.After(t.EndDate)
}

// DurationDays returns the inclusive number of days the task spans.
func (t *Task) DurationDays() int {
	if !t.HasValidDates() {
		return 0
	}
	return int(t.EndDate.Sub(t.StartDate).Hours()/24) + 1
}

// CoversDay reports whether day falls within the task's [start, end]
// range, comparing dates only.
func (t *Task) CoversDay(day time.Time) bool {
	d := DateOnly(day)
	return !d.Before(DateOnly(t.StartDate)) && !d.After(DateOnly(t.EndDate))
}

// AssignedTo reports whether userID appears in the assignee list.
func (t *Task) AssignedTo(userID string) bool {
	return slices.Contains(t.Assignees, userID)
}

// DateOnly truncates a time to midnight UTC, keeping only the calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
