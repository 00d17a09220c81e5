package testutil

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/google/uuid"
)

// FixedNow is the reference time used by fixtures so tests are
// deterministic.
var FixedNow = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithProjectDates(start, end time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = &start
		p.EndDate = &end
	}
}

func WithProjectColor(c string) ProjectOption {
	return func(p *domain.Project) {
		p.Color = c
	}
}

func NewTestProject(name string, opts ...ProjectOption) domain.Project {
	p := domain.Project{
		ID:     uuid.New().String(),
		Name:   name,
		Color:  "#3b82f6",
		Status: domain.ProjectActive,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Section options
type SectionOption func(*domain.Section)

func WithSectionColor(c string) SectionOption {
	return func(s *domain.Section) {
		s.Color = c
	}
}

func NewTestSection(projectID, name string, opts ...SectionOption) domain.Section {
	s := domain.Section{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		Color:     "#10b981",
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Task options
type TaskOption func(*domain.Task)

func WithDates(start, end time.Time) TaskOption {
	return func(t *domain.Task) {
		t.StartDate = start
		t.EndDate = end
	}
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithPriority(p domain.TaskPriority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithProgress(n int) TaskOption {
	return func(t *domain.Task) {
		t.Progress = n
	}
}

func WithSection(projectID, sectionID string) TaskOption {
	return func(t *domain.Task) {
		t.ProjectID = projectID
		t.SectionID = sectionID
	}
}

func WithProject(projectID string) TaskOption {
	return func(t *domain.Task) {
		t.ProjectID = projectID
	}
}

func WithAssignees(ids ...string) TaskOption {
	return func(t *domain.Task) {
		t.Assignees = ids
	}
}

func WithDescription(d string) TaskOption {
	return func(t *domain.Task) {
		t.Description = d
	}
}

func NewTestTask(name string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:        uuid.New().String(),
		Name:      name,
		StartDate: FixedNow,
		EndDate:   FixedNow.AddDate(0, 0, 4),
		Status:    domain.TaskTodo,
		Priority:  domain.PriorityMedium,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func NewTestLink(sourceID, targetID string) domain.Link {
	return domain.Link{
		ID:           uuid.New().String(),
		SourceTaskID: sourceID,
		TargetTaskID: targetID,
		Kind:         domain.LinkFinishToStart,
	}
}

func NewTestUser(name string) domain.User {
	return domain.User{
		ID:    uuid.New().String(),
		Name:  name,
		Color: "#f59e0b",
	}
}
