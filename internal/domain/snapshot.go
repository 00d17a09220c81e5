package domain

import (
	"slices"
	"time"
)

// Snapshot is the complete in-memory state: every entity collection plus
// the selection/view fields all views observe. It is treated as a value:
// the transition function returns a new Snapshot and never mutates the
// one it was given.
type Snapshot struct {
	Tasks    []Task
	Links    []Link
	Projects []Project
	Sections []Section
	Users    []User

	CurrentView       ViewMode
	SelectedTaskID    string
	SelectedProjectID string
	SelectedSectionID string
	SelectedDate      time.Time
	ZoomLevel         int
}

// DefaultSnapshot returns the empty state used when no persisted snapshot
// exists (or the persisted one is unreadable).
func DefaultSnapshot(now time.Time) Snapshot {
	return Snapshot{
		CurrentView:  ViewGantt,
		SelectedDate: DateOnly(now),
		ZoomLevel:    40,
	}
}

// Clone returns a deep copy of the snapshot. Entity structs are value
// types except for Task.Assignees, which is copied element-wise.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Tasks = slices.Clone(s.Tasks)
	for i := range out.Tasks {
		out.Tasks[i].Assignees = slices.Clone(out.Tasks[i].Assignees)
	}
	out.Links = slices.Clone(s.Links)
	out.Projects = slices.Clone(s.Projects)
	out.Sections = slices.Clone(s.Sections)
	out.Users = slices.Clone(s.Users)
	return out
}

// TaskByID returns the task with the given id, or nil.
func (s *Snapshot) TaskByID(id string) *Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

// ProjectByID returns the project with the given id, or nil.
func (s *Snapshot) ProjectByID(id string) *Project {
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			return &s.Projects[i]
		}
	}
	return nil
}

// SectionByID returns the section with the given id, or nil.
func (s *Snapshot) SectionByID(id string) *Section {
	for i := range s.Sections {
		if s.Sections[i].ID == id {
			return &s.Sections[i]
		}
	}
	return nil
}

// UserByID returns the user with the given id, or nil.
func (s *Snapshot) UserByID(id string) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// SectionsOf returns the sections owned by the given project, in
// snapshot order.
func (s *Snapshot) SectionsOf(projectID string) []Section {
	var out []Section
	for _, sec := range s.Sections {
		if sec.ProjectID == projectID {
			out = append(out, sec)
		}
	}
	return out
}

// TasksOf returns the tasks owned by the given project, in snapshot order.
func (s *Snapshot) TasksOf(projectID string) []Task {
	var out []Task
	for _, t := range s.Tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}
