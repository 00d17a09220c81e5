package state

import (
	"slices"

	"github.com/alexanderramin/cadence/internal/domain"
)

// Cascade rules. Membership is always computed against the snapshot as it
// was before any entity in the cascade is removed, so the removed set is a
// pure function of the pre-transition state.

func applyDeleteTask(s domain.Snapshot, id string) (domain.Snapshot, error) {
	if s.TaskByID(id) == nil {
		return s, nil
	}
	next := s.Clone()
	next.Tasks = slices.DeleteFunc(next.Tasks, func(t domain.Task) bool {
		return t.ID == id
	})
	next.Links = slices.DeleteFunc(next.Links, func(l domain.Link) bool {
		return l.References(id)
	})
	if next.SelectedTaskID == id {
		next.SelectedTaskID = ""
	}
	return next, nil
}

func applyDeleteProject(s domain.Snapshot, id string) (domain.Snapshot, error) {
	if s.ProjectByID(id) == nil {
		return s, nil
	}

	// Removed-task set from the pre-transition snapshot.
	removedTasks := make(map[string]bool)
	for _, t := range s.Tasks {
		if t.ProjectID == id {
			removedTasks[t.ID] = true
		}
	}

	next := s.Clone()
	next.Projects = slices.DeleteFunc(next.Projects, func(p domain.Project) bool {
		return p.ID == id
	})
	next.Sections = slices.DeleteFunc(next.Sections, func(sec domain.Section) bool {
		return sec.ProjectID == id
	})
	next.Tasks = slices.DeleteFunc(next.Tasks, func(t domain.Task) bool {
		return removedTasks[t.ID]
	})
	next.Links = slices.DeleteFunc(next.Links, func(l domain.Link) bool {
		return removedTasks[l.SourceTaskID] || removedTasks[l.TargetTaskID]
	})

	if next.SelectedProjectID == id {
		next.SelectedProjectID = ""
	}
	if removedTasks[next.SelectedTaskID] {
		next.SelectedTaskID = ""
	}
	if next.SelectedSectionID != "" && next.SectionByID(next.SelectedSectionID) == nil {
		next.SelectedSectionID = ""
	}
	return next, nil
}

// applyDeleteSection removes the section and detaches its tasks into the
// project's unsectioned bucket. Tasks keep their project membership.
func applyDeleteSection(s domain.Snapshot, id string) (domain.Snapshot, error) {
	if s.SectionByID(id) == nil {
		return s, nil
	}
	next := s.Clone()
	next.Sections = slices.DeleteFunc(next.Sections, func(sec domain.Section) bool {
		return sec.ID == id
	})
	for i := range next.Tasks {
		if next.Tasks[i].SectionID == id {
			next.Tasks[i].SectionID = ""
		}
	}
	if next.SelectedSectionID == id {
		next.SelectedSectionID = ""
	}
	return next, nil
}

func applyDeleteLink(s domain.Snapshot, id string) (domain.Snapshot, error) {
	found := slices.ContainsFunc(s.Links, func(l domain.Link) bool { return l.ID == id })
	if !found {
		return s, nil
	}
	next := s.Clone()
	next.Links = slices.DeleteFunc(next.Links, func(l domain.Link) bool {
		return l.ID == id
	})
	return next, nil
}

// applyDeleteUser removes the user and prunes the id from every task's
// assignee list, so no dangling assignee references survive.
func applyDeleteUser(s domain.Snapshot, id string) (domain.Snapshot, error) {
	if s.UserByID(id) == nil {
		return s, nil
	}
	next := s.Clone()
	next.Users = slices.DeleteFunc(next.Users, func(u domain.User) bool {
		return u.ID == id
	})
	for i := range next.Tasks {
		next.Tasks[i].Assignees = slices.DeleteFunc(next.Tasks[i].Assignees, func(a string) bool {
			return a == id
		})
	}
	return next, nil
}
