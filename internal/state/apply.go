package state

import (
	"slices"

	"github.com/alexanderramin/cadence/internal/domain"
)

// Apply is the transition function: given the current snapshot and one
// action, it returns the next snapshot. It is deterministic and free of
// side effects; persistence and notification are the caller's concern.
//
// Rejected actions return the input snapshot unchanged together with a
// *ValidationError. Update/select/delete actions referencing an unknown
// id return the input snapshot unchanged with a nil error (no-op law).
func Apply(s domain.Snapshot, a Action) (domain.Snapshot, error) {
	switch a := a.(type) {
	case SetState:
		return a.State.Clone(), nil
	case SetTasks:
		next := s.Clone()
		next.Tasks = slices.Clone(a.Tasks)
		return next, nil
	case SetProjects:
		next := s.Clone()
		next.Projects = slices.Clone(a.Projects)
		return next, nil
	case SetSections:
		next := s.Clone()
		next.Sections = slices.Clone(a.Sections)
		return next, nil
	case SetLinks:
		next := s.Clone()
		next.Links = slices.Clone(a.Links)
		return next, nil
	case SetUsers:
		next := s.Clone()
		next.Users = slices.Clone(a.Users)
		return next, nil

	case AddTask:
		return applyAddTask(s, a.Task)
	case AddProject:
		return applyAddProject(s, a.Project)
	case AddSection:
		return applyAddSection(s, a.Section)
	case AddLink:
		return applyAddLink(s, a.Link)
	case AddUser:
		if a.User.Name == "" {
			return s, errEmptyName("name")
		}
		next := s.Clone()
		next.Users = append(next.Users, a.User)
		return next, nil

	case UpdateTask:
		return applyUpdateTask(s, a.ID, a.Patch)
	case UpdateProject:
		return applyUpdateProject(s, a.ID, a.Patch)
	case UpdateSection:
		return applyUpdateSection(s, a.ID, a.Patch)
	case UpdateUser:
		return applyUpdateUser(s, a.ID, a.Patch)
	case UpdateTaskStatus:
		if s.TaskByID(a.ID) == nil {
			return s, nil
		}
		next := s.Clone()
		next.TaskByID(a.ID).Status = a.Status
		return next, nil
	case UpdateTaskDates:
		if s.TaskByID(a.ID) == nil {
			return s, nil
		}
		if a.Start.After(a.End) {
			return s, errInvalidDateRange()
		}
		next := s.Clone()
		t := next.TaskByID(a.ID)
		t.StartDate = a.Start
		t.EndDate = a.End
		return next, nil

	case DeleteTask:
		return applyDeleteTask(s, a.ID)
	case DeleteProject:
		return applyDeleteProject(s, a.ID)
	case DeleteSection:
		return applyDeleteSection(s, a.ID)
	case DeleteLink:
		return applyDeleteLink(s, a.ID)
	case DeleteUser:
		return applyDeleteUser(s, a.ID)

	case SelectTask:
		if a.ID != "" && s.TaskByID(a.ID) == nil {
			return s, nil
		}
		next := s.Clone()
		next.SelectedTaskID = a.ID
		return next, nil
	case SelectProject:
		if a.ID != "" && s.ProjectByID(a.ID) == nil {
			return s, nil
		}
		next := s.Clone()
		next.SelectedProjectID = a.ID
		return next, nil
	case SelectSection:
		if a.ID != "" && s.SectionByID(a.ID) == nil {
			return s, nil
		}
		next := s.Clone()
		next.SelectedSectionID = a.ID
		return next, nil
	case SetView:
		if !domain.ValidViewModes[string(a.View)] {
			return s, nil
		}
		next := s.Clone()
		next.CurrentView = a.View
		return next, nil
	case SetZoom:
		next := s.Clone()
		next.ZoomLevel = domain.ClampInt(a.Level, domain.ZoomMin, domain.ZoomMax)
		return next, nil
	case SetSelectedDate:
		next := s.Clone()
		next.SelectedDate = domain.DateOnly(a.Date)
		return next, nil
	}
	return s, nil
}

// validateTaskRefs checks the cross-consistency invariant: a task's
// section, if set, must exist and belong to the task's own project.
func validateTaskRefs(s *domain.Snapshot, t *domain.Task) error {
	if t.ProjectID != "" && s.ProjectByID(t.ProjectID) == nil {
		return errUnknownProject(t.ProjectID)
	}
	if t.SectionID != "" {
		sec := s.SectionByID(t.SectionID)
		if sec == nil {
			return errUnknownSection(t.SectionID)
		}
		if sec.ProjectID != t.ProjectID {
			return errSectionProjectMismatch(t.SectionID)
		}
	}
	return nil
}

func applyAddTask(s domain.Snapshot, t domain.Task) (domain.Snapshot, error) {
	if t.Name == "" {
		return s, errEmptyName("name")
	}
	if !t.HasValidDates() {
		return s, errInvalidDateRange()
	}
	if err := validateTaskRefs(&s, &t); err != nil {
		return s, err
	}
	if t.Status == "" {
		t.Status = domain.TaskTodo
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	t.Progress = domain.ClampInt(t.Progress, 0, 100)
	t.Assignees = slices.Clone(t.Assignees)

	next := s.Clone()
	next.Tasks = append(next.Tasks, t)
	return next, nil
}

func applyAddProject(s domain.Snapshot, p domain.Project) (domain.Snapshot, error) {
	if p.Name == "" {
		return s, errEmptyName("name")
	}
	if p.StartDate != nil && p.EndDate != nil && p.StartDate.After(*p.EndDate) {
		return s, errInvalidDateRange()
	}
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}
	next := s.Clone()
	next.Projects = append(next.Projects, p)
	return next, nil
}

func applyAddSection(s domain.Snapshot, sec domain.Section) (domain.Snapshot, error) {
	if sec.Name == "" {
		return s, errEmptyName("name")
	}
	if s.ProjectByID(sec.ProjectID) == nil {
		return s, errUnknownProject(sec.ProjectID)
	}
	next := s.Clone()
	next.Sections = append(next.Sections, sec)
	return next, nil
}

func applyAddLink(s domain.Snapshot, l domain.Link) (domain.Snapshot, error) {
	if s.TaskByID(l.SourceTaskID) == nil {
		return s, errUnknownTask("sourceTaskId", l.SourceTaskID)
	}
	if s.TaskByID(l.TargetTaskID) == nil {
		return s, errUnknownTask("targetTaskId", l.TargetTaskID)
	}
	if l.Kind == "" {
		l.Kind = domain.LinkFinishToStart
	}
	next := s.Clone()
	next.Links = append(next.Links, l)
	return next, nil
}

func applyUpdateTask(s domain.Snapshot, id string, p TaskPatch) (domain.Snapshot, error) {
	cur := s.TaskByID(id)
	if cur == nil {
		return s, nil
	}

	merged := *cur
	merged.Name = domain.StrFromPtrWithDefault(cur.Name, p.Name)
	merged.Description = domain.StrFromPtrWithDefault(cur.Description, p.Description)
	merged.StartDate = domain.TimeFromPtrWithDefault(cur.StartDate, p.StartDate)
	merged.EndDate = domain.TimeFromPtrWithDefault(cur.EndDate, p.EndDate)
	if p.Status != nil {
		merged.Status = *p.Status
	}
	if p.Priority != nil {
		merged.Priority = *p.Priority
	}
	merged.Progress = domain.ClampInt(domain.IntFromPtrWithDefault(cur.Progress, p.Progress), 0, 100)
	merged.ProjectID = domain.StrFromPtrWithDefault(cur.ProjectID, p.ProjectID)
	merged.SectionID = domain.StrFromPtrWithDefault(cur.SectionID, p.SectionID)
	if p.Assignees != nil {
		merged.Assignees = slices.Clone(*p.Assignees)
	} else {
		merged.Assignees = slices.Clone(cur.Assignees)
	}

	if merged.Name == "" {
		return s, errEmptyName("name")
	}
	if !merged.HasValidDates() {
		return s, errInvalidDateRange()
	}
	if err := validateTaskRefs(&s, &merged); err != nil {
		return s, err
	}

	next := s.Clone()
	*next.TaskByID(id) = merged
	return next, nil
}

func applyUpdateProject(s domain.Snapshot, id string, p ProjectPatch) (domain.Snapshot, error) {
	cur := s.ProjectByID(id)
	if cur == nil {
		return s, nil
	}
	merged := *cur
	merged.Name = domain.StrFromPtrWithDefault(cur.Name, p.Name)
	merged.Color = domain.StrFromPtrWithDefault(cur.Color, p.Color)
	if p.Status != nil {
		merged.Status = *p.Status
	}
	if p.StartDate != nil {
		merged.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		merged.EndDate = *p.EndDate
	}
	if merged.Name == "" {
		return s, errEmptyName("name")
	}
	if merged.StartDate != nil && merged.EndDate != nil && merged.StartDate.After(*merged.EndDate) {
		return s, errInvalidDateRange()
	}
	next := s.Clone()
	*next.ProjectByID(id) = merged
	return next, nil
}

func applyUpdateSection(s domain.Snapshot, id string, p SectionPatch) (domain.Snapshot, error) {
	cur := s.SectionByID(id)
	if cur == nil {
		return s, nil
	}
	merged := *cur
	merged.Name = domain.StrFromPtrWithDefault(cur.Name, p.Name)
	merged.Color = domain.StrFromPtrWithDefault(cur.Color, p.Color)
	if merged.Name == "" {
		return s, errEmptyName("name")
	}
	next := s.Clone()
	*next.SectionByID(id) = merged
	return next, nil
}

func applyUpdateUser(s domain.Snapshot, id string, p UserPatch) (domain.Snapshot, error) {
	cur := s.UserByID(id)
	if cur == nil {
		return s, nil
	}
	merged := *cur
	merged.Name = domain.StrFromPtrWithDefault(cur.Name, p.Name)
	merged.Color = domain.StrFromPtrWithDefault(cur.Color, p.Color)
	merged.Avatar = domain.StrFromPtrWithDefault(cur.Avatar, p.Avatar)
	next := s.Clone()
	*next.UserByID(id) = merged
	return next, nil
}
