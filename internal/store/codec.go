package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// dateLayout is the on-disk representation of date fields. In memory they
// are time.Time values; they degrade to ISO-8601 date strings in the
// persisted JSON and are restored on load.
const dateLayout = "2006-01-02"

// persistedState is the wire shape of the snapshot: one JSON object per
// store key.
type persistedState struct {
	Tasks    []persistedTask    `json:"tasks"`
	Links    []persistedLink    `json:"links"`
	Projects []persistedProject `json:"projects"`
	Sections []persistedSection `json:"sections"`
	Users    []persistedUser    `json:"users"`

	CurrentView       string `json:"currentView"`
	SelectedTaskID    string `json:"selectedTaskId,omitempty"`
	SelectedProjectID string `json:"selectedProjectId,omitempty"`
	SelectedSectionID string `json:"selectedSectionId,omitempty"`
	SelectedDate      string `json:"selectedDate"`
	ZoomLevel         int    `json:"zoomLevel"`
}

type persistedTask struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	Progress    int      `json:"progress"`
	ProjectID   string   `json:"projectId,omitempty"`
	SectionID   string   `json:"sectionId,omitempty"`
	Assignees   []string `json:"assignees,omitempty"`
}

type persistedLink struct {
	ID           string `json:"id"`
	SourceTaskID string `json:"sourceTaskId"`
	TargetTaskID string `json:"targetTaskId"`
	Kind         string `json:"kind"`
}

type persistedProject struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Color  string  `json:"color,omitempty"`
	Status string  `json:"status"`
	Start  *string `json:"start,omitempty"`
	End    *string `json:"end,omitempty"`
}

type persistedSection struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
}

type persistedUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// EncodeSnapshot serializes a snapshot to its persisted JSON form.
func EncodeSnapshot(s domain.Snapshot) ([]byte, error) {
	p := persistedState{
		Tasks:    make([]persistedTask, 0, len(s.Tasks)),
		Links:    make([]persistedLink, 0, len(s.Links)),
		Projects: make([]persistedProject, 0, len(s.Projects)),
		Sections: make([]persistedSection, 0, len(s.Sections)),
		Users:    make([]persistedUser, 0, len(s.Users)),

		CurrentView:       string(s.CurrentView),
		SelectedTaskID:    s.SelectedTaskID,
		SelectedProjectID: s.SelectedProjectID,
		SelectedSectionID: s.SelectedSectionID,
		SelectedDate:      s.SelectedDate.Format(dateLayout),
		ZoomLevel:         s.ZoomLevel,
	}
	for _, t := range s.Tasks {
		p.Tasks = append(p.Tasks, persistedTask{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Start:       t.StartDate.Format(dateLayout),
			End:         t.EndDate.Format(dateLayout),
			Status:      string(t.Status),
			Priority:    string(t.Priority),
			Progress:    t.Progress,
			ProjectID:   t.ProjectID,
			SectionID:   t.SectionID,
			Assignees:   t.Assignees,
		})
	}
	for _, l := range s.Links {
		p.Links = append(p.Links, persistedLink{
			ID:           l.ID,
			SourceTaskID: l.SourceTaskID,
			TargetTaskID: l.TargetTaskID,
			Kind:         string(l.Kind),
		})
	}
	for _, pr := range s.Projects {
		p.Projects = append(p.Projects, persistedProject{
			ID:     pr.ID,
			Name:   pr.Name,
			Color:  pr.Color,
			Status: string(pr.Status),
			Start:  formatOptionalDate(pr.StartDate),
			End:    formatOptionalDate(pr.EndDate),
		})
	}
	for _, sec := range s.Sections {
		p.Sections = append(p.Sections, persistedSection{
			ID:        sec.ID,
			ProjectID: sec.ProjectID,
			Name:      sec.Name,
			Color:     sec.Color,
		})
	}
	for _, u := range s.Users {
		p.Users = append(p.Users, persistedUser{
			ID:     u.ID,
			Name:   u.Name,
			Color:  u.Color,
			Avatar: u.Avatar,
		})
	}
	return json.Marshal(p)
}

// DecodeSnapshot parses persisted JSON and rehydrates every serialized
// date string back into a time.Time value.
func DecodeSnapshot(data []byte) (domain.Snapshot, error) {
	var p persistedState
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.Snapshot{}, fmt.Errorf("parsing snapshot: %w", err)
	}

	s := domain.Snapshot{
		CurrentView:       domain.ViewMode(p.CurrentView),
		SelectedTaskID:    p.SelectedTaskID,
		SelectedProjectID: p.SelectedProjectID,
		SelectedSectionID: p.SelectedSectionID,
		ZoomLevel:         domain.ClampInt(p.ZoomLevel, domain.ZoomMin, domain.ZoomMax),
	}
	if !domain.ValidViewModes[p.CurrentView] {
		s.CurrentView = domain.ViewGantt
	}
	if p.SelectedDate != "" {
		d, err := time.Parse(dateLayout, p.SelectedDate)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("parsing selectedDate: %w", err)
		}
		s.SelectedDate = d
	}

	for _, t := range p.Tasks {
		start, err := time.Parse(dateLayout, t.Start)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("task %s: parsing start: %w", t.ID, err)
		}
		end, err := time.Parse(dateLayout, t.End)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("task %s: parsing end: %w", t.ID, err)
		}
		s.Tasks = append(s.Tasks, domain.Task{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			StartDate:   start,
			EndDate:     end,
			Status:      domain.TaskStatus(t.Status),
			Priority:    domain.TaskPriority(t.Priority),
			Progress:    domain.ClampInt(t.Progress, 0, 100),
			ProjectID:   t.ProjectID,
			SectionID:   t.SectionID,
			Assignees:   t.Assignees,
		})
	}
	for _, l := range p.Links {
		s.Links = append(s.Links, domain.Link{
			ID:           l.ID,
			SourceTaskID: l.SourceTaskID,
			TargetTaskID: l.TargetTaskID,
			Kind:         domain.LinkKind(l.Kind),
		})
	}
	for _, pr := range p.Projects {
		start, err := parseOptionalDate(pr.Start)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("project %s: parsing start: %w", pr.ID, err)
		}
		end, err := parseOptionalDate(pr.End)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("project %s: parsing end: %w", pr.ID, err)
		}
		s.Projects = append(s.Projects, domain.Project{
			ID:        pr.ID,
			Name:      pr.Name,
			Color:     pr.Color,
			Status:    domain.ProjectStatus(pr.Status),
			StartDate: start,
			EndDate:   end,
		})
	}
	for _, sec := range p.Sections {
		s.Sections = append(s.Sections, domain.Section{
			ID:        sec.ID,
			ProjectID: sec.ProjectID,
			Name:      sec.Name,
			Color:     sec.Color,
		})
	}
	for _, u := range p.Users {
		s.Users = append(s.Users, domain.User{
			ID:     u.ID,
			Name:   u.Name,
			Color:  u.Color,
			Avatar: u.Avatar,
		})
	}
	return s, nil
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(dateLayout)
	return &v
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
