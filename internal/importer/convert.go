package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/state"
	"github.com/google/uuid"
)

// Fallback display colors for entities the plan file leaves uncolored.
const (
	defaultSectionColor = "#10b981"
	defaultUserColor    = "#8b5cf6"
)

// ImportResult summarizes what a converted plan file contains.
type ImportResult struct {
	ProjectID    string
	SectionCount int
	TaskCount    int
	LinkCount    int
	UserCount    int
}

// Convert transforms a validated PlanSchema into the ordered action list
// that recreates it: project first, then sections, users, tasks, links,
// so every reference resolves when its action is applied.
// Call ValidatePlanSchema first; Convert assumes the schema is valid.
func Convert(schema *PlanSchema) ([]state.Action, *ImportResult, error) {
	projectID := uuid.New().String()

	status := domain.ProjectStatus(schema.Project.Status)
	if status == "" {
		status = domain.ProjectActive
	}
	project := domain.Project{
		ID:        projectID,
		Name:      schema.Project.Name,
		Color:     schema.Project.Color,
		Status:    status,
		StartDate: parseOptionalDate(schema.Project.StartDate),
		EndDate:   parseOptionalDate(schema.Project.EndDate),
	}
	actions := []state.Action{state.AddProject{Project: project}}

	sectionIDs := make(map[string]string)
	for _, s := range schema.Sections {
		id := uuid.New().String()
		sectionIDs[s.Ref] = id
		actions = append(actions, state.AddSection{Section: domain.Section{
			ID:        id,
			ProjectID: projectID,
			Name:      s.Name,
			Color:     domain.CoalesceStr(s.Color, defaultSectionColor),
		}})
	}

	userIDs := make(map[string]string)
	for _, u := range schema.Users {
		id := uuid.New().String()
		userIDs[u.Ref] = id
		actions = append(actions, state.AddUser{User: domain.User{
			ID:    id,
			Name:  u.Name,
			Color: domain.CoalesceStr(u.Color, defaultUserColor),
		}})
	}

	taskIDs := make(map[string]string)
	for _, t := range schema.Tasks {
		start, err := time.Parse(dateLayout, t.Start)
		if err != nil {
			return nil, nil, fmt.Errorf("task %q: parsing start: %w", t.Ref, err)
		}
		end, err := time.Parse(dateLayout, t.End)
		if err != nil {
			return nil, nil, fmt.Errorf("task %q: parsing end: %w", t.Ref, err)
		}

		var assignees []string
		for _, ur := range t.UserRefs {
			assignees = append(assignees, userIDs[ur])
		}

		id := uuid.New().String()
		taskIDs[t.Ref] = id
		actions = append(actions, state.AddTask{Task: domain.Task{
			ID:          id,
			Name:        t.Name,
			Description: t.Description,
			StartDate:   start,
			EndDate:     end,
			Status:      domain.TaskStatus(t.Status),
			Priority:    domain.TaskPriority(t.Priority),
			Progress:    t.Progress,
			ProjectID:   projectID,
			SectionID:   sectionIDs[t.SectionRef],
			Assignees:   assignees,
		}})
	}

	for _, l := range schema.Links {
		actions = append(actions, state.AddLink{Link: domain.Link{
			ID:           uuid.New().String(),
			SourceTaskID: taskIDs[l.SourceRef],
			TargetTaskID: taskIDs[l.TargetRef],
			Kind:         domain.LinkKind(domain.CoalesceStr(l.Kind, string(domain.LinkFinishToStart))),
		}})
	}

	result := &ImportResult{
		ProjectID:    projectID,
		SectionCount: len(schema.Sections),
		TaskCount:    len(schema.Tasks),
		LinkCount:    len(schema.Links),
		UserCount:    len(schema.Users),
	}
	return actions, result, nil
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}
