package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
)

// FormatProjectList renders a styled project table inside a bordered box.
// Section and task counts come from the snapshot the caller resolved them on.
func FormatProjectList(s domain.Snapshot) string {
	headers := []string{"ID", "NAME", "STATUS", "START", "END", "TASKS"}
	rows := make([][]string, 0, len(s.Projects))

	for i := range s.Projects {
		p := &s.Projects[i]
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Name),
			ProjectStatusPill(p.Status),
			FormatOptionalDate(p.StartDate),
			FormatOptionalDate(p.EndDate),
			fmt.Sprintf("%d", len(s.TasksOf(p.ID))),
		})
	}

	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatSectionList renders the sections of one project, or all sections
// when projectID is empty.
func FormatSectionList(s domain.Snapshot, projectID string) string {
	headers := []string{"ID", "NAME", "PROJECT"}
	var rows [][]string

	for i := range s.Sections {
		sec := &s.Sections[i]
		if projectID != "" && sec.ProjectID != projectID {
			continue
		}
		projectName := Dim("--")
		if p := s.ProjectByID(sec.ProjectID); p != nil {
			projectName = p.Name
		}
		rows = append(rows, []string{TruncID(sec.ID), Bold(sec.Name), projectName})
	}

	return RenderBox("Sections", RenderTable(headers, rows))
}

// FormatUserList renders the team roster with per-user assignment counts.
func FormatUserList(s domain.Snapshot) string {
	headers := []string{"ID", "NAME", "ASSIGNED"}
	rows := make([][]string, 0, len(s.Users))

	for i := range s.Users {
		u := &s.Users[i]
		assigned := 0
		for j := range s.Tasks {
			if s.Tasks[j].AssignedTo(u.ID) {
				assigned++
			}
		}
		rows = append(rows, []string{TruncID(u.ID), Bold(u.Name), fmt.Sprintf("%d", assigned)})
	}

	return RenderBox("Team", RenderTable(headers, rows))
}

// FormatLinkList renders dependency links with endpoint task names resolved.
func FormatLinkList(s domain.Snapshot) string {
	headers := []string{"ID", "SOURCE", "KIND", "TARGET"}
	rows := make([][]string, 0, len(s.Links))

	for i := range s.Links {
		l := &s.Links[i]
		rows = append(rows, []string{
			TruncID(l.ID),
			taskLabel(s, l.SourceTaskID),
			Dim(strings.ReplaceAll(string(l.Kind), "_", "-")),
			taskLabel(s, l.TargetTaskID),
		})
	}

	return RenderBox("Links", RenderTable(headers, rows))
}

// FormatTaskDetail renders a single-task card.
func FormatTaskDetail(s domain.Snapshot, t *domain.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(t.Name), Dim(TruncID(t.ID)))
	if t.Description != "" {
		fmt.Fprintf(&b, "%s\n", t.Description)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Status    %s\n", StatusPill(t.Status))
	fmt.Fprintf(&b, "Priority  %s\n", PriorityBadge(t.Priority))
	fmt.Fprintf(&b, "Dates     %s\n", FormatDateRange(t.StartDate, t.EndDate))
	fmt.Fprintf(&b, "Progress  %s\n", RenderProgress(t.Progress, 16))

	if p := s.ProjectByID(t.ProjectID); p != nil {
		fmt.Fprintf(&b, "Project   %s\n", p.Name)
	}
	if sec := s.SectionByID(t.SectionID); sec != nil {
		fmt.Fprintf(&b, "Section   %s\n", sec.Name)
	}
	if len(t.Assignees) > 0 {
		names := make([]string, 0, len(t.Assignees))
		for _, id := range t.Assignees {
			if u := s.UserByID(id); u != nil {
				names = append(names, u.Name)
			} else {
				names = append(names, TruncID(id))
			}
		}
		fmt.Fprintf(&b, "Assignees %s\n", strings.Join(names, ", "))
	}

	return RenderBox("Task", b.String())
}

func taskLabel(s domain.Snapshot, taskID string) string {
	if t := s.TaskByID(taskID); t != nil {
		return t.Name
	}
	return Dim(TruncID(taskID))
}
