package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// cadenceHuhTheme returns the orange-accented huh theme shared by all forms.
func cadenceHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateRequired rejects the empty string.
func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateDate accepts a YYYY-MM-DD date string.
func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("enter a date as YYYY-MM-DD")
	}
	return nil
}

// dateInput returns a huh.Input for a required date field.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2026-09-15").
		Value(value).
		Validate(validateDate)
}

// taskFormValues carries the fields collected by the interactive task form.
type taskFormValues struct {
	name        string
	description string
	projectRef  string
	sectionRef  string
	start       string
	end         string
	priority    string
}

// runTaskForm walks a themed huh form for creating a task. Project and
// section are picked from the snapshot's existing entities.
func runTaskForm(s domain.Snapshot) (taskFormValues, error) {
	var v taskFormValues
	v.priority = string(domain.PriorityMedium)

	projectOpts := []huh.Option[string]{huh.NewOption("(none)", "")}
	for i := range s.Projects {
		projectOpts = append(projectOpts, huh.NewOption(s.Projects[i].Name, s.Projects[i].ID))
	}
	sectionOpts := []huh.Option[string]{huh.NewOption("(none)", "")}
	for i := range s.Sections {
		sectionOpts = append(sectionOpts, huh.NewOption(s.Sections[i].Name, s.Sections[i].ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task name").
				Value(&v.name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Description (optional)").
				Value(&v.description),
			dateInput("Start date (YYYY-MM-DD)", &v.start),
			dateInput("End date (YYYY-MM-DD)", &v.end),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Project").
				Options(projectOpts...).
				Value(&v.projectRef),
			huh.NewSelect[string]().
				Title("Section").
				Options(sectionOpts...).
				Value(&v.sectionRef),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("low", string(domain.PriorityLow)),
					huh.NewOption("medium", string(domain.PriorityMedium)),
					huh.NewOption("high", string(domain.PriorityHigh)),
				).
				Value(&v.priority),
		),
	).WithTheme(cadenceHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return taskFormValues{}, err
	}
	return v, nil
}
