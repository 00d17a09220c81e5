package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/state"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// parseDate parses a required YYYY-MM-DD argument.
func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s date %q: expected YYYY-MM-DD", field, s)
	}
	return t, nil
}

// parseOptionalDate parses an optional YYYY-MM-DD flag, nil when unset.
func parseOptionalDate(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(field, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectUpdateCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, color, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := parseOptionalDate("start", start)
			if err != nil {
				return err
			}
			endDate, err := parseOptionalDate("end", end)
			if err != nil {
				return err
			}

			p := domain.Project{
				ID:        uuid.New().String(),
				Name:      name,
				Color:     color,
				Status:    domain.ProjectActive,
				StartDate: startDate,
				EndDate:   endDate,
			}

			if _, err := app.Engine.Dispatch(cmd.Context(), state.AddProject{Project: p}); err != nil {
				return err
			}

			fmt.Printf("Created project %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&color, "color", "#3b82f6", "Display color (hex)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()
			if len(s.Projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatProjectList(s))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, color, status, start, end string

	cmd := &cobra.Command{
		Use:   "update REF",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()
			projectID, err := resolveProjectID(s, args[0])
			if err != nil {
				return err
			}

			var patch state.ProjectPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &color
			}
			if cmd.Flags().Changed("status") {
				st := domain.ProjectStatus(status)
				patch.Status = &st
			}
			if cmd.Flags().Changed("start") {
				startDate, err := parseOptionalDate("start", start)
				if err != nil {
					return err
				}
				patch.StartDate = &startDate
			}
			if cmd.Flags().Changed("end") {
				endDate, err := parseOptionalDate("end", end)
				if err != nil {
					return err
				}
				patch.EndDate = &endDate
			}

			next, err := app.Engine.Dispatch(cmd.Context(), state.UpdateProject{ID: projectID, Patch: patch})
			if err != nil {
				return err
			}

			p := next.ProjectByID(projectID)
			fmt.Printf("Updated project %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex)")
	cmd.Flags().Var(newEnumValue(&status, domain.ValidProjectStatuses), "status", "Status (active|completed|archived)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove REF",
		Short: "Remove a project and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()
			projectID, err := resolveProjectID(s, args[0])
			if err != nil {
				return err
			}

			removed := len(s.TasksOf(projectID))
			if _, err := app.Engine.Dispatch(cmd.Context(), state.DeleteProject{ID: projectID}); err != nil {
				return err
			}

			fmt.Printf("Removed project and %d task(s)\n", removed)
			return nil
		},
	}
}
