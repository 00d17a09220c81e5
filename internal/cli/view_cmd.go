package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/projections"
	"github.com/alexanderramin/cadence/internal/state"
	"github.com/spf13/cobra"
)

// renderView renders the snapshot's current view to a string.
func renderView(s domain.Snapshot, f projections.Filter) string {
	switch s.CurrentView {
	case domain.ViewBoard:
		return formatter.FormatBoard(projections.Board(s, f))
	case domain.ViewCalendar:
		return formatter.FormatCalendar(projections.Calendar(s, f), s.SelectedDate)
	case domain.ViewList:
		return formatter.FormatList(projections.List(s, f))
	default:
		return formatter.FormatGantt(projections.Gantt(s, f), s.ZoomLevel)
	}
}

func newViewCmd(app *App) *cobra.Command {
	var search, assignee string

	cmd := &cobra.Command{
		Use:   "view [gantt|board|calendar|list]",
		Short: "Render the current view, optionally switching it first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()

			if len(args) == 1 {
				if !domain.ValidViewModes[args[0]] {
					return fmt.Errorf("unknown view %q", args[0])
				}
				var err error
				s, err = app.Engine.Dispatch(cmd.Context(), state.SetView{View: domain.ViewMode(args[0])})
				if err != nil {
					return err
				}
			}

			f := projections.Filter{Search: search}
			if assignee != "" {
				userID, err := resolveUserID(s, assignee)
				if err != nil {
					return err
				}
				f.AssigneeID = userID
			}

			fmt.Printf("%s\n", renderView(s, f))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by name/description substring")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Filter by assignee")

	return cmd
}

func newSelectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Change the current selection",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "task REF",
			Short: "Select a task",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s := app.Engine.Current()
				taskID, err := resolveTaskID(s, args[0])
				if err != nil {
					return err
				}
				if _, err := app.Engine.Dispatch(cmd.Context(), state.SelectTask{ID: taskID}); err != nil {
					return err
				}
				fmt.Printf("Selected task %s\n", s.TaskByID(taskID).Name)
				return nil
			},
		},
		&cobra.Command{
			Use:   "project REF",
			Short: "Select a project",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s := app.Engine.Current()
				projectID, err := resolveProjectID(s, args[0])
				if err != nil {
					return err
				}
				if _, err := app.Engine.Dispatch(cmd.Context(), state.SelectProject{ID: projectID}); err != nil {
					return err
				}
				fmt.Printf("Selected project %s\n", s.ProjectByID(projectID).Name)
				return nil
			},
		},
		&cobra.Command{
			Use:   "section REF",
			Short: "Select a section",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s := app.Engine.Current()
				sectionID, err := resolveSectionID(s, args[0])
				if err != nil {
					return err
				}
				if _, err := app.Engine.Dispatch(cmd.Context(), state.SelectSection{ID: sectionID}); err != nil {
					return err
				}
				fmt.Printf("Selected section %s\n", s.SectionByID(sectionID).Name)
				return nil
			},
		},
		&cobra.Command{
			Use:   "date DATE",
			Short: "Set the focused date (YYYY-MM-DD)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := parseDate("selected", args[0])
				if err != nil {
					return err
				}
				if _, err := app.Engine.Dispatch(cmd.Context(), state.SetSelectedDate{Date: d}); err != nil {
					return err
				}
				fmt.Printf("Focused on %s\n", d.Format("2006-01-02"))
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Clear all selections",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				for _, a := range []state.Action{
					state.SelectTask{}, state.SelectProject{}, state.SelectSection{},
				} {
					if _, err := app.Engine.Dispatch(ctx, a); err != nil {
						return err
					}
				}
				fmt.Println("Cleared selection")
				return nil
			},
		},
	)

	return cmd
}

func newZoomCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "zoom LEVEL",
		Short: fmt.Sprintf("Set the timeline zoom level (%d-%d)", domain.ZoomMin, domain.ZoomMax),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid zoom level %q", args[0])
			}

			next, err := app.Engine.Dispatch(cmd.Context(), state.SetZoom{Level: level})
			if err != nil {
				return err
			}

			fmt.Printf("Zoom level %d\n", next.ZoomLevel)
			return nil
		},
	}
}
