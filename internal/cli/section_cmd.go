package cli

import (
	"fmt"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/state"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newSectionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Manage sections within projects",
	}

	cmd.AddCommand(
		newSectionAddCmd(app),
		newSectionListCmd(app),
		newSectionUpdateCmd(app),
		newSectionRemoveCmd(app),
	)

	return cmd
}

func newSectionAddCmd(app *App) *cobra.Command {
	var name, project, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a section in a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()
			projectID, err := resolveProjectID(s, project)
			if err != nil {
				return err
			}

			sec := domain.Section{
				ID:        uuid.New().String(),
				ProjectID: projectID,
				Name:      name,
				Color:     color,
			}

			if _, err := app.Engine.Dispatch(cmd.Context(), state.AddSection{Section: sec}); err != nil {
				return err
			}

			fmt.Printf("Created section %s in project %s\n", sec.Name, formatter.TruncID(projectID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Section name")
	cmd.Flags().StringVar(&project, "project", "", "Owning project (name, ID, or prefix)")
	cmd.Flags().StringVar(&color, "color", "#10b981", "Display color (hex)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newSectionListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sections",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()

			projectID := ""
			if project != "" {
				var err error
				projectID, err = resolveProjectID(s, project)
				if err != nil {
					return err
				}
			}

			if len(s.Sections) == 0 {
				fmt.Println("No sections found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatSectionList(s, projectID))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Filter to one project")

	return cmd
}

func newSectionUpdateCmd(app *App) *cobra.Command {
	var name, color string

	cmd := &cobra.Command{
		Use:   "update REF",
		Short: "Update a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()
			sectionID, err := resolveSectionID(s, args[0])
			if err != nil {
				return err
			}

			var patch state.SectionPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &color
			}

			next, err := app.Engine.Dispatch(cmd.Context(), state.UpdateSection{ID: sectionID, Patch: patch})
			if err != nil {
				return err
			}

			fmt.Printf("Updated section %s\n", next.SectionByID(sectionID).Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Section name")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex)")

	return cmd
}

func newSectionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove REF",
		Short: "Remove a section (its tasks become unsectioned)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()
			sectionID, err := resolveSectionID(s, args[0])
			if err != nil {
				return err
			}

			if _, err := app.Engine.Dispatch(cmd.Context(), state.DeleteSection{ID: sectionID}); err != nil {
				return err
			}

			fmt.Println("Removed section; its tasks were kept without a section")
			return nil
		},
	}
}
