package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/importer"
	"github.com/alexanderramin/cadence/internal/state"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var snapshot bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a plan file, or a full snapshot with --snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if snapshot {
				s, err := importer.ImportSnapshotFile(args[0])
				if err != nil {
					return err
				}
				if _, err := app.Engine.Dispatch(ctx, state.SetState{State: s}); err != nil {
					return err
				}
				fmt.Printf("Replaced state: %d project(s), %d task(s)\n", len(s.Projects), len(s.Tasks))
				return nil
			}

			schema, err := importer.LoadPlanSchema(args[0])
			if err != nil {
				return err
			}
			if errs := importer.ValidatePlanSchema(schema); len(errs) > 0 {
				return fmt.Errorf("invalid plan file:\n%w", errors.Join(errs...))
			}

			actions, result, err := importer.Convert(schema)
			if err != nil {
				return err
			}
			for _, a := range actions {
				if _, err := app.Engine.Dispatch(ctx, a); err != nil {
					return fmt.Errorf("applying %s: %w", a.Name(), err)
				}
			}

			fmt.Printf("Imported project %s: %d section(s), %d task(s), %d link(s), %d user(s)\n",
				formatter.TruncID(result.ProjectID),
				result.SectionCount, result.TaskCount, result.LinkCount, result.UserCount)
			return nil
		},
	}

	cmd.Flags().BoolVar(&snapshot, "snapshot", false, "Treat FILE as a full state snapshot and replace everything")

	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Export the full state as a JSON snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()
			if err := importer.ExportSnapshot(s, args[0]); err != nil {
				return err
			}
			fmt.Printf("Exported %d task(s) to %s\n", len(s.Tasks), args[0])
			return nil
		},
	}
}
