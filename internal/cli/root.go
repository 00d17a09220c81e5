package cli

import (
	"github.com/alexanderramin/cadence/internal/engine"
	"github.com/spf13/cobra"
)

// App holds the state engine and environment hooks used by CLI commands.
type App struct {
	Engine *engine.Engine

	// IsInteractive reports whether stdin is a terminal. The ui command
	// refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "cadence" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "cadence",
		Short: "Personal project timelines, boards, and task tracking",
	}

	root.AddCommand(
		newProjectCmd(app),
		newSectionCmd(app),
		newTaskCmd(app),
		newLinkCmd(app),
		newTeamCmd(app),
		newViewCmd(app),
		newSelectCmd(app),
		newZoomCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newUICmd(app),
	)

	return root
}
