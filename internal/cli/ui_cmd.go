package cli

import (
	"fmt"

	"github.com/alexanderramin/cadence/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Browse the views interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("ui requires an interactive terminal")
			}

			p := tea.NewProgram(newUIModel(app), tea.WithAltScreen())

			// Push engine-side changes into the running program so edits
			// made elsewhere show up live.
			cancel := app.Engine.Subscribe(func(s domain.Snapshot) {
				p.Send(snapshotMsg{snapshot: s})
			})
			defer cancel()

			_, err := p.Run()
			return err
		},
	}
}
