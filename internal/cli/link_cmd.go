package cli

import (
	"fmt"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/state"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newLinkCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Manage dependency links between tasks",
	}

	cmd.AddCommand(
		newLinkAddCmd(app),
		newLinkListCmd(app),
		newLinkRemoveCmd(app),
	)

	return cmd
}

func newLinkAddCmd(app *App) *cobra.Command {
	kind := string(domain.LinkFinishToStart)

	cmd := &cobra.Command{
		Use:   "add SOURCE TARGET",
		Short: "Link two tasks",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()
			sourceID, err := resolveTaskID(s, args[0])
			if err != nil {
				return err
			}
			targetID, err := resolveTaskID(s, args[1])
			if err != nil {
				return err
			}

			l := domain.Link{
				ID:           uuid.New().String(),
				SourceTaskID: sourceID,
				TargetTaskID: targetID,
				Kind:         domain.LinkKind(kind),
			}

			if _, err := app.Engine.Dispatch(cmd.Context(), state.AddLink{Link: l}); err != nil {
				return err
			}

			fmt.Printf("Linked %s → %s (%s)\n",
				s.TaskByID(sourceID).Name, s.TaskByID(targetID).Name, l.Kind)
			return nil
		},
	}

	cmd.Flags().Var(newEnumValue(&kind, domain.ValidLinkKinds), "kind",
		"Dependency kind (finish_to_start|start_to_start|finish_to_finish|start_to_finish)")

	return cmd
}

func newLinkListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List dependency links",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()
			if len(s.Links) == 0 {
				fmt.Println("No links found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatLinkList(s))
			return nil
		},
	}
}

func newLinkRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a dependency link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()
			linkID, err := resolveLinkID(s, args[0])
			if err != nil {
				return err
			}

			if _, err := app.Engine.Dispatch(cmd.Context(), state.DeleteLink{ID: linkID}); err != nil {
				return err
			}

			fmt.Println("Removed link")
			return nil
		},
	}
}
