package cli

import (
	"fmt"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/state"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage assignable people",
	}

	cmd.AddCommand(
		newTeamAddCmd(app),
		newTeamListCmd(app),
		newTeamUpdateCmd(app),
		newTeamRemoveCmd(app),
	)

	return cmd
}

func newTeamAddCmd(app *App) *cobra.Command {
	var name, color, avatar string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a person",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := domain.User{
				ID:     uuid.New().String(),
				Name:   name,
				Color:  color,
				Avatar: avatar,
			}

			if _, err := app.Engine.Dispatch(cmd.Context(), state.AddUser{User: u}); err != nil {
				return err
			}

			fmt.Printf("Added %s [%s]\n", u.Name, formatter.TruncID(u.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Person's name")
	cmd.Flags().StringVar(&color, "color", "#8b5cf6", "Display color (hex)")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar URL or initials")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTeamListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List people",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()
			if len(s.Users) == 0 {
				fmt.Println("No people found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatUserList(s))
			return nil
		},
	}
}

func newTeamUpdateCmd(app *App) *cobra.Command {
	var name, color, avatar string

	cmd := &cobra.Command{
		Use:   "update REF",
		Short: "Update a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()
			userID, err := resolveUserID(s, args[0])
			if err != nil {
				return err
			}

			var patch state.UserPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &color
			}
			if cmd.Flags().Changed("avatar") {
				patch.Avatar = &avatar
			}

			next, err := app.Engine.Dispatch(cmd.Context(), state.UpdateUser{ID: userID, Patch: patch})
			if err != nil {
				return err
			}

			fmt.Printf("Updated %s\n", next.UserByID(userID).Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Person's name")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex)")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar URL or initials")

	return cmd
}

func newTeamRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove REF",
		Short: "Remove a person and unassign their tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()
			userID, err := resolveUserID(s, args[0])
			if err != nil {
				return err
			}

			if _, err := app.Engine.Dispatch(cmd.Context(), state.DeleteUser{ID: userID}); err != nil {
				return err
			}

			fmt.Println("Removed person and cleared their assignments")
			return nil
		},
	}
}
