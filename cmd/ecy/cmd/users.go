package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func usersCmd() *cobra.Command {
	usersRoot := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
		Long:  "Create users and inspect their eco point balances and pickups.",
	}

	usersRoot.AddCommand(
		usersCreateCmd(),
		usersGetCmd(),
		usersPickupsCmd(),
	)

	return usersRoot
}

func usersCreateCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:     "create <username>",
		Short:   "Create a user",
		Example: `  ecy users create asha --email asha@example.com`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := newClient().CreateUser(cmd.Context(), args[0], email)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), u)
			}
			return printUserDetail(cmd.OutOrStdout(), u)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")

	return cmd
}

func usersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show a user's balances",
		Example: `  ecy users get 1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			u, err := newClient().GetUser(cmd.Context(), id)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), u)
			}
			return printUserDetail(cmd.OutOrStdout(), u)
		},
	}
}

func usersPickupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "pickups <id>",
		Short:   "List a user's individual pickups",
		Example: `  ecy users pickups 1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			pickups, err := newClient().ListUserPickups(cmd.Context(), id)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), pickups)
			}
			if len(pickups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No pickups found.")
				return nil
			}
			return printPickupsTable(cmd.OutOrStdout(), pickups)
		},
	}
}
