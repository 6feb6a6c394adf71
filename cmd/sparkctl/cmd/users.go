package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apiclient "github.com/TravisBoyd884/SecondSpark/internal/api/client"
)

func usersCmd() *cobra.Command {
	usersRoot := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	usersRoot.AddCommand(
		usersListCmd(),
		usersRegisterCmd(),
		usersGetCmd(),
		usersDeleteCmd(),
		usersItemsCmd(),
		usersTransactionsCmd(),
	)

	return usersRoot
}

func usersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			users, err := c.ListUsers(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(users)
			}

			if len(users) == 0 {
				fmt.Println("No users found.")
				return nil
			}

			return printUsersTable(users)
		},
	}
}

func usersRegisterCmd() *cobra.Command {
	var (
		password string
		email    string
		orgID    int64
		role     string
	)

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Register a new user",
		Example: `  # Register a member of organization 1
  sparkctl users register alex --password secret --email alex@example.com --org 1

  # Register an owner
  sparkctl users register meg --password secret --org 1 --role owner`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			u, err := c.Register(context.Background(), &apiclient.UserRequest{
				Username:         args[0],
				Password:         password,
				Email:            email,
				OrganizationID:   orgID,
				OrganizationRole: role,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(u)
			}

			fmt.Printf("Registered user %d: %s\n", u.ID, u.Username)
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	cmd.Flags().Int64Var(&orgID, "org", 0, "organization id")
	cmd.Flags().StringVar(&role, "role", "", "organization role (owner, admin, member)")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("org")

	return cmd
}

func usersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show user details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}

			c := newClient()
			u, err := c.GetUser(context.Background(), id)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(u)
			}

			return printUserDetail(u)
		},
	}
}

func usersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}

			c := newClient()
			if err := c.DeleteUser(context.Background(), id); err != nil {
				return err
			}

			fmt.Printf("Deleted user %d\n", id)
			return nil
		},
	}
}

func usersItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "items <id>",
		Short: "List the items created by a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}

			c := newClient()
			items, err := c.ListUserItems(context.Background(), id)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(items)
			}

			if len(items) == 0 {
				fmt.Println("No items found.")
				return nil
			}

			return printItemsTable(items)
		},
	}
}

func usersTransactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transactions <id>",
		Short: "List a seller's transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}

			c := newClient()
			txs, err := c.ListUserTransactions(context.Background(), id)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(txs)
			}

			if len(txs) == 0 {
				fmt.Println("No transactions found.")
				return nil
			}

			return printTransactionsTable(txs)
		},
	}
}
