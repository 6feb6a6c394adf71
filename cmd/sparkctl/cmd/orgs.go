package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func orgsCmd() *cobra.Command {
	orgsRoot := &cobra.Command{
		Use:   "orgs",
		Short: "Manage organizations",
	}

	orgsRoot.AddCommand(
		orgsListCmd(),
		orgsCreateCmd(),
		orgsGetCmd(),
		orgsRenameCmd(),
		orgsDeleteCmd(),
		orgsUsersCmd(),
		orgsItemsCmd(),
	)

	return orgsRoot
}

func orgsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			orgs, err := c.ListOrganizations(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(orgs)
			}

			if len(orgs) == 0 {
				fmt.Println("No organizations found.")
				return nil
			}

			return printOrgsTable(orgs)
		},
	}
}

func orgsCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "create <name>",
		Short:   "Create an organization",
		Example: `  sparkctl orgs create "Second Chance Goods"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			org, err := c.CreateOrganization(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(org)
			}

			fmt.Printf("Created organization %d: %s\n", org.ID, org.Name)
			return nil
		},
	}
}

func orgsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show organization details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid organization id %q", args[0])
			}

			c := newClient()
			org, err := c.GetOrganization(context.Background(), id)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(org)
			}

			fmt.Printf("%d\t%s\n", org.ID, org.Name)
			return nil
		},
	}
}

func orgsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an organization and its users",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid organization id %q", args[0])
			}

			c := newClient()
			if err := c.DeleteOrganization(context.Background(), id); err != nil {
				return err
			}

			fmt.Printf("Deleted organization %d\n", id)
			return nil
		},
	}
}

func orgsUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users <id>",
		Short: "List an organization's users",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid organization id %q", args[0])
			}

			c := newClient()
			users, err := c.ListOrganizationUsers(context.Background(), id)
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

func orgsItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "items <id>",
		Short: "List every item created within an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid organization id %q", args[0])
			}

			c := newClient()
			items, err := c.ListOrganizationItems(context.Background(), id)
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

func orgsRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rename <id> <name>",
		Short:   "Rename an organization",
		Example: `  sparkctl orgs rename 3 "Second Chance Goods"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid organization id %q", args[0])
			}

			c := newClient()
			org, err := c.UpdateOrganization(context.Background(), id, args[1])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(org)
			}

			fmt.Printf("Renamed organization %d to %s\n", org.ID, org.Name)
			return nil
		},
	}
}
