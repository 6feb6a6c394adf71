package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func ebayCmd() *cobra.Command {
	ebayRoot := &cobra.Command{
		Use:   "ebay",
		Short: "Inspect eBay inventory and manage the seller token",
	}

	ebayRoot.AddCommand(
		ebayInventoryCmd(),
		ebayInventorySetCmd(),
		ebayInventoryDeleteCmd(),
		ebayTokenSetCmd(),
		ebayTokenStatusCmd(),
	)

	return ebayRoot
}

func ebayInventoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "inventory <sku>",
		Short:   "Fetch the raw eBay inventory record for a SKU",
		Example: `  sparkctl ebay inventory LAMP-01`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			raw, err := c.GetEbayInventoryItem(context.Background(), args[0])
			if err != nil {
				return err
			}

			_, err = os.Stdout.Write(append(raw, '\n'))
			return err
		},
	}
}

func ebayTokenSetCmd() *cobra.Command {
	var expiresIn int

	cmd := &cobra.Command{
		Use:   "token-set <token>",
		Short: "Install a seller OAuth token on the server",
		Long: "Install a seller OAuth token obtained out-of-band. The token enables\n" +
			"the offer and publish stages of eBay sync until it expires.",
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.SetEbayUserToken(context.Background(), args[0], expiresIn); err != nil {
				return err
			}

			fmt.Println("Seller token installed.")
			return nil
		},
	}
	cmd.Flags().IntVar(&expiresIn, "expires-in", 7200, "token lifetime in seconds")

	return cmd
}

func ebayTokenStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token-status",
		Short: "Report whether the server holds a usable seller token",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			ok, err := c.EbayTokenStatus(context.Background())
			if err != nil {
				return err
			}

			if ok {
				fmt.Println("Seller token: present")
			} else {
				fmt.Println("Seller token: missing")
			}
			return nil
		},
	}
}

func ebayInventorySetCmd() *cobra.Command {
	var (
		title       string
		description string
	)

	cmd := &cobra.Command{
		Use:     "inventory-set <sku>",
		Short:   "Create or replace the eBay inventory record for a SKU",
		Example: `  sparkctl ebay inventory-set LAMP-01 --title "Vintage brass lamp"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			raw, err := c.UpsertEbayInventoryItem(context.Background(), args[0], title, description)
			if err != nil {
				return err
			}

			_, err = os.Stdout.Write(append(raw, '\n'))
			return err
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "listing title")
	cmd.Flags().StringVar(&description, "description", "", "listing description")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func ebayInventoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inventory-delete <sku>",
		Short: "Remove the eBay inventory record for a SKU",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteEbayInventoryItem(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Printf("Deleted eBay inventory record %s\n", args[0])
			return nil
		},
	}
}
