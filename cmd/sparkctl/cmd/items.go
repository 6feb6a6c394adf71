package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apiclient "github.com/TravisBoyd884/SecondSpark/internal/api/client"
)

func itemsCmd() *cobra.Command {
	itemsRoot := &cobra.Command{
		Use:   "items",
		Short: "Manage items",
		Long: "Create, query, update, and delete locally tracked items,\n" +
			"optionally pushing them to eBay and Etsy.",
	}

	itemsRoot.AddCommand(
		itemsListCmd(),
		itemsCreateCmd(),
		itemsGetCmd(),
		itemsUpdateCmd(),
		itemsDeleteCmd(),
		itemsTransactionsCmd(),
	)

	return itemsRoot
}

func itemsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List items",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			items, err := c.ListItems(context.Background())
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

func itemFlags(cmd *cobra.Command, req *apiclient.ItemRequest) {
	cmd.Flags().StringVar(&req.Title, "title", "", "listing title")
	cmd.Flags().StringVar(&req.Price, "price", "", "decimal price, e.g. 19.99")
	cmd.Flags().StringVar(&req.Description, "description", "", "listing description")
	cmd.Flags().StringVar(&req.Category, "category", "", "free-form category")
	cmd.Flags().IntVar(&req.Quantity, "quantity", 1, "quantity on hand")
	cmd.Flags().Int64Var(&req.CreatorID, "creator", 0, "creating user id")
	cmd.Flags().BoolVar(&req.EbaySync, "ebay", false, "push to eBay")
	cmd.Flags().BoolVar(&req.EtsySync, "etsy", false, "push to Etsy")
}

func itemsCreateCmd() *cobra.Command {
	var req apiclient.ItemRequest

	cmd := &cobra.Command{
		Use:   "create <sku>",
		Short: "Create an item",
		Example: `  # Create an item locally
  sparkctl items create LAMP-01 --title "Brass Lamp" --price 45.00 --creator 2

  # Create and push to both marketplaces
  sparkctl items create LAMP-01 --title "Brass Lamp" --price 45.00 --creator 2 --ebay --etsy`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			req.SKU = args[0]

			c := newClient()
			result, err := c.CreateItem(context.Background(), &req)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(result)
			}

			fmt.Printf("Created item %d (%s)\n", result.Item.ID, result.Item.SKU)
			printSyncReport("eBay", result.Ebay)
			printSyncReport("Etsy", result.Etsy)
			return nil
		},
	}
	itemFlags(cmd, &req)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("creator")

	return cmd
}

func itemsGetCmd() *cobra.Command {
	var bySKU bool

	cmd := &cobra.Command{
		Use:   "get <id|sku>",
		Short: "Show item details",
		Example: `  sparkctl items get 7
  sparkctl items get LAMP-01 --sku`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			ctx := context.Background()

			if bySKU {
				it, err := c.GetItemBySKU(ctx, args[0])
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(it)
				}
				return printItemDetail(it)
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q (use --sku to look up by SKU)", args[0])
			}

			it, err := c.GetItem(ctx, id)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(it)
			}
			return printItemDetail(it)
		},
	}
	cmd.Flags().BoolVar(&bySKU, "sku", false, "look up by SKU instead of id")

	return cmd
}

func itemsUpdateCmd() *cobra.Command {
	var req apiclient.ItemRequest

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an item",
		Example: `  # Reprice and re-sync to eBay
  sparkctl items update 7 --sku LAMP-01 --title "Brass Lamp" --price 39.99 --ebay`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}

			c := newClient()
			result, err := c.UpdateItem(context.Background(), id, &req)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(result)
			}

			fmt.Printf("Updated item %d (%s)\n", result.Item.ID, result.Item.SKU)
			printSyncReport("eBay", result.Ebay)
			printSyncReport("Etsy", result.Etsy)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.SKU, "sku", "", "stock keeping unit")
	itemFlags(cmd, &req)
	_ = cmd.MarkFlagRequired("sku")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func itemsDeleteCmd() *cobra.Command {
	var (
		ebaySync bool
		etsySync bool
	)

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item",
		Example: `  # Delete locally only
  sparkctl items delete 7

  # Delete locally and clean up marketplace listings
  sparkctl items delete 7 --ebay --etsy`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}

			c := newClient()
			result, err := c.DeleteItem(context.Background(), id, ebaySync, etsySync)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(result)
			}

			fmt.Printf("Deleted item %d\n", id)
			printSyncReport("eBay", result.Ebay)
			printSyncReport("Etsy", result.Etsy)
			return nil
		},
	}
	cmd.Flags().BoolVar(&ebaySync, "ebay", false, "also end the eBay listing")
	cmd.Flags().BoolVar(&etsySync, "etsy", false, "also delete the Etsy listing")

	return cmd
}

func itemsTransactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transactions <id>",
		Short: "List the sales an item appeared in",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}

			c := newClient()
			trs, err := c.ListItemTransactions(context.Background(), id)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(trs)
			}

			if len(trs) == 0 {
				fmt.Println("No transactions found.")
				return nil
			}

			return printTransactionsTable(trs)
		},
	}
}
