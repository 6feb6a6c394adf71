package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	apiclient "github.com/TravisBoyd884/SecondSpark/internal/api/client"
)

func transactionsCmd() *cobra.Command {
	txRoot := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Record and inspect sales",
	}

	txRoot.AddCommand(
		transactionsListCmd(),
		transactionsCreateCmd(),
		transactionsGetCmd(),
		transactionsUpdateCmd(),
		transactionsDeleteCmd(),
		transactionsLinkCmd(),
		transactionsUnlinkCmd(),
	)

	return txRoot
}

func transactionsCreateCmd() *cobra.Command {
	var (
		total      float64
		tax        float64
		commission float64
		sellerID   int64
		saleDate   string
		itemIDs    []int64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a completed sale",
		Example: `  # Record a sale of two items
  sparkctl tx create --total 64.99 --seller 2 --items 7,12

  # Backdate a sale
  sparkctl tx create --total 20.00 --seller 2 --date 2026-08-01`,
		RunE: func(_ *cobra.Command, _ []string) error {
			req := &apiclient.TransactionRequest{
				Total:            total,
				Tax:              tax,
				SellerCommission: commission,
				SellerID:         sellerID,
				ItemIDs:          itemIDs,
			}

			if saleDate != "" {
				d, err := time.Parse("2006-01-02", saleDate)
				if err != nil {
					return fmt.Errorf("invalid sale date %q, want YYYY-MM-DD", saleDate)
				}
				req.SaleDate = &d
			}

			c := newClient()
			result, err := c.CreateTransaction(context.Background(), req)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(result)
			}

			fmt.Printf("Recorded transaction %d\n\n", result.Transaction.ID)
			return printTransactionDetail(result)
		},
	}
	cmd.Flags().Float64Var(&total, "total", 0, "sale total")
	cmd.Flags().Float64Var(&tax, "tax", 0, "tax collected")
	cmd.Flags().Float64Var(&commission, "commission", 0, "seller commission")
	cmd.Flags().Int64Var(&sellerID, "seller", 0, "selling user id")
	cmd.Flags().StringVar(&saleDate, "date", "", "sale date (YYYY-MM-DD, default now)")
	cmd.Flags().Int64SliceVar(&itemIDs, "items", nil, "item ids sold in this transaction")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("seller")

	return cmd
}

func transactionsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a transaction with its line items",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q", args[0])
			}

			c := newClient()
			result, err := c.GetTransaction(context.Background(), id)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(result)
			}

			return printTransactionDetail(result)
		},
	}
}

func transactionsLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "link <id> <itemId>",
		Short:   "Add an item to a transaction",
		Example: `  sparkctl tx link 3 7`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q", args[0])
			}
			itemID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[1])
			}

			c := newClient()
			result, err := c.LinkTransactionItem(context.Background(), id, itemID)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(result)
			}

			return printTransactionDetail(result)
		},
	}
}

func transactionsUnlinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "unlink <id> <itemId>",
		Short:   "Remove an item from a transaction",
		Example: `  sparkctl tx unlink 3 7`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q", args[0])
			}
			itemID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[1])
			}

			c := newClient()
			if err := c.UnlinkTransactionItem(context.Background(), id, itemID); err != nil {
				return err
			}

			fmt.Printf("Unlinked item %d from transaction %d\n", itemID, id)
			return nil
		},
	}
}

func transactionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			trs, err := c.ListTransactions(context.Background())
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

func transactionsUpdateCmd() *cobra.Command {
	var (
		total      float64
		tax        float64
		commission float64
		saleDate   string
	)

	cmd := &cobra.Command{
		Use:     "update <id>",
		Short:   "Correct a transaction's amounts or date",
		Example: `  sparkctl tx update 3 --total 59.99 --tax 4.20`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q", args[0])
			}

			req := &apiclient.TransactionUpdate{
				Total:            total,
				Tax:              tax,
				SellerCommission: commission,
			}
			if saleDate != "" {
				d, err := time.Parse("2006-01-02", saleDate)
				if err != nil {
					return fmt.Errorf("invalid sale date %q, want YYYY-MM-DD", saleDate)
				}
				req.SaleDate = &d
			}

			c := newClient()
			result, err := c.UpdateTransaction(context.Background(), id, req)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(result)
			}

			return printTransactionDetail(result)
		},
	}
	cmd.Flags().Float64Var(&total, "total", 0, "sale total")
	cmd.Flags().Float64Var(&tax, "tax", 0, "tax collected")
	cmd.Flags().Float64Var(&commission, "commission", 0, "seller commission")
	cmd.Flags().StringVar(&saleDate, "date", "", "sale date (YYYY-MM-DD, default unchanged)")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

func transactionsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction and its item links",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q", args[0])
			}

			c := newClient()
			if err := c.DeleteTransaction(context.Background(), id); err != nil {
				return err
			}

			fmt.Printf("Deleted transaction %d\n", id)
			return nil
		},
	}
}
