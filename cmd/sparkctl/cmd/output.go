package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/TravisBoyd884/SecondSpark/internal/api/client"
	domain "github.com/TravisBoyd884/SecondSpark/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printOrgsTable(orgs []domain.Organization) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\n")
	for i := range orgs {
		tw.writef("%d\t%s\n", orgs[i].ID, orgs[i].Name)
	}
	return tw.finish()
}

func printUsersTable(users []domain.User) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tUSERNAME\tEMAIL\tORG\tROLE\n")
	for i := range users {
		tw.writef("%d\t%s\t%s\t%d\t%s\n",
			users[i].ID,
			users[i].Username,
			users[i].Email,
			users[i].OrganizationID,
			users[i].OrganizationRole,
		)
	}
	return tw.finish()
}

func printUserDetail(u *domain.User) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%d\n", u.ID)
	tw.writef("Username:\t%s\n", u.Username)
	tw.writef("Email:\t%s\n", u.Email)
	tw.writef("Organization:\t%d\n", u.OrganizationID)
	tw.writef("Role:\t%s\n", u.OrganizationRole)
	if u.EbayAccountID != nil {
		tw.writef("eBay Account:\t%d\n", *u.EbayAccountID)
	}
	if u.EtsyAccountID != nil {
		tw.writef("Etsy Account:\t%d\n", *u.EtsyAccountID)
	}
	return tw.finish()
}

func printItemsTable(items []domain.Item) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tSKU\tTITLE\tPRICE\tQTY\tEBAY\tETSY\n")
	for i := range items {
		tw.writef("%d\t%s\t%s\t$%s\t%d\t%s\t%s\n",
			items[i].ID,
			items[i].SKU,
			truncate(items[i].Title, 40),
			items[i].Price,
			items[i].Quantity,
			dash(items[i].EbayOfferID),
			dash(items[i].EtsyListingID),
		)
	}
	return tw.finish()
}

func printItemDetail(it *domain.Item) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%d\n", it.ID)
	tw.writef("SKU:\t%s\n", it.SKU)
	tw.writef("Title:\t%s\n", it.Title)
	tw.writef("Price:\t$%s\n", it.Price)
	tw.writef("Quantity:\t%d\n", it.Quantity)
	tw.writef("Category:\t%s\n", dash(it.Category))
	tw.writef("Creator:\t%d\n", it.CreatorID)
	if it.ListDate != nil {
		tw.writef("Listed:\t%s\n", it.ListDate.Format("2006-01-02"))
	}
	tw.writef("eBay Offer:\t%s\n", dash(it.EbayOfferID))
	tw.writef("Etsy Listing:\t%s\n", dash(it.EtsyListingID))
	return tw.finish()
}

func printSyncReport(name string, r *apiclient.SyncReport) {
	if r == nil {
		return
	}
	if r.Synced {
		fmt.Printf("%s: synced\n", name)
		return
	}
	fmt.Printf("%s: failed (%s)\n", name, r.Error)
}

func printTransactionDetail(result *apiclient.TransactionResult) error {
	tx := &result.Transaction
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%d\n", tx.ID)
	tw.writef("Sale Date:\t%s\n", tx.SaleDate.Format("2006-01-02 15:04:05"))
	tw.writef("Total:\t$%.2f\n", tx.Total)
	tw.writef("Tax:\t$%.2f\n", tx.Tax)
	tw.writef("Commission:\t$%.2f\n", tx.SellerCommission)
	tw.writef("Seller:\t%d\n", tx.SellerID)
	if err := tw.finish(); err != nil {
		return err
	}

	if len(result.Items) == 0 {
		return nil
	}

	fmt.Println()
	tw = newTabWriter(os.Stdout)
	tw.writef("ITEM\tTITLE\tCATEGORY\n")
	for i := range result.Items {
		tw.writef("%d\t%s\t%s\n",
			result.Items[i].ItemID,
			truncate(result.Items[i].Title, 40),
			dash(result.Items[i].Category),
		)
	}
	return tw.finish()
}

func printTransactionsTable(txs []domain.Transaction) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tSALE DATE\tTOTAL\tTAX\tCOMMISSION\tSELLER\n")
	for i := range txs {
		tw.writef("%d\t%s\t$%.2f\t$%.2f\t$%.2f\t%d\n",
			txs[i].ID,
			txs[i].SaleDate.Format("2006-01-02"),
			txs[i].Total,
			txs[i].Tax,
			txs[i].SellerCommission,
			txs[i].SellerID,
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
