// Package marketplace defines the shared contract for one-way item sync to
// external marketplaces. Each marketplace client translates a local item into
// the marketplace's listing representation and performs create/update/delete
// against its REST API, tolerating partial failure. This package owns no
// storage; clients are side-effecting only and the SKU is the single
// correlation key between local items and marketplace inventory.
package marketplace

import (
	"context"
	"encoding/json"

	domain "github.com/TravisBoyd884/SecondSpark/pkg/types"
)

// Environment tags for marketplace credentials.
const (
	EnvSandbox    = "sandbox"
	EnvProduction = "production"
)

// ListingItem is the sync unit passed into a client. It is a flattened view
// of a local item; the caller builds it, the client never reads the store.
type ListingItem struct {
	SKU         string
	Title       string
	Description string // defaults to Title when empty
	Category    string // informational only; never mapped to marketplace taxonomy
	Quantity    int
	Price       string // string-formatted decimal, defaults to "0.00"

	// Correlation ids previously returned by a marketplace, used only
	// for deletion.
	EbayOfferID   string
	EtsyListingID string
}

// FromItem builds a ListingItem from a stored item, applying the boundary
// defaults: description falls back to the title, price to "0.00".
func FromItem(it *domain.Item) ListingItem {
	li := ListingItem{
		SKU:           it.SKU,
		Title:         it.Title,
		Description:   it.Description,
		Category:      it.Category,
		Quantity:      it.Quantity,
		Price:         it.Price,
		EbayOfferID:   it.EbayOfferID,
		EtsyListingID: it.EtsyListingID,
	}
	li.applyDefaults()
	return li
}

func (li *ListingItem) applyDefaults() {
	if li.Description == "" {
		li.Description = li.Title
	}
	if li.Price == "" {
		li.Price = "0.00"
	}
}

// Normalized returns a copy with boundary defaults applied. Clients call
// this first so callers constructing a ListingItem by hand get the same
// defaults as FromItem.
func (li ListingItem) Normalized() ListingItem {
	li.applyDefaults()
	return li
}

// SyncResult records what happened per stage of a create-or-update sync.
// A nil stage means the stage was not attempted (for example, the offer and
// publish stages when no user token is present). Single-stage marketplaces
// populate only Inventory.
type SyncResult struct {
	Inventory json.RawMessage `json:"inventory,omitempty"`
	Offer     json.RawMessage `json:"offer,omitempty"`
	Publish   json.RawMessage `json:"publish,omitempty"`
}

// SyncClient is the uniform two-method contract callers depend on. Each
// implementation is free to vary step count and preconditions internally
// (eBay: inventory/offer/publish; Etsy: one flat listing call).
type SyncClient interface {
	// SyncItemCreateOrUpdate pushes the item to the marketplace. A failure
	// of a required stage propagates; a skipped stage (missing seller
	// authorization) is a valid terminal state, not an error.
	SyncItemCreateOrUpdate(ctx context.Context, item ListingItem) (*SyncResult, error)

	// SyncItemDelete removes the marketplace-side state best-effort. It
	// never returns marketplace-side failures: local state is
	// authoritative and remote cleanup is advisory.
	SyncItemDelete(ctx context.Context, item ListingItem) error
}
