// Package domain defines the core business types for SecondSpark.
package domain

import (
	"time"
)

// Role constants for User.OrganizationRole.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Organization is a tenant: a group of users selling under one umbrella.
type Organization struct {
	ID   int64  `json:"organization_id" db:"organization_id"`
	Name string `json:"name"            db:"name"`
}

// User is an application user belonging to exactly one organization.
//
// Password holds the stored credential. Login compares it in plaintext,
// matching the legacy behavior; it is never serialized to JSON.
type User struct {
	ID               int64  `json:"user_id"           db:"user_id"`
	Username         string `json:"username"          db:"username"`
	Password         string `json:"-"                 db:"password"`
	Email            string `json:"email"             db:"email"`
	OrganizationID   int64  `json:"organization_id"   db:"organization_id"`
	OrganizationRole string `json:"organization_role" db:"organization_role"`

	// Optional links to marketplace seller accounts.
	EbayAccountID *int64 `json:"ebay_account_id,omitempty" db:"ebay_account_id"`
	EtsyAccountID *int64 `json:"etsy_account_id,omitempty" db:"etsy_account_id"`
}

// Item is a locally managed listing candidate. The SKU is the sole
// correlation key between the local record and marketplace inventory.
//
// Price is a string-formatted decimal carried as-is through the whole
// pipeline, including marketplace sync. No currency or locale validation
// is performed anywhere.
type Item struct {
	ID          int64      `json:"item_id"               db:"item_id"`
	SKU         string     `json:"sku"                   db:"sku"`
	Title       string     `json:"title"                 db:"title"`
	Price       string     `json:"price"                 db:"price"`
	Description string     `json:"description,omitempty" db:"description"`
	Category    string     `json:"category,omitempty"    db:"category"`
	ListDate    *time.Time `json:"list_date,omitempty"   db:"list_date"`
	Quantity    int        `json:"quantity"              db:"quantity"`
	CreatorID   int64      `json:"creator_id"            db:"creator_id"`

	// Marketplace correlation ids, stored after a successful sync and
	// used only for remote deletion.
	EbayOfferID   string `json:"ebay_offer_id,omitempty"   db:"ebay_offer_id"`
	EtsyListingID string `json:"etsy_listing_id,omitempty" db:"etsy_listing_id"`
}

// Transaction records a completed sale handled by a seller (a User).
type Transaction struct {
	ID               int64     `json:"transaction_id"    db:"transaction_id"`
	SaleDate         time.Time `json:"sale_date"         db:"sale_date"`
	Total            float64   `json:"total"             db:"total"`
	Tax              float64   `json:"tax"               db:"tax"`
	SellerCommission float64   `json:"seller_commission" db:"seller_commission"`
	SellerID         int64     `json:"seller_id"         db:"seller_id"`
}

// TransactionItem links an item to a transaction (many-to-many).
type TransactionItem struct {
	ID            int64 `json:"transaction_item_id" db:"transaction_item_id"`
	ItemID        int64 `json:"item_id"             db:"item_id"`
	TransactionID int64 `json:"transaction_id"      db:"transaction_id"`
}

// TransactionLine is an item row as it appears inside a transaction view.
type TransactionLine struct {
	TransactionItemID int64  `json:"transaction_item_id"`
	ItemID            int64  `json:"item_id"`
	Title             string `json:"title"`
	Description       string `json:"description,omitempty"`
	Category          string `json:"category,omitempty"`
}

// ItemImage is an uploaded photo attached to an item.
type ItemImage struct {
	ID        int64     `json:"image_id"   db:"image_id"`
	ItemID    int64     `json:"item_id"    db:"item_id"`
	URL       string    `json:"image_url"  db:"image_url"`
	IsPrimary bool      `json:"is_primary" db:"is_primary"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
