package ebay

// Typed payloads for the Sell Inventory API. These mirror the subset of the
// wire format this integration uses; anything eBay returns beyond it is
// carried opaquely as raw JSON in the sync result.

// Product is the catalog description of an inventory item.
type Product struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// InventoryItem is the body of PUT /inventory_item/{sku}.
type InventoryItem struct {
	Product Product `json:"product"`
}

// Amount is a currency-tagged money value. The value string passes through
// from the local item without validation.
type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// PricingSummary wraps the offer price.
type PricingSummary struct {
	Price Amount `json:"price"`
}

// ListingPolicies carries optional policy overrides on an offer.
type ListingPolicies struct {
	FulfillmentPolicyID string `json:"fulfillmentPolicyId,omitempty"`
	PaymentPolicyID     string `json:"paymentPolicyId,omitempty"`
	ReturnPolicyID      string `json:"returnPolicyId,omitempty"`
}

// OfferRequest is the body of POST /offer.
type OfferRequest struct {
	SKU                string           `json:"sku"`
	MarketplaceID      string           `json:"marketplaceId"`
	Format             string           `json:"format"`
	AvailableQuantity  int              `json:"availableQuantity"`
	PricingSummary     PricingSummary   `json:"pricingSummary"`
	ListingDescription string           `json:"listingDescription,omitempty"`
	CategoryID         string           `json:"categoryId,omitempty"`
	ListingPolicies    *ListingPolicies `json:"listingPolicies,omitempty"`
}

// OfferUpdate is the body of PATCH /offer/{offerId}. Nil fields are omitted
// so the update stays partial.
type OfferUpdate struct {
	AvailableQuantity *int             `json:"availableQuantity,omitempty"`
	PricingSummary    *PricingSummary  `json:"pricingSummary,omitempty"`
	ListingPolicies   *ListingPolicies `json:"listingPolicies,omitempty"`
}

// offerResponse is the slice of the POST /offer response this client reads.
type offerResponse struct {
	OfferID string `json:"offerId"`
}
