// Package etsy implements one-way item sync to the Etsy Open API v3. Etsy
// has no catalog/offer split: one listing call both describes and sells the
// item, so the sync surface collapses to a single stage. Etsy also has no
// sandbox; testing happens against private listings on a real shop.
package etsy

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/TravisBoyd884/SecondSpark/internal/marketplace"
	"github.com/TravisBoyd884/SecondSpark/internal/metrics"
)

const apiBaseURL = "https://openapi.etsy.com/v3/application"

// ClientOpts configures a Client. AccessToken is the seller's OAuth token,
// managed entirely outside this component; its absence makes every sync
// operation fail with AuthError rather than crash.
type ClientOpts struct {
	BaseURL     string
	ClientID    string // sent as x-api-key on every request
	AccessToken string
	ShopID      string
	Logger      *slog.Logger
}

// Client talks to the Etsy listings API for one shop.
type Client struct {
	httpClient  *resty.Client
	clientID    string
	accessToken string
	shopID      string
	log         *slog.Logger
}

// NewClient creates an Etsy sync client.
func NewClient(opts ClientOpts) *Client {
	c := &Client{
		clientID:    opts.ClientID,
		accessToken: opts.AccessToken,
		shopID:      opts.ShopID,
		log:         opts.Logger,
	}
	if c.log == nil {
		c.log = slog.Default()
	}

	baseURL := apiBaseURL
	if opts.BaseURL != "" {
		baseURL = opts.BaseURL
	}

	c.httpClient = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json")

	return c
}

// listingPayload is the simplified create-listing body. Etsy requires the
// who_made/when_made/is_supply attribution triple on every listing; the
// placeholder values match what the shop onboarding flow records.
type listingPayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Quantity    int      `json:"quantity"`
	Price       string   `json:"price"`
	WhoMade     string   `json:"who_made"`
	IsSupply    bool     `json:"is_supply"`
	WhenMade    string   `json:"when_made"`
	SKUs        []string `json:"skus,omitempty"`
}

func (c *Client) ready() error {
	if c.accessToken == "" {
		return &marketplace.AuthError{
			Tier:   marketplace.TierUser,
			Reason: "no Etsy access token configured",
		}
	}
	if c.shopID == "" {
		return &marketplace.AuthError{
			Tier:   marketplace.TierUser,
			Reason: "no Etsy shop id configured",
		}
	}
	return nil
}

func (c *Client) req(ctx context.Context) *resty.Request {
	return c.httpClient.NewRequest().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.accessToken).
		SetHeader("x-api-key", c.clientID).
		SetHeader("Content-Type", "application/json")
}

// handleError maps transport failures and >=400 responses onto the shared
// error taxonomy.
func handleError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return res, fmt.Errorf("executing request: %w", err)
	}
	if res.IsError() {
		return res, &marketplace.APIError{
			StatusCode: res.StatusCode(),
			Body:       string(res.Body()),
		}
	}
	return res, nil
}

// CreateOrUpdateListing pushes the item as a listing on the configured shop.
// POST /shops/{shop_id}/listings. Etsy assigns the listing id; callers store
// it from the response for later deletion.
func (c *Client) CreateOrUpdateListing(
	ctx context.Context,
	item marketplace.ListingItem,
) (json.RawMessage, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	item = item.Normalized()

	payload := listingPayload{
		Title:       item.Title,
		Description: item.Description,
		Quantity:    item.Quantity,
		Price:       item.Price,
		WhoMade:     "someone_else",
		IsSupply:    false,
		WhenMade:    "2020_2025",
	}
	if item.SKU != "" {
		payload.SKUs = []string{item.SKU}
	}

	metrics.MarketplaceAPICallsTotal.WithLabelValues("etsy").Inc()

	res, err := handleError(c.req(ctx).
		SetPathParams(map[string]string{"shopID": c.shopID}).
		SetBody(payload).
		Post("/shops/{shopID}/listings"))
	if err != nil {
		return nil, err
	}

	if len(res.Body()) == 0 {
		return json.RawMessage(`{}`), nil
	}
	return json.RawMessage(res.Body()), nil
}

// DeleteListing removes a listing by its Etsy-assigned id.
// DELETE /shops/{shop_id}/listings/{listing_id}.
func (c *Client) DeleteListing(ctx context.Context, listingID string) error {
	if err := c.ready(); err != nil {
		return err
	}

	metrics.MarketplaceAPICallsTotal.WithLabelValues("etsy").Inc()

	_, err := handleError(c.req(ctx).
		SetPathParams(map[string]string{
			"shopID":    c.shopID,
			"listingID": listingID,
		}).
		Delete("/shops/{shopID}/listings/{listingID}"))
	return err
}

// SyncItemCreateOrUpdate implements the shared sync contract with Etsy's
// single-stage shape: the listing response lands in SyncResult.Inventory and
// the offer/publish stages stay nil because the marketplace has no such
// split.
func (c *Client) SyncItemCreateOrUpdate(
	ctx context.Context,
	item marketplace.ListingItem,
) (*marketplace.SyncResult, error) {
	raw, err := c.CreateOrUpdateListing(ctx, item)
	if err != nil {
		metrics.SyncStageTotal.WithLabelValues("etsy", metrics.StageInventory, metrics.StatusError).Inc()
		return nil, err
	}
	metrics.SyncStageTotal.WithLabelValues("etsy", metrics.StageInventory, metrics.StatusOK).Inc()

	return &marketplace.SyncResult{Inventory: raw}, nil
}

// SyncItemDelete removes the Etsy listing best-effort. Without a stored
// listing id there is nothing addressable to delete; that is a warning, not
// an error. Marketplace-side failures are logged and swallowed; unrelated
// defects propagate.
func (c *Client) SyncItemDelete(ctx context.Context, item marketplace.ListingItem) error {
	if item.EtsyListingID == "" {
		c.log.Warn("no etsy listing id set; cannot delete listing", "sku", item.SKU)
		metrics.SyncStageTotal.WithLabelValues("etsy", metrics.StageDelete, metrics.StatusSkipped).Inc()
		return nil
	}

	if err := c.DeleteListing(ctx, item.EtsyListingID); err != nil {
		if !marketplace.IsAPIError(err) && !marketplace.IsAuthError(err) {
			return err
		}
		metrics.SyncStageTotal.WithLabelValues("etsy", metrics.StageDelete, metrics.StatusError).Inc()
		c.log.Warn("failed to delete etsy listing",
			"sku", item.SKU,
			"listing_id", item.EtsyListingID,
			"stage", metrics.StageDelete,
			"error", err,
		)
		return nil
	}
	metrics.SyncStageTotal.WithLabelValues("etsy", metrics.StageDelete, metrics.StatusOK).Inc()

	return nil
}

// ListingIDFromResponse extracts the numeric listing_id Etsy returns from a
// create call, for storage alongside the local item. Returns "" when the
// body has no listing_id.
func ListingIDFromResponse(raw json.RawMessage) string {
	var body struct {
		ListingID int64 `json:"listing_id"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.ListingID == 0 {
		return ""
	}
	return strconv.FormatInt(body.ListingID, 10)
}

var _ marketplace.SyncClient = (*Client)(nil)
