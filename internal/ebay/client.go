// Package ebay implements one-way item sync to the eBay Sell APIs
// (Inventory + Offer). Catalog operations run on the application token;
// offer and publish operations require a seller-scoped user token.
package ebay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/TravisBoyd884/SecondSpark/internal/marketplace"
	"github.com/TravisBoyd884/SecondSpark/internal/metrics"
)

const (
	prodInventoryBase    = "https://api.ebay.com/sell/inventory/v1"
	sandboxInventoryBase = "https://api.sandbox.ebay.com/sell/inventory/v1"

	defaultMarketplaceID = "EBAY_US"
	defaultCurrency      = "USD"

	formatFixedPrice = "FIXED_PRICE"
)

// Client talks to the eBay Sell Inventory API for a single set of
// credentials. All calls are synchronous round-trips with a bounded timeout;
// the client holds no state beyond the token cache inside TokenManager.
type Client struct {
	tokens        *TokenManager
	baseURL       string
	marketplaceID string
	client        *http.Client
	limiter       *marketplace.RateLimiter
	log           *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the Sell Inventory endpoint selected by env.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithMarketplaceID overrides the default EBAY_US marketplace.
func WithMarketplaceID(id string) Option {
	return func(c *Client) {
		c.marketplaceID = id
	}
}

// WithHTTPClient overrides the default 30s-timeout HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimiter gates every API call through the limiter.
func WithRateLimiter(r *marketplace.RateLimiter) Option {
	return func(c *Client) {
		c.limiter = r
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates an eBay sync client. env selects the sandbox or
// production Sell Inventory base URL.
func NewClient(tokens *TokenManager, env string, opts ...Option) *Client {
	c := &Client{
		tokens:        tokens,
		baseURL:       prodInventoryBase,
		marketplaceID: defaultMarketplaceID,
		client:        &http.Client{Timeout: 30 * time.Second},
		log:           slog.Default(),
	}
	if env == marketplace.EnvSandbox {
		c.baseURL = sandboxInventoryBase
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tokens exposes the token manager so callers can install a user token.
func (c *Client) Tokens() *TokenManager {
	return c.tokens
}

// do performs one authenticated API round-trip. A non-2xx response becomes
// *marketplace.APIError carrying the status and raw body.
func (c *Client) do(
	ctx context.Context,
	method, path, token string,
	body any,
) (json.RawMessage, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			if errors.Is(err, marketplace.ErrDailyLimitReached) {
				metrics.MarketplaceDailyLimitHits.WithLabelValues("ebay").Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}
	metrics.MarketplaceAPICallsTotal.WithLabelValues("ebay").Inc()

	var bodyReader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &marketplace.APIError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	if len(respBody) == 0 {
		return json.RawMessage(`{}`), nil
	}
	return json.RawMessage(respBody), nil
}

// appCall runs an application-tier request.
func (c *Client) appCall(
	ctx context.Context,
	method, path string,
	body any,
) (json.RawMessage, error) {
	token, err := c.tokens.ApplicationToken(ctx)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, method, path, token, body)
}

// userCall runs a user-tier request; the missing-token case surfaces as
// *marketplace.AuthError before any network I/O.
func (c *Client) userCall(
	ctx context.Context,
	method, path string,
	body any,
) (json.RawMessage, error) {
	token, err := c.tokens.RequireUserToken()
	if err != nil {
		return nil, err
	}
	return c.do(ctx, method, path, token, body)
}

// --- Inventory operations (application token) ---

// UpsertInventoryItem creates or replaces the catalog entry for a SKU.
// PUT /inventory_item/{sku}. Idempotent.
func (c *Client) UpsertInventoryItem(
	ctx context.Context,
	sku string,
	item InventoryItem,
) (json.RawMessage, error) {
	return c.appCall(ctx, http.MethodPut, "/inventory_item/"+url.PathEscape(sku), item)
}

// GetInventoryItem fetches the catalog entry for a SKU. A 404 is reported
// the same way as any other non-2xx: as *marketplace.APIError.
func (c *Client) GetInventoryItem(ctx context.Context, sku string) (json.RawMessage, error) {
	return c.appCall(ctx, http.MethodGet, "/inventory_item/"+url.PathEscape(sku), nil)
}

// DeleteInventoryItem removes the catalog entry for a SKU.
func (c *Client) DeleteInventoryItem(ctx context.Context, sku string) error {
	_, err := c.appCall(ctx, http.MethodDelete, "/inventory_item/"+url.PathEscape(sku), nil)
	return err
}

// --- Offer operations (user token) ---

// CreateOffer submits a fixed-price offer for a previously upserted SKU and
// returns the offerId eBay assigned along with the raw response. A 2xx
// response without an offerId is a malformed upstream response and surfaces
// as *marketplace.APIError, because nothing downstream can proceed without
// the identifier.
func (c *Client) CreateOffer(
	ctx context.Context,
	sku, price string,
	quantity int,
	description, categoryID string,
	policies *ListingPolicies,
) (string, json.RawMessage, error) {
	payload := OfferRequest{
		SKU:               sku,
		MarketplaceID:     c.marketplaceID,
		Format:            formatFixedPrice,
		AvailableQuantity: quantity,
		PricingSummary: PricingSummary{
			Price: Amount{Value: price, Currency: defaultCurrency},
		},
		ListingDescription: description,
		CategoryID:         categoryID,
		ListingPolicies:    policies,
	}

	raw, err := c.userCall(ctx, http.MethodPost, "/offer", payload)
	if err != nil {
		return "", nil, err
	}

	var resp offerResponse
	if err := json.Unmarshal(raw, &resp); err != nil || resp.OfferID == "" {
		return "", nil, &marketplace.APIError{
			StatusCode: http.StatusOK,
			Body:       "offer response missing offerId: " + string(raw),
		}
	}

	return resp.OfferID, raw, nil
}

// UpdateOffer applies a partial update to an existing offer.
// PATCH /offer/{offerId}.
func (c *Client) UpdateOffer(
	ctx context.Context,
	offerID string,
	update OfferUpdate,
) (json.RawMessage, error) {
	return c.userCall(ctx, http.MethodPatch, "/offer/"+url.PathEscape(offerID), update)
}

// PublishOffer transitions an offer to the live, purchasable state.
// POST /offer/{offerId}/publish.
func (c *Client) PublishOffer(ctx context.Context, offerID string) (json.RawMessage, error) {
	return c.userCall(ctx, http.MethodPost, "/offer/"+url.PathEscape(offerID)+"/publish", nil)
}

// EndListing takes an offer off sale by zeroing its available quantity.
// There is no dedicated retire endpoint in this flow; the reason is logged
// for observability only.
func (c *Client) EndListing(
	ctx context.Context,
	offerID, reason string,
) (json.RawMessage, error) {
	if reason == "" {
		reason = "OUT_OF_STOCK"
	}
	c.log.Info("ending listing", "offer_id", offerID, "reason", reason)

	zero := 0
	return c.UpdateOffer(ctx, offerID, OfferUpdate{AvailableQuantity: &zero})
}
