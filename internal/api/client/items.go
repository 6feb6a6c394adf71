package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	domain "github.com/TravisBoyd884/SecondSpark/pkg/types"
)

// ItemRequest contains the fields the API accepts for create/update, plus
// per-marketplace sync flags.
type ItemRequest struct {
	SKU         string     `json:"sku"`
	Title       string     `json:"title"`
	Price       string     `json:"price,omitempty"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	ListDate    *time.Time `json:"list_date,omitempty"`
	Quantity    int        `json:"quantity"`
	CreatorID   int64      `json:"creator_id"`

	EbaySync bool `json:"ebay_sync,omitempty"`
	EtsySync bool `json:"etsy_sync,omitempty"`
}

// SyncReport mirrors the per-marketplace sync outcome the API reports.
type SyncReport struct {
	Synced bool            `json:"synced"`
	Error  string          `json:"error,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
}

// ItemResult is an item write response, including any sync reports.
type ItemResult struct {
	Item domain.Item `json:"item"`
	Ebay *SyncReport `json:"ebay,omitempty"`
	Etsy *SyncReport `json:"etsy,omitempty"`
}

// DeleteItemResult reports a local delete plus any remote cleanup.
type DeleteItemResult struct {
	Status string      `json:"status"`
	Ebay   *SyncReport `json:"ebay,omitempty"`
	Etsy   *SyncReport `json:"etsy,omitempty"`
}

// CreateItem creates an item, optionally pushing it to marketplaces.
func (c *Client) CreateItem(ctx context.Context, req *ItemRequest) (*ItemResult, error) {
	var result ItemResult
	if err := c.post(ctx, "/api/v1/items", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetItem returns a single item by id.
func (c *Client) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	var it domain.Item
	if err := c.get(ctx, fmt.Sprintf("/api/v1/items/%d", id), &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// GetItemBySKU returns a single item by SKU.
func (c *Client) GetItemBySKU(ctx context.Context, sku string) (*domain.Item, error) {
	var it domain.Item
	if err := c.get(ctx, "/api/v1/items/sku/"+url.PathEscape(sku), &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// ListItems returns all items.
func (c *Client) ListItems(ctx context.Context) ([]domain.Item, error) {
	var resp struct {
		Items []domain.Item `json:"items"`
	}
	if err := c.get(ctx, "/api/v1/items", &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// UpdateItem replaces an item's fields, optionally re-syncing marketplaces.
func (c *Client) UpdateItem(ctx context.Context, id int64, req *ItemRequest) (*ItemResult, error) {
	var result ItemResult
	if err := c.put(ctx, fmt.Sprintf("/api/v1/items/%d", id), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteItem deletes an item. With sync flags set, marketplace listings are
// cleaned up best-effort first.
func (c *Client) DeleteItem(ctx context.Context, id int64, ebaySync, etsySync bool) (*DeleteItemResult, error) {
	q := url.Values{}
	if ebaySync {
		q.Set("ebay_sync", "true")
	}
	if etsySync {
		q.Set("etsy_sync", "true")
	}

	path := fmt.Sprintf("/api/v1/items/%d", id)
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var result DeleteItemResult
	if err := c.del(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListItemTransactions returns the sales an item appeared in.
func (c *Client) ListItemTransactions(ctx context.Context, id int64) ([]domain.Transaction, error) {
	var resp struct {
		Transactions []domain.Transaction `json:"transactions"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/v1/items/%d/transactions", id), &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}
