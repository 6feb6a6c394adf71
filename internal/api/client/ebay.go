package client

import (
	"context"
	"encoding/json"
	"net/url"
)

// GetEbayInventoryItem fetches the raw eBay inventory record for a SKU,
// proxied through the server so credentials stay server-side.
func (c *Client) GetEbayInventoryItem(ctx context.Context, sku string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/v1/ebay/inventory/"+url.PathEscape(sku), &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// SetEbayUserToken installs a seller OAuth token on the server.
func (c *Client) SetEbayUserToken(ctx context.Context, token string, expiresIn int) error {
	body := map[string]any{"token": token, "expires_in": expiresIn}
	return c.post(ctx, "/api/v1/ebay/user-token", body, nil)
}

// EbayTokenStatus reports whether the server holds a usable seller token.
func (c *Client) EbayTokenStatus(ctx context.Context) (bool, error) {
	var resp struct {
		HasUserToken bool `json:"has_user_token"`
	}
	if err := c.get(ctx, "/api/v1/ebay/user-token", &resp); err != nil {
		return false, err
	}
	return resp.HasUserToken, nil
}

// UpsertEbayInventoryItem creates or replaces the eBay catalog entry for a
// SKU and returns the raw upstream response.
func (c *Client) UpsertEbayInventoryItem(ctx context.Context, sku, title, description string) (json.RawMessage, error) {
	body := map[string]string{"title": title}
	if description != "" {
		body["description"] = description
	}
	var raw json.RawMessage
	if err := c.put(ctx, "/api/v1/ebay/inventory/"+url.PathEscape(sku), body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// DeleteEbayInventoryItem removes the eBay catalog entry for a SKU.
func (c *Client) DeleteEbayInventoryItem(ctx context.Context, sku string) error {
	return c.del(ctx, "/api/v1/ebay/inventory/"+url.PathEscape(sku), nil)
}
