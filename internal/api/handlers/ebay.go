package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/TravisBoyd884/SecondSpark/internal/ebay"
	"github.com/TravisBoyd884/SecondSpark/internal/marketplace"
)

// EbayHandler exposes a thin window onto the eBay integration: looking up
// what eBay holds for a SKU, and installing the externally obtained seller
// token that unlocks offer and publish operations.
type EbayHandler struct {
	client *ebay.Client
}

// NewEbayHandler creates a new EbayHandler.
func NewEbayHandler(c *ebay.Client) *EbayHandler {
	return &EbayHandler{client: c}
}

// --- Input/Output types ---

// GetEbayInventoryInput identifies an inventory item by SKU.
type GetEbayInventoryInput struct {
	SKU string `path:"sku" doc:"Item SKU"`
}

// GetEbayInventoryOutput returns the raw eBay inventory record.
type GetEbayInventoryOutput struct {
	Body json.RawMessage
}

// UpsertEbayInventoryInput replaces the eBay catalog entry for a SKU.
type UpsertEbayInventoryInput struct {
	SKU  string `path:"sku" doc:"Item SKU"`
	Body struct {
		Title       string `json:"title" minLength:"1" doc:"Catalog title"`
		Description string `json:"description,omitempty"`
	}
}

// SetUserTokenInput installs a seller OAuth token.
type SetUserTokenInput struct {
	Body struct {
		Token     string `json:"token"      minLength:"1" doc:"Seller OAuth access token"`
		ExpiresIn int    `json:"expires_in" minimum:"1"   doc:"Token lifetime in seconds"`
	}
}

// TokenStatusOutput reports whether a usable seller token is installed.
type TokenStatusOutput struct {
	Body struct {
		HasUserToken bool `json:"has_user_token"`
	}
}

// --- Handlers ---

// GetInventoryItem proxies a SKU lookup to eBay. Marketplace failures map to
// 502, credential problems to 503.
func (h *EbayHandler) GetInventoryItem(
	ctx context.Context,
	input *GetEbayInventoryInput,
) (*GetEbayInventoryOutput, error) {
	raw, err := h.client.GetInventoryItem(ctx, input.SKU)
	if err != nil {
		return nil, mapMarketplaceError(err)
	}
	return &GetEbayInventoryOutput{Body: raw}, nil
}

// UpsertInventoryItem proxies a catalog upsert to eBay.
func (h *EbayHandler) UpsertInventoryItem(
	ctx context.Context,
	input *UpsertEbayInventoryInput,
) (*GetEbayInventoryOutput, error) {
	raw, err := h.client.UpsertInventoryItem(ctx, input.SKU, ebay.InventoryItem{
		Product: ebay.Product{
			Title:       input.Body.Title,
			Description: input.Body.Description,
		},
	})
	if err != nil {
		return nil, mapMarketplaceError(err)
	}
	return &GetEbayInventoryOutput{Body: raw}, nil
}

// DeleteInventoryItem proxies a catalog delete to eBay.
func (h *EbayHandler) DeleteInventoryItem(
	ctx context.Context,
	input *GetEbayInventoryInput,
) (*struct{}, error) {
	if err := h.client.DeleteInventoryItem(ctx, input.SKU); err != nil {
		return nil, mapMarketplaceError(err)
	}
	return nil, nil
}

// SetUserToken installs the seller token obtained out-of-band.
func (h *EbayHandler) SetUserToken(
	ctx context.Context,
	input *SetUserTokenInput,
) (*TokenStatusOutput, error) {
	expiry := time.Now().Add(time.Duration(input.Body.ExpiresIn) * time.Second)
	h.client.Tokens().SetUserToken(input.Body.Token, expiry)

	resp := &TokenStatusOutput{}
	resp.Body.HasUserToken = true
	return resp, nil
}

// TokenStatus reports whether a seller token is currently installed.
func (h *EbayHandler) TokenStatus(ctx context.Context, _ *struct{}) (*TokenStatusOutput, error) {
	resp := &TokenStatusOutput{}
	resp.Body.HasUserToken = h.client.Tokens().HasUserToken()
	return resp, nil
}

// mapMarketplaceError translates the sync error taxonomy onto gateway status
// codes.
func mapMarketplaceError(err error) error {
	switch {
	case marketplace.IsAuthError(err):
		return huma.Error503ServiceUnavailable("marketplace authentication unavailable: " + err.Error())
	case marketplace.IsAPIError(err):
		return huma.Error502BadGateway("marketplace error: " + err.Error())
	default:
		return huma.Error500InternalServerError(err.Error())
	}
}

// RegisterEbayRoutes registers eBay proxy endpoints with the Huma API.
// Skipped entirely when eBay is not configured.
func RegisterEbayRoutes(api huma.API, h *EbayHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-ebay-inventory-item",
		Method:      http.MethodGet,
		Path:        "/api/v1/ebay/inventory/{sku}",
		Summary:     "Get the eBay inventory record for a SKU",
		Tags:        []string{"ebay"},
		Errors:      []int{http.StatusBadGateway, http.StatusServiceUnavailable},
	}, h.GetInventoryItem)

	huma.Register(api, huma.Operation{
		OperationID: "upsert-ebay-inventory-item",
		Method:      http.MethodPut,
		Path:        "/api/v1/ebay/inventory/{sku}",
		Summary:     "Create or replace the eBay inventory record for a SKU",
		Tags:        []string{"ebay"},
		Errors:      []int{http.StatusBadGateway, http.StatusServiceUnavailable},
	}, h.UpsertInventoryItem)

	huma.Register(api, huma.Operation{
		OperationID: "delete-ebay-inventory-item",
		Method:      http.MethodDelete,
		Path:        "/api/v1/ebay/inventory/{sku}",
		Summary:     "Delete the eBay inventory record for a SKU",
		Tags:        []string{"ebay"},
		Errors:      []int{http.StatusBadGateway, http.StatusServiceUnavailable},
	}, h.DeleteInventoryItem)

	huma.Register(api, huma.Operation{
		OperationID: "set-ebay-user-token",
		Method:      http.MethodPost,
		Path:        "/api/v1/ebay/user-token",
		Summary:     "Install a seller OAuth token",
		Description: "Stores the seller token obtained through eBay's authorization-code flow, enabling offer and publish stages of item sync.",
		Tags:        []string{"ebay"},
	}, h.SetUserToken)

	huma.Register(api, huma.Operation{
		OperationID: "get-ebay-token-status",
		Method:      http.MethodGet,
		Path:        "/api/v1/ebay/user-token",
		Summary:     "Check seller token status",
		Tags:        []string{"ebay"},
	}, h.TokenStatus)
}
