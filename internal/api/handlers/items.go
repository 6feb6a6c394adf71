package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/TravisBoyd884/SecondSpark/internal/etsy"
	"github.com/TravisBoyd884/SecondSpark/internal/marketplace"
	"github.com/TravisBoyd884/SecondSpark/internal/store"
	domain "github.com/TravisBoyd884/SecondSpark/pkg/types"
)

// ItemsHandler handles item endpoints, including optional marketplace sync.
//
// Sync is strictly best-effort: the local write is authoritative and has
// already happened by the time any marketplace is called, so a sync failure
// is reported in the response body but never fails the request.
type ItemsHandler struct {
	store store.Store
	ebay  marketplace.SyncClient // nil when eBay is not configured
	etsy  marketplace.SyncClient // nil when Etsy is not configured
	log   *slog.Logger
}

// NewItemsHandler creates a new ItemsHandler. Either sync client may be nil.
func NewItemsHandler(s store.Store, ebayClient, etsyClient marketplace.SyncClient, log *slog.Logger) *ItemsHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ItemsHandler{store: s, ebay: ebayClient, etsy: etsyClient, log: log}
}

// --- Input/Output types ---

// ItemBody carries the writable item fields plus per-marketplace sync flags.
type ItemBody struct {
	SKU         string     `json:"sku"         minLength:"1" doc:"Stock keeping unit, unique per item"`
	Title       string     `json:"title"       minLength:"1" doc:"Listing title"`
	Price       string     `json:"price,omitempty"           doc:"Decimal price string, passed through verbatim"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"        doc:"Free-form local category; never mapped to marketplace taxonomies"`
	ListDate    *time.Time `json:"list_date,omitempty"`
	Quantity    int        `json:"quantity"    minimum:"0"`
	CreatorID   int64      `json:"creator_id"`

	EbaySync bool `json:"ebay_sync,omitempty" doc:"Push this item to eBay after the local write"`
	EtsySync bool `json:"etsy_sync,omitempty" doc:"Push this item to Etsy after the local write"`
}

// SyncReport describes what a single marketplace sync attempt did.
type SyncReport struct {
	Synced bool                    `json:"synced"`
	Error  string                  `json:"error,omitempty"`
	Result *marketplace.SyncResult `json:"result,omitempty"`
}

// CreateItemInput is the input for creating an item.
type CreateItemInput struct {
	Body ItemBody
}

// ItemOutput returns an item plus any marketplace sync reports.
type ItemOutput struct {
	Status int
	Body   struct {
		Item domain.Item `json:"item"`
		Ebay *SyncReport `json:"ebay,omitempty"`
		Etsy *SyncReport `json:"etsy,omitempty"`
	}
}

// GetItemInput identifies an item by id.
type GetItemInput struct {
	ID int64 `path:"id" doc:"Item id"`
}

// GetItemOutput returns a single item.
type GetItemOutput struct {
	Body domain.Item
}

// GetItemBySKUInput identifies an item by SKU.
type GetItemBySKUInput struct {
	SKU string `path:"sku" doc:"Item SKU"`
}

// ListItemsOutput returns all items.
type ListItemsOutput struct {
	Body struct {
		Items []domain.Item `json:"items"`
	}
}

// UpdateItemInput carries replacement values for an item.
type UpdateItemInput struct {
	ID   int64 `path:"id" doc:"Item id"`
	Body ItemBody
}

// DeleteItemInput identifies an item to delete, with optional sync flags.
type DeleteItemInput struct {
	ID       int64 `path:"id"         doc:"Item id"`
	EbaySync bool  `query:"ebay_sync" doc:"Also end the eBay listing"`
	EtsySync bool  `query:"etsy_sync" doc:"Also delete the Etsy listing"`
}

// DeleteItemOutput reports the local delete plus any remote cleanup.
type DeleteItemOutput struct {
	Body struct {
		Status string      `json:"status"`
		Ebay   *SyncReport `json:"ebay,omitempty"`
		Etsy   *SyncReport `json:"etsy,omitempty"`
	}
}

// --- Handlers ---

// CreateItem stores a new item, then optionally pushes it to marketplaces.
func (h *ItemsHandler) CreateItem(ctx context.Context, input *CreateItemInput) (*ItemOutput, error) {
	it := itemFromBody(&input.Body)

	if err := h.store.CreateItem(ctx, it); err != nil {
		return nil, huma.Error409Conflict("creating item: " + err.Error())
	}

	resp := &ItemOutput{Status: http.StatusCreated}
	h.runSyncs(ctx, it, input.Body.EbaySync, input.Body.EtsySync, &resp.Body.Ebay, &resp.Body.Etsy)
	resp.Body.Item = *it
	return resp, nil
}

// GetItem returns an item by id.
func (h *ItemsHandler) GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error) {
	it, err := h.store.GetItem(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("item not found")
	}
	return &GetItemOutput{Body: *it}, nil
}

// GetItemBySKU returns an item by its SKU.
func (h *ItemsHandler) GetItemBySKU(ctx context.Context, input *GetItemBySKUInput) (*GetItemOutput, error) {
	it, err := h.store.GetItemBySKU(ctx, input.SKU)
	if err != nil {
		return nil, huma.Error404NotFound("item not found")
	}
	return &GetItemOutput{Body: *it}, nil
}

// ListItems returns all items.
func (h *ItemsHandler) ListItems(ctx context.Context, _ *struct{}) (*ListItemsOutput, error) {
	items, err := h.store.ListItems(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing items: " + err.Error())
	}

	resp := &ListItemsOutput{}
	resp.Body.Items = items
	return resp, nil
}

// UpdateItem replaces an item's fields, then optionally re-syncs marketplaces.
func (h *ItemsHandler) UpdateItem(ctx context.Context, input *UpdateItemInput) (*ItemOutput, error) {
	existing, err := h.store.GetItem(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("item not found")
	}

	it := itemFromBody(&input.Body)
	it.ID = input.ID
	it.CreatorID = existing.CreatorID
	it.EbayOfferID = existing.EbayOfferID
	it.EtsyListingID = existing.EtsyListingID

	if err := h.store.UpdateItem(ctx, it); err != nil {
		return nil, huma.Error500InternalServerError("updating item: " + err.Error())
	}

	resp := &ItemOutput{Status: http.StatusOK}
	h.runSyncs(ctx, it, input.Body.EbaySync, input.Body.EtsySync, &resp.Body.Ebay, &resp.Body.Etsy)
	resp.Body.Item = *it
	return resp, nil
}

// DeleteItem removes an item locally and, when asked, cleans up marketplace
// listings first. Remote cleanup is advisory; the local delete always runs.
func (h *ItemsHandler) DeleteItem(ctx context.Context, input *DeleteItemInput) (*DeleteItemOutput, error) {
	it, err := h.store.GetItem(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("item not found")
	}

	resp := &DeleteItemOutput{}

	li := marketplace.FromItem(it)
	if input.EbaySync {
		resp.Body.Ebay = h.syncDelete(ctx, h.ebay, "ebay", li)
	}
	if input.EtsySync {
		resp.Body.Etsy = h.syncDelete(ctx, h.etsy, "etsy", li)
	}

	if err := h.store.DeleteItem(ctx, input.ID); err != nil {
		return nil, huma.Error500InternalServerError("deleting item: " + err.Error())
	}

	resp.Body.Status = "deleted"
	return resp, nil
}

// --- Sync orchestration ---

func itemFromBody(b *ItemBody) *domain.Item {
	return &domain.Item{
		SKU:         b.SKU,
		Title:       b.Title,
		Price:       b.Price,
		Description: b.Description,
		Category:    b.Category,
		ListDate:    b.ListDate,
		Quantity:    b.Quantity,
		CreatorID:   b.CreatorID,
	}
}

func (h *ItemsHandler) runSyncs(
	ctx context.Context,
	it *domain.Item,
	ebaySync, etsySync bool,
	ebayReport, etsyReport **SyncReport,
) {
	if ebaySync {
		*ebayReport = h.syncCreateOrUpdate(ctx, h.ebay, "ebay", it)
	}
	if etsySync {
		*etsyReport = h.syncCreateOrUpdate(ctx, h.etsy, "etsy", it)
	}
}

// syncCreateOrUpdate pushes an item to one marketplace and stores any newly
// assigned correlation id. Failures land in the report, never in the request
// error path.
func (h *ItemsHandler) syncCreateOrUpdate(
	ctx context.Context,
	client marketplace.SyncClient,
	name string,
	it *domain.Item,
) *SyncReport {
	if client == nil {
		return &SyncReport{Error: name + " sync not configured"}
	}

	result, err := client.SyncItemCreateOrUpdate(ctx, marketplace.FromItem(it))
	if err != nil {
		h.log.Warn("marketplace sync failed",
			"marketplace", name, "sku", it.SKU, "error", err)
		return &SyncReport{Error: err.Error()}
	}

	h.recordCorrelationIDs(ctx, name, it, result)
	return &SyncReport{Synced: true, Result: result}
}

func (h *ItemsHandler) syncDelete(
	ctx context.Context,
	client marketplace.SyncClient,
	name string,
	li marketplace.ListingItem,
) *SyncReport {
	if client == nil {
		return &SyncReport{Error: name + " sync not configured"}
	}

	if err := client.SyncItemDelete(ctx, li); err != nil {
		h.log.Warn("marketplace delete sync failed",
			"marketplace", name, "sku", li.SKU, "error", err)
		return &SyncReport{Error: err.Error()}
	}
	return &SyncReport{Synced: true}
}

func (h *ItemsHandler) recordCorrelationIDs(
	ctx context.Context,
	name string,
	it *domain.Item,
	result *marketplace.SyncResult,
) {
	var ebayOfferID, etsyListingID *string

	switch name {
	case "ebay":
		if id := offerIDFromResult(result); id != "" && id != it.EbayOfferID {
			it.EbayOfferID = id
			ebayOfferID = &id
		}
	case "etsy":
		if id := etsy.ListingIDFromResponse(result.Inventory); id != "" && id != it.EtsyListingID {
			it.EtsyListingID = id
			etsyListingID = &id
		}
	}

	if ebayOfferID == nil && etsyListingID == nil {
		return
	}
	if err := h.store.SetItemMarketplaceIDs(ctx, it.ID, ebayOfferID, etsyListingID); err != nil {
		h.log.Warn("failed to store marketplace correlation ids",
			"marketplace", name, "sku", it.SKU, "error", err)
	}
}

// offerIDFromResult pulls the offerId out of a raw offer-stage response.
func offerIDFromResult(result *marketplace.SyncResult) string {
	if result == nil || result.Offer == nil {
		return ""
	}
	var body struct {
		OfferID string `json:"offerId"`
	}
	if err := json.Unmarshal(result.Offer, &body); err != nil {
		return ""
	}
	return body.OfferID
}

// RegisterItemRoutes registers item endpoints with the Huma API.
func RegisterItemRoutes(api huma.API, h *ItemsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-item",
		Method:        http.MethodPost,
		Path:          "/api/v1/items",
		Summary:       "Create an item",
		Description:   "Stores an item locally, then optionally pushes it to eBay and Etsy. Sync failures are reported in the body, never as request errors.",
		Tags:          []string{"items"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusConflict},
	}, h.CreateItem)

	huma.Register(api, huma.Operation{
		OperationID: "get-item",
		Method:      http.MethodGet,
		Path:        "/api/v1/items/{id}",
		Summary:     "Get an item",
		Tags:        []string{"items"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetItem)

	huma.Register(api, huma.Operation{
		OperationID: "get-item-by-sku",
		Method:      http.MethodGet,
		Path:        "/api/v1/items/sku/{sku}",
		Summary:     "Get an item by SKU",
		Tags:        []string{"items"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetItemBySKU)

	huma.Register(api, huma.Operation{
		OperationID: "list-items",
		Method:      http.MethodGet,
		Path:        "/api/v1/items",
		Summary:     "List items",
		Tags:        []string{"items"},
	}, h.ListItems)

	huma.Register(api, huma.Operation{
		OperationID: "update-item",
		Method:      http.MethodPut,
		Path:        "/api/v1/items/{id}",
		Summary:     "Update an item",
		Tags:        []string{"items"},
		Errors:      []int{http.StatusNotFound},
	}, h.UpdateItem)

	huma.Register(api, huma.Operation{
		OperationID: "delete-item",
		Method:      http.MethodDelete,
		Path:        "/api/v1/items/{id}",
		Summary:     "Delete an item",
		Description: "Deletes the local item. With sync flags set, marketplace listings are cleaned up best-effort first.",
		Tags:        []string{"items"},
		Errors:      []int{http.StatusNotFound},
	}, h.DeleteItem)
}
