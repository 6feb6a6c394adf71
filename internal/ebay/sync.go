package ebay

import (
	"context"

	"github.com/TravisBoyd884/SecondSpark/internal/marketplace"
	"github.com/TravisBoyd884/SecondSpark/internal/metrics"
)

// SyncItemCreateOrUpdate pushes a local item to eBay in the fixed sequence
// inventory, offer, publish order. Each stage's output is a precondition for
// the next, so the steps are strictly sequential, with no rollback:
//
//  1. The inventory upsert always runs on the application token. Its failure
//     is fatal to the whole call, since without a catalog entry nothing
//     downstream can succeed.
//  2. Without a user token the call returns after the inventory stage with
//     offer and publish unattempted. That is a valid terminal state
//     (inventory synced, listing deferred until the seller logs in), not an
//     error.
//  3. With a user token, an offer is created and published. Offer or publish
//     failure propagates, leaving the inventory item upserted but
//     unpublished. That intermediate state is recoverable; a later call
//     retries offer creation against the same SKU.
//
// The category is never mapped to eBay's taxonomy: CreateOffer receives an
// empty categoryID. TODO: category mapping lives behind the CreateOffer
// categoryID argument once a taxonomy source exists.
func (c *Client) SyncItemCreateOrUpdate(
	ctx context.Context,
	item marketplace.ListingItem,
) (*marketplace.SyncResult, error) {
	item = item.Normalized()

	inv, err := c.UpsertInventoryItem(ctx, item.SKU, InventoryItem{
		Product: Product{
			Title:       item.Title,
			Description: item.Description,
		},
	})
	if err != nil {
		metrics.SyncStageTotal.WithLabelValues("ebay", metrics.StageInventory, metrics.StatusError).Inc()
		return nil, err
	}
	metrics.SyncStageTotal.WithLabelValues("ebay", metrics.StageInventory, metrics.StatusOK).Inc()

	result := &marketplace.SyncResult{Inventory: inv}

	if !c.tokens.HasUserToken() {
		c.log.Warn("no user token; inventory synced, listing deferred",
			"sku", item.SKU,
		)
		metrics.SyncStageTotal.WithLabelValues("ebay", metrics.StageOffer, metrics.StatusSkipped).Inc()
		return result, nil
	}

	offerID, offerRaw, err := c.CreateOffer(
		ctx,
		item.SKU,
		item.Price,
		item.Quantity,
		item.Description,
		"", // category mapping intentionally absent
		nil,
	)
	if err != nil {
		metrics.SyncStageTotal.WithLabelValues("ebay", metrics.StageOffer, metrics.StatusError).Inc()
		return nil, err
	}
	metrics.SyncStageTotal.WithLabelValues("ebay", metrics.StageOffer, metrics.StatusOK).Inc()
	result.Offer = offerRaw

	pub, err := c.PublishOffer(ctx, offerID)
	if err != nil {
		metrics.SyncStageTotal.WithLabelValues("ebay", metrics.StagePublish, metrics.StatusError).Inc()
		return nil, err
	}
	metrics.SyncStageTotal.WithLabelValues("ebay", metrics.StagePublish, metrics.StatusOK).Inc()
	result.Publish = pub

	return result, nil
}

// SyncItemDelete tears down the eBay-side state for a deleted local item.
// Both steps are best-effort: marketplace failures are logged and swallowed,
// never returned, because local state is authoritative and remote cleanup is
// advisory. Only the defined marketplace error kinds are swallowed; anything
// else (a programming error, a canceled context) propagates.
func (c *Client) SyncItemDelete(ctx context.Context, item marketplace.ListingItem) error {
	if item.EbayOfferID != "" {
		if c.tokens.HasUserToken() {
			if _, err := c.EndListing(ctx, item.EbayOfferID, "ITEM_DELETED"); err != nil {
				if !marketplace.IsAPIError(err) && !marketplace.IsAuthError(err) {
					return err
				}
				metrics.SyncStageTotal.WithLabelValues("ebay", metrics.StageEnd, metrics.StatusError).Inc()
				c.log.Warn("failed to end listing",
					"sku", item.SKU,
					"offer_id", item.EbayOfferID,
					"stage", metrics.StageEnd,
					"error", err,
				)
			} else {
				metrics.SyncStageTotal.WithLabelValues("ebay", metrics.StageEnd, metrics.StatusOK).Inc()
			}
		} else {
			c.log.Warn("no user token; listing cannot be ended remotely",
				"sku", item.SKU,
				"offer_id", item.EbayOfferID,
			)
			metrics.SyncStageTotal.WithLabelValues("ebay", metrics.StageEnd, metrics.StatusSkipped).Inc()
		}
	}

	if err := c.DeleteInventoryItem(ctx, item.SKU); err != nil {
		if !marketplace.IsAPIError(err) && !marketplace.IsAuthError(err) {
			return err
		}
		metrics.SyncStageTotal.WithLabelValues("ebay", metrics.StageDelete, metrics.StatusError).Inc()
		c.log.Warn("failed to delete inventory item",
			"sku", item.SKU,
			"stage", metrics.StageDelete,
			"error", err,
		)
		return nil
	}
	metrics.SyncStageTotal.WithLabelValues("ebay", metrics.StageDelete, metrics.StatusOK).Inc()

	return nil
}

var _ marketplace.SyncClient = (*Client)(nil)
