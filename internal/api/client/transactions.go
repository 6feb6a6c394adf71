package client

import (
	"context"
	"fmt"
	"time"

	domain "github.com/TravisBoyd884/SecondSpark/pkg/types"
)

// TransactionRequest contains the fields the API accepts when recording a
// sale. ItemIDs links the items sold in the same call.
type TransactionRequest struct {
	SaleDate         *time.Time `json:"sale_date,omitempty"`
	Total            float64    `json:"total"`
	Tax              float64    `json:"tax,omitempty"`
	SellerCommission float64    `json:"seller_commission,omitempty"`
	SellerID         int64      `json:"seller_id"`
	ItemIDs          []int64    `json:"item_ids,omitempty"`
}

// TransactionResult is a transaction with its line items.
type TransactionResult struct {
	Transaction domain.Transaction       `json:"transaction"`
	Items       []domain.TransactionLine `json:"items"`
}

// CreateTransaction records a completed sale.
func (c *Client) CreateTransaction(ctx context.Context, req *TransactionRequest) (*TransactionResult, error) {
	var result TransactionResult
	if err := c.post(ctx, "/api/v1/transactions", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetTransaction returns a transaction with its line items.
func (c *Client) GetTransaction(ctx context.Context, id int64) (*TransactionResult, error) {
	var result TransactionResult
	if err := c.get(ctx, fmt.Sprintf("/api/v1/transactions/%d", id), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// LinkTransactionItem adds an item to a transaction.
func (c *Client) LinkTransactionItem(ctx context.Context, id, itemID int64) (*TransactionResult, error) {
	var result TransactionResult
	body := map[string]int64{"item_id": itemID}
	if err := c.post(ctx, fmt.Sprintf("/api/v1/transactions/%d/items", id), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UnlinkTransactionItem removes an item from a transaction.
func (c *Client) UnlinkTransactionItem(ctx context.Context, id, itemID int64) error {
	return c.del(ctx, fmt.Sprintf("/api/v1/transactions/%d/items/%d", id, itemID), nil)
}

// ListTransactions returns every recorded sale, newest first.
func (c *Client) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var resp struct {
		Transactions []domain.Transaction `json:"transactions"`
	}
	if err := c.get(ctx, "/api/v1/transactions", &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

// TransactionUpdate carries replacement values for a sale record. The seller
// cannot be changed after the fact; a nil SaleDate keeps the stored date.
type TransactionUpdate struct {
	SaleDate         *time.Time `json:"sale_date,omitempty"`
	Total            float64    `json:"total"`
	Tax              float64    `json:"tax,omitempty"`
	SellerCommission float64    `json:"seller_commission,omitempty"`
}

// UpdateTransaction corrects a sale record's amounts or date.
func (c *Client) UpdateTransaction(ctx context.Context, id int64, req *TransactionUpdate) (*TransactionResult, error) {
	var result TransactionResult
	if err := c.put(ctx, fmt.Sprintf("/api/v1/transactions/%d", id), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteTransaction removes a sale record. Its item links go with it; the
// items themselves survive.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/api/v1/transactions/%d", id), nil)
}

// ListTransactionItems returns the line items of a transaction.
func (c *Client) ListTransactionItems(ctx context.Context, id int64) ([]domain.TransactionLine, error) {
	var resp struct {
		Items []domain.TransactionLine `json:"items"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/v1/transactions/%d/items", id), &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}
