package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/TravisBoyd884/SecondSpark/internal/store"
	domain "github.com/TravisBoyd884/SecondSpark/pkg/types"
)

// TransactionsHandler handles sale transaction endpoints.
type TransactionsHandler struct {
	store store.Store
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(s store.Store) *TransactionsHandler {
	return &TransactionsHandler{store: s}
}

// --- Input/Output types ---

// CreateTransactionInput records a completed sale, optionally linking the
// items sold in the same call.
type CreateTransactionInput struct {
	Body struct {
		SaleDate         *time.Time `json:"sale_date,omitempty" doc:"Defaults to now"`
		Total            float64    `json:"total"`
		Tax              float64    `json:"tax,omitempty"`
		SellerCommission float64    `json:"seller_commission,omitempty"`
		SellerID         int64      `json:"seller_id"`
		ItemIDs          []int64    `json:"item_ids,omitempty" doc:"Items sold in this transaction"`
	}
}

// TransactionOutput returns a transaction with its line items.
type TransactionOutput struct {
	Status int
	Body   struct {
		Transaction domain.Transaction       `json:"transaction"`
		Items       []domain.TransactionLine `json:"items"`
	}
}

// GetTransactionInput identifies a transaction by id.
type GetTransactionInput struct {
	ID int64 `path:"id" doc:"Transaction id"`
}

// TransactionItemsOutput returns just the line items of a transaction.
type TransactionItemsOutput struct {
	Body struct {
		Items []domain.TransactionLine `json:"items"`
	}
}

// ListTransactionsOutput returns all transactions, newest first.
type ListTransactionsOutput struct {
	Body struct {
		Transactions []domain.Transaction `json:"transactions"`
	}
}

// UpdateTransactionInput carries replacement values for a sale record. The
// seller is fixed at creation time.
type UpdateTransactionInput struct {
	ID   int64 `path:"id" doc:"Transaction id"`
	Body struct {
		SaleDate         *time.Time `json:"sale_date,omitempty" doc:"Defaults to the stored date"`
		Total            float64    `json:"total"`
		Tax              float64    `json:"tax,omitempty"`
		SellerCommission float64    `json:"seller_commission,omitempty"`
	}
}

// LinkTransactionItemInput links an item to a transaction.
type LinkTransactionItemInput struct {
	ID   int64 `path:"id" doc:"Transaction id"`
	Body struct {
		ItemID int64 `json:"item_id"`
	}
}

// UnlinkTransactionItemInput removes an item from a transaction.
type UnlinkTransactionItemInput struct {
	ID     int64 `path:"id"     doc:"Transaction id"`
	ItemID int64 `path:"itemId" doc:"Item id"`
}

// --- Handlers ---

// CreateTransaction records a sale and links any items sold.
func (h *TransactionsHandler) CreateTransaction(
	ctx context.Context,
	input *CreateTransactionInput,
) (*TransactionOutput, error) {
	tr := &domain.Transaction{
		Total:            input.Body.Total,
		Tax:              input.Body.Tax,
		SellerCommission: input.Body.SellerCommission,
		SellerID:         input.Body.SellerID,
	}
	if input.Body.SaleDate != nil {
		tr.SaleDate = *input.Body.SaleDate
	} else {
		tr.SaleDate = time.Now()
	}

	if err := h.store.CreateTransaction(ctx, tr); err != nil {
		return nil, huma.Error500InternalServerError("creating transaction: " + err.Error())
	}

	for _, itemID := range input.Body.ItemIDs {
		ti := &domain.TransactionItem{ItemID: itemID, TransactionID: tr.ID}
		if err := h.store.AddTransactionItem(ctx, ti); err != nil {
			return nil, huma.Error500InternalServerError("linking transaction item: " + err.Error())
		}
	}

	lines, err := h.store.ListTransactionLines(ctx, tr.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing transaction items: " + err.Error())
	}

	resp := &TransactionOutput{Status: http.StatusCreated}
	resp.Body.Transaction = *tr
	resp.Body.Items = lines
	return resp, nil
}

// GetTransaction returns a transaction with its line items.
func (h *TransactionsHandler) GetTransaction(
	ctx context.Context,
	input *GetTransactionInput,
) (*TransactionOutput, error) {
	tr, err := h.store.GetTransaction(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("transaction not found")
	}

	lines, err := h.store.ListTransactionLines(ctx, tr.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing transaction items: " + err.Error())
	}

	resp := &TransactionOutput{Status: http.StatusOK}
	resp.Body.Transaction = *tr
	resp.Body.Items = lines
	return resp, nil
}

// ListTransactions returns all transactions, newest first.
func (h *TransactionsHandler) ListTransactions(
	ctx context.Context,
	_ *struct{},
) (*ListTransactionsOutput, error) {
	trs, err := h.store.ListTransactions(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing transactions: " + err.Error())
	}

	resp := &ListTransactionsOutput{}
	resp.Body.Transactions = trs
	return resp, nil
}

// UpdateTransaction corrects a sale record's amounts or date.
func (h *TransactionsHandler) UpdateTransaction(
	ctx context.Context,
	input *UpdateTransactionInput,
) (*TransactionOutput, error) {
	existing, err := h.store.GetTransaction(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("transaction not found")
	}

	tr := &domain.Transaction{
		ID:               input.ID,
		SaleDate:         existing.SaleDate,
		Total:            input.Body.Total,
		Tax:              input.Body.Tax,
		SellerCommission: input.Body.SellerCommission,
		SellerID:         existing.SellerID,
	}
	if input.Body.SaleDate != nil {
		tr.SaleDate = *input.Body.SaleDate
	}

	if err := h.store.UpdateTransaction(ctx, tr); err != nil {
		return nil, huma.Error500InternalServerError("updating transaction: " + err.Error())
	}

	lines, err := h.store.ListTransactionLines(ctx, tr.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing transaction items: " + err.Error())
	}

	resp := &TransactionOutput{Status: http.StatusOK}
	resp.Body.Transaction = *tr
	resp.Body.Items = lines
	return resp, nil
}

// DeleteTransaction removes a sale record. Item links cascade; the items
// themselves stay.
func (h *TransactionsHandler) DeleteTransaction(
	ctx context.Context,
	input *GetTransactionInput,
) (*struct{}, error) {
	if _, err := h.store.GetTransaction(ctx, input.ID); err != nil {
		return nil, huma.Error404NotFound("transaction not found")
	}
	if err := h.store.DeleteTransaction(ctx, input.ID); err != nil {
		return nil, huma.Error500InternalServerError("deleting transaction: " + err.Error())
	}
	return nil, nil
}

// ListTransactionItems returns the line items of a transaction.
func (h *TransactionsHandler) ListTransactionItems(
	ctx context.Context,
	input *GetTransactionInput,
) (*TransactionItemsOutput, error) {
	if _, err := h.store.GetTransaction(ctx, input.ID); err != nil {
		return nil, huma.Error404NotFound("transaction not found")
	}

	lines, err := h.store.ListTransactionLines(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing transaction items: " + err.Error())
	}

	resp := &TransactionItemsOutput{}
	resp.Body.Items = lines
	return resp, nil
}

// ListItemTransactions returns every transaction an item was sold in.
func (h *TransactionsHandler) ListItemTransactions(
	ctx context.Context,
	input *GetItemInput,
) (*ListTransactionsOutput, error) {
	if _, err := h.store.GetItem(ctx, input.ID); err != nil {
		return nil, huma.Error404NotFound("item not found")
	}

	trs, err := h.store.ListTransactionsByItem(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing item transactions: " + err.Error())
	}

	resp := &ListTransactionsOutput{}
	resp.Body.Transactions = trs
	return resp, nil
}

// LinkTransactionItem adds an item to an existing transaction.
func (h *TransactionsHandler) LinkTransactionItem(
	ctx context.Context,
	input *LinkTransactionItemInput,
) (*TransactionOutput, error) {
	tr, err := h.store.GetTransaction(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("transaction not found")
	}

	ti := &domain.TransactionItem{ItemID: input.Body.ItemID, TransactionID: tr.ID}
	if err := h.store.AddTransactionItem(ctx, ti); err != nil {
		return nil, huma.Error500InternalServerError("linking transaction item: " + err.Error())
	}

	lines, err := h.store.ListTransactionLines(ctx, tr.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing transaction items: " + err.Error())
	}

	resp := &TransactionOutput{Status: http.StatusOK}
	resp.Body.Transaction = *tr
	resp.Body.Items = lines
	return resp, nil
}

// UnlinkTransactionItem removes an item from a transaction.
func (h *TransactionsHandler) UnlinkTransactionItem(
	ctx context.Context,
	input *UnlinkTransactionItemInput,
) (*struct{}, error) {
	if _, err := h.store.GetTransaction(ctx, input.ID); err != nil {
		return nil, huma.Error404NotFound("transaction not found")
	}
	if err := h.store.RemoveTransactionItem(ctx, input.ID, input.ItemID); err != nil {
		return nil, huma.Error500InternalServerError("unlinking transaction item: " + err.Error())
	}
	return nil, nil
}

// RegisterTransactionRoutes registers transaction endpoints with the Huma API.
func RegisterTransactionRoutes(api huma.API, h *TransactionsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/api/v1/transactions",
		Summary:       "Record a sale",
		Tags:          []string{"transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateTransaction)

	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/api/v1/transactions/{id}",
		Summary:     "Get a transaction",
		Tags:        []string{"transactions"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetTransaction)

	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/api/v1/transactions",
		Summary:     "List transactions",
		Tags:        []string{"transactions"},
	}, h.ListTransactions)

	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/api/v1/transactions/{id}",
		Summary:     "Update a transaction",
		Tags:        []string{"transactions"},
		Errors:      []int{http.StatusNotFound},
	}, h.UpdateTransaction)

	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/api/v1/transactions/{id}",
		Summary:     "Delete a transaction",
		Tags:        []string{"transactions"},
		Errors:      []int{http.StatusNotFound},
	}, h.DeleteTransaction)

	huma.Register(api, huma.Operation{
		OperationID: "list-item-transactions",
		Method:      http.MethodGet,
		Path:        "/api/v1/items/{id}/transactions",
		Summary:     "List the transactions an item was sold in",
		Tags:        []string{"transactions"},
		Errors:      []int{http.StatusNotFound},
	}, h.ListItemTransactions)

	huma.Register(api, huma.Operation{
		OperationID: "list-transaction-items",
		Method:      http.MethodGet,
		Path:        "/api/v1/transactions/{id}/items",
		Summary:     "List the items sold in a transaction",
		Tags:        []string{"transactions"},
		Errors:      []int{http.StatusNotFound},
	}, h.ListTransactionItems)

	huma.Register(api, huma.Operation{
		OperationID: "link-transaction-item",
		Method:      http.MethodPost,
		Path:        "/api/v1/transactions/{id}/items",
		Summary:     "Link an item to a transaction",
		Tags:        []string{"transactions"},
		Errors:      []int{http.StatusNotFound},
	}, h.LinkTransactionItem)

	huma.Register(api, huma.Operation{
		OperationID: "unlink-transaction-item",
		Method:      http.MethodDelete,
		Path:        "/api/v1/transactions/{id}/items/{itemId}",
		Summary:     "Unlink an item from a transaction",
		Tags:        []string{"transactions"},
		Errors:      []int{http.StatusNotFound},
	}, h.UnlinkTransactionItem)
}
