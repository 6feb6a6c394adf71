package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/TravisBoyd884/SecondSpark/internal/store"
	domain "github.com/TravisBoyd884/SecondSpark/pkg/types"
)

// UsersHandler handles user endpoints.
type UsersHandler struct {
	store store.Store
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(s store.Store) *UsersHandler {
	return &UsersHandler{store: s}
}

// --- Input/Output types ---

// GetUserInput identifies a user by id.
type GetUserInput struct {
	ID int64 `path:"id" doc:"User id"`
}

// GetUserOutput returns a single user.
type GetUserOutput struct {
	Body domain.User
}

// ListUsersOutput returns all users.
type ListUsersOutput struct {
	Body struct {
		Users []domain.User `json:"users"`
	}
}

// UpdateUserInput carries replacement values for a user's mutable fields.
type UpdateUserInput struct {
	ID   int64 `path:"id" doc:"User id"`
	Body struct {
		Username         string `json:"username"          minLength:"1"`
		Password         string `json:"password,omitempty"`
		Email            string `json:"email"`
		OrganizationID   int64  `json:"organization_id"`
		OrganizationRole string `json:"organization_role" enum:"owner,admin,member"`
		EbayAccountID    *int64 `json:"ebay_account_id,omitempty"`
		EtsyAccountID    *int64 `json:"etsy_account_id,omitempty"`
	}
}

// UserItemsOutput returns the items created by a user.
type UserItemsOutput struct {
	Body struct {
		Items []domain.Item `json:"items"`
	}
}

// UserTransactionsOutput returns a seller's transactions.
type UserTransactionsOutput struct {
	Body struct {
		Transactions []domain.Transaction `json:"transactions"`
	}
}

// --- Handlers ---

// GetUser returns a user by id.
func (h *UsersHandler) GetUser(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	u, err := h.store.GetUser(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("user not found")
	}
	return &GetUserOutput{Body: *u}, nil
}

// ListUsers returns all users.
func (h *UsersHandler) ListUsers(ctx context.Context, _ *struct{}) (*ListUsersOutput, error) {
	users, err := h.store.ListUsers(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing users: " + err.Error())
	}

	resp := &ListUsersOutput{}
	resp.Body.Users = users
	return resp, nil
}

// UpdateUser replaces a user's mutable fields. An empty password keeps the
// stored one.
func (h *UsersHandler) UpdateUser(ctx context.Context, input *UpdateUserInput) (*GetUserOutput, error) {
	existing, err := h.store.GetUser(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("user not found")
	}

	u := &domain.User{
		ID:               input.ID,
		Username:         input.Body.Username,
		Password:         input.Body.Password,
		Email:            input.Body.Email,
		OrganizationID:   input.Body.OrganizationID,
		OrganizationRole: input.Body.OrganizationRole,
		EbayAccountID:    input.Body.EbayAccountID,
		EtsyAccountID:    input.Body.EtsyAccountID,
	}
	if u.Password == "" {
		u.Password = existing.Password
	}

	if err := h.store.UpdateUser(ctx, u); err != nil {
		return nil, huma.Error500InternalServerError("updating user: " + err.Error())
	}
	return &GetUserOutput{Body: *u}, nil
}

// DeleteUser removes a user account.
func (h *UsersHandler) DeleteUser(ctx context.Context, input *GetUserInput) (*struct{}, error) {
	if _, err := h.store.GetUser(ctx, input.ID); err != nil {
		return nil, huma.Error404NotFound("user not found")
	}
	if err := h.store.DeleteUser(ctx, input.ID); err != nil {
		return nil, huma.Error500InternalServerError("deleting user: " + err.Error())
	}
	return nil, nil
}

// ListUserItems returns the items a user created.
func (h *UsersHandler) ListUserItems(ctx context.Context, input *GetUserInput) (*UserItemsOutput, error) {
	items, err := h.store.ListItemsByCreator(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing user items: " + err.Error())
	}

	resp := &UserItemsOutput{}
	resp.Body.Items = items
	return resp, nil
}

// ListUserTransactions returns the transactions where the user was the seller.
func (h *UsersHandler) ListUserTransactions(
	ctx context.Context,
	input *GetUserInput,
) (*UserTransactionsOutput, error) {
	trs, err := h.store.ListTransactionsBySeller(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing user transactions: " + err.Error())
	}

	resp := &UserTransactionsOutput{}
	resp.Body.Transactions = trs
	return resp, nil
}

// RegisterUserRoutes registers user endpoints with the Huma API.
func RegisterUserRoutes(api huma.API, h *UsersHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{id}",
		Summary:     "Get a user",
		Tags:        []string{"users"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetUser)

	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/api/v1/users",
		Summary:     "List users",
		Tags:        []string{"users"},
	}, h.ListUsers)

	huma.Register(api, huma.Operation{
		OperationID: "update-user",
		Method:      http.MethodPut,
		Path:        "/api/v1/users/{id}",
		Summary:     "Update a user",
		Tags:        []string{"users"},
		Errors:      []int{http.StatusNotFound},
	}, h.UpdateUser)

	huma.Register(api, huma.Operation{
		OperationID: "delete-user",
		Method:      http.MethodDelete,
		Path:        "/api/v1/users/{id}",
		Summary:     "Delete a user",
		Tags:        []string{"users"},
		Errors:      []int{http.StatusNotFound},
	}, h.DeleteUser)

	huma.Register(api, huma.Operation{
		OperationID: "list-user-items",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{id}/items",
		Summary:     "List a user's items",
		Tags:        []string{"users"},
	}, h.ListUserItems)

	huma.Register(api, huma.Operation{
		OperationID: "list-user-transactions",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{id}/transactions",
		Summary:     "List a user's transactions",
		Tags:        []string{"users"},
	}, h.ListUserTransactions)
}
