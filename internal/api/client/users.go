package client

import (
	"context"
	"fmt"

	domain "github.com/TravisBoyd884/SecondSpark/pkg/types"
)

// UserRequest contains the fields the API accepts for register/update.
type UserRequest struct {
	Username         string `json:"username"`
	Password         string `json:"password,omitempty"`
	Email            string `json:"email"`
	OrganizationID   int64  `json:"organization_id"`
	OrganizationRole string `json:"organization_role,omitempty"`
	EbayAccountID    *int64 `json:"ebay_account_id,omitempty"`
	EtsyAccountID    *int64 `json:"etsy_account_id,omitempty"`
}

// Login validates a username/password pair and returns the matching user.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.User, error) {
	var u domain.User
	body := map[string]string{"username": username, "password": password}
	if err := c.post(ctx, "/api/v1/login", body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, req *UserRequest) (*domain.User, error) {
	var created domain.User
	if err := c.post(ctx, "/api/v1/register", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetUser returns a single user by id.
func (c *Client) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := c.get(ctx, fmt.Sprintf("/api/v1/users/%d", id), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers returns all users.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var resp struct {
		Users []domain.User `json:"users"`
	}
	if err := c.get(ctx, "/api/v1/users", &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// UpdateUser replaces a user's mutable fields. An empty password keeps the
// stored one.
func (c *Client) UpdateUser(ctx context.Context, id int64, req *UserRequest) (*domain.User, error) {
	var updated domain.User
	if err := c.put(ctx, fmt.Sprintf("/api/v1/users/%d", id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUser deletes a user by id.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/api/v1/users/%d", id), nil)
}

// ListUserItems returns the items created by a user.
func (c *Client) ListUserItems(ctx context.Context, id int64) ([]domain.Item, error) {
	var resp struct {
		Items []domain.Item `json:"items"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/v1/users/%d/items", id), &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// ListUserTransactions returns a seller's transactions.
func (c *Client) ListUserTransactions(ctx context.Context, id int64) ([]domain.Transaction, error) {
	var resp struct {
		Transactions []domain.Transaction `json:"transactions"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/v1/users/%d/transactions", id), &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}
