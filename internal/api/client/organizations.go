package client

import (
	"context"
	"fmt"

	domain "github.com/TravisBoyd884/SecondSpark/pkg/types"
)

// CreateOrganization creates a new organization.
func (c *Client) CreateOrganization(ctx context.Context, name string) (*domain.Organization, error) {
	var created domain.Organization
	body := map[string]string{"name": name}
	if err := c.post(ctx, "/api/v1/organizations", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetOrganization returns a single organization by id.
func (c *Client) GetOrganization(ctx context.Context, id int64) (*domain.Organization, error) {
	var org domain.Organization
	if err := c.get(ctx, fmt.Sprintf("/api/v1/organizations/%d", id), &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// ListOrganizations returns all organizations.
func (c *Client) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	var resp struct {
		Organizations []domain.Organization `json:"organizations"`
	}
	if err := c.get(ctx, "/api/v1/organizations", &resp); err != nil {
		return nil, err
	}
	return resp.Organizations, nil
}

// DeleteOrganization deletes an organization and, via cascade, its users.
func (c *Client) DeleteOrganization(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/api/v1/organizations/%d", id), nil)
}

// ListOrganizationUsers returns the users belonging to an organization.
func (c *Client) ListOrganizationUsers(ctx context.Context, id int64) ([]domain.User, error) {
	var resp struct {
		Users []domain.User `json:"users"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/v1/organizations/%d/users", id), &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// ListOrganizationItems returns every item created within an organization.
func (c *Client) ListOrganizationItems(ctx context.Context, id int64) ([]domain.Item, error) {
	var resp struct {
		Items []domain.Item `json:"items"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/v1/organizations/%d/items", id), &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// UpdateOrganization renames an organization.
func (c *Client) UpdateOrganization(ctx context.Context, id int64, name string) (*domain.Organization, error) {
	var org domain.Organization
	body := map[string]string{"name": name}
	if err := c.put(ctx, fmt.Sprintf("/api/v1/organizations/%d", id), body, &org); err != nil {
		return nil, err
	}
	return &org, nil
}
