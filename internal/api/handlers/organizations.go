package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/TravisBoyd884/SecondSpark/internal/store"
	domain "github.com/TravisBoyd884/SecondSpark/pkg/types"
)

// OrganizationsHandler handles organization endpoints.
type OrganizationsHandler struct {
	store store.Store
}

// NewOrganizationsHandler creates a new OrganizationsHandler.
func NewOrganizationsHandler(s store.Store) *OrganizationsHandler {
	return &OrganizationsHandler{store: s}
}

// --- Input/Output types ---

// CreateOrganizationInput is the input for creating an organization.
type CreateOrganizationInput struct {
	Body struct {
		Name string `json:"name" minLength:"1" doc:"Organization name"`
	}
}

// CreateOrganizationOutput returns the created organization.
type CreateOrganizationOutput struct {
	Status int
	Body   domain.Organization
}

// GetOrganizationInput identifies an organization by id.
type GetOrganizationInput struct {
	ID int64 `path:"id" doc:"Organization id"`
}

// GetOrganizationOutput returns a single organization.
type GetOrganizationOutput struct {
	Body domain.Organization
}

// UpdateOrganizationInput renames an organization.
type UpdateOrganizationInput struct {
	ID   int64 `path:"id" doc:"Organization id"`
	Body struct {
		Name string `json:"name" minLength:"1" doc:"Organization name"`
	}
}

// ListOrganizationsOutput returns all organizations.
type ListOrganizationsOutput struct {
	Body struct {
		Organizations []domain.Organization `json:"organizations"`
	}
}

// OrganizationUsersOutput returns the users of an organization.
type OrganizationUsersOutput struct {
	Body struct {
		Users []domain.User `json:"users"`
	}
}

// OrganizationItemsOutput returns every item created within an organization.
type OrganizationItemsOutput struct {
	Body struct {
		Items []domain.Item `json:"items"`
	}
}

// --- Handlers ---

// CreateOrganization creates a new organization (tenant).
func (h *OrganizationsHandler) CreateOrganization(
	ctx context.Context,
	input *CreateOrganizationInput,
) (*CreateOrganizationOutput, error) {
	org := &domain.Organization{Name: input.Body.Name}
	if err := h.store.CreateOrganization(ctx, org); err != nil {
		return nil, huma.Error500InternalServerError("creating organization: " + err.Error())
	}
	return &CreateOrganizationOutput{Status: http.StatusCreated, Body: *org}, nil
}

// GetOrganization returns an organization by id.
func (h *OrganizationsHandler) GetOrganization(
	ctx context.Context,
	input *GetOrganizationInput,
) (*GetOrganizationOutput, error) {
	org, err := h.store.GetOrganization(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("organization not found")
	}
	return &GetOrganizationOutput{Body: *org}, nil
}

// ListOrganizations returns all organizations.
func (h *OrganizationsHandler) ListOrganizations(
	ctx context.Context,
	_ *struct{},
) (*ListOrganizationsOutput, error) {
	orgs, err := h.store.ListOrganizations(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing organizations: " + err.Error())
	}

	resp := &ListOrganizationsOutput{}
	resp.Body.Organizations = orgs
	return resp, nil
}

// UpdateOrganization renames an organization.
func (h *OrganizationsHandler) UpdateOrganization(
	ctx context.Context,
	input *UpdateOrganizationInput,
) (*GetOrganizationOutput, error) {
	org := &domain.Organization{ID: input.ID, Name: input.Body.Name}
	if err := h.store.UpdateOrganization(ctx, org); err != nil {
		return nil, huma.Error404NotFound("organization not found")
	}
	return &GetOrganizationOutput{Body: *org}, nil
}

// DeleteOrganization removes an organization and everything under it.
func (h *OrganizationsHandler) DeleteOrganization(
	ctx context.Context,
	input *GetOrganizationInput,
) (*struct{}, error) {
	if _, err := h.store.GetOrganization(ctx, input.ID); err != nil {
		return nil, huma.Error404NotFound("organization not found")
	}
	if err := h.store.DeleteOrganization(ctx, input.ID); err != nil {
		return nil, huma.Error500InternalServerError("deleting organization: " + err.Error())
	}
	return nil, nil
}

// ListOrganizationUsers returns the users belonging to an organization.
func (h *OrganizationsHandler) ListOrganizationUsers(
	ctx context.Context,
	input *GetOrganizationInput,
) (*OrganizationUsersOutput, error) {
	users, err := h.store.ListOrganizationUsers(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing organization users: " + err.Error())
	}

	resp := &OrganizationUsersOutput{}
	resp.Body.Users = users
	return resp, nil
}

// ListOrganizationItems returns every item created by the organization's users.
func (h *OrganizationsHandler) ListOrganizationItems(
	ctx context.Context,
	input *GetOrganizationInput,
) (*OrganizationItemsOutput, error) {
	items, err := h.store.ListOrganizationItems(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing organization items: " + err.Error())
	}

	resp := &OrganizationItemsOutput{}
	resp.Body.Items = items
	return resp, nil
}

// RegisterOrganizationRoutes registers organization endpoints with the Huma API.
func RegisterOrganizationRoutes(api huma.API, h *OrganizationsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-organization",
		Method:        http.MethodPost,
		Path:          "/api/v1/organizations",
		Summary:       "Create an organization",
		Tags:          []string{"organizations"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateOrganization)

	huma.Register(api, huma.Operation{
		OperationID: "get-organization",
		Method:      http.MethodGet,
		Path:        "/api/v1/organizations/{id}",
		Summary:     "Get an organization",
		Tags:        []string{"organizations"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetOrganization)

	huma.Register(api, huma.Operation{
		OperationID: "list-organizations",
		Method:      http.MethodGet,
		Path:        "/api/v1/organizations",
		Summary:     "List organizations",
		Tags:        []string{"organizations"},
	}, h.ListOrganizations)

	huma.Register(api, huma.Operation{
		OperationID: "update-organization",
		Method:      http.MethodPut,
		Path:        "/api/v1/organizations/{id}",
		Summary:     "Rename an organization",
		Tags:        []string{"organizations"},
		Errors:      []int{http.StatusNotFound},
	}, h.UpdateOrganization)

	huma.Register(api, huma.Operation{
		OperationID: "delete-organization",
		Method:      http.MethodDelete,
		Path:        "/api/v1/organizations/{id}",
		Summary:     "Delete an organization",
		Description: "Removes an organization; its users and their items cascade.",
		Tags:        []string{"organizations"},
		Errors:      []int{http.StatusNotFound},
	}, h.DeleteOrganization)

	huma.Register(api, huma.Operation{
		OperationID: "list-organization-users",
		Method:      http.MethodGet,
		Path:        "/api/v1/organizations/{id}/users",
		Summary:     "List an organization's users",
		Tags:        []string{"organizations"},
	}, h.ListOrganizationUsers)

	huma.Register(api, huma.Operation{
		OperationID: "list-organization-items",
		Method:      http.MethodGet,
		Path:        "/api/v1/organizations/{id}/items",
		Summary:     "List an organization's items",
		Tags:        []string{"organizations"},
	}, h.ListOrganizationItems)
}
