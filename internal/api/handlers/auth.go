package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/TravisBoyd884/SecondSpark/internal/store"
	domain "github.com/TravisBoyd884/SecondSpark/pkg/types"
)

// AuthHandler handles login and registration.
//
// Credentials are compared verbatim against the stored value. Hashing is a
// schema migration away and deliberately out of scope here.
type AuthHandler struct {
	store store.Store
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(s store.Store) *AuthHandler {
	return &AuthHandler{store: s}
}

// --- Input/Output types ---

// LoginInput is the login request.
type LoginInput struct {
	Body struct {
		Username string `json:"username" minLength:"1" doc:"Account username"`
		Password string `json:"password" minLength:"1" doc:"Account password"`
	}
}

// LoginOutput returns the authenticated user.
type LoginOutput struct {
	Body domain.User
}

// RegisterInput is the registration request.
type RegisterInput struct {
	Body struct {
		Username         string `json:"username"          minLength:"1" doc:"Account username"`
		Password         string `json:"password"          minLength:"1" doc:"Account password"`
		Email            string `json:"email"                           doc:"Contact email"`
		OrganizationID   int64  `json:"organization_id"                 doc:"Organization the user belongs to"`
		OrganizationRole string `json:"organization_role,omitempty"     doc:"Role within the organization" enum:"owner,admin,member,"`
	}
}

// RegisterOutput returns the created user.
type RegisterOutput struct {
	Status int
	Body   domain.User
}

// --- Handlers ---

// Login validates a username/password pair and returns the matching user.
// A wrong username and a wrong password are indistinguishable to the caller.
func (h *AuthHandler) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	u, err := h.store.ValidateCredentials(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		return nil, huma.Error401Unauthorized("invalid username or password")
	}
	return &LoginOutput{Body: *u}, nil
}

// Register creates a new user account in an existing organization.
func (h *AuthHandler) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if _, err := h.store.GetOrganization(ctx, input.Body.OrganizationID); err != nil {
		return nil, huma.Error404NotFound("organization not found")
	}

	u := &domain.User{
		Username:         input.Body.Username,
		Password:         input.Body.Password,
		Email:            input.Body.Email,
		OrganizationID:   input.Body.OrganizationID,
		OrganizationRole: input.Body.OrganizationRole,
	}
	if u.OrganizationRole == "" {
		u.OrganizationRole = domain.RoleMember
	}

	if err := h.store.CreateUser(ctx, u); err != nil {
		return nil, huma.Error409Conflict("creating user: " + err.Error())
	}

	return &RegisterOutput{Status: http.StatusCreated, Body: *u}, nil
}

// RegisterAuthRoutes registers authentication endpoints with the Huma API.
func RegisterAuthRoutes(api huma.API, h *AuthHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/api/v1/login",
		Summary:     "Log in",
		Description: "Validates credentials and returns the matching user.",
		Tags:        []string{"auth"},
		Errors:      []int{http.StatusUnauthorized},
	}, h.Login)

	huma.Register(api, huma.Operation{
		OperationID:   "register",
		Method:        http.MethodPost,
		Path:          "/api/v1/register",
		Summary:       "Register a user",
		Description:   "Creates a new user inside an existing organization.",
		Tags:          []string{"auth"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusNotFound, http.StatusConflict},
	}, h.Register)
}
