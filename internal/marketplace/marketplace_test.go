package marketplace_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TravisBoyd884/SecondSpark/internal/marketplace"
	domain "github.com/TravisBoyd884/SecondSpark/pkg/types"
)

func TestFromItem_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		item     domain.Item
		wantDesc string
		wantPx   string
	}{
		{
			name:     "description falls back to title",
			item:     domain.Item{SKU: "A1", Title: "Widget"},
			wantDesc: "Widget",
			wantPx:   "0.00",
		},
		{
			name:     "explicit fields pass through",
			item:     domain.Item{SKU: "A1", Title: "Widget", Description: "A fine widget", Price: "9.99"},
			wantDesc: "A fine widget",
			wantPx:   "9.99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			li := marketplace.FromItem(&tt.item)
			assert.Equal(t, tt.wantDesc, li.Description)
			assert.Equal(t, tt.wantPx, li.Price)
			assert.Equal(t, tt.item.SKU, li.SKU)
		})
	}
}

func TestAPIError_MessageContainsStatus(t *testing.T) {
	t.Parallel()

	err := &marketplace.APIError{StatusCode: 503, Body: `{"errors":[]}`}
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), `{"errors":[]}`)
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	authErr := &marketplace.AuthError{Tier: marketplace.TierUser, Reason: "not set"}
	apiErr := &marketplace.APIError{StatusCode: 400, Body: "bad request"}
	wrapped := fmt.Errorf("create offer: %w", apiErr)

	assert.True(t, marketplace.IsAuthError(authErr))
	assert.False(t, marketplace.IsAuthError(apiErr))
	assert.True(t, marketplace.IsAPIError(apiErr))
	assert.True(t, marketplace.IsAPIError(wrapped))
	assert.False(t, marketplace.IsAPIError(errors.New("plain")))
}

func TestAuthError_UnwrapsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := &marketplace.AuthError{
		Tier:   marketplace.TierApplication,
		Reason: "token exchange failed",
		Err:    cause,
	}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "application token")
}
