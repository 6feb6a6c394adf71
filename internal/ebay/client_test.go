package ebay_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TravisBoyd884/SecondSpark/internal/ebay"
	"github.com/TravisBoyd884/SecondSpark/internal/marketplace"
)

func TestClient_OfferOpsRequireUserToken(t *testing.T) {
	t.Parallel()

	f := newFakeSell()
	c := newTestClient(t, f)

	ctx := context.Background()

	_, _, err := c.CreateOffer(ctx, "A1", "9.99", 1, "desc", "", nil)
	assert.True(t, marketplace.IsAuthError(err))

	_, err = c.PublishOffer(ctx, "O-1")
	assert.True(t, marketplace.IsAuthError(err))

	_, err = c.EndListing(ctx, "O-1", "OUT_OF_STOCK")
	assert.True(t, marketplace.IsAuthError(err))

	// No request reaches the API without a token.
	assert.Empty(t, f.Calls())

	// Once a user token is set, the same operations delegate to the
	// transport and succeed.
	c.Tokens().SetUserToken("user-tok", time.Time{})

	_, _, err = c.CreateOffer(ctx, "A1", "9.99", 1, "desc", "", nil)
	require.NoError(t, err)

	_, err = c.PublishOffer(ctx, "O-1")
	require.NoError(t, err)

	_, err = c.EndListing(ctx, "O-1", "OUT_OF_STOCK")
	require.NoError(t, err)
}

func TestClient_CreateOfferPayload(t *testing.T) {
	t.Parallel()

	var got map[string]any

	tokenSrv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(tokenJSON("app-token"))
		}),
	)
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, "Bearer user-tok", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"offerId":"O-42"}`))
		}),
	)
	defer apiSrv.Close()

	tm := ebay.NewTokenManager("id", "secret", marketplace.EnvSandbox,
		ebay.WithTokenURL(tokenSrv.URL))
	tm.SetUserToken("user-tok", time.Time{})

	c := ebay.NewClient(tm, marketplace.EnvSandbox, ebay.WithBaseURL(apiSrv.URL))

	offerID, _, err := c.CreateOffer(
		context.Background(),
		"A1", "19.99", 5, "A fine widget", "", nil,
	)
	require.NoError(t, err)
	assert.Equal(t, "O-42", offerID)

	assert.Equal(t, "A1", got["sku"])
	assert.Equal(t, "EBAY_US", got["marketplaceId"])
	assert.Equal(t, "FIXED_PRICE", got["format"])
	assert.Equal(t, float64(5), got["availableQuantity"])
	assert.Equal(t, "A fine widget", got["listingDescription"])

	pricing := got["pricingSummary"].(map[string]any)["price"].(map[string]any)
	assert.Equal(t, "19.99", pricing["value"])
	assert.Equal(t, "USD", pricing["currency"])

	// Category mapping is an unimplemented extension point; the field is
	// omitted entirely rather than sent empty.
	_, hasCategory := got["categoryId"]
	assert.False(t, hasCategory)
}

func TestClient_NonOKStatusBecomesAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
	}{
		{name: "not found", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError},
		{name: "rate limited", status: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFakeSell()
			f.failures["GET /inventory_item/A1"] = tt.status
			c := newTestClient(t, f)

			_, err := c.GetInventoryItem(context.Background(), "A1")
			require.Error(t, err)

			var apiErr *marketplace.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Contains(t, err.Error(), strconv.Itoa(tt.status))
			assert.Contains(t, apiErr.Error(), "boom")
		})
	}
}

func TestClient_EndListingZeroesQuantity(t *testing.T) {
	t.Parallel()

	var got map[string]any

	tokenSrv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(tokenJSON("app-token"))
		}),
	)
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/offer/O-7", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{}`))
		}),
	)
	defer apiSrv.Close()

	tm := ebay.NewTokenManager("id", "secret", marketplace.EnvSandbox,
		ebay.WithTokenURL(tokenSrv.URL))
	tm.SetUserToken("user-tok", time.Time{})

	c := ebay.NewClient(tm, marketplace.EnvSandbox, ebay.WithBaseURL(apiSrv.URL))

	_, err := c.EndListing(context.Background(), "O-7", "OUT_OF_STOCK")
	require.NoError(t, err)

	assert.Equal(t, float64(0), got["availableQuantity"])
}

func TestClient_RateLimiterGatesCalls(t *testing.T) {
	t.Parallel()

	f := newFakeSell()

	tokenSrv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(tokenJSON("app-token"))
		}),
	)
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(f)
	defer apiSrv.Close()

	tm := ebay.NewTokenManager("id", "secret", marketplace.EnvSandbox,
		ebay.WithTokenURL(tokenSrv.URL))

	c := ebay.NewClient(tm, marketplace.EnvSandbox,
		ebay.WithBaseURL(apiSrv.URL),
		ebay.WithRateLimiter(marketplace.NewRateLimiter(100, 10, 1)),
	)

	_, err := c.GetInventoryItem(context.Background(), "A1")
	require.NoError(t, err)

	// Second call exceeds the daily quota of 1.
	_, err = c.GetInventoryItem(context.Background(), "A1")
	require.ErrorIs(t, err, marketplace.ErrDailyLimitReached)

	assert.Len(t, f.Calls(), 1)
}
