package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TravisBoyd884/SecondSpark/internal/api/handlers"
	"github.com/TravisBoyd884/SecondSpark/internal/ebay"
	"github.com/TravisBoyd884/SecondSpark/internal/marketplace"
)

// newEbayProxyAPI wires a real eBay client against stub token and API servers.
func newEbayProxyAPI(t *testing.T, tokenStatus int, apiHandler http.HandlerFunc) humatest.TestAPI {
	t.Helper()

	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(tokenStatus)
		if tokenStatus == http.StatusOK {
			w.Write([]byte(`{"access_token":"app-token","expires_in":7200,"token_type":"Application Access Token"}`)) //nolint:errcheck
		} else {
			w.Write([]byte(`{"error":"invalid_client"}`)) //nolint:errcheck
		}
	}))
	t.Cleanup(tokenSrv.Close)

	apiSrv := httptest.NewServer(apiHandler)
	t.Cleanup(apiSrv.Close)

	tokens := ebay.NewTokenManager("id", "secret", marketplace.EnvSandbox,
		ebay.WithTokenURL(tokenSrv.URL))
	client := ebay.NewClient(tokens, marketplace.EnvSandbox,
		ebay.WithBaseURL(apiSrv.URL))

	_, api := humatest.New(t)
	handlers.RegisterEbayRoutes(api, handlers.NewEbayHandler(client))
	return api
}

func TestEbayHandler_GetInventoryItem(t *testing.T) {
	t.Parallel()

	api := newEbayProxyAPI(t, http.StatusOK, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/inventory_item/SKU-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sku":"SKU-1","product":{"title":"Vintage lamp"}}`)) //nolint:errcheck
	})

	resp := api.Get("/api/v1/ebay/inventory/SKU-1")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Vintage lamp")
}

func TestEbayHandler_GetInventoryItemUpstreamFailure(t *testing.T) {
	t.Parallel()

	api := newEbayProxyAPI(t, http.StatusOK, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"errors":[{"message":"not found"}]}`, http.StatusNotFound)
	})

	resp := api.Get("/api/v1/ebay/inventory/SKU-1")
	assert.Equal(t, http.StatusBadGateway, resp.Code)
}

func TestEbayHandler_GetInventoryItemAuthFailure(t *testing.T) {
	t.Parallel()

	api := newEbayProxyAPI(t, http.StatusUnauthorized, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("API must not be reached without an application token")
	})

	resp := api.Get("/api/v1/ebay/inventory/SKU-1")
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestEbayHandler_UserTokenLifecycle(t *testing.T) {
	t.Parallel()

	api := newEbayProxyAPI(t, http.StatusOK, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`)) //nolint:errcheck
	})

	resp := api.Get("/api/v1/ebay/user-token")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"has_user_token":false`)

	resp = api.Post("/api/v1/ebay/user-token", map[string]any{
		"token":      "v^1.1#seller-token",
		"expires_in": 7200,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = api.Get("/api/v1/ebay/user-token")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"has_user_token":true`)
}

func TestEbayHandler_UpsertInventoryItem(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath, gotBody string
	api := newEbayProxyAPI(t, http.StatusOK, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		buf := make([]byte, 1024)
		n, _ := r.Body.Read(buf)
		gotBody = string(buf[:n])
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`)) //nolint:errcheck
	})

	resp := api.Put("/api/v1/ebay/inventory/SKU-9", map[string]any{
		"title":       "Brass candlestick",
		"description": "Pair of brass candlesticks",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/inventory_item/SKU-9", gotPath)
	assert.Contains(t, gotBody, "Brass candlestick")
}

func TestEbayHandler_DeleteInventoryItem(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	api := newEbayProxyAPI(t, http.StatusOK, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	resp := api.Delete("/api/v1/ebay/inventory/SKU-9")
	require.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/inventory_item/SKU-9", gotPath)
}

func TestEbayHandler_UpsertInventoryItemUpstreamFailure(t *testing.T) {
	t.Parallel()

	api := newEbayProxyAPI(t, http.StatusOK, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"errors":[{"message":"invalid sku"}]}`, http.StatusBadRequest)
	})

	resp := api.Put("/api/v1/ebay/inventory/SKU-9", map[string]any{"title": "X"})
	assert.Equal(t, http.StatusBadGateway, resp.Code)
}
