package ebay_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TravisBoyd884/SecondSpark/internal/ebay"
	"github.com/TravisBoyd884/SecondSpark/internal/marketplace"
)

// fakeSell emulates the slice of the Sell Inventory API the sync client
// touches, recording every call in order.
type fakeSell struct {
	mu    sync.Mutex
	calls []string

	offerBody    string // POST /offer response, default {"offerId":"O-1"}
	failures     map[string]int
	publishBody  string
	inventoryRsp string
}

func newFakeSell() *fakeSell {
	return &fakeSell{
		offerBody:    `{"offerId":"O-1"}`,
		publishBody:  `{"status":"PUBLISHED"}`,
		inventoryRsp: `{"sku":"A1"}`,
		failures:     map[string]int{},
	}
}

func (f *fakeSell) record(r *http.Request) string {
	key := r.Method + " " + r.URL.Path
	f.mu.Lock()
	f.calls = append(f.calls, key)
	f.mu.Unlock()
	return key
}

func (f *fakeSell) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeSell) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := f.record(r)

	if status, ok := f.failures[key]; ok {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"errors":[{"message":"boom"}]}`))
		return
	}

	switch {
	case r.URL.Path == "/offer" && r.Method == http.MethodPost:
		_, _ = w.Write([]byte(f.offerBody))
	case strings.HasSuffix(r.URL.Path, "/publish"):
		_, _ = w.Write([]byte(f.publishBody))
	case strings.HasPrefix(r.URL.Path, "/inventory_item/") && r.Method == http.MethodPut:
		_, _ = w.Write([]byte(f.inventoryRsp))
	case strings.HasPrefix(r.URL.Path, "/inventory_item/") && r.Method == http.MethodDelete:
		w.WriteHeader(http.StatusNoContent)
	default:
		_, _ = w.Write([]byte(`{}`))
	}
}

func newTestClient(t *testing.T, f *fakeSell) *ebay.Client {
	t.Helper()

	tokenSrv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(tokenJSON("app-token"))
		}),
	)
	t.Cleanup(tokenSrv.Close)

	apiSrv := httptest.NewServer(f)
	t.Cleanup(apiSrv.Close)

	tm := ebay.NewTokenManager(
		"id", "secret",
		marketplace.EnvSandbox,
		ebay.WithTokenURL(tokenSrv.URL),
	)

	return ebay.NewClient(tm, marketplace.EnvSandbox, ebay.WithBaseURL(apiSrv.URL))
}

func testItem() marketplace.ListingItem {
	return marketplace.ListingItem{
		SKU:      "A1",
		Title:    "Widget",
		Quantity: 3,
		Price:    "9.99",
	}
}

func TestSyncItemCreateOrUpdate_NoUserToken(t *testing.T) {
	t.Parallel()

	f := newFakeSell()
	c := newTestClient(t, f)

	result, err := c.SyncItemCreateOrUpdate(context.Background(), testItem())
	require.NoError(t, err)

	// Inventory synced once, listing deferred.
	assert.Equal(t, []string{"PUT /inventory_item/A1"}, f.Calls())
	assert.JSONEq(t, `{"sku":"A1"}`, string(result.Inventory))
	assert.Nil(t, result.Offer)
	assert.Nil(t, result.Publish)
}

func TestSyncItemCreateOrUpdate_WithUserToken(t *testing.T) {
	t.Parallel()

	f := newFakeSell()
	c := newTestClient(t, f)
	c.Tokens().SetUserToken("user-tok", time.Time{})

	result, err := c.SyncItemCreateOrUpdate(context.Background(), testItem())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"PUT /inventory_item/A1",
		"POST /offer",
		"POST /offer/O-1/publish",
	}, f.Calls())

	assert.JSONEq(t, `{"offerId":"O-1"}`, string(result.Offer))
	assert.JSONEq(t, `{"status":"PUBLISHED"}`, string(result.Publish))
}

func TestSyncItemCreateOrUpdate_InventoryFailureIsFatal(t *testing.T) {
	t.Parallel()

	f := newFakeSell()
	f.failures["PUT /inventory_item/A1"] = http.StatusBadRequest
	c := newTestClient(t, f)
	c.Tokens().SetUserToken("user-tok", time.Time{})

	_, err := c.SyncItemCreateOrUpdate(context.Background(), testItem())
	require.Error(t, err)
	assert.True(t, marketplace.IsAPIError(err))
	assert.Contains(t, err.Error(), "400")

	// Nothing downstream of the failed upsert runs.
	assert.Equal(t, []string{"PUT /inventory_item/A1"}, f.Calls())
}

func TestSyncItemCreateOrUpdate_MissingOfferID(t *testing.T) {
	t.Parallel()

	f := newFakeSell()
	f.offerBody = `{"warnings":[]}`
	c := newTestClient(t, f)
	c.Tokens().SetUserToken("user-tok", time.Time{})

	_, err := c.SyncItemCreateOrUpdate(context.Background(), testItem())
	require.Error(t, err)
	assert.True(t, marketplace.IsAPIError(err))
	assert.Contains(t, err.Error(), "missing offerId")

	// Publish is never attempted without an offer identifier.
	for _, call := range f.Calls() {
		assert.NotContains(t, call, "publish")
	}
}

func TestSyncItemCreateOrUpdate_PublishFailurePropagates(t *testing.T) {
	t.Parallel()

	f := newFakeSell()
	f.failures["POST /offer/O-1/publish"] = http.StatusConflict
	c := newTestClient(t, f)
	c.Tokens().SetUserToken("user-tok", time.Time{})

	_, err := c.SyncItemCreateOrUpdate(context.Background(), testItem())
	require.Error(t, err)
	assert.True(t, marketplace.IsAPIError(err))
	assert.Contains(t, err.Error(), "409")
}

func TestSyncItemDelete_NoUserToken(t *testing.T) {
	t.Parallel()

	f := newFakeSell()
	c := newTestClient(t, f)

	item := testItem()
	item.EbayOfferID = "O-9"

	// With an offer id but no user token the listing cannot be ended;
	// only the inventory delete runs, and nothing raises.
	err := c.SyncItemDelete(context.Background(), item)
	require.NoError(t, err)
	assert.Equal(t, []string{"DELETE /inventory_item/A1"}, f.Calls())
}

func TestSyncItemDelete_WithUserToken(t *testing.T) {
	t.Parallel()

	f := newFakeSell()
	c := newTestClient(t, f)
	c.Tokens().SetUserToken("user-tok", time.Time{})

	item := testItem()
	item.EbayOfferID = "O-9"

	err := c.SyncItemDelete(context.Background(), item)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"PATCH /offer/O-9",
		"DELETE /inventory_item/A1",
	}, f.Calls())
}

func TestSyncItemDelete_BestEffortOnFailure(t *testing.T) {
	t.Parallel()

	f := newFakeSell()
	f.failures["PATCH /offer/O-9"] = http.StatusInternalServerError
	f.failures["DELETE /inventory_item/A1"] = http.StatusNotFound
	c := newTestClient(t, f)
	c.Tokens().SetUserToken("user-tok", time.Time{})

	item := testItem()
	item.EbayOfferID = "O-9"

	// Both stages fail marketplace-side; the call still succeeds.
	err := c.SyncItemDelete(context.Background(), item)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"PATCH /offer/O-9",
		"DELETE /inventory_item/A1",
	}, f.Calls())
}
