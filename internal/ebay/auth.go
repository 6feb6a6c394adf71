package ebay

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/TravisBoyd884/SecondSpark/internal/marketplace"
)

const (
	prodTokenURL    = "https://api.ebay.com/identity/v1/oauth2/token"         //nolint:gosec // not a credential
	sandboxTokenURL = "https://api.sandbox.ebay.com/identity/v1/oauth2/token" //nolint:gosec // not a credential

	defaultScope = "https://api.ebay.com/oauth/api_scope/sell.inventory"

	// Application tokens are treated as expired this long before their
	// reported lifetime ends.
	refreshBuffer = 60 * time.Second
)

// TokenManager produces bearer tokens for the two eBay authorization tiers.
//
// The application tier uses the OAuth2 client credentials grant: the token is
// fetched lazily, cached, and refreshed when absent or within refreshBuffer
// of expiry. The user tier is supplied externally via SetUserToken; this
// component never refreshes it. Inventory operations run on the application
// tier so catalog sync works before a seller completes OAuth login, while
// offer and publish operations require the seller-scoped user token.
// Thread-safe via mutex.
type TokenManager struct {
	clientID     string
	clientSecret string
	tokenURL     string
	scopes       string
	client       *http.Client

	mu         sync.Mutex
	appToken   string
	appExpiry  time.Time
	userToken  string
	userExpiry time.Time // advisory only, never enforced
	nowFunc    func() time.Time
}

// TokenOption configures the TokenManager.
type TokenOption func(*TokenManager)

// WithTokenURL overrides the token endpoint selected by the environment tag.
func WithTokenURL(u string) TokenOption {
	return func(m *TokenManager) {
		m.tokenURL = u
	}
}

// WithScopes overrides the default sell.inventory scope string
// (space-joined when multiple).
func WithScopes(s string) TokenOption {
	return func(m *TokenManager) {
		m.scopes = s
	}
}

// WithTokenHTTPClient overrides the default HTTP client.
func WithTokenHTTPClient(c *http.Client) TokenOption {
	return func(m *TokenManager) {
		m.client = c
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) TokenOption {
	return func(m *TokenManager) {
		m.nowFunc = f
	}
}

// NewTokenManager creates a token manager for the given client credentials.
// env selects the sandbox or production token endpoint.
func NewTokenManager(clientID, clientSecret, env string, opts ...TokenOption) *TokenManager {
	m := &TokenManager{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     prodTokenURL,
		scopes:       defaultScope,
		client:       &http.Client{Timeout: 30 * time.Second},
		nowFunc:      time.Now,
	}
	if env == marketplace.EnvSandbox {
		m.tokenURL = sandboxTokenURL
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// ApplicationToken returns a valid application-tier token, performing the
// client credentials exchange when the cached token is absent or expired.
// Failures surface as *marketplace.AuthError.
func (m *TokenManager) ApplicationToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.appToken != "" && m.nowFunc().Before(m.appExpiry) {
		return m.appToken, nil
	}

	return m.refreshLocked(ctx)
}

func (m *TokenManager) refreshLocked(ctx context.Context) (string, error) {
	form := url.Values{
		"grant_type": {"client_credentials"},
		"scope":      {m.scopes},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		m.tokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	creds := base64.StdEncoding.EncodeToString(
		[]byte(m.clientID + ":" + m.clientSecret),
	)
	req.Header.Set("Authorization", "Basic "+creds)

	resp, err := m.client.Do(req)
	if err != nil {
		return "", &marketplace.AuthError{
			Tier:   marketplace.TierApplication,
			Reason: "token exchange failed",
			Err:    err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &marketplace.AuthError{
			Tier:   marketplace.TierApplication,
			Reason: fmt.Sprintf("token exchange failed (status %d): %s", resp.StatusCode, body),
		}
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", &marketplace.AuthError{
			Tier:   marketplace.TierApplication,
			Reason: "parsing token response",
			Err:    err,
		}
	}
	if tokenResp.AccessToken == "" {
		return "", &marketplace.AuthError{
			Tier:   marketplace.TierApplication,
			Reason: "token response missing access_token",
		}
	}

	m.appToken = tokenResp.AccessToken
	m.appExpiry = m.nowFunc().
		Add(time.Duration(tokenResp.ExpiresIn) * time.Second).
		Add(-refreshBuffer)

	return m.appToken, nil
}

// SetUserToken stores an externally obtained seller token. The expiry is
// advisory; pass the zero time when unknown. No network call is made.
func (m *TokenManager) SetUserToken(token string, expiry time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userToken = token
	m.userExpiry = expiry
}

// HasUserToken reports whether a user token is currently set.
func (m *TokenManager) HasUserToken() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.userToken != ""
}

// RequireUserToken returns the user token, or *marketplace.AuthError when
// none is set. User-scoped operations call this as a precondition guard.
func (m *TokenManager) RequireUserToken() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.userToken == "" {
		return "", &marketplace.AuthError{
			Tier:   marketplace.TierUser,
			Reason: "no user token set; seller has not completed OAuth login",
		}
	}
	return m.userToken, nil
}
