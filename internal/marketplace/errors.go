package marketplace

import (
	"errors"
	"fmt"
)

// Token tiers used in AuthError.
const (
	TierApplication = "application"
	TierUser        = "user"
)

// AuthError means no usable token exists for the requested tier: either the
// user token was never supplied, or the application token exchange failed.
// Callers can recover by obtaining or refreshing a token and retrying.
type AuthError struct {
	Tier   string
	Reason string
	Err    error // underlying cause, if any
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s token: %s: %v", e.Tier, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s token: %s", e.Tier, e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }

// APIError is any non-2xx response from a marketplace, or a 2xx response
// whose body is missing an expected field (for example, offer creation
// without an offerId). It carries the status and raw body so callers can
// log or display the failure without this layer interpreting
// marketplace-specific error codes.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("marketplace API error (status %d): %s", e.StatusCode, e.Body)
}

// IsAuthError reports whether err is (or wraps) an AuthError.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// IsAPIError reports whether err is (or wraps) an APIError.
func IsAPIError(err error) bool {
	var me *APIError
	return errors.As(err, &me)
}
