package adapter

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired inspects the session token's exp claim without verifying
// the signature (the client does not hold the signing key). A token that
// cannot be parsed or carries no expiry is treated as usable — the server
// remains the authority and will reject it with 401 if it is not.
func tokenExpired(token string, now time.Time) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

// ensureToken fails fast with [ErrTokenExpired] when the stored session
// token is known to be stale, saving a doomed network round-trip.
func (h *httpChannel) ensureToken() error {
	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()

	if token == "" {
		return nil
	}
	if tokenExpired(token, time.Now()) {
		return fmt.Errorf("%w: %w", ErrUnauthorized, ErrTokenExpired)
	}
	return nil
}
