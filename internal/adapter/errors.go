package adapter

import "errors"

// Sentinel transport errors mapped from HTTP status codes. Callers match
// with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("operation forbidden")
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("remote state conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrTokenExpired is returned before any network round-trip when the
	// stored session token has already expired.
	ErrTokenExpired = errors.New("session token expired")
)
