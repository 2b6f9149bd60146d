package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete.
var (
	// ErrNoAdapterAddress indicates that no base URL for the remote store
	// was supplied by any configuration layer.
	ErrNoAdapterAddress = errors.New("adapter http address is required")
)
