// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// ClientConfig is the top-level configuration container for the abook
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type ClientConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds connection settings for the remote store's RPC channel.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Stream holds connection settings for the push-notification stream.
	Stream Stream `envPrefix:"STREAM_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the ABOOK_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the zerolog level name ("debug", "info", ...).
	// Env: ABOOK_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds configuration of the HTTP implementation of the RPC
// channel.
type Adapter struct {
	// HTTPAddress is the base URL of the remote store API, with or without
	// a scheme ("http://" is assumed when absent).
	// Env: ABOOK_ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// RequestTimeout bounds every single remote call.
	// Env: ABOOK_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AuthToken is the bearer session token attached to every
	// authenticated request.
	// Env: ABOOK_ADAPTER_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`
}

// Stream holds configuration of the websocket push-notification stream.
type Stream struct {
	// WSAddress is the websocket URL of the notification stream.
	// Env: ABOOK_STREAM_WS_ADDRESS
	WSAddress string `env:"WS_ADDRESS"`

	// ReconnectMin and ReconnectMax bound the exponential backoff between
	// reconnect attempts after the stream drops.
	// Env: ABOOK_STREAM_RECONNECT_MIN / ABOOK_STREAM_RECONNECT_MAX
	ReconnectMin time.Duration `env:"RECONNECT_MIN"`
	ReconnectMax time.Duration `env:"RECONNECT_MAX"`
}

// Defaults applied by validate when the merged configuration leaves a field
// empty.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultReconnectMin   = time.Second
	DefaultReconnectMax   = time.Minute
	DefaultLogLevel       = "info"
)

func (c *ClientConfig) validate() error {
	if c.Adapter.HTTPAddress == "" {
		return ErrNoAdapterAddress
	}
	if c.Adapter.RequestTimeout <= 0 {
		c.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if c.Stream.ReconnectMin <= 0 {
		c.Stream.ReconnectMin = DefaultReconnectMin
	}
	if c.Stream.ReconnectMax < c.Stream.ReconnectMin {
		c.Stream.ReconnectMax = DefaultReconnectMax
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = DefaultLogLevel
	}
	return nil
}

// GetClientConfig builds the effective client configuration by merging, in
// priority order: environment variables, command-line flags, then an
// optional JSON file named by either of the first two layers.
func GetClientConfig() (*ClientConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
