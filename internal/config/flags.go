package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a remote store base URL
//	-ws notification stream websocket URL
//	-token bearer session token
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-reconnect-min minimal stream reconnect backoff
//	-reconnect-max maximal stream reconnect backoff
//	-log-level zerolog level name
//	-c/-config json file path with configs
func ParseFlags() *ClientConfig {
	var httpAddress string
	var wsAddress string
	var authToken string
	var requestTimeout time.Duration
	var reconnectMin, reconnectMax time.Duration
	var logLevel string
	var jsonConfigPath string

	flag.StringVar(&httpAddress, "a", "", "Remote store base URL")
	flag.StringVar(&wsAddress, "ws", "", "Notification stream websocket URL")
	flag.StringVar(&authToken, "token", "", "Bearer session token")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&reconnectMin, "reconnect-min", 0, "Minimal stream reconnect backoff")
	flag.DurationVar(&reconnectMax, "reconnect-max", 0, "Maximal stream reconnect backoff")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &ClientConfig{
		App: App{
			LogLevel: logLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    httpAddress,
			RequestTimeout: requestTimeout,
			AuthToken:      authToken,
		},
		Stream: Stream{
			WSAddress:    wsAddress,
			ReconnectMin: reconnectMin,
			ReconnectMax: reconnectMax,
		},
		JSONFilePath: jsonConfigPath,
	}
}
