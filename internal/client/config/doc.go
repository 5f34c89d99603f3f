// Package config loads runtime configuration for the sealctl CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file named by --config (.json, .toml, .yaml or .yml).
//  3. Environment: SEALVAULT_SERVER and SEALVAULT_TOKEN.
//
// Command-line flags are owned by the cobra commands and applied on top by
// the caller.
//
// # File schema
//
// Durations use timex.Duration, so values can be either strings like "10s"
// or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "access_token": "eyJ...",
//	  "request_timeout": "30s"
//	}
package config
