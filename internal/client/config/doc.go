// Package config loads runtime configuration for escrowctl.
//
// Sources and precedence:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file passed with --config.
//  3. Command-line flags, applied by the cli package.
//
// Durations accept strings like "5s" or integer nanoseconds:
//
//	server_endpoint_addr: 127.0.0.1:50051
//	timeout: 5s
package config
