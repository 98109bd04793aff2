// Package config loads, merges and validates the configuration of the
// envkeeper sync server and the envkeeper client.
//
// Values come from several sources. From lowest to highest priority:
//  1. built-in defaults
//  2. JSON config file (path taken from CONFIG or -c/--config)
//  3. environment variables
//  4. command-line flags (server) or CLI overrides (client)
//
// Use [GetStructuredConfig] in the server and [GetClientConfig] in the
// client.
package config
