// Package config loads, normalizes, and validates anchor's TOML
// configuration. Defaults cover every setting so the tool runs without a
// config file; Load layers file values over Default().
package config
