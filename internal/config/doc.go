// Package config loads, normalizes, and validates ctestwin configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Defaults such as the startup band and
// mode are validated against the catalog here so commands can trust every
// label they receive.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
