// Package config loads, normalizes, and validates gitfortune configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the GITFORTUNE_CORPUS environment fallback. The
// Config type centralizes every knob the matcher and CLI need.
//
// Always obtain settings through this package so downstream code receives
// expanded corpus paths, canonical option names, and clear validation errors.
package config
