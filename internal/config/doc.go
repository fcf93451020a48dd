// Package config loads gsxws client configuration from TOML.
//
// Ownership boundary:
// - file decoding with per-key overlay onto Default
// - validation of environment, region, locale and timeout
// - translation into gsx client options and credentials
package config
