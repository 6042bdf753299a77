// Package config loads, normalizes, and validates the trackdedup TOML
// configuration. Loading applies repository defaults first, then overlays
// the config file when one exists, then expands and validates paths.
package config
