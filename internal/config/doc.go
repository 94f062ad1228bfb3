// Package config loads and validates the TOML configuration consumed by every
// werbench component.
//
// Load resolves the file from an explicit path, ~/.config/werbench/config.toml,
// or a project-local werbench.toml, merges it over Default(), expands user
// paths, and validates the result. All consumers receive a fully normalized
// *Config; nothing reads the file again after startup.
package config
