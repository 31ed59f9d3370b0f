// Package config defines the YAML packaging manifest consumed by the CLI and
// provides helpers to load, validate and save it.
//
// The Manifest type holds the catalogue metadata, the per-column descriptor
// vectors, and the inline table data.
package config
