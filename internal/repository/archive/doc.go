// Package archive persists packaged dataset units to disk.
//
// Units are encoded with msgpack, a binary self-describing format that
// round-trips the table, the nested metadata record, and free-form attached
// payloads without loss. Filename computes the deterministic artifact name
// from the catalogue name, the packaging date, and the version.
package archive
