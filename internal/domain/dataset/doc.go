// Package dataset defines the catalogue data model: tables of named scalar
// columns, the metadata record describing a release, and the packaged Unit
// that is serialized into an archive.
//
// Validation errors carry the offending field or vector so callers can fix
// their input programmatically instead of parsing log output.
package dataset
