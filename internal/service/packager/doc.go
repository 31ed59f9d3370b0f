// Package packager validates a catalogue and its metadata, enriches it with
// packaging-time facts, and persists the result as one archive file.
//
// The workflow is strictly ordered: placeholder guard, shape validation,
// enrichment, optional attachment, operator summary, serialization. Every
// failure aborts before any file is written.
package packager
