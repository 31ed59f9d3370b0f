package dataset

// Metadata describes the provenance of a packaged catalogue.
// The first six fields are supplied by the caller; the rest are facts about
// the packaging act itself, captured at packaging time.
type Metadata struct {
	// Name is the catalogue identifier used for the archive filename.
	Name string
	// Summary is a short description of the catalogue contents.
	Summary string
	// User is the person who generated the catalogue.
	User string
	// Contact is how to reach the generating user, usually an email address.
	Contact string
	// ScriptName is the script or program that produced the table.
	ScriptName string
	// Version labels this release of the catalogue.
	Version string
	// Timestamp is the human-readable packaging time.
	Timestamp string
	// Host is the machine the catalogue was packaged on.
	Host string
	// Environment describes the runtime the packager ran under.
	Environment string
	// ArtifactID uniquely identifies this packaging run.
	ArtifactID string
}

// Unit is the packaged artifact: the table, its metadata, the per-column
// descriptor vectors, the README, and an optional free-form attachment.
type Unit struct {
	// Table holds the catalogue data.
	Table *Table
	// Metadata records provenance and packaging facts.
	Metadata Metadata
	// ColumnNames is derived from the table at packaging time.
	ColumnNames []string
	// ColumnDescriptions documents each column, one entry per column.
	ColumnDescriptions []string
	// ColumnUCDs holds the content-descriptor code of each column.
	ColumnUCDs []string
	// ColumnUnits holds the physical unit of each column.
	ColumnUnits []string
	// Readme is free text shipped alongside the table. May span lines.
	Readme string
	// Added is an optional caller-supplied payload. Nil when absent.
	Added any
}
