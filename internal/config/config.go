package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ekazakova/dataset-packager/internal/domain/dataset"
)

// ColumnData describes one table column in the manifest.
type ColumnData struct {
	// Name identifies the column.
	Name string `yaml:"name"`
	// Values holds the column data as YAML scalars.
	Values []any `yaml:"values"`
}

// Manifest is the YAML description of a packaging job: the catalogue
// metadata, the per-column descriptor vectors, the README, and the table
// data itself.
type Manifest struct {
	// Name is the catalogue identifier, also used for the archive filename.
	Name string `yaml:"name"`
	// Summary is a short description of the catalogue.
	Summary string `yaml:"summary"`
	// User is the person generating the catalogue.
	User string `yaml:"user"`
	// Contact is an email-like address for the generating user.
	Contact string `yaml:"contact"`
	// ScriptName is the program that produced the table.
	ScriptName string `yaml:"script_name"`
	// Version labels this release. Quote numeric versions in YAML.
	Version string `yaml:"version"`
	// Readme is free text shipped inside the archive.
	Readme string `yaml:"readme"`
	// Columns holds the table data.
	Columns []ColumnData `yaml:"columns"`
	// ColumnDescriptions has one entry per column.
	ColumnDescriptions []string `yaml:"column_descriptions"`
	// ColumnUCDs has one content-descriptor code per column.
	ColumnUCDs []string `yaml:"column_ucds"`
	// ColumnUnits has one physical unit per column.
	ColumnUnits []string `yaml:"column_units"`
	// Extra is an optional free-form payload attached to the archive.
	Extra map[string]any `yaml:"extra,omitempty"`
	// OutputDir is where the archive is written. Defaults to the working directory.
	OutputDir string `yaml:"output_dir,omitempty"`
}

const (
	// DefaultManifestFilename is the default packaging manifest path.
	DefaultManifestFilename = "dataset-manifest.yaml"

	// DefaultFilePermissions is the default file permission for manifests.
	DefaultFilePermissions = 0o600

	// DefaultOutputDir is used when the manifest does not name one.
	DefaultOutputDir = "."
)

var (
	// errManifestIsNotSet is returned when a nil manifest is provided.
	errManifestIsNotSet = errors.New("manifest is not set")
	// errNameRequired is returned when the catalogue name is missing.
	errNameRequired = errors.New("catalogue name must be provided")
	// errVersionRequired is returned when the version is missing.
	errVersionRequired = errors.New("catalogue version must be provided")
	// errColumnsRequired is returned when the manifest has no table data.
	errColumnsRequired = errors.New("at least one column must be provided")
	// errColumnNameRequired is returned when a manifest column has no name.
	errColumnNameRequired = errors.New("manifest column without a name")
)

// Load reads a manifest from the provided path and validates essential fields.
func Load(path string) (*Manifest, error) {
	if path == "" {
		path = DefaultManifestFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(contents, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	if err := Validate(&m); err != nil {
		return nil, err
	}

	return &m, nil
}

// Save writes the manifest to the provided path.
func Save(path string, m *Manifest) error {
	if m == nil {
		return errManifestIsNotSet
	}

	if path == "" {
		path = DefaultManifestFilename
	}

	if err := Validate(m); err != nil {
		return err
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// Validate checks the manifest for required fields and applies defaults.
// Descriptor vector lengths are deliberately not checked here: the packager
// reports each of the three shape checks individually.
func Validate(m *Manifest) error {
	if m == nil {
		return errManifestIsNotSet
	}

	if m.Name == "" {
		return errNameRequired
	}

	if m.Version == "" {
		return errVersionRequired
	}

	if len(m.Columns) == 0 {
		return errColumnsRequired
	}

	for _, c := range m.Columns {
		if c.Name == "" {
			return fmt.Errorf("%w (values: %v)", errColumnNameRequired, c.Values)
		}
	}

	if m.OutputDir == "" {
		m.OutputDir = DefaultOutputDir
	}

	return nil
}

// Table converts the manifest's column data into a dataset table.
func (m *Manifest) Table() *dataset.Table {
	columns := make([]dataset.Column, 0, len(m.Columns))
	for _, c := range m.Columns {
		columns = append(columns, dataset.Column{
			Name:   c.Name,
			Values: c.Values,
		})
	}

	return &dataset.Table{Columns: columns}
}
