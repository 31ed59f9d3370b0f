package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// sampleManifest returns a minimal valid manifest for tests.
func sampleManifest() *Manifest {
	return &Manifest{
		Name:       "ngc1275_members",
		Summary:    "Member galaxies of NGC 1275.",
		User:       "E. Kazakova",
		Contact:    "ekazakova@observatory.example",
		ScriptName: "select_members.go",
		Version:    "2",
		Readme:     "Selected via redshift cuts.",
		Columns: []ColumnData{
			{Name: "id", Values: []any{1, 2}},
			{Name: "z", Values: []any{0.017, 0.018}},
		},
		ColumnDescriptions: []string{"source identifier", "redshift"},
		ColumnUCDs:         []string{"meta.id", "src.redshift"},
		ColumnUnits:        []string{"", ""},
	}
}

// TestValidate checks required fields and defaulting.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	// Missing name.
	m := sampleManifest()
	m.Name = ""
	require.Error(t, Validate(m))

	// Missing version.
	m = sampleManifest()
	m.Version = ""
	require.Error(t, Validate(m))

	// No table data.
	m = sampleManifest()
	m.Columns = nil
	require.Error(t, Validate(m))

	// Nameless column.
	m = sampleManifest()
	m.Columns[0].Name = ""
	require.Error(t, Validate(m))

	// Okay, output dir defaulted.
	m = sampleManifest()
	require.NoError(t, Validate(m))
	require.Equal(t, DefaultOutputDir, m.OutputDir)
}

// TestSaveLoadRoundtrip ensures a manifest is persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")

	m := sampleManifest()
	require.NoError(t, Save(path, m))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, m.Name, loaded.Name)
	require.Equal(t, m.Version, loaded.Version)
	require.Equal(t, m.ColumnUCDs, loaded.ColumnUCDs)
	require.Len(t, loaded.Columns, 2)
	require.Equal(t, "z", loaded.Columns[1].Name)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestManifestTable converts manifest columns into a dataset table.
func TestManifestTable(t *testing.T) {
	t.Parallel()

	table := sampleManifest().Table()
	require.Equal(t, 2, table.ColumnCount())
	require.Equal(t, 2, table.RowCount())
	require.Equal(t, []string{"id", "z"}, table.ColumnNames())
	require.NoError(t, table.Validate())
}
