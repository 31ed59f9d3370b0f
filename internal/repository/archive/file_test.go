package archive

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/ekazakova/dataset-packager/internal/domain/dataset"
)

// TestFilename verifies the deterministic name format.
func TestFilename(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, time.March, 7, 15, 4, 5, 0, time.UTC)
	require.Equal(t, "pilot_07_03_2024_v2.dpack", Filename("pilot", date, "2"))

	// Same name, date and version always yield the same path.
	require.Equal(t, Filename("pilot", date, "2"), Filename("pilot", date.Add(3*time.Hour), "2"))
}

// TestFile_NotFound verifies Load returns ErrNotFound for a missing archive.
func TestFile_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewFile()
	u, err := repo.Load(context.Background(), filepath.Join(t.TempDir(), "missing.dpack"))
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, u)
}

// TestFile_SaveLoad_Roundtrip ensures Save followed by Load returns an equal unit,
// including the nested metadata record and the free-form attachment.
func TestFile_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cluster_01_01_2024_v1.dpack")
	repo := NewFile()

	want := &domain.Unit{
		Table: &domain.Table{
			Columns: []domain.Column{
				{Name: "id", Values: []any{"a", "b", "c"}},
				{Name: "flux", Values: []any{1.5, 2.5, 3.5}},
				{Name: "count", Values: []any{int64(1), int64(200), int64(3_000_000_000)}},
			},
		},
		Metadata: domain.Metadata{
			Name:        "cluster",
			Summary:     "Cluster member catalogue.",
			User:        "E. Kazakova",
			Contact:     "ekazakova@observatory.example",
			ScriptName:  "members.go",
			Version:     "1",
			Timestamp:   "2024-01-01 12:00:00 UTC",
			Host:        "reducer-01",
			Environment: "go1.25 linux/amd64",
			ArtifactID:  "8b8f9a52-0000-4000-8000-000000000001",
		},
		ColumnNames:        []string{"id", "flux", "count"},
		ColumnDescriptions: []string{"source identifier", "integrated flux", "detection count"},
		ColumnUCDs:         []string{"meta.id", "phot.flux", "meta.number"},
		ColumnUnits:        []string{"", "mJy", ""},
		Readme:             "First line.\nSecond line.",
		Added:              map[string]any{"note": "pilot run"},
	}

	require.NoError(t, repo.Save(context.Background(), path, want))

	got, err := repo.Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, want.Metadata, got.Metadata)
	require.Equal(t, want.ColumnNames, got.ColumnNames)
	require.Equal(t, want.ColumnDescriptions, got.ColumnDescriptions)
	require.Equal(t, want.ColumnUCDs, got.ColumnUCDs)
	require.Equal(t, want.ColumnUnits, got.ColumnUnits)
	require.Equal(t, want.Readme, got.Readme)
	require.Equal(t, want.Table.Columns, got.Table.Columns)
	require.Equal(t, map[string]any{"note": "pilot run"}, got.Added)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestFile_SaveLoad_IntegerWidths ensures compactly encoded integers decode
// back to the canonical width, both in columns and in the attachment.
// msgpack stores small integers in narrow wire types, so without
// normalization a saved plain int would come back as int8.
func TestFile_SaveLoad_IntegerWidths(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "widths.dpack")
	repo := NewFile()

	unit := &domain.Unit{
		Table: &domain.Table{
			Columns: []domain.Column{
				{Name: "n", Values: []any{1, 2, 3}},
				{Name: "wide", Values: []any{int8(4), int16(500), 3_000_000_000}},
			},
		},
		ColumnNames:        []string{"n", "wide"},
		ColumnDescriptions: []string{"small counts", "mixed widths"},
		ColumnUCDs:         []string{"meta.number", "meta.number"},
		ColumnUnits:        []string{"", ""},
		Added:              map[string]any{"attempt": 2},
	}

	require.NoError(t, repo.Save(context.Background(), path, unit))

	got, err := repo.Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, []any{int64(1), int64(2), int64(3)}, got.Table.Columns[0].Values)
	require.Equal(t, []any{int64(4), int64(500), int64(3_000_000_000)}, got.Table.Columns[1].Values)
	require.Equal(t, map[string]any{"attempt": int64(2)}, got.Added)
}

// TestFile_SaveLoad_NoAttachment ensures a unit without Added round-trips with a nil slot.
func TestFile_SaveLoad_NoAttachment(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plain.dpack")
	repo := NewFile()

	want := &domain.Unit{
		Table: &domain.Table{
			Columns: []domain.Column{
				{Name: "id", Values: []any{"a"}},
			},
		},
		ColumnNames:        []string{"id"},
		ColumnDescriptions: []string{"source identifier"},
		ColumnUCDs:         []string{"meta.id"},
		ColumnUnits:        []string{""},
	}

	require.NoError(t, repo.Save(context.Background(), path, want))

	got, err := repo.Load(context.Background(), path)
	require.NoError(t, err)
	require.Nil(t, got.Added)
}

// TestFile_Save_UnwritablePath verifies that write failures surface as WriteError.
func TestFile_Save_UnwritablePath(t *testing.T) {
	t.Parallel()

	repo := NewFile()
	unit := &domain.Unit{Table: &domain.Table{}}

	path := filepath.Join(t.TempDir(), "no", "such", "dir", "x.dpack")
	err := repo.Save(context.Background(), path, unit)
	require.Error(t, err)

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	require.Equal(t, path, writeErr.Path)
}

// TestFile_Save_Overwrite checks last-write-wins semantics for colliding names.
func TestFile_Save_Overwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "same.dpack")
	repo := NewFile()

	first := &domain.Unit{
		Table:  &domain.Table{Columns: []domain.Column{{Name: "a", Values: []any{"old"}}}},
		Readme: "first",
	}
	second := &domain.Unit{
		Table:  &domain.Table{Columns: []domain.Column{{Name: "a", Values: []any{"new"}}}},
		Readme: "second",
	}

	require.NoError(t, repo.Save(context.Background(), path, first))
	require.NoError(t, repo.Save(context.Background(), path, second))

	got, err := repo.Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "second", got.Readme)
}
