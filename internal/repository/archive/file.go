package archive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/ekazakova/dataset-packager/internal/config"
	domain "github.com/ekazakova/dataset-packager/internal/domain/dataset"
)

// Extension is the standard suffix for dataset archives.
const Extension = ".dpack"

// Repository defines persistence operations for packaged dataset units.
type Repository interface {
	Save(ctx context.Context, path string, unit *domain.Unit) error
	Load(ctx context.Context, path string) (*domain.Unit, error)
}

// File persists dataset units as msgpack files on disk.
// Writes are all-or-nothing: the encoded artifact is produced in memory and
// written with a single WriteFile call, so a failed write leaves no partial file.
type File struct {
	// mu protects concurrent access to archive files.
	mu sync.Mutex
}

// ErrNotFound is returned when the requested archive does not exist.
var ErrNotFound = errors.New("archive not found")

// WriteError reports a failed archive write with its destination path.
type WriteError struct {
	// Path is the destination that could not be written.
	Path string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("write archive %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewFile creates a file-backed archive repository.
func NewFile() *File {
	return &File{}
}

// Filename computes the deterministic artifact name from the catalogue name,
// the packaging date, and the version.
func Filename(name string, date time.Time, version string) string {
	return fmt.Sprintf("%s_%s_v%s%s", name, date.Format("02_01_2006"), version, Extension)
}

// Save encodes the unit and writes it to the provided path.
// An existing archive at the same path is overwritten (last write wins).
func (f *File) Save(_ context.Context, path string, unit *domain.Unit) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := msgpack.Marshal(toRecord(unit))
	if err != nil {
		return fmt.Errorf("encode unit: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, config.DefaultFilePermissions); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	return nil
}

// Load reads the archive at the provided path and decodes it back into a unit.
func (f *File) Load(_ context.Context, path string) (*domain.Unit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read archive: %w", err)
	}

	var rec unitRecord
	if err := msgpack.Unmarshal(contents, &rec); err != nil {
		return nil, fmt.Errorf("decode archive: %w", err)
	}

	return fromRecord(&rec), nil
}
