package packager

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/ekazakova/dataset-packager/internal/config"
	"github.com/ekazakova/dataset-packager/internal/domain/dataset"
	"github.com/ekazakova/dataset-packager/internal/logger"
	"github.com/ekazakova/dataset-packager/internal/repository/archive"
	"github.com/ekazakova/dataset-packager/internal/service/common"
)

// Environment answers questions about the packaging act itself.
// It is injectable so tests can package without touching the real host.
type Environment interface {
	// Now returns the wall-clock time recorded into the artifact.
	Now() time.Time
	// Hostname resolves the generating machine name.
	Hostname() (string, error)
	// Runtime describes the runtime the packager executes under.
	Runtime() string
}

// Options contains inputs for the packager entry point.
type Options struct {
	// Name is the catalogue identifier, also used for the archive filename.
	Name string
	// Summary is a short description of the catalogue.
	Summary string
	// User is the person generating the catalogue.
	User string
	// Contact is an email-like address for the generating user.
	Contact string
	// ScriptName is the program that produced the table.
	ScriptName string
	// Version labels this release of the catalogue.
	Version string
	// Table holds the catalogue data. Required.
	Table *dataset.Table
	// ColumnDescriptions documents each column, one entry per column.
	ColumnDescriptions []string
	// ColumnUCDs holds the content-descriptor code of each column.
	ColumnUCDs []string
	// ColumnUnits holds the physical unit of each column.
	ColumnUnits []string
	// Readme is free text shipped inside the archive.
	Readme string
	// Extra is an optional payload stored under the artifact's "added" slot.
	Extra any
	// TestMode bypasses the placeholder guard for dry runs with template data.
	TestMode bool
	// OutputDir is where the archive is written. Defaults to the working directory.
	OutputDir string
	// Placeholders replaces the default placeholder table when non-nil.
	// Only the expected values are pluggable: keys must be the guarded
	// field labels (FieldName, FieldSummary, ...); entries under other
	// keys are ignored, and omitted fields are not guarded at all.
	Placeholders map[string]string
	// Env supplies packaging-time facts. Defaults to the system probe.
	Env Environment
	// Repo persists the archive. Defaults to the file repository.
	Repo archive.Repository
}

// packager runs the validation-and-packaging workflow.
// It is unexported—callers should use Run, which encapsulates setup and defaults.
type packager struct {
	// opts holds the caller-supplied inputs.
	opts *Options
	// env answers packaging-time questions.
	env Environment
	// repo persists the finished artifact.
	repo archive.Repository
	// outputDir is the resolved archive directory. Kept here so the
	// caller-owned Options are never mutated.
	outputDir string
	// now is the enrichment timestamp, fixed once per run so the recorded
	// metadata and the filename agree on the date.
	now time.Time
}

// errTableRequired is returned when no table is supplied.
var errTableRequired = errors.New("table must be provided")

// Run executes the packaging workflow and returns the enriched unit.
// On any failure no file is written and no partial artifact is produced.
func Run(ctx context.Context, opts *Options) (*dataset.Unit, error) {
	ctx = logger.WithName(ctx, "dataset-packager")

	pkg, err := newPackager(opts)
	if err != nil {
		return nil, fmt.Errorf("initialize packager: %w", err)
	}

	unit, err := pkg.run(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Packaging completed successfully")

	return unit, nil
}

// newPackager validates the options and applies defaults.
func newPackager(opts *Options) (*packager, error) {
	if opts.Table == nil {
		return nil, errTableRequired
	}

	env := opts.Env
	if env == nil {
		env = common.NewSystemEnvironment()
	}

	repo := opts.Repo
	if repo == nil {
		repo = archive.NewFile()
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = config.DefaultOutputDir
	}

	return &packager{
		opts:      opts,
		env:       env,
		repo:      repo,
		outputDir: outputDir,
	}, nil
}

// run walks the ordered workflow steps.
func (p *packager) run(ctx context.Context) (*dataset.Unit, error) {
	logger.InfoKV(ctx, "Packaging catalogue", "name", p.opts.Name, "version", p.opts.Version)

	if err := p.guardPlaceholders(ctx); err != nil {
		return nil, err
	}

	if err := p.checkShapes(ctx); err != nil {
		return nil, err
	}

	unit, err := p.buildUnit()
	if err != nil {
		return nil, err
	}

	p.printSummary(ctx, unit)

	path, err := p.persist(ctx, unit)
	if err != nil {
		return nil, err
	}

	logger.InfoKV(ctx, "Catalogue written", "path", path)

	return unit, nil
}

// guardPlaceholders refuses to package fields that still hold template values.
func (p *packager) guardPlaceholders(ctx context.Context) error {
	if p.opts.TestMode {
		logger.Info(ctx, "Test mode: placeholder check skipped")
		return nil
	}

	placeholders := p.opts.Placeholders
	if placeholders == nil {
		placeholders = DefaultPlaceholders()
	}

	values := map[string]string{
		FieldName:    p.opts.Name,
		FieldSummary: p.opts.Summary,
		FieldUser:    p.opts.User,
		FieldContact: p.opts.Contact,
		FieldReadme:  p.opts.Readme,
	}
	if len(p.opts.ColumnDescriptions) > 0 {
		values[FieldFirstDescription] = p.opts.ColumnDescriptions[0]
	}

	for _, field := range guardedFields {
		placeholder, guarded := placeholders[field]
		if !guarded {
			continue
		}

		if value, ok := values[field]; ok && value == placeholder {
			return &dataset.PlaceholderError{Field: field, Value: placeholder}
		}
	}

	logger.Info(ctx, "Placeholder check passed")

	return nil
}

// checkShapes verifies each descriptor vector against the column count.
// All three checks run and are reported individually; the first mismatch is
// returned so the caller learns the offending vector.
func (p *packager) checkShapes(ctx context.Context) error {
	if err := p.opts.Table.Validate(); err != nil {
		return fmt.Errorf("invalid table: %w", err)
	}

	want := p.opts.Table.ColumnCount()

	checks := []struct {
		vector string
		got    int
	}{
		{vector: "column_descriptions", got: len(p.opts.ColumnDescriptions)},
		{vector: "column_ucds", got: len(p.opts.ColumnUCDs)},
		{vector: "column_units", got: len(p.opts.ColumnUnits)},
	}

	var firstMismatch error

	for _, check := range checks {
		if check.got == want {
			logger.InfoKV(ctx, "Shape check passed", "vector", check.vector, "length", check.got)
			continue
		}

		logger.ErrorKV(ctx, "Shape check failed",
			"vector", check.vector, "length", check.got, "columns", want)

		if firstMismatch == nil {
			firstMismatch = &dataset.ShapeError{Vector: check.vector, Got: check.got, Want: want}
		}
	}

	return firstMismatch
}

// buildUnit assembles the unit and enriches it with packaging-time facts.
func (p *packager) buildUnit() (*dataset.Unit, error) {
	p.now = p.env.Now()

	host, err := p.env.Hostname()
	if err != nil {
		return nil, fmt.Errorf("resolve hostname: %w", err)
	}

	// Values are normalized to canonical widths so the written archive
	// decodes back to a record equal to the returned one.
	unit := &dataset.Unit{
		Table: p.opts.Table.Normalized(),
		Metadata: dataset.Metadata{
			Name:        p.opts.Name,
			Summary:     p.opts.Summary,
			User:        p.opts.User,
			Contact:     p.opts.Contact,
			ScriptName:  p.opts.ScriptName,
			Version:     p.opts.Version,
			Timestamp:   p.now.Format("2006-01-02 15:04:05 MST"),
			Host:        host,
			Environment: p.env.Runtime(),
			ArtifactID:  uuid.NewString(),
		},
		ColumnNames:        p.opts.Table.ColumnNames(),
		ColumnDescriptions: p.opts.ColumnDescriptions,
		ColumnUCDs:         p.opts.ColumnUCDs,
		ColumnUnits:        p.opts.ColumnUnits,
		Readme:             p.opts.Readme,
	}

	if p.opts.Extra != nil {
		unit.Added = dataset.Normalize(p.opts.Extra)
	}

	return unit, nil
}

// printSummary logs a human-readable report of the unit about to be written.
func (p *packager) printSummary(ctx context.Context, unit *dataset.Unit) {
	var builder strings.Builder

	builder.WriteString("Catalogue summary\n")
	fmt.Fprintf(&builder, "rows: %d, columns: %d\n\n", unit.Table.RowCount(), unit.Table.ColumnCount())

	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tUNIT\tUCD\tDESCRIPTION")

	for i, name := range unit.ColumnNames {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			name, unit.ColumnUnits[i], unit.ColumnUCDs[i], unit.ColumnDescriptions[i])
	}

	_ = w.Flush()

	builder.WriteString("\n")
	fmt.Fprintf(&builder, "name: %s\n", unit.Metadata.Name)
	fmt.Fprintf(&builder, "summary: %s\n", unit.Metadata.Summary)
	fmt.Fprintf(&builder, "generating user: %s (%s)\n", unit.Metadata.User, unit.Metadata.Contact)
	fmt.Fprintf(&builder, "script: %s, version: %s\n", unit.Metadata.ScriptName, unit.Metadata.Version)
	fmt.Fprintf(&builder, "packaged: %s on %s (%s)\n",
		unit.Metadata.Timestamp, unit.Metadata.Host, unit.Metadata.Environment)
	fmt.Fprintf(&builder, "artifact: %s", unit.Metadata.ArtifactID)

	if unit.Added != nil {
		fmt.Fprintf(&builder, "\nadded payload: %v", unit.Added)
	}

	logger.Info(ctx, builder.String())
}

// persist writes the unit to its deterministic path and returns that path.
func (p *packager) persist(ctx context.Context, unit *dataset.Unit) (string, error) {
	filename := archive.Filename(p.opts.Name, p.now, p.opts.Version)
	path := filepath.Join(p.outputDir, filename)

	logger.InfoKV(ctx, "Saving catalogue archive", "path", path)

	if err := p.repo.Save(ctx, path, unit); err != nil {
		return "", err
	}

	return path, nil
}
