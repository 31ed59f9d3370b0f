package archive

import (
	domain "github.com/ekazakova/dataset-packager/internal/domain/dataset"
)

// columnRecord is the wire form of a single table column.
type columnRecord struct {
	Name   string `msgpack:"name"`
	Values []any  `msgpack:"values"`
}

// metadataRecord is the wire form of the catalogue metadata.
type metadataRecord struct {
	Name        string `msgpack:"name"`
	Summary     string `msgpack:"summary"`
	User        string `msgpack:"generating_user"`
	Contact     string `msgpack:"contact"`
	ScriptName  string `msgpack:"script_name"`
	Version     string `msgpack:"version"`
	Timestamp   string `msgpack:"generation_timestamp"`
	Host        string `msgpack:"generation_host"`
	Environment string `msgpack:"generation_environment"`
	ArtifactID  string `msgpack:"artifact_id"`
}

// unitRecord is the wire form of a packaged dataset unit.
type unitRecord struct {
	Table              []columnRecord `msgpack:"table"`
	Metadata           metadataRecord `msgpack:"metadata"`
	ColumnNames        []string       `msgpack:"column_names"`
	ColumnDescriptions []string       `msgpack:"column_descriptions"`
	ColumnUCDs         []string       `msgpack:"column_ucds"`
	ColumnUnits        []string       `msgpack:"column_units"`
	Readme             string         `msgpack:"readme"`
	Added              any            `msgpack:"added,omitempty"`
}

// toRecord converts the domain unit into its wire form.
func toRecord(unit *domain.Unit) *unitRecord {
	columns := make([]columnRecord, 0, len(unit.Table.Columns))
	for _, c := range unit.Table.Columns {
		columns = append(columns, columnRecord{
			Name:   c.Name,
			Values: c.Values,
		})
	}

	return &unitRecord{
		Table: columns,
		Metadata: metadataRecord{
			Name:        unit.Metadata.Name,
			Summary:     unit.Metadata.Summary,
			User:        unit.Metadata.User,
			Contact:     unit.Metadata.Contact,
			ScriptName:  unit.Metadata.ScriptName,
			Version:     unit.Metadata.Version,
			Timestamp:   unit.Metadata.Timestamp,
			Host:        unit.Metadata.Host,
			Environment: unit.Metadata.Environment,
			ArtifactID:  unit.Metadata.ArtifactID,
		},
		ColumnNames:        unit.ColumnNames,
		ColumnDescriptions: unit.ColumnDescriptions,
		ColumnUCDs:         unit.ColumnUCDs,
		ColumnUnits:        unit.ColumnUnits,
		Readme:             unit.Readme,
		Added:              unit.Added,
	}
}

// fromRecord converts the wire form back into the domain unit.
// Decoded values are normalized: msgpack returns compactly encoded integers
// as narrow widths (int8, int16, ...), which would break equality with the
// unit that was saved.
func fromRecord(rec *unitRecord) *domain.Unit {
	columns := make([]domain.Column, 0, len(rec.Table))
	for _, c := range rec.Table {
		values := make([]any, len(c.Values))
		for i, v := range c.Values {
			values[i] = domain.Normalize(v)
		}

		columns = append(columns, domain.Column{
			Name:   c.Name,
			Values: values,
		})
	}

	return &domain.Unit{
		Table: &domain.Table{Columns: columns},
		Metadata: domain.Metadata{
			Name:        rec.Metadata.Name,
			Summary:     rec.Metadata.Summary,
			User:        rec.Metadata.User,
			Contact:     rec.Metadata.Contact,
			ScriptName:  rec.Metadata.ScriptName,
			Version:     rec.Metadata.Version,
			Timestamp:   rec.Metadata.Timestamp,
			Host:        rec.Metadata.Host,
			Environment: rec.Metadata.Environment,
			ArtifactID:  rec.Metadata.ArtifactID,
		},
		ColumnNames:        rec.ColumnNames,
		ColumnDescriptions: rec.ColumnDescriptions,
		ColumnUCDs:         rec.ColumnUCDs,
		ColumnUnits:        rec.ColumnUnits,
		Readme:             rec.Readme,
		Added:              domain.Normalize(rec.Added),
	}
}
