package dataset

import (
	"errors"
	"fmt"
)

// Column is a named sequence of scalar values of uniform kind.
type Column struct {
	// Name identifies the column. Must be unique within a table.
	Name string
	// Values holds the column data. Allowed kinds are strings, booleans,
	// signed and unsigned integers, and floats.
	Values []any
}

// Table is an ordered collection of columns forming a rectangular catalogue.
type Table struct {
	// Columns in catalogue order.
	Columns []Column
}

var (
	// errNoTable is returned when a nil table is validated.
	errNoTable = errors.New("table is not set")
	// errColumnNameEmpty is returned when a column has no name.
	errColumnNameEmpty = errors.New("column name must not be empty")
)

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// RowCount returns the number of rows, derived from the first column.
// A table with no columns has zero rows.
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}

	return len(t.Columns[0].Values)
}

// ColumnNames returns the column names in catalogue order.
func (t *Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}

	return names
}

// Validate checks that the table is rectangular, column names are unique and
// non-empty, and every column holds scalars of a single kind.
func (t *Table) Validate() error {
	if t == nil {
		return errNoTable
	}

	seen := make(map[string]struct{}, len(t.Columns))
	rows := t.RowCount()

	for _, c := range t.Columns {
		if c.Name == "" {
			return errColumnNameEmpty
		}

		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("duplicate column name %q", c.Name)
		}

		seen[c.Name] = struct{}{}

		if len(c.Values) != rows {
			return fmt.Errorf("column %q has %d rows, expected %d", c.Name, len(c.Values), rows)
		}

		if err := checkUniformScalars(c); err != nil {
			return err
		}
	}

	return nil
}

// checkUniformScalars ensures all values in a column are scalars of one kind.
func checkUniformScalars(c Column) error {
	var want string

	for i, v := range c.Values {
		kind, ok := scalarKind(v)
		if !ok {
			return fmt.Errorf("column %q row %d: unsupported value type %T", c.Name, i, v)
		}

		if want == "" {
			want = kind
			continue
		}

		if kind != want {
			return fmt.Errorf("column %q row %d: mixed kinds %s and %s", c.Name, i, want, kind)
		}
	}

	return nil
}

// scalarKind maps a value to its coarse kind label.
// Integer widths are collapsed into one kind so that literal and decoded
// representations of the same column compare equal.
func scalarKind(v any) (string, bool) {
	switch v.(type) {
	case string:
		return "string", true
	case bool:
		return "bool", true
	case int, int8, int16, int32, int64:
		return "int", true
	case uint, uint8, uint16, uint32, uint64:
		return "int", true
	case float32, float64:
		return "float", true
	default:
		return "", false
	}
}
