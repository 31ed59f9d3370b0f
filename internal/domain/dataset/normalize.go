package dataset

import "math"

// Normalize collapses a scalar to its canonical width: every integer becomes
// int64 (uint64 values above the int64 range stay uint64) and float32 becomes
// float64. Sequences and string-keyed records are normalized recursively.
// Packaged units carry normalized values so an archive decodes back to a
// record equal to the one that was written.
func Normalize(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case uint:
		return normalizeUint64(uint64(n))
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return normalizeUint64(n)
	case float32:
		return float64(n)
	case []any:
		out := make([]any, len(n))
		for i, item := range n {
			out[i] = Normalize(item)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(n))
		for key, item := range n {
			out[key] = Normalize(item)
		}

		return out
	default:
		return v
	}
}

// normalizeUint64 keeps values above the int64 range unsigned.
func normalizeUint64(n uint64) any {
	if n > math.MaxInt64 {
		return n
	}

	return int64(n)
}

// Normalized returns a copy of the table with every value normalized.
func (t *Table) Normalized() *Table {
	columns := make([]Column, 0, len(t.Columns))
	for _, c := range t.Columns {
		values := make([]any, len(c.Values))
		for i, v := range c.Values {
			values[i] = Normalize(v)
		}

		columns = append(columns, Column{Name: c.Name, Values: values})
	}

	return &Table{Columns: columns}
}
