package dataset

import "fmt"

// PlaceholderError reports a metadata field that still holds a known
// placeholder value, meaning the caller forgot to replace template data.
type PlaceholderError struct {
	// Field names the offending input.
	Field string
	// Value is the placeholder that was matched.
	Value string
}

// Error implements the error interface.
func (e *PlaceholderError) Error() string {
	return fmt.Sprintf("field %q still holds its placeholder value %q", e.Field, e.Value)
}

// ShapeError reports a descriptor vector whose length does not match the
// table's column count.
type ShapeError struct {
	// Vector names the offending descriptor vector.
	Vector string
	// Got is the vector's actual length.
	Got int
	// Want is the table's column count.
	Want int
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s has length %d, expected %d (one entry per column)", e.Vector, e.Got, e.Want)
}
