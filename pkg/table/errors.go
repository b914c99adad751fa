package table

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an input path does not resolve to a file.
	ErrNotFound = errors.New("not found")
	// ErrEmptyData is returned when an input has no parseable header or columns.
	ErrEmptyData = errors.New("empty data")
	// ErrType is returned when an argument is not a usable *Table.
	ErrType = errors.New("type error")
	// ErrValue is returned when an operation has no valid target.
	ErrValue = errors.New("value error")
)

// ColumnError reports a problem with a named column.
//
// It unwraps to ErrValue.
type ColumnError struct {
	Column string
	Reason string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("column %q: %s", e.Column, e.Reason)
}

func (e *ColumnError) Unwrap() error { return ErrValue }
