// Package table provides the in-memory tabular model shared by the loader and
// the preprocessing stages: an ordered set of named, typed, immutable columns
// with aligned rows.
package table

import (
	"fmt"
	"slices"
)

// Table is an ordered collection of equally long columns with unique names.
// Tables are never mutated after construction; every transformation returns
// a new Table and shares the columns it did not touch.
type Table struct {
	cols  []*Column
	index map[string]int
	rows  int
}

// New builds a Table from columns. Column names must be non-empty and unique
// and every column must have the same length.
func New(cols ...*Column) (*Table, error) {
	t := &Table{cols: slices.Clone(cols), index: make(map[string]int, len(cols))}
	for i, c := range cols {
		if c == nil {
			return nil, fmt.Errorf("%w: column %d is nil", ErrValue, i)
		}
		if c.Name() == "" {
			return nil, fmt.Errorf("%w: column %d has no name", ErrValue, i)
		}
		if _, dup := t.index[c.Name()]; dup {
			return nil, &ColumnError{Column: c.Name(), Reason: "duplicate column name"}
		}
		if i == 0 {
			t.rows = c.Len()
		} else if c.Len() != t.rows {
			return nil, &ColumnError{Column: c.Name(), Reason: fmt.Sprintf("has %d rows, want %d", c.Len(), t.rows)}
		}
		t.index[c.Name()] = i
	}
	return t, nil
}

// MustNew is like New but panics on error.
func MustNew(cols ...*Column) *Table {
	t, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return t
}

// Assert is the capability check performed at operation boundaries: it
// returns v as a *Table, or ErrType when v is anything else (including a nil
// *Table).
func Assert(v any) (*Table, error) {
	t, ok := v.(*Table)
	if !ok {
		return nil, fmt.Errorf("%w: expected *table.Table, got %T", ErrType, v)
	}
	if t == nil {
		return nil, fmt.Errorf("%w: nil *table.Table", ErrType)
	}
	return t, nil
}

func (t *Table) NumRows() int { return t.rows }
func (t *Table) NumCols() int { return len(t.cols) }

// Columns returns the columns in order.
func (t *Table) Columns() []*Column { return slices.Clone(t.cols) }

// Column looks a column up by name.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.Name()
	}
	return out
}

// NamesOfKind returns, in order, the names of the columns of kind k.
func (t *Table) NamesOfKind(k Kind) []string {
	var out []string
	for _, c := range t.cols {
		if c.Kind() == k {
			out = append(out, c.Name())
		}
	}
	return out
}

// NumericNames returns the current numeric column selection set.
func (t *Table) NumericNames() []string { return t.NamesOfKind(Numeric) }

// Take returns a new Table holding the given rows in the given order.
func (t *Table) Take(rows []int) *Table {
	out := &Table{cols: make([]*Column, len(t.cols)), index: t.index, rows: len(rows)}
	for i, c := range t.cols {
		out.cols[i] = c.take(rows)
	}
	return out
}

// Drop returns a new Table without the given row positions, preserving the
// relative order of the remaining rows. Out of range positions are ignored.
func (t *Table) Drop(rows []int) *Table {
	if len(rows) == 0 {
		return t.Take(allRows(t.rows))
	}
	gone := make(map[int]struct{}, len(rows))
	for _, r := range rows {
		gone[r] = struct{}{}
	}
	keep := make([]int, 0, t.rows)
	for i := 0; i < t.rows; i++ {
		if _, ok := gone[i]; !ok {
			keep = append(keep, i)
		}
	}
	return t.Take(keep)
}

// WithColumn returns a new Table in which the column named c.Name() is
// replaced by c. The name must already exist and the lengths must match.
func (t *Table) WithColumn(c *Column) (*Table, error) {
	i, ok := t.index[c.Name()]
	if !ok {
		return nil, &ColumnError{Column: c.Name(), Reason: "does not exist"}
	}
	if c.Len() != t.rows {
		return nil, &ColumnError{Column: c.Name(), Reason: fmt.Sprintf("has %d rows, want %d", c.Len(), t.rows)}
	}
	out := &Table{cols: slices.Clone(t.cols), index: t.index, rows: t.rows}
	out.cols[i] = c
	return out, nil
}

// Equal reports whether both tables hold the same columns and cells.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.rows != o.rows || len(t.cols) != len(o.cols) {
		return false
	}
	for i := range t.cols {
		if !t.cols[i].Equal(o.cols[i]) {
			return false
		}
	}
	return true
}
