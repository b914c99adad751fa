package table

import (
	"math"
	"slices"
	"strconv"
)

// Kind is the semantic type held by a column.
type Kind uint8

const (
	Numeric Kind = iota
	Categorical
	Boolean
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	case Boolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Column is an immutable, named sequence of values of a single Kind.
// Missing cells are tracked by a null mask.
type Column struct {
	name  string
	kind  Kind
	nums  []float64
	strs  []string
	bools []bool
	null  []bool // nil when the column has no missing cells
}

// NewNumeric builds a numeric column. NaN marks a missing cell.
func NewNumeric(name string, vals []float64) *Column {
	c := &Column{name: name, kind: Numeric, nums: slices.Clone(vals)}
	if c.nums == nil {
		c.nums = []float64{}
	}
	for i, v := range c.nums {
		if math.IsNaN(v) {
			c.markNull(i)
		}
	}
	return c
}

// NewCategorical builds a text column with no missing cells.
func NewCategorical(name string, vals []string) *Column {
	c := &Column{name: name, kind: Categorical, strs: slices.Clone(vals)}
	if c.strs == nil {
		c.strs = []string{}
	}
	return c
}

// NewBoolean builds a boolean column with no missing cells.
func NewBoolean(name string, vals []bool) *Column {
	c := &Column{name: name, kind: Boolean, bools: slices.Clone(vals)}
	if c.bools == nil {
		c.bools = []bool{}
	}
	return c
}

// WithNulls returns a copy of c with the given rows marked missing.
func (c *Column) WithNulls(rows ...int) *Column {
	out := c.take(allRows(c.Len()))
	for _, r := range rows {
		if r < 0 || r >= out.Len() {
			continue
		}
		out.markNull(r)
		if out.kind == Numeric {
			out.nums[r] = math.NaN()
		}
	}
	return out
}

func (c *Column) markNull(i int) {
	if c.null == nil {
		c.null = make([]bool, c.Len())
	}
	c.null[i] = true
}

func (c *Column) Name() string { return c.name }
func (c *Column) Kind() Kind   { return c.kind }

// Len returns the number of cells.
func (c *Column) Len() int {
	switch c.kind {
	case Numeric:
		return len(c.nums)
	case Categorical:
		return len(c.strs)
	default:
		return len(c.bools)
	}
}

// IsNull reports whether row i is missing.
func (c *Column) IsNull(i int) bool { return c.null != nil && c.null[i] }

// NullCount returns the number of missing cells.
func (c *Column) NullCount() int {
	n := 0
	for _, b := range c.null {
		if b {
			n++
		}
	}
	return n
}

// Float returns the value of a numeric cell; NaN when missing.
func (c *Column) Float(i int) float64 { return c.nums[i] }

// Text returns the value of a categorical cell.
func (c *Column) Text(i int) string { return c.strs[i] }

// Bool returns the value of a boolean cell.
func (c *Column) Bool(i int) bool { return c.bools[i] }

// Floats returns a copy of a numeric column's values, NaN for missing cells.
func (c *Column) Floats() []float64 { return slices.Clone(c.nums) }

// Texts returns a copy of a categorical column's values.
func (c *Column) Texts() []string { return slices.Clone(c.strs) }

// Bools returns a copy of a boolean column's values.
func (c *Column) Bools() []bool { return slices.Clone(c.bools) }

// Format renders cell i as CSV text. Missing cells render empty.
func (c *Column) Format(i int) string {
	if c.IsNull(i) {
		return ""
	}
	switch c.kind {
	case Numeric:
		v := c.nums[i]
		if v == 0 {
			v = 0 // -0
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	case Categorical:
		return c.strs[i]
	default:
		return strconv.FormatBool(c.bools[i])
	}
}

func allRows(n int) []int {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return rows
}

// take copies the given rows in order.
func (c *Column) take(rows []int) *Column {
	out := &Column{name: c.name, kind: c.kind}
	switch c.kind {
	case Numeric:
		out.nums = make([]float64, len(rows))
		for j, r := range rows {
			out.nums[j] = c.nums[r]
		}
	case Categorical:
		out.strs = make([]string, len(rows))
		for j, r := range rows {
			out.strs[j] = c.strs[r]
		}
	default:
		out.bools = make([]bool, len(rows))
		for j, r := range rows {
			out.bools[j] = c.bools[r]
		}
	}
	for j, r := range rows {
		if c.IsNull(r) {
			out.markNull(j)
		}
	}
	return out
}

// Equal reports whether two columns hold the same name, kind and cells.
func (c *Column) Equal(o *Column) bool {
	if c.name != o.name || c.kind != o.kind || c.Len() != o.Len() {
		return false
	}
	for i, n := 0, c.Len(); i < n; i++ {
		if c.IsNull(i) != o.IsNull(i) {
			return false
		}
		if c.IsNull(i) {
			continue
		}
		switch c.kind {
		case Numeric:
			if c.nums[i] != o.nums[i] {
				return false
			}
		case Categorical:
			if c.strs[i] != o.strs[i] {
				return false
			}
		default:
			if c.bools[i] != o.bools[i] {
				return false
			}
		}
	}
	return true
}
