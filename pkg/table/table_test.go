package table

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Table {
	return MustNew(
		NewNumeric("age", []float64{30, 40, 50}),
		NewCategorical("city", []string{"Quito", "Lima", "Quito"}),
		NewBoolean("active", []bool{true, false, true}),
	)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cols []*Column
		ok   bool
	}{
		{"empty", nil, true},
		{"aligned", []*Column{NewNumeric("a", []float64{1}), NewCategorical("b", []string{"x"})}, true},
		{"length mismatch", []*Column{NewNumeric("a", []float64{1, 2}), NewCategorical("b", []string{"x"})}, false},
		{"duplicate", []*Column{NewNumeric("a", []float64{1}), NewNumeric("a", []float64{2})}, false},
		{"blank name", []*Column{NewNumeric("", []float64{1})}, false},
		{"nil column", []*Column{nil}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cols...)
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValue)
		})
	}
}

func TestAssert(t *testing.T) {
	tbl := sample()
	got, err := Assert(tbl)
	require.NoError(t, err)
	assert.Same(t, tbl, got)

	for _, v := range []any{42, "table", nil, (*Table)(nil), []float64{1}} {
		_, err := Assert(v)
		assert.ErrorIs(t, err, ErrType, "%#v", v)
	}
}

func TestNamesOfKind(t *testing.T) {
	tbl := sample()
	assert.Equal(t, []string{"age", "city", "active"}, tbl.Names())
	assert.Equal(t, []string{"age"}, tbl.NumericNames())
	assert.Equal(t, []string{"city"}, tbl.NamesOfKind(Categorical))
	assert.Equal(t, []string{"active"}, tbl.NamesOfKind(Boolean))
}

func TestTakeAndDrop(t *testing.T) {
	tbl := sample()

	dropped := tbl.Drop([]int{1, 7})
	require.Equal(t, 2, dropped.NumRows())
	age, _ := dropped.Column("age")
	assert.Equal(t, []float64{30, 50}, age.Floats())
	city, _ := dropped.Column("city")
	assert.Equal(t, []string{"Quito", "Quito"}, city.Texts())

	taken := tbl.Take([]int{2, 0})
	active, _ := taken.Column("active")
	assert.Equal(t, []bool{true, true}, active.Bools())

	// the source is untouched
	assert.Equal(t, 3, tbl.NumRows())
}

func TestWithColumn(t *testing.T) {
	tbl := sample()
	next, err := tbl.WithColumn(NewNumeric("age", []float64{0, 0.5, 1}))
	require.NoError(t, err)

	orig, _ := tbl.Column("age")
	assert.Equal(t, []float64{30, 40, 50}, orig.Floats())
	repl, _ := next.Column("age")
	assert.Equal(t, []float64{0, 0.5, 1}, repl.Floats())

	c1, _ := tbl.Column("city")
	c2, _ := next.Column("city")
	assert.Same(t, c1, c2)

	_, err = tbl.WithColumn(NewNumeric("missing", []float64{1, 2, 3}))
	var ce *ColumnError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "missing", ce.Column)

	_, err = tbl.WithColumn(NewNumeric("age", []float64{1}))
	assert.ErrorIs(t, err, ErrValue)
}

func TestNulls(t *testing.T) {
	c := NewNumeric("x", []float64{1, math.NaN(), 3})
	assert.True(t, c.IsNull(1))
	assert.Equal(t, 1, c.NullCount())
	assert.Equal(t, "", c.Format(1))

	s := NewCategorical("s", []string{"a", "b"}).WithNulls(0, 9)
	assert.True(t, s.IsNull(0))
	assert.False(t, s.IsNull(1))
	assert.Equal(t, "", s.Format(0))
}

func TestFormat(t *testing.T) {
	c := NewNumeric("x", []float64{1, 2.5, math.Copysign(0, -1), 1e21})
	assert.Equal(t, "1", c.Format(0))
	assert.Equal(t, "2.5", c.Format(1))
	assert.Equal(t, "0", c.Format(2))
	assert.Equal(t, "1e+21", c.Format(3))

	b := NewBoolean("b", []bool{true, false})
	assert.Equal(t, "true", b.Format(0))
	assert.Equal(t, "false", b.Format(1))
}

func TestEqual(t *testing.T) {
	a := sample()
	b := sample()
	assert.True(t, a.Equal(b))

	c, err := a.WithColumn(NewCategorical("city", []string{"Quito", "Lima", "Cuenca"}))
	require.NoError(t, err)
	assert.False(t, a.Equal(c))

	x := MustNew(NewNumeric("x", []float64{math.NaN()}))
	y := MustNew(NewNumeric("x", []float64{math.NaN()}))
	assert.True(t, x.Equal(y))
}
