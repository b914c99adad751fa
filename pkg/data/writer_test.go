package data

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/table"
)

func TestWrite(t *testing.T) {
	tbl := table.MustNew(
		table.NewNumeric("x", []float64{1, 0.25, math.NaN()}),
		table.NewCategorical("city", []string{"Quito", "San José, CR", "Lima"}),
		table.NewBoolean("ok", []bool{true, false, true}),
	)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tbl))
	assert.Equal(t, "x,city,ok\n1,Quito,true\n0.25,\"San José, CR\",false\n,Lima,true\n", buf.String())
}

// TestSaveRoundTrip covers tables with rows; see TestSaveRoundTripZeroRows.
func TestSaveRoundTrip(t *testing.T) {
	tbl := table.MustNew(
		table.NewNumeric("age", []float64{31, 45.5, math.NaN(), 1e-7}),
		table.NewCategorical("city", []string{"Quito", "Lima", "Cuenca", "Loja"}).WithNulls(2),
		table.NewBoolean("remote", []bool{true, false, true, true}).WithNulls(3),
	)
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, Save(tbl, path))

	back, err := Load(path)
	require.NoError(t, err)
	assert.True(t, tbl.Equal(back))
}

// Kinds survive a round trip only when a column has at least one row: a
// header-only file carries no cell to infer from, so every column reloads
// as categorical.
func TestSaveRoundTripZeroRows(t *testing.T) {
	tbl := table.MustNew(
		table.NewNumeric("age", nil),
		table.NewBoolean("remote", nil),
	)
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, Save(tbl, path))

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, tbl.Names(), back.Names())
	assert.Equal(t, 0, back.NumRows())
	assert.Equal(t, []string{"age", "remote"}, back.NamesOfKind(table.Categorical))
	assert.False(t, tbl.Equal(back))
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("old,content\n1,2\n3,4\n"), 0o644))

	require.NoError(t, Save(table.MustNew(table.NewNumeric("v", []float64{9})), path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v\n9\n", string(b))
}

func TestSaveErrors(t *testing.T) {
	err := Save(nil, filepath.Join(t.TempDir(), "x.csv"))
	assert.ErrorIs(t, err, table.ErrType)

	err = Save(table.MustNew(table.NewNumeric("v", []float64{1})), filepath.Join(t.TempDir(), "no", "such", "dir.csv"))
	assert.Error(t, err)
}
