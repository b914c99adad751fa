package dataprep

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/table"
)

func scores() *table.Table {
	return table.MustNew(
		table.NewNumeric("score", []float64{1, 2, 2, 3, 3, 4, 4, 5, 100}),
		table.NewCategorical("name", []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}),
	)
}

func TestDetectOutliers(t *testing.T) {
	rows, err := quiet().DetectOutliers(scores(), "score")
	require.NoError(t, err)
	assert.Equal(t, []int{8}, rows)
}

func TestDetectOutliersConstant(t *testing.T) {
	tbl := table.MustNew(table.NewNumeric("v", []float64{4, 4, 4, 4, 4}))
	rows, err := quiet().DetectOutliers(tbl, "v")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDetectOutliersSkipsMissing(t *testing.T) {
	tbl := table.MustNew(table.NewNumeric("v", []float64{nan, 1, 2, 2, 3, 3, 4, 4, 5, 100}))
	rows, err := quiet().DetectOutliers(tbl, "v")
	require.NoError(t, err)
	assert.Equal(t, []int{9}, rows)
}

func TestDetectOutliersValidation(t *testing.T) {
	p := quiet()

	_, err := p.DetectOutliers(scores(), "nope")
	var ce *table.ColumnError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "nope", ce.Column)
	assert.ErrorIs(t, err, table.ErrValue)

	_, err = p.DetectOutliers(scores(), "name")
	assert.ErrorIs(t, err, table.ErrValue)
	assert.Contains(t, err.Error(), "not numeric")

	_, err = p.DetectOutliers(nil, "score")
	assert.ErrorIs(t, err, table.ErrType)
}

func TestRemoveOutliers(t *testing.T) {
	rec := newFakeRecorder()
	in := scores()
	out, err := quiet(WithRecorder(rec)).RemoveOutliers(in, "score")
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 2, 3, 3, 4, 4, 5}, column(t, out, "score").Floats())
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h"}, column(t, out, "name").Texts())
	assert.Equal(t, 1, rec.removed[StageRemoveOutliers])
	assert.Equal(t, 9, in.NumRows())

	_, err = quiet().RemoveOutliers(in, "name")
	assert.ErrorIs(t, err, table.ErrValue)
}

func TestClipOutliers(t *testing.T) {
	in := scores()
	out, err := quiet().ClipOutliers(in, "score")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 2, 3, 3, 4, 4, 5, 7}, column(t, out, "score").Floats())
	assert.Same(t, column(t, in, "name"), column(t, out, "name"))
}

func TestIQRMultiplier(t *testing.T) {
	// fence with k=50 is [-98, 104]
	rows, err := quiet(WithIQRMultiplier(50)).DetectOutliers(scores(), "score")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDetectOutliersInfinite(t *testing.T) {
	in := table.MustNew(table.NewNumeric("v", []float64{1, 2, 3, 4, math.Inf(1)}))
	rows, err := quiet().DetectOutliers(in, "v")
	require.NoError(t, err)
	assert.Equal(t, []int{4}, rows)

	out, err := quiet().RemoveOutliers(in, "v")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, column(t, out, "v").Floats())
}
