package chart

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/table"
)

var notas = []float64{1, 2, 2, 3, math.NaN(), 3, 4, 4, 5, 100}

func TestOutlierBoxPlot(t *testing.T) {
	dir := t.TempDir()

	png := filepath.Join(dir, "nota.png")
	require.NoError(t, OutlierBoxPlot(png, "nota", notas, 0))
	b, err := os.ReadFile(png)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(b[:4]))

	svg := filepath.Join(dir, "nota.svg")
	require.NoError(t, OutlierBoxPlot(svg, "nota", []float64{3, 3, 3}, 3))
	b, err = os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")
}

func TestOutlierBoxPlotErrors(t *testing.T) {
	dir := t.TempDir()

	err := OutlierBoxPlot(filepath.Join(dir, "empty.png"), "nota", []float64{math.NaN()}, 0)
	assert.ErrorIs(t, err, table.ErrValue)

	assert.Error(t, OutlierBoxPlot(filepath.Join(dir, "nota.xyz"), "nota", notas, 0))
	assert.Error(t, OutlierBoxPlot(filepath.Join(dir, "inf.png"), "nota", []float64{1, math.Inf(1)}, 0))
}
