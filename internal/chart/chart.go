// Package chart renders diagnostic plots of preprocessed columns.
package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/stats"
	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/table"
)

var (
	fenceColor   = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	outlierColor = color.RGBA{R: 255, A: 255}
)

// OutlierBoxPlot draws a box plot of the present values of x with the k*IQR
// fence as dashed lines and the values outside it as red crosses, then saves
// it to path. The image format follows the extension of path (png, svg, pdf,
// ...). A non-positive k means stats.DefaultIQRMultiplier.
func OutlierBoxPlot(path, column string, x []float64, k float64) error {
	if k <= 0 {
		k = stats.DefaultIQRMultiplier
	}
	values := stats.Present(x)
	if len(values) == 0 {
		return &table.ColumnError{Column: column, Reason: "has no values to plot"}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Outliers in %s", column)
	p.Y.Label.Text = column

	box, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(values))
	if err != nil {
		return fmt.Errorf("box plot: %w", err)
	}
	p.Add(box)

	f := stats.IQRFence(values, k)
	for _, y := range []float64{f.Lower, f.Upper} {
		l, err := plotter.NewLine(plotter.XYs{{X: -0.5, Y: y}, {X: 0.5, Y: y}})
		if err != nil {
			return fmt.Errorf("fence line: %w", err)
		}
		l.Color = fenceColor
		l.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(l)
	}

	var pts plotter.XYs
	for _, i := range stats.OutlierIndices(values, k) {
		pts = append(pts, plotter.XY{X: 0, Y: values[i]})
	}
	if len(pts) > 0 {
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("outlier points: %w", err)
		}
		s.GlyphStyle.Color = outlierColor
		s.GlyphStyle.Shape = draw.CrossGlyph{}
		s.GlyphStyle.Radius = vg.Points(4)
		p.Add(s)
	}
	p.NominalX(column)

	if err := p.Save(4*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}
