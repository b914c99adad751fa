package dataprep

import (
	"fmt"
	"time"

	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/stats"
	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/table"
)

// DetectOutliers runs Preprocessor.DetectOutliers with default options.
func DetectOutliers(t *table.Table, column string) ([]int, error) {
	return New().DetectOutliers(t, column)
}

// RemoveOutliers runs Preprocessor.RemoveOutliers with default options.
func RemoveOutliers(t *table.Table, column string) (*table.Table, error) {
	return New().RemoveOutliers(t, column)
}

// ClipOutliers runs Preprocessor.ClipOutliers with default options.
func ClipOutliers(t *table.Table, column string) (*table.Table, error) {
	return New().ClipOutliers(t, column)
}

// DetectOutliers returns, in ascending order, the row positions whose value in
// column lies strictly outside [Q1 - k*IQR, Q3 + k*IQR]. Quartiles use linear
// interpolation and skip missing cells; missing cells are never outliers.
func (p *Preprocessor) DetectOutliers(t *table.Table, column string) (rows []int, err error) {
	start := time.Now()
	defer func() { p.observe(StageDetectOutliers, start, err) }()

	c, err := numericColumn(t, column)
	if err != nil {
		return nil, fmt.Errorf("detect outliers: %w", err)
	}
	return p.detect(c), nil
}

func (p *Preprocessor) detect(c *table.Column) []int {
	rows := stats.OutlierIndices(c.Floats(), p.iqrK)
	p.logger.Info().Str("column", c.Name()).Int("outliers", len(rows)).Msg("outliers detected")
	return rows
}

// RemoveOutliers drops the rows DetectOutliers flags for column. Every other
// row keeps its values and relative order.
func (p *Preprocessor) RemoveOutliers(t *table.Table, column string) (out *table.Table, err error) {
	start := time.Now()
	defer func() { p.observe(StageRemoveOutliers, start, err) }()

	c, err := numericColumn(t, column)
	if err != nil {
		return nil, fmt.Errorf("remove outliers: %w", err)
	}
	rows := p.detect(c)
	out = t.Drop(rows)

	p.recorder.RowsRemoved(StageRemoveOutliers, len(rows))
	p.logger.Info().Str("column", column).Int("removed", len(rows)).Msg("outliers removed")
	return out, nil
}

// ClipOutliers bounds the values of column to its IQR fence instead of
// dropping rows. Other columns are shared unchanged.
func (p *Preprocessor) ClipOutliers(t *table.Table, column string) (out *table.Table, err error) {
	start := time.Now()
	defer func() { p.observe(StageClipOutliers, start, err) }()

	c, err := numericColumn(t, column)
	if err != nil {
		return nil, fmt.Errorf("clip outliers: %w", err)
	}
	rows := p.detect(c)
	if len(rows) == 0 {
		return t, nil
	}
	out, err = t.WithColumn(table.NewNumeric(column, stats.ClipOutliers(c.Floats(), p.iqrK)))
	if err != nil {
		return nil, fmt.Errorf("clip outliers: %w", err)
	}
	p.recorder.ColumnsTransformed(StageClipOutliers, 1)
	p.logger.Info().Str("column", column).Int("clipped", len(rows)).Msg("outliers clipped")
	return out, nil
}

// numericColumn validates t and looks up a numeric column.
func numericColumn(t *table.Table, name string) (*table.Column, error) {
	t, err := table.Assert(t)
	if err != nil {
		return nil, err
	}
	c, ok := t.Column(name)
	if !ok {
		return nil, &table.ColumnError{Column: name, Reason: "does not exist"}
	}
	if c.Kind() != table.Numeric {
		return nil, &table.ColumnError{Column: name, Reason: fmt.Sprintf("is %s, not numeric", c.Kind())}
	}
	return c, nil
}
