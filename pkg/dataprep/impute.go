package dataprep

import (
	"fmt"
	"math"
	"time"

	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/stats"
	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/table"
)

// ImputeStrategy selects the fill value FillMissing uses.
type ImputeStrategy string

const (
	ImputeNone   ImputeStrategy = "none"
	ImputeMean   ImputeStrategy = "mean"
	ImputeMedian ImputeStrategy = "median"
	ImputeMode   ImputeStrategy = "mode"
)

// ParseImputeStrategy validates a strategy name.
func ParseImputeStrategy(s string) (ImputeStrategy, error) {
	switch st := ImputeStrategy(s); st {
	case ImputeNone, ImputeMean, ImputeMedian, ImputeMode:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown imputation strategy %q", table.ErrValue, s)
	}
}

// FillMissing replaces missing cells. Numeric columns use the mean, median or
// mode of their present values; categorical and boolean columns always use
// their mode. Columns without a single present value are left as they are.
func (p *Preprocessor) FillMissing(t *table.Table, strategy ImputeStrategy) (out *table.Table, err error) {
	start := time.Now()
	defer func() { p.observe(StageFillMissing, start, err) }()

	if t, err = table.Assert(t); err != nil {
		return nil, fmt.Errorf("fill missing: %w", err)
	}
	if _, err = ParseImputeStrategy(string(strategy)); err != nil {
		return nil, fmt.Errorf("fill missing: %w", err)
	}
	if strategy == ImputeNone {
		return t, nil
	}

	out = t
	filled := 0
	for _, c := range t.Columns() {
		n := c.NullCount()
		if n == 0 {
			continue
		}
		if n == c.Len() {
			p.logger.Warn().Str("column", c.Name()).Msg("column has no values to impute from")
			continue
		}
		if out, err = out.WithColumn(fillColumn(c, strategy)); err != nil {
			return nil, fmt.Errorf("fill missing: %w", err)
		}
		filled++
		p.logger.Info().Str("column", c.Name()).Int("filled", n).Str("strategy", string(strategy)).Msg("missing values imputed")
	}
	p.recorder.ColumnsTransformed(StageFillMissing, filled)
	return out, nil
}

func fillColumn(c *table.Column, strategy ImputeStrategy) *table.Column {
	switch c.Kind() {
	case table.Numeric:
		vals := c.Floats()
		var fill float64
		switch strategy {
		case ImputeMean:
			fill = stats.Mean(vals)
		case ImputeMedian:
			fill = stats.Median(vals)
		default:
			fill = stats.Mode(stats.Present(vals))
		}
		for i, v := range vals {
			if math.IsNaN(v) {
				vals[i] = fill
			}
		}
		return table.NewNumeric(c.Name(), vals)
	case table.Categorical:
		vals := c.Texts()
		fill := stats.Mode(presentOf(c, vals))
		for i := range vals {
			if c.IsNull(i) {
				vals[i] = fill
			}
		}
		return table.NewCategorical(c.Name(), vals)
	default:
		vals := c.Bools()
		fill := stats.Mode(presentOf(c, vals))
		for i := range vals {
			if c.IsNull(i) {
				vals[i] = fill
			}
		}
		return table.NewBoolean(c.Name(), vals)
	}
}

func presentOf[T any](c *table.Column, vals []T) []T {
	out := make([]T, 0, len(vals))
	for i, v := range vals {
		if !c.IsNull(i) {
			out = append(out, v)
		}
	}
	return out
}
