package dataprep

import (
	"fmt"
	"time"

	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/stats"
	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/table"
)

// ScaleMethod selects how Scale rescales numeric columns.
type ScaleMethod string

const (
	// MinMax maps each column's minimum to 0 and maximum to 1.
	MinMax ScaleMethod = "minmax"
	// Standard subtracts the mean and divides by the population std.
	Standard ScaleMethod = "standard"
	// Robust subtracts the median and divides by the IQR.
	Robust ScaleMethod = "robust"
)

// ParseScaleMethod validates a method name.
func ParseScaleMethod(s string) (ScaleMethod, error) {
	switch m := ScaleMethod(s); m {
	case MinMax, Standard, Robust:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown scaler %q", table.ErrValue, s)
	}
}

func (m ScaleMethod) apply(x []float64) []float64 {
	switch m {
	case Standard:
		return stats.Standardize(x)
	case Robust:
		return stats.RobustScale(x)
	default:
		return stats.MinMaxScale(x)
	}
}

// Normalize runs Preprocessor.Normalize with default options.
func Normalize(t *table.Table) (*table.Table, error) { return New().Normalize(t) }

// Normalize min-max scales every numeric column into [0, 1] with
// (x - min) / (max - min). A constant column becomes all 0. Missing cells stay
// missing. It fails with table.ErrValue when t has no numeric column or a
// numeric column holds an infinite value.
func (p *Preprocessor) Normalize(t *table.Table) (*table.Table, error) {
	return p.scale(StageNormalize, t, MinMax)
}

// Scale rescales every numeric column with method. Degenerate columns (zero
// range, std or IQR) become all 0.
func (p *Preprocessor) Scale(t *table.Table, method ScaleMethod) (*table.Table, error) {
	if _, err := ParseScaleMethod(string(method)); err != nil {
		return nil, fmt.Errorf("scale: %w", err)
	}
	return p.scale(StageScale, t, method)
}

func (p *Preprocessor) scale(stage string, t *table.Table, method ScaleMethod) (out *table.Table, err error) {
	start := time.Now()
	defer func() { p.observe(stage, start, err) }()

	if t, err = table.Assert(t); err != nil {
		return nil, fmt.Errorf("%s: %w", stage, err)
	}
	names := t.NumericNames()
	if len(names) == 0 {
		return nil, fmt.Errorf("%s: %w: no numeric columns to scale", stage, table.ErrValue)
	}

	for _, name := range names {
		c, _ := t.Column(name)
		if !stats.Finite(c.Floats()) {
			return nil, fmt.Errorf("%s: %w", stage, &table.ColumnError{Column: name, Reason: "contains infinite values"})
		}
	}

	out = t
	for _, name := range names {
		c, _ := out.Column(name)
		lo, hi := stats.MinMax(c.Floats())
		if method == MinMax && lo == hi && c.NullCount() < c.Len() {
			p.logger.Warn().Str("column", name).Float64("value", lo).Msg("constant column scaled to 0")
		}
		if out, err = out.WithColumn(table.NewNumeric(name, method.apply(c.Floats()))); err != nil {
			return nil, fmt.Errorf("%s: %w", stage, err)
		}
	}
	p.recorder.ColumnsTransformed(stage, len(names))
	p.logger.Info().Strs("columns", names).Str("method", string(method)).Msg("numeric columns scaled")
	return out, nil
}
