package dataprep

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/table"
)

// LabelEncode maps each distinct value to its rank in ascending byte-wise
// (code point) order, so equal inputs always get equal codes.
func LabelEncode(data []string) ([]int, map[string]int) {
	classes := slices.Clone(data)
	slices.Sort(classes)
	classes = slices.Compact(classes)

	mapping := make(map[string]int, len(classes))
	for i, v := range classes {
		mapping[v] = i
	}
	out := make([]int, len(data))
	for i, v := range data {
		out[i] = mapping[v]
	}
	return out, mapping
}

// EncodeCategoricals runs Preprocessor.EncodeCategoricals with default options.
func EncodeCategoricals(t *table.Table) (*table.Table, error) {
	return New().EncodeCategoricals(t)
}

// EncodeCategoricals replaces every categorical column with a numeric column
// of label codes (see LabelEncode). Missing cells stay missing and take no
// code. Numeric and boolean columns are shared unchanged.
func (p *Preprocessor) EncodeCategoricals(t *table.Table) (out *table.Table, err error) {
	start := time.Now()
	defer func() { p.observe(StageEncode, start, err) }()

	if t, err = table.Assert(t); err != nil {
		return nil, fmt.Errorf("encode categoricals: %w", err)
	}

	out = t
	encoded := t.NamesOfKind(table.Categorical)
	for _, name := range encoded {
		c, _ := out.Column(name)
		if out, err = out.WithColumn(encodeColumn(c)); err != nil {
			return nil, fmt.Errorf("encode categoricals: %w", err)
		}
		p.logger.Info().Str("column", name).Msg("column encoded")
	}
	p.recorder.ColumnsTransformed(StageEncode, len(encoded))
	return out, nil
}

func encodeColumn(c *table.Column) *table.Column {
	var present []string
	for i, n := 0, c.Len(); i < n; i++ {
		if !c.IsNull(i) {
			present = append(present, c.Text(i))
		}
	}
	_, mapping := LabelEncode(present)

	codes := make([]float64, c.Len())
	for i := range codes {
		if c.IsNull(i) {
			codes[i] = math.NaN()
			continue
		}
		codes[i] = float64(mapping[c.Text(i)])
	}
	return table.NewNumeric(c.Name(), codes)
}
