package dataprep

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/table"
)

// Clean runs Preprocessor.Clean with default options.
func Clean(t *table.Table) (*table.Table, error) { return New().Clean(t) }

// Clean drops every row holding a missing cell, then every row equal in all
// columns to an earlier surviving row. Survivors keep their relative order.
func (p *Preprocessor) Clean(t *table.Table) (out *table.Table, err error) {
	start := time.Now()
	defer func() { p.observe(StageClean, start, err) }()

	if t, err = table.Assert(t); err != nil {
		return nil, fmt.Errorf("clean: %w", err)
	}

	cols := t.Columns()
	seen := make(map[string]struct{}, t.NumRows())
	keep := make([]int, 0, t.NumRows())
	var b strings.Builder
	nulls, dups := 0, 0
	for i, n := 0, t.NumRows(); i < n; i++ {
		if hasNull(cols, i) {
			nulls++
			continue
		}
		key := rowKey(&b, cols, i)
		if _, ok := seen[key]; ok {
			dups++
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, i)
	}

	out = t.Take(keep)
	removed := t.NumRows() - out.NumRows()
	p.recorder.RowsRemoved(StageClean, removed)
	p.logger.Info().
		Int("removed", removed).
		Int("with_nulls", nulls).
		Int("duplicates", dups).
		Int("rows", out.NumRows()).
		Msg("dropped rows with missing values or duplicates")
	return out, nil
}

func hasNull(cols []*table.Column, i int) bool {
	for _, c := range cols {
		if c.IsNull(i) {
			return true
		}
	}
	return false
}

// rowKey renders row i so that two rows share a key only when every cell is
// equal.
func rowKey(b *strings.Builder, cols []*table.Column, i int) string {
	b.Reset()
	for _, c := range cols {
		b.WriteString(strconv.Quote(c.Format(i)))
		b.WriteByte(',')
	}
	return b.String()
}
