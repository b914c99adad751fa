package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/table"
)

// DefaultOutputPath is where Save writes when no path is given.
const DefaultOutputPath = "data/datos_procesados.csv"

// Save writes t as CSV to path, or to DefaultOutputPath when path is empty.
// The file is created or truncated.
func Save(t *table.Table, path string) (err error) {
	if t == nil {
		return fmt.Errorf("%w: nil *table.Table", table.ErrType)
	}
	if path == "" {
		path = DefaultOutputPath
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := Write(f, t); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Write encodes t as CSV: a header row of column names followed by one record
// per row. No index column is written.
func Write(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Names()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	cols := t.Columns()
	rec := make([]string, len(cols))
	for i, n := 0, t.NumRows(); i < n; i++ {
		for j, c := range cols {
			rec[j] = c.Format(i)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
