// Package data reads and writes tables as CSV.
package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/table"
)

// DefaultNullValues are the cell texts read as missing.
var DefaultNullValues = []string{"", "NA", "N/A", "n/a", "NaN", "nan", "null", "NULL", "None", "#N/A", "<NA>"}

// ReadOptions controls how CSV input is parsed.
type ReadOptions struct {
	// Comma is the field delimiter; 0 means ','.
	Comma rune
	// NullValues replaces DefaultNullValues when non-nil.
	NullValues []string
	// Encoding is a WHATWG encoding label such as "latin1" or "gbk";
	// empty means UTF-8. A byte order mark always wins.
	Encoding string
}

func (o ReadOptions) comma() rune {
	if o.Comma == 0 {
		return ','
	}
	return o.Comma
}

func (o ReadOptions) nulls() map[string]struct{} {
	vals := o.NullValues
	if vals == nil {
		vals = DefaultNullValues
	}
	set := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	return set
}

func (o ReadOptions) decoder() (transform.Transformer, error) {
	if o.Encoding == "" {
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	}
	enc, err := htmlindex.Get(o.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown encoding %q", table.ErrValue, o.Encoding)
	}
	return unicode.BOMOverride(enc.NewDecoder()), nil
}

// Load reads the CSV file at path with default options.
func Load(path string) (*table.Table, error) {
	return LoadWithOptions(path, ReadOptions{})
}

// LoadWithOptions reads the CSV file at path. It fails with table.ErrNotFound
// before opening anything when path is not an existing regular file.
func LoadWithOptions(path string, opt ReadOptions) (*table.Table, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", table.ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", table.ErrNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	t, err := Read(f, opt)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

// Read parses CSV from r. The first record is the header. Rows shorter than
// the header are padded with missing cells.
func Read(r io.Reader, opt ReadOptions) (*table.Table, error) {
	dec, err := opt.decoder()
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.Comma = opt.comma()
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: no columns to parse", table.ErrEmptyData)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	names := mangleHeader(header)

	raw := make([][]string, len(names))
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(rec) > len(names) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d fields, header has %d", table.ErrValue, line, len(rec), len(names))
		}
		for j := range names {
			v := ""
			if j < len(rec) {
				v = rec[j]
			}
			raw[j] = append(raw[j], v)
		}
	}

	nulls := opt.nulls()
	cols := make([]*table.Column, len(names))
	for j, name := range names {
		cols[j] = inferColumn(name, raw[j], nulls)
	}
	return table.New(cols...)
}

// mangleHeader names blank or all-space headers "Unnamed: <i>" and suffixes
// repeated names with ".1", ".2", ... Other names are kept verbatim.
func mangleHeader(header []string) []string {
	names := make([]string, len(header))
	used := make(map[string]bool, len(header))
	count := make(map[string]int, len(header))
	for i, h := range header {
		if strings.TrimSpace(h) == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		name := h
		for used[name] {
			count[h]++
			name = fmt.Sprintf("%s.%d", h, count[h])
		}
		used[name] = true
		names[i] = name
	}
	return names
}
