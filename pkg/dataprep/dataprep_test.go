package dataprep

import (
	"bytes"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/table"
)

var nan = math.NaN()

type fakeRecorder struct {
	mu          sync.Mutex
	removed     map[string]int
	transformed map[string]int
	calls       map[string]int
	errs        map[string]int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{
		removed:     map[string]int{},
		transformed: map[string]int{},
		calls:       map[string]int{},
		errs:        map[string]int{},
	}
}

func (f *fakeRecorder) RowsRemoved(stage string, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed[stage] += n
}

func (f *fakeRecorder) ColumnsTransformed(stage string, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transformed[stage] += n
}

func (f *fakeRecorder) ObserveStage(stage string, _ time.Duration, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[stage]++
	if err != nil {
		f.errs[stage]++
	}
}

func quiet(opts ...Option) *Preprocessor {
	return New(append([]Option{WithLogger(zerolog.Nop())}, opts...)...)
}

func logged(buf *bytes.Buffer, rec Recorder) *Preprocessor {
	return New(WithLogger(zerolog.New(buf)), WithRecorder(rec))
}

func mixed() *table.Table {
	return table.MustNew(
		table.NewNumeric("age", []float64{30, 40, 30, nan, 50}),
		table.NewCategorical("city", []string{"Quito", "Lima", "Quito", "Lima", "Cuenca"}),
		table.NewBoolean("remote", []bool{true, false, true, true, false}),
	)
}

func column(t *testing.T, tbl *table.Table, name string) *table.Column {
	t.Helper()
	c, ok := tbl.Column(name)
	if !ok {
		t.Fatalf("column %q not found", name)
	}
	return c
}
