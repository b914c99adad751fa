// Package dataprep implements the preprocessing stages over a table.Table:
// cleaning, IQR outlier handling, label encoding, scaling and imputation.
//
// Every stage is stateless and returns a new table; the input is never
// mutated and columns a stage does not target are shared unchanged. What a
// stage removed or transformed is reported through the Preprocessor's logger
// and Recorder, not through its return value.
package dataprep

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/stats"
)

// Stage names used in logs and metrics.
const (
	StageClean          = "clean"
	StageDetectOutliers = "detect_outliers"
	StageRemoveOutliers = "remove_outliers"
	StageClipOutliers   = "clip_outliers"
	StageEncode         = "encode_categoricals"
	StageNormalize      = "normalize"
	StageScale          = "scale"
	StageFillMissing    = "fill_missing"
)

// Recorder receives the observable side effects of each stage.
type Recorder interface {
	// RowsRemoved is called by stages that drop rows.
	RowsRemoved(stage string, n int)
	// ColumnsTransformed is called by stages that rewrite columns.
	ColumnsTransformed(stage string, n int)
	// ObserveStage is called once per stage call; err is nil on success.
	ObserveStage(stage string, d time.Duration, err error)
}

// NopRecorder discards everything.
type NopRecorder struct{}

func (NopRecorder) RowsRemoved(string, int)                   {}
func (NopRecorder) ColumnsTransformed(string, int)            {}
func (NopRecorder) ObserveStage(string, time.Duration, error) {}

// Preprocessor runs the stages with a shared logger, recorder and outlier
// fence multiplier. It holds no per-table state and is safe to reuse.
type Preprocessor struct {
	logger   zerolog.Logger
	recorder Recorder
	iqrK     float64
}

// Option configures a Preprocessor.
type Option func(*Preprocessor)

// WithLogger sets the logger used for stage reports.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Preprocessor) { p.logger = l }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(p *Preprocessor) {
		if r != nil {
			p.recorder = r
		}
	}
}

// WithIQRMultiplier overrides the 1.5 fence multiplier. Non-positive values
// are ignored.
func WithIQRMultiplier(k float64) Option {
	return func(p *Preprocessor) {
		if k > 0 {
			p.iqrK = k
		}
	}
}

// New returns a Preprocessor logging to the global zerolog logger.
func New(opts ...Option) *Preprocessor {
	p := &Preprocessor{
		logger:   log.Logger,
		recorder: NopRecorder{},
		iqrK:     stats.DefaultIQRMultiplier,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With().Str("component", "dataprep").Logger()
	return p
}

func (p *Preprocessor) observe(stage string, start time.Time, err error) {
	p.recorder.ObserveStage(stage, time.Since(start), err)
	if err != nil {
		p.logger.Error().Err(err).Str("stage", stage).Msg("stage failed")
	}
}
