// Package pipeline chains the preprocessing stages into the conventional
// Load -> Clean -> Outliers -> Encode -> Normalize -> Save run.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/data"
	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/dataprep"
	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/table"
)

// Step is one table-to-table stage.
type Step struct {
	Name string
	Run  func(*table.Table) (*table.Table, error)
}

// Pipeline chains steps.
type Pipeline struct {
	steps  []Step
	logger zerolog.Logger
}

func NewPipeline(logger zerolog.Logger, steps ...Step) *Pipeline {
	return &Pipeline{steps: steps, logger: logger}
}

// Steps returns the step names in order.
func (p *Pipeline) Steps() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name
	}
	return names
}

// Transform feeds t through every step in order and stops at the first error.
func (p *Pipeline) Transform(t *table.Table) (*table.Table, error) {
	for _, step := range p.steps {
		next, err := step.Run(t)
		if err != nil {
			return nil, fmt.Errorf("step %s: %w", step.Name, err)
		}
		p.logger.Debug().Str("step", step.Name).Int("rows", next.NumRows()).Int("columns", next.NumCols()).Msg("step done")
		t = next
	}
	return t, nil
}

// Build assembles the stages selected by cfg.
func Build(cfg Config, prep *dataprep.Preprocessor, logger zerolog.Logger) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var steps []Step

	if strategy := dataprep.ImputeStrategy(cfg.Impute); strategy != dataprep.ImputeNone {
		steps = append(steps, Step{Name: dataprep.StageFillMissing, Run: func(t *table.Table) (*table.Table, error) {
			return prep.FillMissing(t, strategy)
		}})
	}

	steps = append(steps, Step{Name: dataprep.StageClean, Run: prep.Clean})

	if cfg.Outliers != OutliersNone {
		name := dataprep.StageRemoveOutliers
		handle := prep.RemoveOutliers
		if cfg.Outliers == OutliersClip {
			name, handle = dataprep.StageClipOutliers, prep.ClipOutliers
		}
		steps = append(steps, Step{Name: name, Run: func(t *table.Table) (*table.Table, error) {
			column := cfg.OutlierColumn
			if column == "" {
				numeric := t.NumericNames()
				if len(numeric) == 0 {
					logger.Warn().Msg("no numeric column, skipping outlier handling")
					return t, nil
				}
				column = numeric[0]
			}
			return handle(t, column)
		}})
	}

	steps = append(steps, Step{Name: dataprep.StageEncode, Run: prep.EncodeCategoricals})

	if method := dataprep.ScaleMethod(cfg.Scaler); method == dataprep.MinMax {
		steps = append(steps, Step{Name: dataprep.StageNormalize, Run: prep.Normalize})
	} else {
		steps = append(steps, Step{Name: dataprep.StageScale, Run: func(t *table.Table) (*table.Table, error) {
			return prep.Scale(t, method)
		}})
	}

	return NewPipeline(logger, steps...), nil
}

// Run loads cfg.Input, transforms it and saves the result to cfg.Output,
// creating the output directory when needed.
func Run(cfg Config, prep *dataprep.Preprocessor, logger zerolog.Logger) (*table.Table, error) {
	pl, err := Build(cfg, prep, logger)
	if err != nil {
		return nil, err
	}
	logger.Info().Strs("steps", pl.Steps()).Msg("Starting data preprocessing")

	in, err := data.LoadWithOptions(cfg.Input, cfg.ReadOptions())
	if err != nil {
		return nil, err
	}
	logger.Info().Str("path", cfg.Input).Int("rows", in.NumRows()).Int("columns", in.NumCols()).Msg("data loaded")

	out, err := pl.Transform(in)
	if err != nil {
		return nil, err
	}

	output := cfg.Output
	if output == "" {
		output = data.DefaultOutputPath
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := data.Save(out, output); err != nil {
		return nil, err
	}
	logger.Info().Str("path", output).Int("rows", out.NumRows()).Msg("processed data saved")
	return out, nil
}
