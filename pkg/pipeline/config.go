package pipeline

import (
	"fmt"
	"unicode/utf8"

	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/data"
	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/dataprep"
	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/table"
)

// OutlierMode selects what the pipeline does with outliers.
type OutlierMode string

const (
	OutliersRemove OutlierMode = "remove"
	OutliersClip   OutlierMode = "clip"
	OutliersNone   OutlierMode = "none"
)

// DefaultInputPath is the dataset the pipeline reads when none is given.
const DefaultInputPath = "data/dataset.csv"

// Config drives a pipeline run.
type Config struct {
	Input  string
	Output string
	// OutlierColumn is the numeric column checked for outliers; empty means
	// the first numeric column after cleaning.
	OutlierColumn string
	Outliers      OutlierMode
	Impute        string
	Scaler        string
	// Delimiter is the input field separator.
	Delimiter  string
	Encoding   string
	NullValues []string
	// IQRMultiplier overrides the 1.5 outlier fence multiplier when positive.
	IQRMultiplier float64
}

// DefaultConfig returns the conventional Load -> Clean -> Remove Outliers ->
// Encode -> Normalize -> Save configuration.
func DefaultConfig() Config {
	return Config{
		Input:     DefaultInputPath,
		Output:    data.DefaultOutputPath,
		Outliers:  OutliersRemove,
		Impute:    string(dataprep.ImputeNone),
		Scaler:    string(dataprep.MinMax),
		Delimiter: ",",
	}
}

// Validate checks enumerations and the delimiter.
func (c Config) Validate() error {
	switch c.Outliers {
	case OutliersRemove, OutliersClip, OutliersNone:
	default:
		return fmt.Errorf("%w: unknown outlier mode %q", table.ErrValue, c.Outliers)
	}
	if _, err := dataprep.ParseImputeStrategy(c.Impute); err != nil {
		return err
	}
	if _, err := dataprep.ParseScaleMethod(c.Scaler); err != nil {
		return err
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("%w: delimiter must be a single character, got %q", table.ErrValue, c.Delimiter)
	}
	return nil
}

// ReadOptions returns the loader options cfg selects.
func (c Config) ReadOptions() data.ReadOptions {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return data.ReadOptions{Comma: r, NullValues: c.NullValues, Encoding: c.Encoding}
}
