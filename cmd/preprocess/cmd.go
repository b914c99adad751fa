package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/internal/chart"
	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/internal/logging"
	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/internal/metrics"
	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/data"
	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/dataprep"
	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/pipeline"
	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/table"
)

var (
	cfg         pipeline.Config
	outliers    string
	logLevel    string
	logFormat   string
	metricsFile string
	plotFile    string
)

func newRootCmd() *cobra.Command {
	cfg = pipeline.DefaultConfig()
	outliers = string(cfg.Outliers)

	rootCmd := &cobra.Command{
		Use:           "preprocess",
		Short:         "Clean, filter, encode and scale tabular CSV data",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the preprocessing pipeline",
		Long: `The run command loads the input CSV, drops rows with missing values and duplicates,
handles outliers in one numeric column, label-encodes text columns, scales numeric columns
and saves the result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cfg.Outliers = pipeline.OutlierMode(outliers)

			collector := metrics.NewCollector(logger, metrics.DefaultNamespace)
			prep := dataprep.New(
				dataprep.WithLogger(logger),
				dataprep.WithRecorder(collector),
				dataprep.WithIQRMultiplier(cfg.IQRMultiplier),
			)

			out, runErr := pipeline.Run(cfg, prep, logger)
			if metricsFile != "" {
				if err := collector.WriteTextfile(metricsFile); err != nil && runErr == nil {
					return fmt.Errorf("error writing metrics: %w", err)
				}
			}
			if runErr != nil {
				return fmt.Errorf("error running pipeline: %w", runErr)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Processed data saved to: %s (%d rows, %d columns)\n", cfg.Output, out.NumRows(), out.NumCols())
			return nil
		},
	}

	describeCmd := &cobra.Command{
		Use:   "describe [file]",
		Short: "Print the inferred schema of a CSV file as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := newLogger(cmd.ErrOrStderr()); err != nil {
				return err
			}
			t, err := load(args)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(pipeline.SchemaOf(t))
		},
	}

	outliersCmd := &cobra.Command{
		Use:   "outliers [file]",
		Short: "Print the row positions holding IQR outliers in a column",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			t, err := load(args)
			if err != nil {
				return err
			}
			column := cfg.OutlierColumn
			if column == "" {
				if names := t.NumericNames(); len(names) > 0 {
					column = names[0]
				}
			}
			prep := dataprep.New(dataprep.WithLogger(logger), dataprep.WithIQRMultiplier(cfg.IQRMultiplier))
			rows, err := prep.DetectOutliers(t, column)
			if err != nil {
				return fmt.Errorf("error detecting outliers: %w", err)
			}
			for _, r := range rows {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			if plotFile != "" {
				c, _ := t.Column(column)
				if err := chart.OutlierBoxPlot(plotFile, column, c.Floats(), cfg.IQRMultiplier); err != nil {
					return fmt.Errorf("error plotting outliers: %w", err)
				}
				logger.Info().Str("path", plotFile).Str("column", column).Msg("box plot saved")
			}
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfg.Input, "input", "i", cfg.Input, "Path to the input CSV file")
	pf.StringVarP(&cfg.Delimiter, "delimiter", "d", cfg.Delimiter, "Input field delimiter")
	pf.StringVar(&cfg.Encoding, "encoding", "", "Input text encoding, e.g. utf-8, latin1, windows-1252")
	pf.StringSliceVar(&cfg.NullValues, "null-values", nil, "Cell values read as missing (default: empty, NA, NaN, null, ...)")
	pf.StringVarP(&cfg.OutlierColumn, "outlier-column", "c", "", "Numeric column checked for outliers (default: first numeric column)")
	pf.Float64Var(&cfg.IQRMultiplier, "iqr-multiplier", 0, "IQR fence multiplier (default 1.5)")
	pf.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "console", "Log format: console or json")

	runCmd.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Path to save the processed CSV")
	runCmd.Flags().StringVar(&outliers, "outliers", outliers, "Outlier handling: remove, clip, none")
	runCmd.Flags().StringVar(&cfg.Impute, "impute", cfg.Impute, "Impute missing values before cleaning: none, mean, median, mode")
	runCmd.Flags().StringVar(&cfg.Scaler, "scaler", cfg.Scaler, "Numeric scaling: minmax, standard, robust")
	runCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the run")

	outliersCmd.Flags().StringVar(&plotFile, "plot", "", "Save a box plot with the outlier fence to this image file (png, svg, pdf)")

	rootCmd.AddCommand(runCmd, describeCmd, outliersCmd)
	return rootCmd
}

func newLogger(w io.Writer) (zerolog.Logger, error) {
	logger, err := logging.New(w, logLevel, logFormat)
	if err != nil {
		return logger, err
	}
	return logger.With().Str("service", "preprocess").Logger(), nil
}

func load(args []string) (*table.Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	path := cfg.Input
	if len(args) > 0 {
		path = args[0]
	}
	t, err := data.LoadWithOptions(path, cfg.ReadOptions())
	if err != nil {
		return nil, fmt.Errorf("error loading data: %w", err)
	}
	return t, nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
