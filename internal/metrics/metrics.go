// Package metrics exposes preprocessing stage reports as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "preprocess"

// Collector implements dataprep.Recorder on a private registry.
type Collector struct {
	logger   zerolog.Logger
	registry *prometheus.Registry

	rowsRemoved        *prometheus.CounterVec
	columnsTransformed *prometheus.CounterVec
	stageDuration      *prometheus.HistogramVec
	stageErrors        *prometheus.CounterVec
}

// NewCollector creates a collector whose metrics are prefixed by namespace.
func NewCollector(logger zerolog.Logger, namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	c := &Collector{
		logger:   logger.With().Str("component", "metrics_collector").Logger(),
		registry: prometheus.NewRegistry(),
		rowsRemoved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rows_removed_total",
				Help:      "Rows dropped by a preprocessing stage",
			},
			[]string{"stage"},
		),
		columnsTransformed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "columns_transformed_total",
				Help:      "Columns rewritten by a preprocessing stage",
			},
			[]string{"stage"},
		),
		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "stage_duration_seconds",
				Help:      "Duration of preprocessing stages in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"stage"},
		),
		stageErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stage_errors_total",
				Help:      "Preprocessing stage calls that returned an error",
			},
			[]string{"stage"},
		),
	}

	c.registry.MustRegister(c.rowsRemoved, c.columnsTransformed, c.stageDuration, c.stageErrors)
	c.logger.Debug().Str("namespace", namespace).Msg("Metrics collector initialized")
	return c
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

func (c *Collector) RowsRemoved(stage string, n int) {
	c.rowsRemoved.WithLabelValues(stage).Add(float64(n))
}

func (c *Collector) ColumnsTransformed(stage string, n int) {
	c.columnsTransformed.WithLabelValues(stage).Add(float64(n))
}

func (c *Collector) ObserveStage(stage string, d time.Duration, err error) {
	c.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
	if err != nil {
		c.stageErrors.WithLabelValues(stage).Inc()
	}
}

// WriteTextfile writes the current metrics to path in the Prometheus text
// exposition format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		c.logger.Error().Err(err).Str("path", path).Msg("Failed to write metrics")
		return err
	}
	return nil
}
