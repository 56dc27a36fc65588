package builder

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/erraggy/routedoc/oaserrors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus metrics for generation runs.
type Metrics struct {
	builds    *prometheus.CounterVec // By status (success/failure)
	files     prometheus.Counter
	fragments prometheus.Counter
	failures  *prometheus.CounterVec // By error_type
	duration  prometheus.Histogram
}

// NewMetrics creates build metrics and registers them with reg. A nil
// registerer disables metrics and returns nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, nil
	}

	m := &Metrics{
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "routedoc",
			Subsystem: "builder",
			Name:      "builds_total",
			Help:      "Total number of specification builds",
		}, []string{"status"}),

		files: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "routedoc",
			Subsystem: "builder",
			Name:      "files_processed_total",
			Help:      "Total number of route files scanned for fragments",
		}),

		fragments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "routedoc",
			Subsystem: "builder",
			Name:      "fragments_total",
			Help:      "Total number of fragments parsed and validated",
		}),

		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "routedoc",
			Subsystem: "builder",
			Name:      "failures_total",
			Help:      "Total number of failed builds by error type",
		}, []string{"error_type"}), // parse, validation, config, io, canceled, other

		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "routedoc",
			Subsystem: "builder",
			Name:      "build_duration_seconds",
			Help:      "Specification build duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
	}

	for _, c := range []prometheus.Collector{m.builds, m.files, m.fragments, m.failures, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) fileProcessed(fragments int) {
	if m == nil {
		return
	}
	m.files.Inc()
	m.fragments.Add(float64(fragments))
}

func (m *Metrics) observe(start time.Time, err error) {
	if m == nil {
		return
	}
	m.duration.Observe(time.Since(start).Seconds())
	if err == nil {
		m.builds.WithLabelValues("success").Inc()
		return
	}
	m.builds.WithLabelValues("failure").Inc()
	m.failures.WithLabelValues(errorType(err)).Inc()
}

func errorType(err error) string {
	switch {
	case errors.Is(err, oaserrors.ErrValidation):
		return "validation"
	case errors.Is(err, oaserrors.ErrParse):
		return "parse"
	case errors.Is(err, oaserrors.ErrConfig):
		return "config"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.Is(err, os.ErrNotExist), errors.Is(err, os.ErrPermission):
		return "io"
	default:
		return "other"
	}
}
