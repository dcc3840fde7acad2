package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry records sync metrics. Components receive it by injection.
type Registry interface {
	// IncrementRemoteCalls counts one DV360 round trip by operation and outcome.
	IncrementRemoteCalls(operation, status string)
	// IncrementRows counts one processed feed row by pass and outcome.
	IncrementRows(pass, outcome string)
	// IncrementDeletes counts one creative archived and deleted by the removal pass.
	IncrementDeletes()
	// RecordRunDuration observes how long a pass took.
	RecordRunDuration(pass string, duration time.Duration)
}

// Prometheus implements Registry on its own prometheus.Registry.
type Prometheus struct {
	registry *prometheus.Registry

	remoteCalls *prometheus.CounterVec
	rows        *prometheus.CounterVec
	deletes     prometheus.Counter
	runDuration *prometheus.HistogramVec
}

// NewPrometheus creates the collectors and registers them with a fresh registry.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		// DV360 calls by operation and outcome
		remoteCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creativesync_remote_calls_total",
				Help: "Total DV360 API calls",
			},
			[]string{"operation", "status"},
		),
		// feed rows by pass (cleanup, reconcile) and outcome
		rows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creativesync_rows_total",
				Help: "Total feed rows processed",
			},
			[]string{"pass", "outcome"},
		),
		deletes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "creativesync_creatives_deleted_total",
				Help: "Total creatives archived and deleted on removal",
			},
		),
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "creativesync_run_duration_seconds",
				Help:    "Histogram of pass durations",
				Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
			},
			[]string{"pass"},
		),
	}

	p.registry.MustRegister(
		p.remoteCalls,
		p.rows,
		p.deletes,
		p.runDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

func (p *Prometheus) IncrementRemoteCalls(operation, status string) {
	p.remoteCalls.WithLabelValues(operation, status).Inc()
}

func (p *Prometheus) IncrementRows(pass, outcome string) {
	p.rows.WithLabelValues(pass, outcome).Inc()
}

func (p *Prometheus) IncrementDeletes() {
	p.deletes.Inc()
}

func (p *Prometheus) RecordRunDuration(pass string, duration time.Duration) {
	p.runDuration.WithLabelValues(pass).Observe(duration.Seconds())
}

// NoOp implements Registry with no-op methods for tests and disabled metrics.
type NoOp struct{}

// NewNoOp creates a new NoOp registry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

func (NoOp) IncrementRemoteCalls(operation, status string)         {}
func (NoOp) IncrementRows(pass, outcome string)                    {}
func (NoOp) IncrementDeletes()                                     {}
func (NoOp) RecordRunDuration(pass string, duration time.Duration) {}
