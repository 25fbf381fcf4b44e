// Package metrics provides Prometheus instrumentation for piflow estimators.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace prefixes every metric name unless Config.Namespace overrides it.
const DefaultNamespace = "piflow"

// Engine label values.
const (
	EngineSeries  = "series"
	EngineSampler = "sampler"
)

// Registry holds all metric instances for piflow components.
// A nil *Registry is valid and records nothing.
type Registry struct {
	// Worker Metrics
	WorkersStarted *prometheus.CounterVec
	WorkersActive  *prometheus.GaugeVec
	WorkerDuration *prometheus.HistogramVec
	PartialResults *prometheus.CounterVec

	// Queue Metrics
	SamplesReceived *prometheus.CounterVec
	QueueCapacity   prometheus.Gauge
	QueueEvents     *prometheus.CounterVec

	// Estimate Metrics
	Estimate    *prometheus.GaugeVec
	RunDuration *prometheus.HistogramVec
	RunErrors   *prometheus.CounterVec
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	return NewRegistryWithConfig(Config{Enabled: true, Registry: reg})
}

// NewRegistryWithConfig creates a metrics registry from config.
// It returns nil when metrics are disabled.
func NewRegistryWithConfig(config Config) *Registry {
	if !config.Enabled {
		return nil
	}
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}
	ns := config.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	labels := config.Labels
	runBuckets := config.RunBuckets
	if runBuckets == nil {
		runBuckets = DefaultRunBuckets
	}
	factory := promauto.With(config.Registry)

	return &Registry{
		WorkersStarted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "workers",
				Name:        "started_total",
				Help:        "Total number of worker goroutines started",
				ConstLabels: labels,
			},
			[]string{"engine"},
		),

		WorkersActive: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   ns,
				Subsystem:   "workers",
				Name:        "active",
				Help:        "Number of worker goroutines currently running",
				ConstLabels: labels,
			},
			[]string{"engine"},
		),

		WorkerDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   ns,
				Subsystem:   "workers",
				Name:        "duration_seconds",
				Help:        "Lifetime of a worker goroutine",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: labels,
			},
			[]string{"engine"},
		),

		PartialResults: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "series",
				Name:        "partial_results_total",
				Help:        "Partial sums delivered to the aggregator, by status",
				ConstLabels: labels,
			},
			[]string{"status"},
		),

		SamplesReceived: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "sampler",
				Name:        "samples_total",
				Help:        "Samples counted by the aggregator, by outcome",
				ConstLabels: labels,
			},
			[]string{"outcome"},
		),

		QueueCapacity: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace:   ns,
				Subsystem:   "queue",
				Name:        "capacity",
				Help:        "Capacity of the bounded sample queue",
				ConstLabels: labels,
			},
		),

		QueueEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "queue",
				Name:        "events_total",
				Help:        "Backpressure events on the sample queue (blocked, discarded)",
				ConstLabels: labels,
			},
			[]string{"event"},
		),

		Estimate: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   ns,
				Name:        "estimate",
				Help:        "Most recent estimate of pi",
				ConstLabels: labels,
			},
			[]string{"method"},
		),

		RunDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   ns,
				Name:        "run_duration_seconds",
				Help:        "Wall time of a complete estimation run",
				Buckets:     runBuckets,
				ConstLabels: labels,
			},
			[]string{"method"},
		),

		RunErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Name:        "run_errors_total",
				Help:        "Estimation runs that ended with an error",
				ConstLabels: labels,
			},
			[]string{"method"},
		),
	}
}

// WorkerStarted records a worker goroutine starting.
func (r *Registry) WorkerStarted(engine string) {
	if r == nil {
		return
	}
	r.WorkersStarted.WithLabelValues(engine).Inc()
	r.WorkersActive.WithLabelValues(engine).Inc()
}

// WorkerStopped records a worker goroutine exiting after running for d.
func (r *Registry) WorkerStopped(engine string, d time.Duration) {
	if r == nil {
		return
	}
	r.WorkersActive.WithLabelValues(engine).Dec()
	r.WorkerDuration.WithLabelValues(engine).Observe(d.Seconds())
}

// PartialResult records one partial sum reaching the aggregator.
func (r *Registry) PartialResult(failed bool) {
	if r == nil {
		return
	}
	status := "ok"
	if failed {
		status = "failed"
	}
	r.PartialResults.WithLabelValues(status).Inc()
}

// Samples records a batch of counted samples.
func (r *Registry) Samples(coprime, other uint64) {
	if r == nil {
		return
	}
	r.SamplesReceived.WithLabelValues("coprime").Add(float64(coprime))
	r.SamplesReceived.WithLabelValues("other").Add(float64(other))
}

// Queue records the final state of a bounded queue.
func (r *Registry) Queue(capacity int, blocked, discarded int64) {
	if r == nil {
		return
	}
	r.QueueCapacity.Set(float64(capacity))
	r.QueueEvents.WithLabelValues("blocked").Add(float64(blocked))
	r.QueueEvents.WithLabelValues("discarded").Add(float64(discarded))
}

// Run records the outcome of one estimation run.
func (r *Registry) Run(method string, d time.Duration, pi float64, err error) {
	if r == nil {
		return
	}
	r.RunDuration.WithLabelValues(method).Observe(d.Seconds())
	if err != nil {
		r.RunErrors.WithLabelValues(method).Inc()
		return
	}
	r.Estimate.WithLabelValues(method).Set(pi)
}
