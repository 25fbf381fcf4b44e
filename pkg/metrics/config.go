package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultRunBuckets spans 1ms to roughly 4.4 minutes, which covers a tiny
// test run as well as a full billion-term series.
var DefaultRunBuckets = prometheus.ExponentialBuckets(0.001, 4, 10)

// Config controls where and how estimator metrics are registered.
type Config struct {
	// Enabled turns collection on. A disabled config yields a nil Registry.
	Enabled bool

	// Registry receives the collectors. Nil means prometheus.DefaultRegisterer.
	Registry prometheus.Registerer

	// Namespace prefixes every metric name. Empty means DefaultNamespace.
	Namespace string

	// Labels are constant labels attached to every metric, e.g. a host or run id.
	Labels prometheus.Labels

	// RunBuckets are the histogram buckets of run_duration_seconds.
	// Nil means DefaultRunBuckets.
	RunBuckets []float64
}

// DefaultConfig returns an enabled config on the default registerer.
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Registry:   prometheus.DefaultRegisterer,
		Namespace:  DefaultNamespace,
		RunBuckets: DefaultRunBuckets,
	}
}
