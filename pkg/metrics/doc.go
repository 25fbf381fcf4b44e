// Package metrics provides Prometheus instrumentation for piflow estimators.
//
// A Registry is passed to the estimator with estimate.WithMetrics. Every
// recording method is safe on a nil *Registry, so components can call them
// unconditionally.
//
// # Available Metrics
//
//   - piflow_workers_started_total{engine}: worker goroutines started
//   - piflow_workers_active{engine}: worker goroutines currently running
//   - piflow_workers_duration_seconds{engine}: worker lifetime
//   - piflow_series_partial_results_total{status}: partial sums delivered ("ok", "failed")
//   - piflow_sampler_samples_total{outcome}: samples counted ("coprime", "other")
//   - piflow_queue_capacity: bounded queue capacity
//   - piflow_queue_events_total{event}: blocked sends and discarded samples
//   - piflow_estimate{method}: most recent estimate of pi
//   - piflow_run_duration_seconds{method}: wall time of a run
//   - piflow_run_errors_total{method}: runs that failed
//
// # Custom Registry
//
//	reg := prometheus.NewRegistry()
//	m := metrics.NewRegistryWithConfig(metrics.Config{
//		Enabled:   true,
//		Registry:  reg,
//		Namespace: "lab",
//		Labels:    prometheus.Labels{"host": "node-1"},
//	})
package metrics
