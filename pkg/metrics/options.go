// Package metrics provides Prometheus metrics for the draft board service.
package metrics

import (
	"maps"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
)

// LatencyBucketsMS are the default histogram buckets. View builds and
// filter passes run in well under a second, so the buckets are in milliseconds.
var LatencyBucketsMS = []float64{0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000}

// Option configures a Manager.
type Option func(*Manager)

// WithNamespace overrides the "draftboard" namespace. Empty keeps the default.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithSubsystem overrides the "board" subsystem. Empty keeps the default.
func WithSubsystem(subsystem string) Option {
	return func(m *Manager) {
		if subsystem != "" {
			m.subsystem = subsystem
		}
	}
}

// WithHistogramBuckets replaces the latency buckets with a sorted copy of buckets.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			sorted := slices.Clone(buckets)
			slices.Sort(sorted)
			m.histogramBuckets = sorted
		}
	}
}

// WithConstLabels adds constant labels to every collector; later calls win on key clashes.
func WithConstLabels(labels map[string]string) Option {
	return func(m *Manager) {
		if len(labels) == 0 {
			return
		}
		if m.constLabels == nil {
			m.constLabels = make(map[string]string, len(labels))
		}
		maps.Copy(m.constLabels, labels)
	}
}

// WithPrometheusRegistry registers collectors on registry instead of the default registerer.
func WithPrometheusRegistry(registry prometheus.Registerer) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}
