package director

import "github.com/prometheus/client_golang/prometheus"

// Metrics is the process-observability surface for the generator: counters
// for attempts/retries/failures and a duration histogram, registered on a
// private registry so embedding applications choose whether and how to
// expose it rather than fighting over the global default registry.
type Metrics struct {
	registry *prometheus.Registry

	Attempts *prometheus.CounterVec
	Retries  *prometheus.CounterVec
	Failures *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics allocates a private registry and registers every collector on
// it.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		Attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cavegen",
			Name:      "generate_attempts_total",
			Help:      "Number of full-level generation attempts.",
		}, []string{"profile"}),
		Retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cavegen",
			Name:      "generate_retries_total",
			Help:      "Number of times a level attempt was discarded and retried.",
		}, []string{"profile"}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cavegen",
			Name:      "generate_failures_total",
			Help:      "Number of builder failures by kind.",
		}, []string{"profile", "kind"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cavegen",
			Name:      "generate_duration_seconds",
			Help:      "Wall-clock time spent generating a level, including retries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"profile"}),
	}

	reg.MustRegister(m.Attempts, m.Retries, m.Failures, m.Duration)
	return m
}

// Registry exposes the private registry for callers that want to serve it
// over /metrics themselves.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
