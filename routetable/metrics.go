package routetable

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics of route tables.
//
// Metrics collected:
//   - <namespace>_matches_total: Counter of matched routes by route name
//   - <namespace>_misses_total: Counter of routes matching no pattern
//
// A nil *Metrics records nothing.
type Metrics struct {
	matches *prometheus.CounterVec
	misses  prometheus.Counter
}

// NewMetrics creates route table metrics and registers them with reg.
// A nil reg means prometheus.DefaultRegisterer.
//
// It panics if the metrics are already registered with reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		matches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_total",
			Help:      "Total number of routes matched by route name",
		}, []string{"route"}),

		misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "misses_total",
			Help:      "Total number of routes matching no pattern",
		}),
	}
}

func (m *Metrics) recordMatch(name string) {
	if m == nil {
		return
	}
	m.matches.WithLabelValues(name).Inc()
}

func (m *Metrics) recordMiss() {
	if m == nil {
		return
	}
	m.misses.Inc()
}
