package cache

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultHit    = "hit"
	resultMiss   = "miss"
	resultError  = "error"
	resultBypass = "bypass"
)

// Metrics holds prometheus counters for cache traffic. A nil *Metrics
// records nothing.
type Metrics struct {
	requests      *prometheus.CounterVec
	invalidations *prometheus.CounterVec
}

// NewMetrics creates the cache counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loopback",
			Subsystem: "cache",
			Name:      "requests_total",
			Help:      "Cache lookups by result (hit, miss, error, bypass).",
		}, []string{"result"}),
		invalidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loopback",
			Subsystem: "cache",
			Name:      "invalidations_total",
			Help:      "Keys deleted by mutations, by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.requests, m.invalidations)
	return m
}

func (m *Metrics) observe(result string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(result).Inc()
}

func (m *Metrics) invalidated(n int, ok bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "failed"
	}
	m.invalidations.WithLabelValues(outcome).Add(float64(n))
}
