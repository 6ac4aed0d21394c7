package metrics

import "github.com/prometheus/client_golang/prometheus"

// CompareMetrics exposes counters/histograms for the comparison API.
type CompareMetrics struct {
	rankTotal    *prometheus.CounterVec
	rankLatency  *prometheus.HistogramVec
	handoffTotal *prometheus.CounterVec
}

func NewCompareMetrics(reg prometheus.Registerer) *CompareMetrics {
	m := &CompareMetrics{
		rankTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "compare",
			Subsystem: "engine",
			Name:      "rank_total",
			Help:      "Total ranking requests",
		}, []string{"comparator", "priority", "status"}),
		rankLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "compare",
			Subsystem: "engine",
			Name:      "rank_latency_seconds",
			Help:      "Latency of ranking requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"comparator"}),
		handoffTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "compare",
			Subsystem: "handoff",
			Name:      "leads_total",
			Help:      "Total lead handoff submissions",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.rankTotal, m.rankLatency, m.handoffTotal)
	return m
}

// ObserveRank records one ranking request. Status is "ok" when the engine
// produced results, "empty" when the identifiers resolved to nothing.
func (m *CompareMetrics) ObserveRank(comparator, priority, status string) {
	if m == nil {
		return
	}
	m.rankTotal.WithLabelValues(comparator, priority, status).Inc()
}

func (m *CompareMetrics) ObserveRankLatency(comparator string, seconds float64) {
	if m == nil {
		return
	}
	m.rankLatency.WithLabelValues(comparator).Observe(seconds)
}

func (m *CompareMetrics) ObserveHandoff(status string) {
	if m == nil {
		return
	}
	m.handoffTotal.WithLabelValues(status).Inc()
}
