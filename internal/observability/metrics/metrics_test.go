package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestCompareMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCompareMetrics(reg)
	m.ObserveRank("missing_tooth", "durable", "ok")
	m.ObserveRankLatency("missing_tooth", 0.002)
	m.ObserveHandoff("created")
}

func TestCompareMetricsNilSafe(t *testing.T) {
	var m *CompareMetrics
	m.ObserveRank("missing_tooth", "durable", "ok")
	m.ObserveRankLatency("missing_tooth", 0.1)
	m.ObserveHandoff("rejected")
}
