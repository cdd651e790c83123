package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the prometheus instruments for the solve endpoints.
type metrics struct {
	solves        *prometheus.CounterVec
	solveDuration prometheus.Histogram
	bestMakespan  prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pmsp",
			Name:      "solves_total",
			Help:      "Number of solve requests by outcome.",
		}, []string{"status"}),
		solveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pmsp",
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock duration of genetic solver runs.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
		}),
		bestMakespan: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "pmsp",
			Name:      "last_best_makespan",
			Help:      "Best makespan of the most recent completed solve.",
		}),
	}
}
