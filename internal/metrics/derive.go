package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	derivesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hrdash",
			Name:      "list_derives_total",
			Help:      "Number of list derivations per screen",
		},
		[]string{"screen"},
	)

	deriveDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hrdash",
			Name:      "list_derive_duration_seconds",
			Help:      "Time spent deriving an already loaded list",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"screen"},
	)

	deriveRows = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "hrdash",
			Name:      "list_derive_rows",
			Help:      "Rows returned by the most recent derivation",
		},
		[]string{"screen"},
	)

	queryErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hrdash",
			Name:      "list_query_errors_total",
			Help:      "Rejected list queries per screen",
		},
		[]string{"screen"},
	)
)

func init() {
	prometheus.MustRegister(derivesTotal, deriveDuration, deriveRows, queryErrorsTotal)
}

// ObserveDerive records one derivation of screen returning rows rows.
func ObserveDerive(screen string, rows int, took time.Duration) {
	derivesTotal.WithLabelValues(screen).Inc()
	deriveDuration.WithLabelValues(screen).Observe(took.Seconds())
	deriveRows.WithLabelValues(screen).Set(float64(rows))
}

// QueryRejected counts a query that failed to parse or apply.
func QueryRejected(screen string) {
	queryErrorsTotal.WithLabelValues(screen).Inc()
}
