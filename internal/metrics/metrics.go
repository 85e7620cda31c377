package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query outcome label values.
const (
	StatusOK       = "ok"
	StatusNotFound = "not_found"
	StatusError    = "error"
)

var (
	// NodeQueriesTotal counts node queries by operation and outcome
	NodeQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "explorer_node_queries_total",
			Help: "Total number of node queries",
		},
		[]string{"operation", "status"},
	)

	// NodeQueryDuration tracks node query latency
	NodeQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "explorer_node_query_duration_seconds",
			Help:    "Node query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)

	// NodeQueryFallbacksTotal counts faults answered with an empty default
	NodeQueryFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "explorer_node_query_fallbacks_total",
			Help: "Total number of node query faults served as empty results",
		},
		[]string{"operation"},
	)

	// MergedBonusesTotal counts merge results by whether a bonus was paired
	MergedBonusesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "explorer_node_bonus_merge_total",
			Help: "Total number of on-chain nodes merged with bonus history",
		},
		[]string{"matched"},
	)
)
