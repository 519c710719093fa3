package heredity

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// inferenceRuns counts Infer calls by outcome.
	inferenceRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "heredity",
		Name:      "inference_runs_total",
		Help:      "Exact inference runs by result",
	}, []string{"result"}) // "ok", "degenerate", "too_large", "canceled", "error"

	inferenceWorlds = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "heredity",
		Name:      "worlds_scored_total",
		Help:      "Worlds scored across all inference runs",
	})

	inferenceDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "heredity",
		Name:      "inference_duration_seconds",
		Help:      "Wall time of one exact inference run",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12), // 0.1ms to ~7min
	})

	pedigreeSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "heredity",
		Name:      "pedigree_people",
		Help:      "Number of people per inferred pedigree",
		Buckets:   []float64{1, 2, 3, 5, 8, 10, 12, 15, 20},
	})
)
