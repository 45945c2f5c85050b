package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Search and index Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "letterdex",
			Name:      "search_requests_total",
			Help:      "Total number of top-N search requests",
		},
		[]string{"status"}, // "ok" / "invalid"
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "letterdex",
			Name:      "search_duration_seconds",
			Help:      "Top-N search duration in seconds",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "letterdex",
			Name:      "search_results",
			Help:      "Number of results returned per search",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	UndefinedScoresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "letterdex",
			Name:      "undefined_scores_total",
			Help:      "Similarity computations against an all-zero vector",
		},
	)

	IndexDocuments = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "letterdex",
			Name:      "index_documents",
			Help:      "Documents in the index",
		},
		[]string{"kind"}, // "corpus" / "distinct"
	)
)

// Search request statuses.
const (
	StatusOK      = "ok"
	StatusInvalid = "invalid"
)

// RegisterSearchMetrics registers search metrics on reg (prometheus.DefaultRegisterer if nil).
// Safe to call more than once.
func RegisterSearchMetrics(reg prometheus.Registerer) error {
	return register(reg, []prometheus.Collector{
		SearchRequestsTotal,
		SearchDuration,
		SearchResults,
		UndefinedScoresTotal,
		IndexDocuments,
	})
}

// RegisterHTTPMetrics registers the HTTP middleware metrics. Safe to call more than once.
func RegisterHTTPMetrics(reg prometheus.Registerer) error {
	return register(reg, HTTPCollectors())
}

func register(reg prometheus.Registerer, collectors []prometheus.Collector) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return fmt.Errorf("register collector: %w", err)
		}
	}
	return nil
}

// SetIndexSize publishes corpus and distinct document counts.
func SetIndexSize(corpus, distinct int) {
	IndexDocuments.WithLabelValues("corpus").Set(float64(corpus))
	IndexDocuments.WithLabelValues("distinct").Set(float64(distinct))
}
