package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// mutationTotal counts mutations by operation and result
	mutationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_mutation_total",
		Help: "Total catalog mutations by operation and result",
	}, []string{"operation", "result"})

	// booksDeleted counts books removed by author deletions
	booksDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_books_deleted_total",
		Help: "Total books removed from the catalog",
	})

	// booksLoaded tracks the size of the flat catalog
	booksLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_books",
		Help: "Number of books currently in the catalog",
	})

	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_query_duration_seconds",
		Help:    "Catalog query duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
	}, []string{"query"})
)

func mutationResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case isNotFound(err):
		return "not_found"
	case isConflict(err):
		return "conflict"
	default:
		return "invalid"
	}
}
