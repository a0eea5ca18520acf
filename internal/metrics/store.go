// Package metrics defines the prometheus collectors for store and document
// operations. Registration is explicit (no init).
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Store and document Prometheus metrics.
var (
	StoreOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gitdocs",
			Name:      "store_operations_total",
			Help:      "Total number of store lifecycle operations",
		},
		[]string{"store", "op", "status"},
	)

	StoreOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gitdocs",
			Name:      "store_operation_duration_seconds",
			Help:      "Store lifecycle operation duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"store", "op"},
	)

	DocumentOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gitdocs",
			Name:      "document_operations_total",
			Help:      "Total number of document operations",
		},
		[]string{"op", "status"},
	)
)

// RegisterStoreMetrics registers all collectors with the default registry.
// Call once at startup.
func RegisterStoreMetrics() {
	prometheus.MustRegister(StoreOperationsTotal)
	prometheus.MustRegister(StoreOperationDuration)
	prometheus.MustRegister(DocumentOperationsTotal)
}
