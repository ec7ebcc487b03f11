package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	MigrationItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_migration_items_total",
			Help: "Seed projects processed by the data migration",
		},
		[]string{"outcome"}, // migrated, units_failed, failed
	)

	ImageOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_image_operations_total",
			Help: "Project image uploads and removals",
		},
		[]string{"operation", "outcome"},
	)

	ReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_reports_generated_total",
			Help: "Generated report documents",
		},
		[]string{"type"},
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncrementMigrationItem(outcome string) {
	MigrationItems.WithLabelValues(outcome).Inc()
}

func IncrementImageOperation(operation, outcome string) {
	ImageOperations.WithLabelValues(operation, outcome).Inc()
}

func IncrementReport(reportType string) {
	ReportsGenerated.WithLabelValues(reportType).Inc()
}
