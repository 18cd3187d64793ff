package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Chat-API Metrics
var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "chat_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jan",
			Subsystem: "chat_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jan",
			Subsystem: "chat_api",
			Name:      "db_query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "chat_api",
			Name:      "db_query_errors_total",
			Help:      "Database queries that returned an error",
		},
		[]string{"operation", "table"},
	)

	MembershipChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "chat_api",
			Name:      "membership_changes_total",
			Help:      "Users added to or removed from chats",
		},
		[]string{"direction"},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordDBQuery records a database statement
func RecordDBQuery(operation, table string, durationSec float64, failed bool) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(durationSec)
	if failed {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordMembershipChange counts users connected to and disconnected from chats
func RecordMembershipChange(added, removed int) {
	if added > 0 {
		MembershipChanges.WithLabelValues("added").Add(float64(added))
	}
	if removed > 0 {
		MembershipChanges.WithLabelValues("removed").Add(float64(removed))
	}
}
