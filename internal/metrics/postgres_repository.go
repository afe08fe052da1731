package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	postgresRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relaynode7000",
		Subsystem: "postgres_repository",
		Name:      "operations_total",
		Help:      "Count of block store operations.",
	}, []string{"operation", "status"})
	postgresRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "relaynode7000",
		Subsystem: "postgres_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of block store operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "status"})
)

// PostgresRepository tracks metrics for block store operations.
type PostgresRepository struct{}

// NewPostgresRepository creates a PostgresRepository metrics collector.
func NewPostgresRepository() *PostgresRepository {
	return &PostgresRepository{}
}

// Observe records duration and status of a block store operation.
func (m PostgresRepository) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	postgresRepositoryRequestsTotal.WithLabelValues(operation, status).Inc()
	postgresRepositoryRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
