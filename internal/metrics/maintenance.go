package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	maintenanceCyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relaynode7000",
		Subsystem: "maintenance",
		Name:      "cycles_total",
		Help:      "Count of partition maintenance cycles.",
	}, []string{"status"})

	maintenanceCycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "relaynode7000",
		Subsystem: "maintenance",
		Name:      "cycle_duration_seconds",
		Help:      "Duration of partition maintenance cycles.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// Maintenance tracks metrics for the partition maintenance loop.
type Maintenance struct{}

// NewMaintenance creates a Maintenance metrics collector.
func NewMaintenance() *Maintenance {
	return &Maintenance{}
}

// ObserveCycle records the outcome of one maintenance cycle.
func (m Maintenance) ObserveCycle(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	maintenanceCyclesTotal.WithLabelValues(status).Inc()
	maintenanceCycleDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}
