// Package metrics implements prometheus collectors for the relay node.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	txSenderForwardBatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relaynode7000",
		Subsystem: "tx_sender",
		Name:      "forward_batches_total",
		Help:      "Count of forwarded transaction batches.",
	}, []string{"status"})

	txSenderForwardedTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relaynode7000",
		Subsystem: "tx_sender",
		Name:      "forwarded_transactions_total",
		Help:      "Count of transactions in forwarded batches.",
	}, []string{"status"})

	txSenderForwardDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "relaynode7000",
		Subsystem: "tx_sender",
		Name:      "forward_duration_seconds",
		Help:      "Duration of batch forward attempts.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	txSenderBatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "relaynode7000",
		Subsystem: "tx_sender",
		Name:      "batch_size",
		Help:      "Number of transactions per forwarded batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})
)

// TxSender tracks metrics for transaction forwarding.
type TxSender struct{}

// NewTxSender creates a TxSender metrics collector.
func NewTxSender() *TxSender {
	return &TxSender{}
}

// ObserveForward records the outcome of one batch forward attempt.
func (m TxSender) ObserveForward(err error, batchSize int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	txSenderForwardBatchesTotal.WithLabelValues(status).Inc()
	txSenderForwardedTransactionsTotal.WithLabelValues(status).Add(float64(batchSize))
	txSenderForwardDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	txSenderBatchSize.Observe(float64(batchSize))
}
