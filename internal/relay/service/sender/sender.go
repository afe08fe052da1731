// Package sender batches pending transactions from the inbound channel and
// forwards them to validator endpoints.
package sender

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/relaynode7000-backend/internal/relay/model"
	"github.com/goodnatureofminers/relaynode7000-backend/internal/relay/registry"
	"github.com/goodnatureofminers/relaynode7000-backend/pkg/batcher"
)

// Config bounds the dispatch cycles.
type Config struct {
	// BatchSize is the maximum number of entries per batch; a full batch
	// flushes immediately.
	BatchSize int
	// FlushInterval is the maximum wall-clock wait before a partial batch
	// flushes.
	FlushInterval time.Duration
	// ForwardRPS paces batch dispatches per second; zero or negative leaves
	// forwarding unpaced.
	ForwardRPS int
}

// Service drains pending transactions into bounded batches and spawns one
// detached forward task per batch. Cycles never wait for in-flight forwards,
// so new arrivals are never blocked by slow sends.
type Service struct {
	logger    *zap.Logger
	forwarder Forwarder
	registry  *registry.Registry
	metrics   SenderMetrics
	sink      chan<- model.WriteRecord
	dispatch  *batcher.Batcher[model.PendingEntry]
}

// NewService constructs the sender. sink is optional; when set, one write
// record per transaction is emitted after every forward attempt. Resubmission
// on forward failure is the responsibility of whoever owns the inbound
// channel; the sender never retries.
func NewService(
	logger *zap.Logger,
	forwarder Forwarder,
	reg *registry.Registry,
	metrics SenderMetrics,
	sink chan<- model.WriteRecord,
	in <-chan model.PendingEntry,
	cfg Config,
) (*Service, error) {
	if forwarder == nil {
		return nil, errors.New("forwarder is required")
	}
	if reg == nil {
		return nil, errors.New("signature registry is required")
	}
	if metrics == nil {
		return nil, errors.New("sender metrics is required")
	}
	if cfg.BatchSize < 1 {
		return nil, errors.New("batch size must be positive")
	}
	if cfg.FlushInterval <= 0 {
		return nil, errors.New("flush interval must be positive")
	}

	s := &Service{
		logger:    logger,
		forwarder: forwarder,
		registry:  reg,
		metrics:   metrics,
		sink:      sink,
	}
	s.dispatch = batcher.New(logger.Named("dispatch"), in, s.forward, cfg.BatchSize, cfg.FlushInterval, cfg.ForwardRPS)
	return s, nil
}

// Run drains the inbound channel until the context is canceled. A closed
// inbound channel is a terminal error, not a silent drain.
func (s *Service) Run(ctx context.Context) error {
	return s.dispatch.Run(ctx)
}

// Drain waits for in-flight forward tasks to finish.
func (s *Service) Drain() {
	s.dispatch.Drain()
}

// forward sends one batch through the forwarder. On success every signature
// is recorded in the registry with an unset status; on failure the registry
// is left untouched for the batch. Write records are emitted to the sink
// either way, carrying the response code.
func (s *Service) forward(ctx context.Context, batch []model.PendingEntry) error {
	if len(batch) == 0 {
		return nil
	}

	started := time.Now()
	txs := make([]model.WireTransaction, len(batch))
	for i, entry := range batch {
		txs[i] = entry.Payload
	}

	err := s.forwarder.SendBatch(ctx, txs)
	s.metrics.ObserveForward(err, len(batch), started)

	var quicResponse int32
	if err != nil {
		s.logger.Warn("batch forward failed", zap.Int("size", len(batch)), zap.Error(err))
	} else {
		quicResponse = 1
		sentAt := time.Now()
		for _, entry := range batch {
			s.registry.Store(entry.Signature, model.TxStatus{SentAt: sentAt})
		}
	}

	if s.sink != nil {
		for _, entry := range batch {
			s.sink <- model.WriteRecord{
				Signature:     entry.Signature,
				RecentSlot:    entry.RecentSlot,
				ForwardedSlot: 0,
				QuicResponse:  quicResponse,
			}
		}
	}

	return nil
}
