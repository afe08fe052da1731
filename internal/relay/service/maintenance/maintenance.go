// Package maintenance keeps epoch partitions provisioned ahead of writes and
// the blocks tables analyzed.
package maintenance

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/relaynode7000-backend/internal/clock"
	"github.com/goodnatureofminers/relaynode7000-backend/internal/relay/repository/postgres"
)

const defaultInterval = 1 * time.Minute

// Service periodically inspects the stored slot range and, for the newest
// slot, pre-provisions the current and next epoch partitions and refreshes
// the blocks table statistics.
type Service struct {
	logger   *zap.Logger
	store    BlockStore
	metrics  MaintenanceMetrics
	sleep    func(context.Context, time.Duration) error
	interval time.Duration
}

// NewService constructs the maintenance loop. interval <= 0 falls back to the
// default.
func NewService(store BlockStore, metrics MaintenanceMetrics, interval time.Duration, logger *zap.Logger) (*Service, error) {
	if store == nil {
		return nil, errors.New("block store is required")
	}
	if metrics == nil {
		return nil, errors.New("maintenance metrics is required")
	}
	if interval <= 0 {
		interval = defaultInterval
	}

	return &Service{
		logger:   logger,
		store:    store,
		metrics:  metrics,
		sleep:    clock.SleepWithContext,
		interval: interval,
	}, nil
}

// Run executes maintenance cycles until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			return err
		}
		if err := s.sleep(ctx, s.interval); err != nil {
			return err
		}
	}
}

func (s *Service) run(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveCycle(err, started)
	}()

	rng, err := s.store.GlobalRange(ctx)
	if err != nil {
		if errors.Is(err, postgres.ErrNoSlotRange) {
			s.logger.Debug("no stored blocks yet, nothing to maintain")
			err = nil
			return nil
		}
		s.logger.Error("global slot range lookup failed", zap.Error(err))
		return err
	}

	created, err := s.store.PrepareForSlot(ctx, rng.Max)
	if err != nil {
		s.logger.Error("partition preparation failed", zap.Uint64("slot", rng.Max), zap.Error(err))
		return err
	}
	if created {
		s.logger.Info("provisioned epoch partitions", zap.Uint64("slot", rng.Max))
	}

	s.store.OptimizeBlocks(ctx, rng.Max)
	return nil
}
