// Package batcher provides a generic batch dispatcher that drains an inbound
// channel into size/interval bounded batches.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrInputClosed is returned by Run when the inbound channel is closed.
// A closed channel is terminal, not a normal drain.
var ErrInputClosed = errors.New("batcher: input channel closed")

// Batcher accumulates items from an inbound channel and hands each completed
// batch to a detached flush goroutine. A batch completes when the flush
// interval elapses, or earlier when it reaches the configured size; a full
// batch keeps absorbing items until the channel is momentarily empty, so
// bursts are not truncated at the size bound. Cycles never wait for in-flight
// flushes.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	in            <-chan T
	batchSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg sync.WaitGroup
}

// New constructs a Batcher reading from in. rps limits flush dispatches per
// second; zero or negative means unlimited.
func New[T any](logger *zap.Logger, in <-chan T, flushCallback func(context.Context, []T) error, batchSize int, flushInterval time.Duration, rps int) *Batcher[T] {
	rl := ratelimit.NewUnlimited()
	if rps > 0 {
		rl = ratelimit.New(rps)
	}

	return &Batcher[T]{
		logger:        logger,
		in:            in,
		flushCallback: flushCallback,
		batchSize:     batchSize,
		flushInterval: flushInterval,
		rl:            rl,
	}
}

// Run drains the inbound channel until the context is canceled or the channel
// is closed. Closure surfaces as ErrInputClosed.
func (b *Batcher[T]) Run(ctx context.Context) error {
	b.logger.Info("batching items",
		zap.Int("batch_size", b.batchSize),
		zap.Duration("flush_interval", b.flushInterval),
	)

	for {
		batch, err := b.cycle(ctx)
		if err != nil {
			return err
		}
		b.dispatch(ctx, batch)
	}
}

// Drain waits for all in-flight flush goroutines to finish.
func (b *Batcher[T]) Drain() {
	b.wg.Wait()
}

func (b *Batcher[T]) cycle(ctx context.Context) ([]T, error) {
	timer := time.NewTimer(b.flushInterval)
	defer timer.Stop()

	batch := make([]T, 0, b.batchSize)
	for {
		if len(batch) >= b.batchSize {
			select {
			case item, ok := <-b.in:
				if !ok {
					return nil, ErrInputClosed
				}
				batch = append(batch, item)
			default:
				return batch, nil
			}
			continue
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case item, ok := <-b.in:
			if !ok {
				return nil, ErrInputClosed
			}
			batch = append(batch, item)
		case <-timer.C:
			return batch, nil
		}
	}
}

func (b *Batcher[T]) dispatch(ctx context.Context, batch []T) {
	if len(batch) == 0 {
		return
	}

	b.rl.Take()
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		if err := b.flushCallback(ctx, batch); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(batch)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(batch)))
		}
	}()
}
