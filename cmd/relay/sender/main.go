package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/relaynode7000-backend/internal/metrics"
	"github.com/goodnatureofminers/relaynode7000-backend/internal/relay/model"
	"github.com/goodnatureofminers/relaynode7000-backend/internal/relay/registry"
	"github.com/goodnatureofminers/relaynode7000-backend/internal/relay/service/sender"
)

type config struct {
	LeaderAddr    string        `long:"leader-addr" env:"RELAY_SENDER_LEADER_ADDR" description:"leader tpu address"`
	BatchSize     int           `long:"batch-size" env:"RELAY_SENDER_BATCH_SIZE" description:"max transactions per forwarded batch" default:"128"`
	FlushInterval time.Duration `long:"flush-interval" env:"RELAY_SENDER_FLUSH_INTERVAL" description:"max wait before a partial batch is forwarded" default:"100ms"`
	ForwardRPS    int           `long:"forward-rps" env:"RELAY_SENDER_FORWARD_RPS" description:"forwarded batches per second, 0 disables pacing" default:"0"`
	QueueSize     int           `long:"queue-size" env:"RELAY_SENDER_QUEUE_SIZE" description:"inbound pending transaction buffer" default:"1024"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.LeaderAddr == "" {
		logger.Fatal("leader TPU address is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("sender failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	forwarder, err := newForwarder(cfg)
	if err != nil {
		return err
	}

	in := make(chan model.PendingEntry, cfg.QueueSize)
	svc, err := sender.NewService(logger.Named("sender"), forwarder, registry.New(), metrics.NewTxSender(), nil, in, sender.Config{
		BatchSize:     cfg.BatchSize,
		FlushInterval: cfg.FlushInterval,
		ForwardRPS:    cfg.ForwardRPS,
	})
	if err != nil {
		return fmt.Errorf("init sender: %w", err)
	}
	defer svc.Drain()

	return svc.Run(ctx)
}

// newForwarder selects the transport for the configured leader endpoint.
// Only the Forwarder contract exists so far; the binary refuses to start
// rather than pretend to deliver.
func newForwarder(cfg config) (sender.Forwarder, error) {
	return nil, fmt.Errorf("no forwarder transport available for %q: quic delivery is not implemented", cfg.LeaderAddr)
}
