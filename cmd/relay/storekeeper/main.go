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
	"github.com/goodnatureofminers/relaynode7000-backend/internal/relay/epoch"
	"github.com/goodnatureofminers/relaynode7000-backend/internal/relay/repository/postgres"
	"github.com/goodnatureofminers/relaynode7000-backend/internal/relay/service/maintenance"
)

type config struct {
	PostgresDSN         string        `long:"postgres-dsn" env:"RELAY_STOREKEEPER_POSTGRES_DSN" description:"Postgres DSN"`
	WriteSessions       int           `long:"write-sessions" env:"RELAY_STOREKEEPER_WRITE_SESSIONS" description:"number of dedicated write sessions" default:"4"`
	MinChunkSize        int           `long:"min-chunk-size" env:"RELAY_STOREKEEPER_MIN_CHUNK_SIZE" description:"minimum transactions per insert chunk" default:"500"`
	Role                string        `long:"role" env:"RELAY_STOREKEEPER_ROLE" description:"mandatory application role" default:"r_relay"`
	SlotsPerEpoch       uint64        `long:"slots-per-epoch" env:"RELAY_STOREKEEPER_SLOTS_PER_EPOCH" description:"epoch width in slots" default:"432000"`
	MaintenanceInterval time.Duration `long:"maintenance-interval" env:"RELAY_STOREKEEPER_MAINTENANCE_INTERVAL" description:"pause between maintenance cycles" default:"1m"`
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

	if cfg.PostgresDSN == "" {
		logger.Fatal("Postgres DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("storekeeper failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	schedule, err := epoch.NewSchedule(cfg.SlotsPerEpoch)
	if err != nil {
		return fmt.Errorf("init epoch schedule: %w", err)
	}

	repo, err := postgres.NewRepository(ctx, postgres.Config{
		DSN:           cfg.PostgresDSN,
		WriteSessions: cfg.WriteSessions,
		MinChunkSize:  cfg.MinChunkSize,
		Role:          cfg.Role,
	}, schedule, metrics.NewPostgresRepository(), logger.Named("postgres"))
	if err != nil {
		return fmt.Errorf("init block store: %w", err)
	}
	defer repo.Close()

	svc, err := maintenance.NewService(repo, metrics.NewMaintenance(), cfg.MaintenanceInterval, logger.Named("maintenance"))
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}
