// Package postgres implements the epoch-partitioned block store on top of a
// shared read pool and a fixed set of dedicated write sessions.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/relaynode7000-backend/internal/relay/epoch"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// ErrMissingRole indicates the mandatory application role does not exist in
// the target database. This is a deployment precondition; callers are
// expected to abort on it.
var ErrMissingRole = errors.New("mandatory postgres role missing")

const (
	defaultWriteSessions = 4
	defaultMinChunkSize  = 500
	defaultRole          = "r_relay"
)

type (
	// Metrics observes repository operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Config holds connection parameters for the block store.
type Config struct {
	// DSN is the postgres connection string shared by the read pool and the
	// write sessions.
	DSN string
	// WriteSessions is the size of the dedicated write-session pool.
	WriteSessions int
	// MinChunkSize floors the per-session chunk size for transaction inserts.
	MinChunkSize int
	// Role is the application role granted on new epoch schemas. It must
	// already exist.
	Role string
}

func (c *Config) applyDefaults() {
	if c.WriteSessions == 0 {
		c.WriteSessions = defaultWriteSessions
	}
	if c.MinChunkSize == 0 {
		c.MinChunkSize = defaultMinChunkSize
	}
	if c.Role == "" {
		c.Role = defaultRole
	}
}

// Repository is the epoch-partitioned block store. The read pool is shared;
// write sessions are dedicated single-connection pools borrowed per
// operation, chunk i of a fan-out always using session i.
type Repository struct {
	readPool     *pgxpool.Pool
	writePools   []*pgxpool.Pool
	schedule     epoch.Oracle
	metrics      Metrics
	logger       *zap.Logger
	minChunkSize int
	role         string
}

// NewRepository connects the read pool and the write-session pool and runs
// the role self-check. A missing mandatory role is returned as ErrMissingRole
// and must abort startup before any writes.
func NewRepository(ctx context.Context, cfg Config, schedule epoch.Oracle, metrics Metrics, logger *zap.Logger) (*Repository, error) {
	cfg.applyDefaults()

	if cfg.DSN == "" {
		return nil, errors.New("postgres dsn is required")
	}
	if cfg.WriteSessions < 1 {
		return nil, errors.New("at least one write session is required")
	}
	if cfg.MinChunkSize < 1 {
		return nil, errors.New("min chunk size must be positive")
	}
	if schedule == nil {
		return nil, errors.New("epoch schedule is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}

	readPool, err := newPool(ctx, cfg.DSN, 0)
	if err != nil {
		return nil, fmt.Errorf("open read pool: %w", err)
	}

	writePools := make([]*pgxpool.Pool, 0, cfg.WriteSessions)
	for i := 0; i < cfg.WriteSessions; i++ {
		pool, poolErr := newPool(ctx, cfg.DSN, 1)
		if poolErr != nil {
			readPool.Close()
			for _, p := range writePools {
				p.Close()
			}
			return nil, fmt.Errorf("open write session %d: %w", i, poolErr)
		}
		writePools = append(writePools, pool)
	}

	r := &Repository{
		readPool:     readPool,
		writePools:   writePools,
		schedule:     schedule,
		metrics:      metrics,
		logger:       logger,
		minChunkSize: cfg.MinChunkSize,
		role:         cfg.Role,
	}

	if err = r.checkRole(ctx); err != nil {
		r.Close()
		return nil, err
	}

	return r, nil
}

func newPool(ctx context.Context, dsn string, maxConns int32) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if maxConns > 0 {
		pc.MaxConns = maxConns
		pc.MinConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// checkRole verifies the mandatory application role exists before any writes.
func (r *Repository) checkRole(ctx context.Context) error {
	var one int
	err := r.readPool.QueryRow(ctx, `SELECT 1 FROM pg_roles WHERE rolname = $1`, r.role).Scan(&one)
	if err != nil {
		if isNoRows(err) {
			return fmt.Errorf("%w: %q, see migrations/postgres", ErrMissingRole, r.role)
		}
		return fmt.Errorf("query pg_roles for %q: %w", r.role, err)
	}

	r.logger.Info("self check passed, found postgres role", zap.String("role", r.role))
	return nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// Close releases the read pool and all write sessions.
func (r *Repository) Close() {
	r.readPool.Close()
	for _, p := range r.writePools {
		p.Close()
	}
}
