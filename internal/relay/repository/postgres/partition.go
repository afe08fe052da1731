package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// SchemaPrefix starts every epoch partition schema name, e.g. "relay_epoch_552".
const SchemaPrefix = "relay_epoch_"

// SQLSTATE for CREATE SCHEMA against an existing schema.
const duplicateSchemaCode = "42P06"

// SchemaName builds the deterministic schema name for an epoch.
func SchemaName(epochNum uint64) string {
	return fmt.Sprintf("%s%d", SchemaPrefix, epochNum)
}

// ParseEpochFromSchema extracts the epoch number from a partition schema name.
func ParseEpochFromSchema(name string) (uint64, error) {
	suffix, ok := strings.CutPrefix(name, SchemaPrefix)
	if !ok {
		return 0, fmt.Errorf("schema %q does not carry prefix %q", name, SchemaPrefix)
	}
	epochNum, err := strconv.ParseUint(suffix, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse epoch from schema %q: %w", name, err)
	}
	return epochNum, nil
}

type partitionStatement struct {
	description string
	sql         string
}

func buildPartitionStatements(schema, role string) []partitionStatement {
	return []partitionStatement{
		{
			description: "grant schema usage to application role",
			sql:         fmt.Sprintf(`GRANT USAGE ON SCHEMA %s TO %s`, schema, role),
		},
		{
			description: "grant table access to application role",
			sql:         fmt.Sprintf(`GRANT ALL ON ALL TABLES IN SCHEMA %s TO %s`, schema, role),
		},
		{
			description: "set default privileges for application role",
			sql:         fmt.Sprintf(`ALTER DEFAULT PRIVILEGES IN SCHEMA %s GRANT ALL ON TABLES TO %s`, schema, role),
		},
		{
			description: "create blocks table",
			sql: fmt.Sprintf(`
CREATE TABLE %s.blocks (
	slot BIGINT NOT NULL,
	blockhash TEXT NOT NULL,
	block_height BIGINT NOT NULL,
	parent_slot BIGINT NOT NULL,
	block_time BIGINT NOT NULL,
	previous_blockhash TEXT NOT NULL,
	rewards TEXT,
	leader_id TEXT,
	CONSTRAINT pk_blocks_slot PRIMARY KEY (slot)
)`, schema),
		},
		{
			description: "create transactions table",
			sql: fmt.Sprintf(`
CREATE TABLE %s.transactions (
	signature TEXT NOT NULL,
	slot BIGINT NOT NULL,
	is_vote BOOL NOT NULL,
	err TEXT,
	cu_requested BIGINT,
	cu_consumed BIGINT,
	prioritization_fees BIGINT,
	recent_blockhash TEXT NOT NULL,
	message TEXT NOT NULL
)`, schema),
		},
		{
			description: "add transactions to blocks foreign key",
			sql: fmt.Sprintf(`
ALTER TABLE %s.transactions
	ADD CONSTRAINT fk_transactions_slot FOREIGN KEY (slot) REFERENCES %s.blocks (slot)`, schema, schema),
		},
	}
}

// EnsurePartition creates the schema, tables, grants and constraints for an
// epoch. Returns true if the schema was newly created. An already existing
// schema is a benign no-op so independent relay instances can provision the
// same epoch concurrently.
func (r *Repository) EnsurePartition(ctx context.Context, epochNum uint64) (bool, error) {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("ensure_partition", err, started)
	}()

	schema := SchemaName(epochNum)

	// Requires GRANT CREATE ON DATABASE for the connecting user.
	_, err = r.readPool.Exec(ctx, fmt.Sprintf(`CREATE SCHEMA %s`, schema))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == duplicateSchemaCode {
			r.logger.Info("epoch schema already exists, data will be appended",
				zap.String("schema", schema),
				zap.Uint64("epoch", epochNum),
			)
			err = nil
			return false, nil
		}
		err = fmt.Errorf("create schema for epoch %d: %w", epochNum, err)
		return false, err
	}

	for _, stmt := range buildPartitionStatements(schema, r.role) {
		if _, err = r.readPool.Exec(ctx, stmt.sql); err != nil {
			err = fmt.Errorf("%s for epoch %d: %w", stmt.description, epochNum, err)
			return false, err
		}
	}

	r.logger.Info("started new epoch schema", zap.String("schema", schema), zap.Uint64("epoch", epochNum))
	return true, nil
}

// PrepareForSlot provisions partitions for the slot's epoch and its
// successor, so writes never race schema creation at an epoch boundary.
// Returns true if anything was newly created.
func (r *Repository) PrepareForSlot(ctx context.Context, slot uint64) (bool, error) {
	epochNum := r.schedule.EpochAt(slot)

	createdCurrent, err := r.EnsurePartition(ctx, epochNum)
	if err != nil {
		return false, err
	}
	createdNext, err := r.EnsurePartition(ctx, epochNum+1)
	if err != nil {
		return createdCurrent, err
	}
	return createdCurrent || createdNext, nil
}
