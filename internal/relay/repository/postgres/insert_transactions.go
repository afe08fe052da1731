package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/relaynode7000-backend/internal/relay/model"
	"github.com/goodnatureofminers/relaynode7000-backend/pkg/chunk"
	"github.com/goodnatureofminers/relaynode7000-backend/pkg/safe"
	"github.com/goodnatureofminers/relaynode7000-backend/pkg/workerpool"
)

type transactionChunk struct {
	session int
	rows    []model.TransactionRecord
}

// insertTransactions fans the transaction rows of one block out across the
// write-session pool, one chunk per session, all chunks concurrently. Any
// chunk failure fails the whole call; chunks commit independently.
func (r *Repository) insertTransactions(ctx context.Context, epochNum, slot uint64, txs []model.TransactionRecord) error {
	if len(txs) == 0 {
		return nil
	}

	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", err, started)
	}()

	chunkSize := chunk.Size(len(txs), len(r.writePools), r.minChunkSize)
	chunks := chunk.Split(txs, chunkSize)
	if len(chunks) > len(r.writePools) {
		panic(fmt.Sprintf("postgres: %d chunks exceed %d write sessions", len(chunks), len(r.writePools)))
	}

	work := make([]transactionChunk, len(chunks))
	for i, rows := range chunks {
		work[i] = transactionChunk{session: i, rows: rows}
	}

	schema := SchemaName(epochNum)
	err = workerpool.Process(ctx, len(work), work, func(ctx context.Context, tc transactionChunk) error {
		return r.copyTransactions(ctx, tc.session, schema, tc.rows)
	})
	if err != nil {
		err = fmt.Errorf("insert %d transactions for slot %d: %w", len(txs), slot, err)
		return err
	}

	r.logger.Debug("transactions saved",
		zap.Uint64("slot", slot),
		zap.Int("count", len(txs)),
		zap.Int("chunks", len(chunks)),
		zap.Int("chunk_size", chunkSize),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}

// copyTransactions bulk-loads one chunk through its dedicated write session.
func (r *Repository) copyTransactions(ctx context.Context, session int, schema string, rows []model.TransactionRecord) error {
	columns := []string{"signature", "slot", "is_vote", "err", "cu_requested", "cu_consumed", "prioritization_fees", "recent_blockhash", "message"}

	_, err := r.writePools[session].CopyFrom(ctx,
		pgx.Identifier{schema, "transactions"},
		columns,
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			tx := rows[i]
			slot, convErr := safe.Int64(tx.Slot)
			if convErr != nil {
				return nil, fmt.Errorf("transaction slot: %w", convErr)
			}
			return []any{
				tx.Signature,
				slot,
				tx.IsVote,
				tx.Err,
				tx.CURequested,
				tx.CUConsumed,
				tx.PrioritizationFees,
				tx.RecentBlockhash,
				tx.Message,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy %d transactions on session %d: %w", len(rows), session, err)
	}
	return nil
}
