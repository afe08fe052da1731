package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/relaynode7000-backend/internal/relay/model"
	"github.com/goodnatureofminers/relaynode7000-backend/pkg/safe"
)

// ErrPartialBlockWrite indicates the block row committed but one or more
// transaction chunks failed afterwards. The block row cannot be rolled back
// at this layer; callers must treat the block as incomplete.
var ErrPartialBlockWrite = errors.New("block row committed but transaction inserts incomplete")

// WriteBlock stores a block and its transactions in the owning epoch
// partition. The block insert is idempotent on slot; if the row already
// exists the call succeeds without touching transactions, assuming they were
// recorded together with the original row. Returns whether a new block row
// was inserted.
//
// The block row and the transaction chunks commit independently; a chunk
// failure after the block committed surfaces as ErrPartialBlockWrite.
func (r *Repository) WriteBlock(ctx context.Context, block *model.Block) (bool, error) {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("write_block", err, started)
	}()

	r.promoteCommitment(block)

	epochNum := r.schedule.EpochAt(block.Slot)

	inserted, err := r.insertBlock(ctx, epochNum, block)
	if err != nil {
		return false, err
	}
	if !inserted {
		r.logger.Debug("block already exists, skipping update", zap.Uint64("slot", block.Slot))
		return false, nil
	}

	if err = r.insertTransactions(ctx, epochNum, block.Slot, block.Transactions); err != nil {
		err = fmt.Errorf("slot %d: %w: %w", block.Slot, ErrPartialBlockWrite, err)
		return true, err
	}

	r.logger.Debug("block saved",
		zap.Uint64("slot", block.Slot),
		zap.Int("transactions", len(block.Transactions)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return true, nil
}

// promoteCommitment is the hook for upgrading a stored confirmed block to
// finalized. Commitment levels are not modeled in the tables yet, so it only
// observes.
func (r *Repository) promoteCommitment(block *model.Block) {
	if block.Commitment == model.CommitmentFinalized {
		r.logger.Debug("checking block for commitment promotion", zap.Uint64("slot", block.Slot))
	}
}

// insertBlock writes the block row through the designated first write
// session. Returns whether a row was inserted.
func (r *Repository) insertBlock(ctx context.Context, epochNum uint64, block *model.Block) (bool, error) {
	slot, err := safe.Int64(block.Slot)
	if err != nil {
		return false, fmt.Errorf("block slot: %w", err)
	}
	blockHeight, err := safe.Int64(block.BlockHeight)
	if err != nil {
		return false, fmt.Errorf("block height: %w", err)
	}
	parentSlot, err := safe.Int64(block.ParentSlot)
	if err != nil {
		return false, fmt.Errorf("parent slot: %w", err)
	}

	query := fmt.Sprintf(`
INSERT INTO %s.blocks (slot, blockhash, block_height, parent_slot, block_time, previous_blockhash, rewards, leader_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (slot) DO NOTHING`, SchemaName(epochNum))

	tag, err := r.writePools[0].Exec(ctx, query,
		slot,
		block.Blockhash,
		blockHeight,
		parentSlot,
		block.BlockTime,
		block.PreviousBlockhash,
		block.Rewards,
		block.LeaderID,
	)
	if err != nil {
		return false, fmt.Errorf("insert block %d into epoch %d: %w", block.Slot, epochNum, err)
	}

	return tag.RowsAffected() == 1, nil
}
