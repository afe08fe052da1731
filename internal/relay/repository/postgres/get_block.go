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

// ErrBlockNotFound indicates no block row exists for the requested slot in
// its epoch partition.
var ErrBlockNotFound = errors.New("block not found")

// GetBlock loads the block row for a slot from its epoch partition.
//
// The transaction list is not reconstructed on this path and is returned
// empty, and the commitment level is a synthetic confirmed value rather than
// stored state.
func (r *Repository) GetBlock(ctx context.Context, slot uint64) (*model.Block, error) {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_block", err, started)
	}()

	epochNum := r.schedule.EpochAt(slot)
	schema := SchemaName(epochNum)

	slotArg, err := safe.Int64(slot)
	if err != nil {
		return nil, fmt.Errorf("slot: %w", err)
	}

	query := fmt.Sprintf(`
SELECT slot, blockhash, block_height, parent_slot, block_time, previous_blockhash, rewards, leader_id
FROM %s.blocks
WHERE slot = $1`, schema)

	var (
		rowSlot       int64
		blockhash     string
		blockHeight   int64
		parentSlot    int64
		blockTime     int64
		prevBlockhash string
		rewards       *string
		leaderID      *string
	)
	err = r.readPool.QueryRow(ctx, query, slotArg).Scan(
		&rowSlot, &blockhash, &blockHeight, &parentSlot, &blockTime, &prevBlockhash, &rewards, &leaderID,
	)
	if err != nil {
		if isNoRows(err) {
			err = fmt.Errorf("%w: slot %d in epoch %d", ErrBlockNotFound, slot, epochNum)
			return nil, err
		}
		err = fmt.Errorf("query block %d in epoch %d: %w", slot, epochNum, err)
		return nil, err
	}

	gotSlot, err := safe.Uint64(rowSlot)
	if err != nil {
		return nil, fmt.Errorf("stored slot: %w", err)
	}
	gotHeight, err := safe.Uint64(blockHeight)
	if err != nil {
		return nil, fmt.Errorf("stored block height: %w", err)
	}
	gotParent, err := safe.Uint64(parentSlot)
	if err != nil {
		return nil, fmt.Errorf("stored parent slot: %w", err)
	}

	block := &model.Block{
		Slot:              gotSlot,
		Blockhash:         blockhash,
		BlockHeight:       gotHeight,
		ParentSlot:        gotParent,
		BlockTime:         blockTime,
		PreviousBlockhash: prevBlockhash,
		Rewards:           rewards,
		LeaderID:          leaderID,
		Commitment:        model.CommitmentConfirmed,
	}

	r.logger.Debug("block loaded",
		zap.Uint64("slot", block.Slot),
		zap.String("schema", schema),
		zap.Duration("elapsed", time.Since(started)),
	)
	return block, nil
}
