package postgres

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// analyzeWarnThreshold flags statistics refreshes slow enough to matter.
const analyzeWarnThreshold = 500 * time.Millisecond

// OptimizeBlocks refreshes planner statistics on the blocks table owning
// slot. The blocks table takes heavy reads on its primary key index from the
// insert dedup checks, so it benefits from fresh statistics. Runs as a
// detached task uncoordinated with writers; purely advisory, failures are
// logged and never propagated.
func (r *Repository) OptimizeBlocks(ctx context.Context, slot uint64) {
	epochNum := r.schedule.EpochAt(slot)
	schema := SchemaName(epochNum)
	session := int(slot % uint64(len(r.writePools)))

	statement := fmt.Sprintf(`ANALYZE (SKIP_LOCKED) %s.blocks`, schema)
	started := time.Now()

	go func() {
		_, err := r.writePools[session].Exec(ctx, statement)
		r.metrics.Observe("optimize_blocks", err, started)
		if err != nil {
			r.logger.Warn("analyze of blocks table failed",
				zap.Uint64("slot", slot),
				zap.String("schema", schema),
				zap.Error(err),
			)
			return
		}

		elapsed := time.Since(started)
		r.logger.Debug("analyze of blocks table done",
			zap.String("schema", schema),
			zap.Duration("elapsed", elapsed),
		)
		if elapsed > analyzeWarnThreshold {
			r.logger.Warn("very slow analyze of blocks table",
				zap.Uint64("slot", slot),
				zap.Duration("elapsed", elapsed),
			)
		}
	}()
}
