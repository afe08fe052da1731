package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/relaynode7000-backend/internal/relay/model"
	"github.com/goodnatureofminers/relaynode7000-backend/pkg/safe"
)

// ErrNoSlotRange indicates no epoch partition holds any block rows.
var ErrNoSlotRange = errors.New("no epoch partitions with blocks")

// PartitionRanges discovers all provisioned epoch partitions and returns the
// min/max stored slot per epoch. Epochs without a partition are absent from
// the result; an empty map means no partitions exist.
func (r *Repository) PartitionRanges(ctx context.Context) (map[uint64]model.SlotRange, error) {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("partition_ranges", err, started)
	}()

	schemaQuery := fmt.Sprintf(`
SELECT schema_name
FROM information_schema.schemata
WHERE schema_name ~ '^%s[0-9]+$'`, SchemaPrefix)

	rows, err := r.readPool.Query(ctx, schemaQuery)
	if err != nil {
		err = fmt.Errorf("list epoch schemas: %w", err)
		return nil, err
	}
	defer rows.Close()

	schemas := make(map[uint64]string)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			err = fmt.Errorf("scan schema name: %w", err)
			return nil, err
		}

		epochNum, parseErr := ParseEpochFromSchema(name)
		if parseErr != nil {
			err = parseErr
			return nil, err
		}
		if existing, dup := schemas[epochNum]; dup {
			panic(fmt.Sprintf("postgres: epoch %d mapped by both schemas %q and %q", epochNum, existing, name))
		}
		schemas[epochNum] = name
	}
	if err = rows.Err(); err != nil {
		err = fmt.Errorf("iterate epoch schemas: %w", err)
		return nil, err
	}

	if len(schemas) == 0 {
		return map[uint64]model.SlotRange{}, nil
	}

	inner := make([]string, 0, len(schemas))
	for epochNum, schema := range schemas {
		inner = append(inner, fmt.Sprintf("SELECT slot, %d::bigint AS epoch FROM %s.blocks", epochNum, schema))
	}
	rangeQuery := fmt.Sprintf(`
SELECT epoch, min(slot) AS slot_min, max(slot) AS slot_max FROM (
	%s
) AS all_slots
GROUP BY epoch`, strings.Join(inner, "\n\tUNION ALL\n\t"))

	rangeRows, err := r.readPool.Query(ctx, rangeQuery)
	if err != nil {
		err = fmt.Errorf("aggregate slot ranges: %w", err)
		return nil, err
	}
	defer rangeRows.Close()

	ranges := make(map[uint64]model.SlotRange, len(schemas))
	for rangeRows.Next() {
		var epochCol, slotMin, slotMax int64
		if err = rangeRows.Scan(&epochCol, &slotMin, &slotMax); err != nil {
			err = fmt.Errorf("scan slot range: %w", err)
			return nil, err
		}

		epochNum, convErr := safe.Uint64(epochCol)
		if convErr != nil {
			err = fmt.Errorf("epoch: %w", convErr)
			return nil, err
		}
		minSlot, convErr := safe.Uint64(slotMin)
		if convErr != nil {
			err = fmt.Errorf("min slot: %w", convErr)
			return nil, err
		}
		maxSlot, convErr := safe.Uint64(slotMax)
		if convErr != nil {
			err = fmt.Errorf("max slot: %w", convErr)
			return nil, err
		}

		ranges[epochNum] = model.SlotRange{Min: minSlot, Max: maxSlot}
	}
	if err = rangeRows.Err(); err != nil {
		err = fmt.Errorf("iterate slot ranges: %w", err)
		return nil, err
	}

	r.logger.Debug("slot range check",
		zap.Int("partitions", len(schemas)),
		zap.Int("ranges", len(ranges)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return ranges, nil
}

// GlobalRange reduces PartitionRanges to the overall covered slot range.
// Returns ErrNoSlotRange when no partition holds data.
func (r *Repository) GlobalRange(ctx context.Context) (model.SlotRange, error) {
	ranges, err := r.PartitionRanges(ctx)
	if err != nil {
		return model.SlotRange{}, err
	}
	if len(ranges) == 0 {
		return model.SlotRange{}, ErrNoSlotRange
	}

	var global model.SlotRange
	first := true
	for _, rng := range ranges {
		if first {
			global = rng
			first = false
			continue
		}
		if rng.Min < global.Min {
			global.Min = rng.Min
		}
		if rng.Max > global.Max {
			global.Max = rng.Max
		}
	}
	return global, nil
}

// IsSlotCovered reports whether slot falls within its epoch's stored range.
// A missing partition for the epoch is not an error, just uncovered.
func (r *Repository) IsSlotCovered(ctx context.Context, slot uint64) (bool, error) {
	ranges, err := r.PartitionRanges(ctx)
	if err != nil {
		return false, err
	}

	rng, ok := ranges[r.schedule.EpochAt(slot)]
	if !ok {
		return false, nil
	}
	return rng.Contains(slot), nil
}
