package maintenance

import (
	"context"
	"time"

	"github.com/goodnatureofminers/relaynode7000-backend/internal/relay/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BlockStore is the slice of the block store the maintenance loop drives.
	BlockStore interface {
		GlobalRange(ctx context.Context) (model.SlotRange, error)
		PrepareForSlot(ctx context.Context, slot uint64) (bool, error)
		OptimizeBlocks(ctx context.Context, slot uint64)
	}

	MaintenanceMetrics interface {
		ObserveCycle(err error, started time.Time)
	}
)
