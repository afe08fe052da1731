package sender

import (
	"context"
	"time"

	"github.com/goodnatureofminers/relaynode7000-backend/internal/relay/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Forwarder transmits a batch of wire transactions to validator
	// endpoints. The whole batch succeeds or fails as one; no per-transaction
	// outcome is representable.
	Forwarder interface {
		SendBatch(ctx context.Context, txs []model.WireTransaction) error
	}

	SenderMetrics interface {
		ObserveForward(err error, batchSize int, started time.Time)
	}
)
