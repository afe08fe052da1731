// Package model defines domain models for the relay write path.
package model

// CommitmentLevel describes the finality confidence tier of a block.
type CommitmentLevel string

var (
	// CommitmentConfirmed marks a block confirmed by the cluster but not yet rooted.
	CommitmentConfirmed CommitmentLevel = "confirmed"
	// CommitmentFinalized marks a rooted block.
	CommitmentFinalized CommitmentLevel = "finalized"
)

// Block represents a produced block persisted to its epoch partition.
type Block struct {
	Slot              uint64
	Blockhash         string
	BlockHeight       uint64
	ParentSlot        uint64
	BlockTime         int64
	PreviousBlockhash string
	Rewards           *string
	LeaderID          *string
	Commitment        CommitmentLevel
	Transactions      []TransactionRecord
}

// SlotRange is an inclusive range of slots.
type SlotRange struct {
	Min uint64
	Max uint64
}

// Contains reports whether slot falls within the range.
func (r SlotRange) Contains(slot uint64) bool {
	return slot >= r.Min && slot <= r.Max
}
