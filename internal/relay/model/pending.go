package model

import "time"

// WireTransaction is the raw signed byte encoding of a transaction as sent to
// validators. The bytes are owned by the inbound channel until a batch
// consumes them.
type WireTransaction []byte

// PendingEntry is one transaction waiting to be forwarded. It lives only
// inside one batch cycle.
type PendingEntry struct {
	Signature  string
	RecentSlot uint64
	Payload    WireTransaction
}

// TxStatus holds the last-known forwarding state for a signature.
type TxStatus struct {
	// Status is the confirmation status if one has been observed; nil right
	// after forwarding.
	Status *CommitmentLevel
	SentAt time.Time
}
