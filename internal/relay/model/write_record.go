package model

// WriteRecord is the per-transaction message handed to the storage sink after
// a forward attempt. ForwardedSlot, ProcessedSlot and the compute-unit fields
// are placeholders until the confirmation pipeline fills them in.
type WriteRecord struct {
	Signature     string
	RecentSlot    uint64
	ForwardedSlot uint64
	ProcessedSlot *uint64
	CUConsumed    *int64
	CURequested   *int64
	QuicResponse  int32
}
