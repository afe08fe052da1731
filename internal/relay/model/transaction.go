package model

// TransactionRecord represents one transaction row belonging to a block.
type TransactionRecord struct {
	Signature          string
	Slot               uint64
	IsVote             bool
	Err                *string
	CURequested        *int64
	CUConsumed         *int64
	PrioritizationFees *int64
	RecentBlockhash    string
	Message            string
}
