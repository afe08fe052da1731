// Package epoch maps slots to the epoch that owns their storage partition.
package epoch

import "errors"

// DefaultSlotsPerEpoch matches the mainnet epoch width.
const DefaultSlotsPerEpoch = 432_000

// Oracle resolves the epoch owning a slot.
type Oracle interface {
	EpochAt(slot uint64) uint64
}

// Schedule is a fixed-width epoch schedule.
type Schedule struct {
	slotsPerEpoch uint64
}

// NewSchedule creates a Schedule with the given epoch width.
func NewSchedule(slotsPerEpoch uint64) (*Schedule, error) {
	if slotsPerEpoch == 0 {
		return nil, errors.New("slots per epoch must be positive")
	}
	return &Schedule{slotsPerEpoch: slotsPerEpoch}, nil
}

// EpochAt returns the epoch containing slot.
func (s *Schedule) EpochAt(slot uint64) uint64 {
	return slot / s.slotsPerEpoch
}

// FirstSlot returns the first slot of an epoch.
func (s *Schedule) FirstSlot(epoch uint64) uint64 {
	return epoch * s.slotsPerEpoch
}

// LastSlot returns the last slot of an epoch.
func (s *Schedule) LastSlot(epoch uint64) uint64 {
	return (epoch+1)*s.slotsPerEpoch - 1
}
