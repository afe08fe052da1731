// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Int64 converts unsigned integers to int64 with range validation. Slots and
// counters are unsigned in the domain but BIGINT at the SQL boundary.
func Int64[T ~uint | ~uint32 | ~uint64](v T) (int64, error) {
	if uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}

// Uint64 converts signed integers to uint64 while guarding against negatives.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}
