package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a value does not fit the target type.
var ErrOverflow = errors.New("integer overflow")

// IntToUint8 converts int to uint8 safely.
func IntToUint8(v int) (uint8, error) {
	if v < 0 || v > math.MaxUint8 {
		return 0, fmt.Errorf("%w: %d does not fit uint8", ErrOverflow, v)
	}
	return uint8(v), nil
}

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d does not fit uint32 (negative)", ErrOverflow, v)
	}
	// Always false on 32-bit platforms.
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d does not fit uint32 (too large)", ErrOverflow, v)
	}
	return uint32(v), nil
}
