package puzzle

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding is matched by every *EncodingError.
var ErrInvalidEncoding = errors.New("puzzle: invalid encoding")

// EncodingError reports a malformed arrangement during Encode or an
// out-of-range Lehmer digit during Decode.
type EncodingError struct {
	Op    string // "encode" or "decode"
	Count int    // number of slots that could not be coded
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("puzzle: %s: %d bad slot(s)", e.Op, e.Count)
}

// Is makes errors.Is(err, ErrInvalidEncoding) hold.
func (e *EncodingError) Is(target error) bool { return target == ErrInvalidEncoding }

// ErrInvalidArrangement indicates a board that is not a permutation of 0..15.
type ErrInvalidArrangement struct {
	Index  int
	Value  uint8
	Reason string
}

func (e *ErrInvalidArrangement) Error() string {
	return fmt.Sprintf("puzzle: invalid arrangement: %s value %d at cell %d", e.Reason, e.Value, e.Index)
}
