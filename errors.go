package slidego

import (
	"errors"
	"fmt"

	"github.com/hupe1980/slidego/internal/visited"
	"github.com/hupe1980/slidego/puzzle"
)

var (
	// ErrAllocationFailed is returned when a table or overflow slice cannot be allocated.
	ErrAllocationFailed = errors.New("allocation failed")
	// ErrNotFound is returned when a state has no recorded parent.
	ErrNotFound = errors.New("not found")
	// ErrCorruptPath is returned when parent links do not lead back to a start state.
	ErrCorruptPath = errors.New("corrupt parent chain")
	// ErrClosed is returned by operations on a closed Session.
	ErrClosed = errors.New("session closed")
	// ErrInvalidArrangement is returned for boards that are not a permutation of 0..15.
	ErrInvalidArrangement = errors.New("invalid arrangement")
)

// ErrPathTooLong reports a parent walk that exceeded the number of stored states.
//
// It unwraps to ErrCorruptPath.
type ErrPathTooLong struct {
	Goal  puzzle.Ordinal
	Steps int
	cause error
}

func (e *ErrPathTooLong) Error() string {
	return fmt.Sprintf("path to %#x exceeds %d steps", uint64(e.Goal), e.Steps)
}

func (e *ErrPathTooLong) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, visited.ErrAllocationFailed) {
		return fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}
	if errors.Is(err, visited.ErrClosed) {
		return fmt.Errorf("%w: %w", ErrClosed, err)
	}
	if errors.Is(err, puzzle.ErrInvalidEncoding) {
		return fmt.Errorf("%w: %w", ErrInvalidArrangement, err)
	}
	var ia *puzzle.ErrInvalidArrangement
	if errors.As(err, &ia) {
		return fmt.Errorf("%w: %w", ErrInvalidArrangement, err)
	}

	return err
}
