package puzzle

import (
	"fmt"
	"strings"

	"github.com/hupe1980/slidego/internal/conv"
)

const (
	// Size is the number of cells on the board, including the blank.
	Size = 16
	// Width is the number of cells per row.
	Width = 4
	// Blank is the tile value of the empty cell.
	Blank = 0
)

// Arrangement is a board in row-major order. A valid Arrangement holds every
// value in [0,15] exactly once.
type Arrangement [Size]uint8

// Solved is the goal arrangement: tiles ascending with the blank in the top-left corner.
var Solved = Arrangement{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

// Validate reports whether a is a permutation of 0..15.
func (a Arrangement) Validate() error {
	var seen uint16
	for i, v := range a {
		if v >= Size {
			return &ErrInvalidArrangement{Index: i, Value: v, Reason: "out of range"}
		}
		bit := uint16(1) << v
		if seen&bit != 0 {
			return &ErrInvalidArrangement{Index: i, Value: v, Reason: "duplicate"}
		}
		seen |= bit
	}
	return nil
}

// BlankIndex returns the cell holding the blank, or -1 if there is none.
func (a Arrangement) BlankIndex() int {
	for i, v := range a {
		if v == Blank {
			return i
		}
	}
	return -1
}

// IsSolved reports whether a equals Solved.
func (a Arrangement) IsSolved() bool {
	return a == Solved
}

// String renders the board as four rows.
func (a Arrangement) String() string {
	var b strings.Builder
	for row := 0; row < Size/Width; row++ {
		b.WriteString("[")
		for col := 0; col < Width; col++ {
			fmt.Fprintf(&b, " %2d", a[row*Width+col])
		}
		b.WriteString(" ]")
		if row < Size/Width-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// FromSlice copies tiles into an Arrangement and validates it.
func FromSlice(tiles []int) (Arrangement, error) {
	var a Arrangement
	if len(tiles) != Size {
		return a, fmt.Errorf("puzzle: expected %d tiles, got %d", Size, len(tiles))
	}
	for i, v := range tiles {
		t, err := conv.IntToUint8(v)
		if err != nil || t >= Size {
			return a, &ErrInvalidArrangement{Index: i, Value: uint8(v & 0xff), Reason: "out of range"}
		}
		a[i] = t
	}
	if err := a.Validate(); err != nil {
		return a, err
	}
	return a, nil
}
