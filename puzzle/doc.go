// Package puzzle defines the 15-puzzle state types and the pure functions over them.
//
// # State Types
//
//   - Arrangement: 16 tiles in row-major order, value 0 is the blank
//   - Ordinal: 64-bit Lehmer code of an Arrangement
//   - Successor: one legal move (direction, resulting arrangement, its ordinal)
//
// # Ordinal Layout
//
// Slot i of the arrangement contributes one mixed-radix digit: the index of its
// tile among the tiles not yet placed. Digits are packed at fixed offsets:
//
//	slot    0-7    8-11   12-13   14   15
//	width   4      3      2       1    0
//	offset  0..28  32..41 44,46   48   49
//
// The digits occupy bits 0-48. Bits 49 and above carry an optional cached
// score (see Decorate) and never take part in identity; use Ordinal.Key to
// strip them.
//
// # Usage
//
//	o, err := puzzle.EncodeStrict(a)
//	if err != nil { ... }
//
//	moves, _ := puzzle.Moves(a)
//	for _, m := range moves {
//	    fmt.Println(m.Dir, m.Ordinal)
//	}
package puzzle
