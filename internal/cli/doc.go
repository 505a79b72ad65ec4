// Package cli implements the slidego command-line interface.
//
// The CLI is built using cobra and logs through charmbracelet/log, which also
// serves as the slog handler of every Session it opens.
//
// # Commands
//
//   - solve: breadth-first search from a board to the goal, printing the path
//   - explore: breadth-first exploration reporting states per depth
//   - encode: print the ordinal of a board
//   - decode: print the board of an ordinal
//
// Session settings come from flags and an optional TOML file (--config).
package cli
