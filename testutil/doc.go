// Package testutil provides testing utilities for slidego.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, goroutine-safe RNG and helpers for generating boards.
//
// # Random Boards
//
//	rng := testutil.NewRNG(seed)
//	a := rng.Permutation()   // uniform over all 16! boards (half are unsolvable)
//	b := rng.Scramble(40)    // random walk from Solved, always solvable
//
// # Key Streams
//
//	keys := rng.Ordinals(1000) // distinct valid ordinals
package testutil
