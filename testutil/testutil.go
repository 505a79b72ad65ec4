package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/slidego/puzzle"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Permutation returns a uniformly shuffled board. It is not necessarily solvable.
func (r *RNG) Permutation() puzzle.Arrangement {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := puzzle.Solved
	r.rand.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
	return a
}

// Permutations returns n shuffled boards.
func (r *RNG) Permutations(n int) []puzzle.Arrangement {
	out := make([]puzzle.Arrangement, n)
	for i := range out {
		out[i] = r.Permutation()
	}
	return out
}

// Scramble walks the blank n random legal steps away from Solved.
// The result is solvable in at most n moves.
func (r *RNG) Scramble(n int) puzzle.Arrangement {
	a := puzzle.Solved
	for range n {
		moves, err := puzzle.Moves(a)
		if err != nil {
			panic(err)
		}
		a = moves[r.Intn(len(moves))].Arrangement
	}
	return a
}

// Ordinals returns n distinct keys of valid boards.
func (r *RNG) Ordinals(n int) []puzzle.Ordinal {
	seen := make(map[puzzle.Ordinal]struct{}, n)
	out := make([]puzzle.Ordinal, 0, n)
	for len(out) < n {
		o, _ := puzzle.Encode(r.Permutation())
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}
	return out
}
