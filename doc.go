// Package slidego provides the data-structure core for exhaustive exploration
// of the 15-puzzle state graph.
//
// slidego combines three pieces:
//
//   - A bijective codec between a 4x4 board and a 64-bit Lehmer ordinal (package puzzle)
//   - A move generator emitting successors in a fixed, deterministic order (package puzzle)
//   - A visited-state set with parent links, built from a chain of fixed-size
//     hash tables with bounded per-bucket overflow (Session)
//
// The search policy (breadth-first, IDA*, goal tests, node budgets) belongs to
// the caller. Session offers the primitives such a loop is built from.
//
// # Quick Start
//
//	s, err := slidego.New(
//	    slidego.WithMemoryLimit(2 << 30),
//	    slidego.WithLogger(slidego.NewTextLogger(slog.LevelInfo)),
//	)
//	if err != nil {
//	    panic(err)
//	}
//	defer s.Close()
//
//	start, _ := s.Seed(board)   // start is its own parent
//	frontier := []puzzle.Arrangement{board}
//	for len(frontier) > 0 {
//	    next := frontier[0]
//	    frontier = frontier[1:]
//	    fresh, err := s.Expand(next) // only successors not seen before
//	    if err != nil {
//	        return err // errors.Is(err, slidego.ErrAllocationFailed)
//	    }
//	    for _, m := range fresh {
//	        if m.Arrangement.IsSolved() {
//	            path, _ := s.Path(m.Ordinal) // start ... goal
//	            _ = path
//	        }
//	        frontier = append(frontier, m.Arrangement)
//	    }
//	}
//
// # Identity
//
// Only the low 49 bits of an ordinal identify a state. The bits above may hold
// a cached score (puzzle.Decorate) and are ignored by hashing and comparison.
//
// # Memory
//
// Every table (1 MiB at the default 65536 buckets) and every overflow growth is
// charged to the memory limit. When the limit is reached Insert and Expand fail
// with ErrAllocationFailed; the set stays consistent and readable, so the
// caller may stop the search or walk paths from what it has.
//
// # Concurrency
//
// A Session is not safe for concurrent use.
package slidego
