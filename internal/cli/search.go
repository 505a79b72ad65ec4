package cli

import (
	"context"
	"errors"

	"github.com/hupe1980/slidego"
	"github.com/hupe1980/slidego/puzzle"
)

// Reasons a search stops before the frontier is exhausted.
const (
	stopGoal      = "goal reached"
	stopExhausted = "graph exhausted"
	stopMaxStates = "state limit reached"
	stopMemory    = "memory limit reached"
)

type searchParams struct {
	// maxStates stops the search once the session holds this many states; 0 means no limit.
	maxStates int
	// slides expands with multi-tile moves.
	slides bool
	// goal stops at the first solved board.
	goal bool
}

type searchResult struct {
	// Layers holds the number of new states discovered at each depth, starting with the root.
	Layers []int
	// Path runs from the start to the goal when one was found.
	Path   []puzzle.Ordinal
	Reason string
}

// search runs a layered breadth-first search from start.
func search(ctx context.Context, s *slidego.Session, start puzzle.Arrangement, p searchParams) (searchResult, error) {
	var res searchResult

	root, err := s.Seed(start)
	if err != nil {
		return res, err
	}
	res.Layers = append(res.Layers, 1)

	if p.goal && start.IsSolved() {
		res.Path, res.Reason = []puzzle.Ordinal{root}, stopGoal
		return res, nil
	}

	expand := s.Expand
	if p.slides {
		expand = s.ExpandSlides
	}

	layer := []puzzle.Arrangement{start}
	for len(layer) > 0 {
		var next []puzzle.Arrangement

		for _, a := range layer {
			if err := ctx.Err(); err != nil {
				return res, err
			}

			fresh, err := expand(a)
			next = appendArrangements(next, fresh)
			if errors.Is(err, slidego.ErrAllocationFailed) {
				res.Layers = append(res.Layers, len(next))
				res.Reason = stopMemory
				return res, nil
			}
			if err != nil {
				return res, err
			}

			if p.goal {
				for _, m := range fresh {
					if !m.Arrangement.IsSolved() {
						continue
					}
					res.Layers = append(res.Layers, len(next))
					res.Path, err = s.Path(m.Ordinal)
					res.Reason = stopGoal
					return res, err
				}
			}

			if p.maxStates > 0 && s.Len() >= p.maxStates {
				res.Layers = append(res.Layers, len(next))
				res.Reason = stopMaxStates
				return res, nil
			}
		}

		if len(next) > 0 {
			res.Layers = append(res.Layers, len(next))
		}
		layer = next
	}

	res.Reason = stopExhausted
	return res, nil
}

func appendArrangements(dst []puzzle.Arrangement, succ []puzzle.Successor) []puzzle.Arrangement {
	for _, m := range succ {
		dst = append(dst, m.Arrangement)
	}
	return dst
}
