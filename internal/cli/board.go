package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/hupe1980/slidego/puzzle"
	"github.com/hupe1980/slidego/testutil"
)

// addBoardFlags registers the flags that pick a start board when no tiles are given.
func addBoardFlags(fs *pflag.FlagSet) {
	fs.Int("scramble", 20, "random moves applied to the goal when no tiles are given")
	fs.Int64("seed", 4711, "random seed for --scramble")
	fs.Bool("random", false, "start from a uniformly random board instead of a scramble")
}

// parseBoard reads 16 tiles given as separate arguments or as one
// comma/space separated argument.
func parseBoard(args []string) (puzzle.Arrangement, error) {
	fields := args
	if len(args) == 1 {
		fields = strings.FieldsFunc(args[0], func(r rune) bool {
			return r == ',' || r == ' '
		})
	}

	tiles := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return puzzle.Arrangement{}, fmt.Errorf("tile %d: %w", i, err)
		}
		tiles[i] = v
	}

	return puzzle.FromSlice(tiles)
}

// startBoard returns the board given in args or, without args, one built from
// the board flags.
func startBoard(fs *pflag.FlagSet, args []string) (puzzle.Arrangement, error) {
	if len(args) > 0 {
		return parseBoard(args)
	}

	seed, err := fs.GetInt64("seed")
	if err != nil {
		return puzzle.Arrangement{}, err
	}
	rng := testutil.NewRNG(seed)

	if random, _ := fs.GetBool("random"); random {
		return rng.Permutation(), nil
	}

	n, err := fs.GetInt("scramble")
	if err != nil {
		return puzzle.Arrangement{}, err
	}
	if n < 0 {
		return puzzle.Arrangement{}, fmt.Errorf("scramble must not be negative, got %d", n)
	}
	return rng.Scramble(n), nil
}
