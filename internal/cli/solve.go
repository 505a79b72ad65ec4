package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/slidego/puzzle"
)

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		maxStates int
		quiet     bool
	)

	cmd := &cobra.Command{
		Use:   "solve [tiles...]",
		Short: "Find a shortest solution with breadth-first search",
		Long: `Find a shortest move sequence from a board to the goal.

Tiles are listed row by row with 0 for the blank, either as 16 arguments or as
one comma separated argument. Without tiles the goal is scrambled with
--scramble random moves.`,
		Example: `  slidego solve 1,2,6,3,4,5,0,7,8,9,10,11,12,13,14,15
  slidego solve --scramble 30 --seed 7 --memory 4294967296`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := startBoard(cmd.Flags(), args)
			if err != nil {
				return err
			}

			s, cfg, err := c.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			began := time.Now()

			res, err := search(cmd.Context(), s, start, searchParams{
				maxStates: maxStates,
				slides:    cfg.Slides,
				goal:      true,
			})
			if err != nil {
				return err
			}
			elapsed := time.Since(began).Round(time.Millisecond)

			if res.Path == nil {
				printWarning(out, "no solution: %s after %s states", res.Reason, count(int64(s.Len())))
				return nil
			}

			printSuccess(out, "solved in %d moves (%s)", len(res.Path)-1, elapsed)
			printNumber(out, "states", int64(s.Len()))
			printNumber(out, "tables", int64(s.Tables()))
			printNumber(out, "peak bytes", s.PeakMemoryUsage())

			if !quiet {
				boards := make([]puzzle.Arrangement, len(res.Path))
				for i, o := range res.Path {
					boards[i], _ = puzzle.Decode(o)
				}
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderPath(boards, 5))
			}
			return nil
		},
	}

	addBoardFlags(cmd.Flags())
	addSessionFlags(cmd.Flags())
	cmd.Flags().IntVar(&maxStates, "max-states", 0, "give up after this many states (0 = no limit)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the summary")

	return cmd
}
