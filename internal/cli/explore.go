package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// exploreCommand creates the explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	var maxStates int

	cmd := &cobra.Command{
		Use:   "explore [tiles...]",
		Short: "Explore the state graph breadth-first and report states per depth",
		Long: `Explore every board reachable from a start board, layer by layer, until the
graph is exhausted, --max-states is reached, or the memory limit refuses more
tables.`,
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
			})
			if err != nil {
				return err
			}

			printTitle(out, "%s (%s)", res.Reason, time.Since(began).Round(time.Millisecond))
			for depth, n := range res.Layers {
				printNumber(out, fmt.Sprintf("depth %d", depth), int64(n))
			}

			fmt.Fprintln(out)
			printTitle(out, "tables")
			for _, t := range s.Stats() {
				printKeyValue(out, fmt.Sprintf("table %d", t.Index), fmt.Sprintf(
					"%s entries, %s overflow, %d busy, load too high: %t",
					count(int64(t.Entries)), count(int64(t.OverflowEntries)), t.BusyBuckets, t.LoadTooHigh))
			}
			printNumber(out, "states", int64(s.Len()))
			printNumber(out, "peak bytes", s.PeakMemoryUsage())
			return nil
		},
	}

	addBoardFlags(cmd.Flags())
	addSessionFlags(cmd.Flags())
	cmd.Flags().IntVar(&maxStates, "max-states", 1_000_000, "stop after this many states (0 = no limit)")

	return cmd
}
