package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hupe1980/slidego/puzzle"
)

// encodeCommand creates the encode command.
func (c *CLI) encodeCommand() *cobra.Command {
	var decorate bool

	cmd := &cobra.Command{
		Use:   "encode tiles...",
		Short: "Print the ordinal of a board",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseBoard(args)
			if err != nil {
				return err
			}

			o, err := puzzle.EncodeStrict(a)
			if err != nil {
				return err
			}
			if decorate {
				o = puzzle.Decorate(o)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "0x%016x\n", uint64(o))
			return nil
		},
	}

	cmd.Flags().BoolVar(&decorate, "score", false, "cache the board's score in the high bits")

	return cmd
}

// decodeCommand creates the decode command.
func (c *CLI) decodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode ordinal",
		Short: "Print the board of an ordinal (decimal or 0x hex)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return fmt.Errorf("parse ordinal: %w", err)
			}

			a, err := puzzle.DecodeStrict(puzzle.Ordinal(v))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderBoard(a))
			printNumber(out, "score", int64(puzzle.Score(a)))
			if s := puzzle.DecoratedScore(puzzle.Ordinal(v)); s != 0 {
				printNumber(out, "cached score", int64(s))
			}
			return nil
		},
	}

	return cmd
}
