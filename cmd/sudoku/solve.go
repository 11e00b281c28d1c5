package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svw.info/exactcover/internal/domain"
)

var (
	solveShowStats bool

	solveCmd = &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve puzzles from a file, one 81-character line each",
		Long: `Reads one puzzle per line: digits 1-9 for givens, '.' or '0' for empty
cells, 81 characters total. Prints each solution as a 9-line grid.
Malformed or unsolvable lines are reported and skipped; the rest of the
batch continues. Pass "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}
)

func init() {
	solveCmd.Flags().BoolVar(&solveShowStats, "stats", false, "log node counts and durations per puzzle")
}

func runSolve(cmd *cobra.Command, args []string) error {
	in := os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	s := newSolver(solverKind)
	ctx := cmd.Context()
	sc := bufio.NewScanner(in)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}
		b, err := domain.ParseLine(line)
		if err != nil {
			logger.Warn("skipping puzzle", "line", lineNo, "err", err)
			continue
		}
		out, st, err := s.Solve(ctx, b)
		switch {
		case err == nil:
			if solveShowStats {
				logger.Info("solved", "line", lineNo, "nodes", st.Nodes, "dur", st.Duration)
			}
			fmt.Println(out.Grid())
		case errors.Is(err, domain.ErrNoSolution) || errors.Is(err, domain.ErrInvalidBoard):
			logger.Warn("unsolvable puzzle", "line", lineNo, "err", err)
			fmt.Printf("no solution (line %d)\n\n", lineNo)
		case errors.Is(err, domain.ErrInconsistentSolution):
			// engine bug, abort the batch
			return err
		default:
			return err
		}
	}
	return sc.Err()
}
