package solver

import (
	"context"
	"time"

	"svw.info/exactcover/internal/domain"
	"svw.info/exactcover/internal/ports"
)

// BacktrackingSolver is a plain cell-wise recursive solver, kept as an
// alternative engine and as a cross-check for the exact-cover one.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func findEmpty(b *domain.Board) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// givensConsistent checks the filled cells before any search runs, so
// inputs with out-of-range digits or clashing givens never produce a
// "solved" board that still violates a unit.
func givensConsistent(b *domain.Board) bool {
	grid := *b
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := grid.Values[r][c]
			if v == 0 {
				continue
			}
			if v > 9 {
				return false
			}
			grid.Values[r][c] = 0
			ok := grid.Allowed(r, c, v)
			grid.Values[r][c] = v
			if !ok {
				return false
			}
		}
	}
	return true
}

// countSolutions fills grid in place, counting complete solutions up to
// limit. The first solution found is copied into first.
func countSolutions(ctx context.Context, grid *domain.Board, limit int, first *domain.Board, nodes *int) int {
	count := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return true
		}
		r, c, ok := findEmpty(grid)
		if !ok {
			if count == 0 {
				*first = *grid
			}
			count++
			return count >= limit
		}
		for v := uint8(1); v <= 9; v++ {
			*nodes++
			if grid.Allowed(r, c, v) {
				grid.Values[r][c] = v
				if dfs() {
					return true
				}
				grid.Values[r][c] = 0
			}
		}
		return false
	}
	dfs()
	return count
}

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if !givensConsistent(b) {
		return nil, ports.Stats{Duration: time.Since(start)}, domain.ErrInvalidBoard
	}
	grid := *b
	var first domain.Board
	nodes := 0
	count := countSolutions(ctx, &grid, 1, &first, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	if count == 0 {
		return nil, st, domain.ErrNoSolution
	}
	first.Fixed = b.Fixed
	return &first, st, nil
}

func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	if !givensConsistent(b) {
		return false, ports.Stats{Duration: time.Since(start)}, domain.ErrInvalidBoard
	}
	grid := *b
	var first domain.Board
	nodes := 0
	count := countSolutions(ctx, &grid, 2, &first, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return count == 1, st, nil
}
