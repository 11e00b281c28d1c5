package solver

import (
	"context"
	"time"

	"svw.info/exactcover/internal/domain"
	"svw.info/exactcover/internal/ports"
)

// ExactCoverSolver implements Algorithm X over a Matrix: repeatedly pick
// the unsatisfied constraint with the fewest covering options, branch on
// each of them, and undo exactly on backtrack. The lowest-id tie-break
// makes the search order fully deterministic.
type ExactCoverSolver struct{}

func NewExactCoverSolver() *ExactCoverSolver { return &ExactCoverSolver{} }

type search struct {
	m      *Matrix
	picked []uint16 // options selected so far, givens first
	nodes  int
	want   int // stop after this many solutions
	found  int
	first  []uint16 // snapshot of the first complete selection
}

// run returns true when the search should stop (enough solutions, or
// the context was canceled). Cancellation is only observed between
// branch attempts, where the matrix state is consistent.
func (s *search) run(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	if s.m.ActiveConstraints() == 0 {
		if s.found == 0 {
			s.first = append([]uint16(nil), s.picked...)
		}
		s.found++
		return s.found >= s.want
	}
	con, ok := s.m.ChooseConstraint()
	if !ok || s.m.ConstraintSize(con) == 0 {
		return false // dead end, backtrack
	}
	for _, o := range s.m.ActiveOptions(con) {
		s.nodes++
		mark := s.m.Mark()
		s.m.Select(o)
		s.picked = append(s.picked, o)
		stop := s.run(ctx)
		s.picked = s.picked[:len(s.picked)-1]
		s.m.UndoTo(mark)
		if stop {
			return true
		}
	}
	return false
}

// seed applies the board's givens as forced choices, in row-major
// order. Out-of-range digits and contradictory givens surface as
// ErrInvalidBoard.
func seed(m *Matrix, b *domain.Board) ([]uint16, error) {
	if err := checkDigits(b); err != nil {
		return nil, err
	}
	picked := make([]uint16, 0, 81)
	for _, o := range givenOptions(b) {
		r, c, d := decodeOption(o)
		if err := m.Give(r, c, d); err != nil {
			return nil, err
		}
		picked = append(picked, o)
	}
	return picked, nil
}

func (s *ExactCoverSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	m := NewMatrix()
	picked, err := seed(m, b)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	sr := &search{m: m, picked: picked, want: 1}
	sr.run(ctx)
	st := ports.Stats{Nodes: sr.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	if sr.found == 0 {
		return nil, st, domain.ErrNoSolution
	}
	out, err := boardFromSelection(sr.first)
	if err != nil {
		return nil, st, err
	}
	out.Fixed = b.Fixed
	return out, st, nil
}

// Unique runs the same search capped at two solutions and reports
// whether exactly one exists.
func (s *ExactCoverSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	m := NewMatrix()
	picked, err := seed(m, b)
	if err != nil {
		return false, ports.Stats{Duration: time.Since(start)}, err
	}
	sr := &search{m: m, picked: picked, want: 2}
	sr.run(ctx)
	st := ports.Stats{Nodes: sr.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return sr.found == 1, st, nil
}
