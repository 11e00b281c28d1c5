package solver

import (
	"fmt"

	"svw.info/exactcover/internal/domain"
)

// checkDigits rejects cells outside 0-9 before anything encodes them:
// optionID is only defined for digits 1-9, and an out-of-range value
// would alias into a neighboring cell's options or index past the
// option tables.
func checkDigits(b *domain.Board) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v > 9 {
				return fmt.Errorf("digit %d at r%d c%d out of range: %w", v, r+1, c+1, domain.ErrInvalidBoard)
			}
		}
	}
	return nil
}

// givenOptions maps the board's filled cells to option ids, row-major.
func givenOptions(b *domain.Board) []uint16 {
	out := make([]uint16, 0, 32)
	for r := 0; r < nSize; r++ {
		for c := 0; c < nSize; c++ {
			if d := b.Values[r][c]; d != 0 {
				out = append(out, optionID(r, c, d))
			}
		}
	}
	return out
}

// boardFromSelection rebuilds a filled board from a complete selection.
// A valid exact cover assigns exactly one option per cell; anything else
// is an engine bug and reported as ErrInconsistentSolution.
func boardFromSelection(sel []uint16) (*domain.Board, error) {
	if len(sel) != nCells {
		return nil, fmt.Errorf("selection has %d options, want %d: %w", len(sel), nCells, domain.ErrInconsistentSolution)
	}
	var out domain.Board
	for _, o := range sel {
		r, c, d := decodeOption(o)
		if out.Values[r][c] != 0 {
			return nil, fmt.Errorf("cell r%d c%d assigned twice: %w", r+1, c+1, domain.ErrInconsistentSolution)
		}
		out.Values[r][c] = d
	}
	return &out, nil
}
