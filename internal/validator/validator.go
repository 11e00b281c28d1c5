package validator

import (
	"context"

	"svw.info/exactcover/internal/domain"
)

// FastValidator scans each row, column, and box once with a digit
// bitmask and reports the cells that repeat a digit in their unit.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// unit enumerates the 9 cells of one row, column, or box.
type unit func(i int) (r, c int)

func scanUnit(b *domain.Board, u unit, conf *[]domain.CellCoord) {
	seen := 0
	for i := 0; i < 9; i++ {
		r, c := u(i)
		v := b.Values[r][c]
		if v == 0 {
			continue
		}
		bit := 1 << v
		if seen&bit != 0 {
			*conf = append(*conf, domain.CellCoord{Row: r, Col: c})
		}
		seen |= bit
	}
}

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for r := 0; r < 9; r++ {
		r := r
		scanUnit(b, func(i int) (int, int) { return r, i }, &conf)
	}
	for c := 0; c < 9; c++ {
		c := c
		scanUnit(b, func(i int) (int, int) { return i, c }, &conf)
	}
	for box := 0; box < 9; box++ {
		br, bc := (box/3)*3, (box%3)*3
		scanUnit(b, func(i int) (int, int) { return br + i/3, bc + i%3 }, &conf)
	}
	return len(conf) == 0, conf, nil
}
