package hint

import (
	"strings"
	"testing"

	"svw.info/exactcover/internal/domain"
)

func parseLine(t *testing.T, s string) *domain.Board {
	t.Helper()
	b, err := domain.ParseLine(s)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	return b
}

func TestHintNakedSingle(t *testing.T) {
	dots := strings.Repeat(".", 72)
	cases := []struct {
		name string
		line string
		cell domain.CellCoord
	}{
		{"row missing one digit", "12345678." + dots, domain.CellCoord{Row: 0, Col: 8}},
		{
			"mid-board row missing one digit",
			strings.Repeat(".", 36) + "1234.6789" + strings.Repeat(".", 36),
			domain.CellCoord{Row: 4, Col: 4},
		},
		{
			"constrained by row column and box",
			"12.......345......678......" + strings.Repeat(".", 54),
			domain.CellCoord{Row: 0, Col: 2},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, ok, err := New().Hint(t.Context(), parseLine(t, tc.line), domain.StrategySingles)
			if err != nil {
				t.Fatalf("Hint: %v", err)
			}
			if !ok {
				t.Fatal("expected a hint")
			}
			if len(h.Cells) != 1 || h.Cells[0] != tc.cell {
				t.Errorf("hint cells = %v, want [%v]", h.Cells, tc.cell)
			}
			if h.Strategy != domain.StrategySingles {
				t.Errorf("strategy = %v, want %v", h.Strategy, domain.StrategySingles)
			}
		})
	}
}

func TestHintNoneOnEmptyBoard(t *testing.T) {
	_, ok, err := New().Hint(t.Context(), &domain.Board{}, domain.StrategySingles)
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if ok {
		t.Fatal("empty board has no single-candidate cell")
	}
}
