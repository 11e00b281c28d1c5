package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/exactcover/internal/domain"
)

func TestEmptyMatrixShape(t *testing.T) {
	m := NewMatrix()

	assert.Equal(t, nConstraints, m.ActiveConstraints(), "constraints")
	assert.Equal(t, nOptions, m.ActiveOptionCount(), "options")

	for con := uint16(0); con < nConstraints; con++ {
		require.Equal(t, 9, m.ConstraintSize(con), "constraint %d coverage", con)
	}
	for o := uint16(0); o < nOptions; o++ {
		r, c, d := decodeOption(o)
		cons := optionConstraints(r, c, d)
		seen := map[uint16]bool{}
		for _, con := range cons {
			require.Less(t, int(con), nConstraints)
			seen[con] = true
		}
		require.Len(t, seen, 4, "option %d must cover 4 distinct constraints", o)
	}
}

func TestOptionEncodingRoundTrip(t *testing.T) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for d := uint8(1); d <= 9; d++ {
				rr, cc, dd := decodeOption(optionID(r, c, d))
				require.Equal(t, [3]int{r, c, int(d)}, [3]int{rr, cc, int(dd)})
			}
		}
	}
}

func TestGiveEliminatesPeers(t *testing.T) {
	m := NewMatrix()
	require.NoError(t, m.Give(0, 0, 5))

	// 4 constraints satisfied, and the option plus all its peers gone:
	// 8 other digits in the cell, 8 more cells in row/col/box for digit 5.
	assert.Equal(t, nConstraints-4, m.ActiveConstraints())
	assert.False(t, m.optActive[optionID(0, 0, 5)])
	assert.False(t, m.optActive[optionID(0, 0, 1)], "other digit in same cell")
	assert.False(t, m.optActive[optionID(0, 8, 5)], "digit 5 elsewhere in row")
	assert.False(t, m.optActive[optionID(8, 0, 5)], "digit 5 elsewhere in column")
	assert.False(t, m.optActive[optionID(2, 2, 5)], "digit 5 elsewhere in box")
	assert.True(t, m.optActive[optionID(0, 1, 4)], "unrelated option stays")
}

func TestGiveContradiction(t *testing.T) {
	m := NewMatrix()
	require.NoError(t, m.Give(0, 0, 5))
	err := m.Give(0, 7, 5) // same digit, same row
	require.ErrorIs(t, err, domain.ErrInvalidBoard)
}

type matrixState struct {
	optActive  [nOptions]bool
	conActive  [nConstraints]bool
	conSize    [nConstraints]int
	activeCons int
	logLen     int
}

func capture(m *Matrix) matrixState {
	return matrixState{
		optActive:  m.optActive,
		conActive:  m.conActive,
		conSize:    m.conSize,
		activeCons: m.activeCons,
		logLen:     len(m.log),
	}
}

func TestUndoRestoresExactState(t *testing.T) {
	m := NewMatrix()
	require.NoError(t, m.Give(0, 0, 5))
	require.NoError(t, m.Give(4, 4, 7))

	before := capture(m)

	mark := m.Mark()
	m.Select(optionID(1, 1, 3))
	m.Select(optionID(2, 7, 9))
	require.NotEqual(t, before, capture(m))
	m.UndoTo(mark)

	require.Equal(t, before, capture(m), "undo must restore state bit for bit")
}

func TestUndoAfterFailedSearchBranch(t *testing.T) {
	// Board whose cell (0,0) has no candidate: row 0 holds 1-8, column 0
	// holds 9. Givens are mutually consistent, so seeding succeeds and
	// the search itself must fail and unwind cleanly.
	b, err := domain.ParseLine(".12345678" + lineOfDots(63) + "9........")
	require.NoError(t, err)

	m := NewMatrix()
	picked, err := seed(m, b)
	require.NoError(t, err)
	before := capture(m)

	sr := &search{m: m, picked: picked, want: 1}
	sr.run(t.Context())
	require.Zero(t, sr.found)

	require.Equal(t, before, capture(m), "exhausted search must leave the seeded state untouched")
}

func TestChooseConstraintTieBreak(t *testing.T) {
	m := NewMatrix()

	// Fresh matrix: every constraint has size 9, so the lowest id wins.
	con, ok := m.ChooseConstraint()
	require.True(t, ok)
	assert.Equal(t, uint16(0), con)

	// After a given, several constraints tie at the new minimum; the
	// chosen one must still be the lowest id among them.
	require.NoError(t, m.Give(4, 4, 7))
	con, ok = m.ChooseConstraint()
	require.True(t, ok)
	min := m.ConstraintSize(con)
	for c := uint16(0); c < con; c++ {
		if m.conActive[c] {
			require.Greater(t, m.ConstraintSize(c), min,
				"constraint %d precedes the chosen %d with size <= %d", c, con, min)
		}
	}
}

func lineOfDots(n int) string {
	s := make([]byte, n)
	for i := range s {
		s[i] = '.'
	}
	return string(s)
}
