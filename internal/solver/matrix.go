package solver

import (
	"fmt"

	"svw.info/exactcover/internal/domain"
)

// Sudoku as exact cover: 324 constraints (columns), 729 options (rows).
// Constraint ids: 0..80    -> cell (r,c) holds some digit
//                 81..161  -> row r contains digit d
//                 162..242 -> column c contains digit d
//                 243..323 -> box b contains digit d, b = (r/3)*3 + c/3
// Option ids encode (r,c,d) as (r*9+c)*9 + (d-1), 0..728.
const (
	nSize        = 9
	nCells       = nSize * nSize  // 81
	nConstraints = 4 * nCells     // 324
	nOptions     = nCells * nSize // 729

	conCell     = 0
	conRowDigit = 81
	conColDigit = 162
	conBoxDigit = 243
)

func optionID(r, c int, d uint8) uint16 {
	return uint16((r*nSize+c)*nSize + int(d) - 1)
}

func decodeOption(o uint16) (r, c int, d uint8) {
	cell := int(o) / nSize
	d = uint8(int(o)%nSize) + 1
	return cell / nSize, cell % nSize, d
}

// optionConstraints lists the 4 constraints covered by option (r,c,d).
func optionConstraints(r, c int, d uint8) [4]uint16 {
	box := (r/3)*3 + c/3
	return [4]uint16{
		uint16(conCell + r*nSize + c),
		uint16(conRowDigit + r*nSize + int(d) - 1),
		uint16(conColDigit + c*nSize + int(d) - 1),
		uint16(conBoxDigit + box*nSize + int(d) - 1),
	}
}

// log entry kinds
const (
	logOptionRemoved uint8 = iota
	logConstraintSatisfied
)

type logEntry struct {
	kind uint8
	id   uint16
}

// Matrix is the sparse option/constraint incidence plus the active
// search state. Removals are recorded in an append-only log so that
// UndoTo restores the exact prior state, entry by entry in reverse.
type Matrix struct {
	optCons [nOptions][4]uint16     // option -> its 4 constraints (static)
	conOpts [nConstraints][9]uint16 // constraint -> its 9 covering options (static)

	optActive  [nOptions]bool
	conActive  [nConstraints]bool
	conSize    [nConstraints]int // active covering options, maintained while the constraint is active
	activeCons int

	log []logEntry
}

// NewMatrix builds the empty-board matrix: all 729 options available,
// all 324 constraints unsatisfied, each covered by 9 options.
func NewMatrix() *Matrix {
	m := &Matrix{activeCons: nConstraints}
	var fill [nConstraints]int
	for r := 0; r < nSize; r++ {
		for c := 0; c < nSize; c++ {
			for d := uint8(1); d <= nSize; d++ {
				o := optionID(r, c, d)
				cons := optionConstraints(r, c, d)
				m.optCons[o] = cons
				m.optActive[o] = true
				for _, con := range cons {
					m.conOpts[con][fill[con]] = o
					fill[con]++
				}
			}
		}
	}
	for con := 0; con < nConstraints; con++ {
		m.conActive[con] = true
		m.conSize[con] = nSize
	}
	return m
}

// Mark returns an undo token for the current state.
func (m *Matrix) Mark() int { return len(m.log) }

// Select commits option o: its 4 constraints become satisfied and every
// other option touching any of them is removed. The caller must only
// pass an active option.
func (m *Matrix) Select(o uint16) {
	for _, con := range m.optCons[o] {
		m.satisfy(con)
	}
}

func (m *Matrix) satisfy(con uint16) {
	m.conActive[con] = false
	m.activeCons--
	m.log = append(m.log, logEntry{logConstraintSatisfied, con})
	for _, o := range m.conOpts[con] {
		if m.optActive[o] {
			m.removeOption(o)
		}
	}
}

func (m *Matrix) removeOption(o uint16) {
	m.optActive[o] = false
	m.log = append(m.log, logEntry{logOptionRemoved, o})
	for _, con := range m.optCons[o] {
		if m.conActive[con] {
			m.conSize[con]--
		}
	}
}

// UndoTo rolls the matrix back to a state previously captured by Mark.
// Entries are replayed in reverse, mirroring Select exactly.
func (m *Matrix) UndoTo(mark int) {
	for len(m.log) > mark {
		e := m.log[len(m.log)-1]
		m.log = m.log[:len(m.log)-1]
		switch e.kind {
		case logOptionRemoved:
			m.optActive[e.id] = true
			for _, con := range m.optCons[e.id] {
				if m.conActive[con] {
					m.conSize[con]++
				}
			}
		case logConstraintSatisfied:
			m.conActive[e.id] = true
			m.activeCons++
		}
	}
}

// Give applies a pre-filled cell as a forced choice. It fails with
// ErrInvalidBoard when the implied option was already eliminated by an
// earlier given (duplicate digit in a unit).
func (m *Matrix) Give(r, c int, d uint8) error {
	o := optionID(r, c, d)
	if !m.optActive[o] {
		return fmt.Errorf("give %d at r%d c%d: %w", d, r+1, c+1, domain.ErrInvalidBoard)
	}
	m.Select(o)
	return nil
}

// ChooseConstraint picks the unsatisfied constraint with the fewest
// remaining covering options; ties resolve to the lowest id because the
// scan uses a strict less-than. Returns false when every constraint is
// satisfied.
func (m *Matrix) ChooseConstraint() (uint16, bool) {
	best := -1
	for con := 0; con < nConstraints; con++ {
		if !m.conActive[con] {
			continue
		}
		if best < 0 || m.conSize[con] < m.conSize[best] {
			best = con
			if m.conSize[con] == 0 {
				break
			}
		}
	}
	if best < 0 {
		return 0, false
	}
	return uint16(best), true
}

// ActiveOptions returns the active options covering con, in ascending
// option-id order. The slice is a snapshot and stays valid across
// Select/UndoTo.
func (m *Matrix) ActiveOptions(con uint16) []uint16 {
	out := make([]uint16, 0, m.conSize[con])
	for _, o := range m.conOpts[con] {
		if m.optActive[o] {
			out = append(out, o)
		}
	}
	return out
}

// ActiveConstraints counts unsatisfied constraints.
func (m *Matrix) ActiveConstraints() int { return m.activeCons }

// ActiveOptionCount counts available options.
func (m *Matrix) ActiveOptionCount() int {
	n := 0
	for o := 0; o < nOptions; o++ {
		if m.optActive[o] {
			n++
		}
	}
	return n
}

// ConstraintSize reports remaining covering options for con.
func (m *Matrix) ConstraintSize(con uint16) int { return m.conSize[con] }
