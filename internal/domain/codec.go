package domain

import "strings"

// ParseLine decodes an 81-character row-major puzzle line. '1'-'9' are
// givens; '.' and '0' are empty cells. Surrounding whitespace is
// tolerated, anything else is a *ParseError.
func ParseLine(s string) (*Board, error) {
	s = strings.TrimSpace(s)
	if len(s) != 81 {
		return nil, &ParseError{Pos: -1, Reason: "line must be exactly 81 characters"}
	}
	var b Board
	for i := 0; i < 81; i++ {
		ch := s[i]
		r, c := i/9, i%9
		switch {
		case ch == '.' || ch == '0':
			// empty
		case ch >= '1' && ch <= '9':
			b.Values[r][c] = uint8(ch - '0')
			b.Fixed[r][c] = true
		default:
			return nil, &ParseError{Pos: i, Reason: "invalid character " + string(ch)}
		}
	}
	return &b, nil
}

// Line encodes the board as an 81-character row-major string with '.'
// for empty cells, the inverse of ParseLine.
func (b *Board) Line() string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b.Values[r][c]
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
	}
	return sb.String()
}

// Grid renders the board as nine 9-character lines.
func (b *Board) Grid() string {
	var sb strings.Builder
	sb.Grow(90)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b.Values[r][c]
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
