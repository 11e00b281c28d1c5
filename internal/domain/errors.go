package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSolution means the search space was exhausted without a
	// complete cover. An expected outcome, not a failure of the engine.
	ErrNoSolution = errors.New("no solution")

	// ErrInvalidBoard means the givens contradict each other before any
	// search starts (e.g. a digit repeated in a row).
	ErrInvalidBoard = errors.New("invalid board: contradictory givens")

	// ErrInconsistentSolution means the engine produced a selection that
	// does not assign exactly one digit per cell. Indicates an engine
	// bug, never bad input.
	ErrInconsistentSolution = errors.New("inconsistent solution")
)

// ParseError reports a malformed puzzle line.
type ParseError struct {
	Pos    int // character offset, -1 for length errors
	Reason string
}

func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return "parse: " + e.Reason
	}
	return fmt.Sprintf("parse: %s at offset %d", e.Reason, e.Pos)
}
