package domain

import "strings"

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a label to a Difficulty, defaulting to Medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Medium
	}
}

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles StrategyTier = iota // singles / sole candidates
	StrategyPairs                       // naked/hidden pairs
	StrategyAdvanced                    // pointing/claiming, triples, etc.
	StrategyXWing                       // advanced fish (cap placeholder)
)

// ParseStrategyTier maps a label to a tier, defaulting to singles.
func ParseStrategyTier(s string) StrategyTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pairs":
		return StrategyPairs
	case "advanced":
		return StrategyAdvanced
	case "xwing":
		return StrategyXWing
	default:
		return StrategySingles
	}
}
