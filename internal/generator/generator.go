package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/exactcover/internal/domain"
	"svw.info/exactcover/internal/ports"
)

// UniqueGenerator produces puzzles with exactly one solution: fill a
// full grid from the seed, then carve clues out as long as the provided
// solver still proves uniqueness.
type UniqueGenerator struct {
	Solver ports.Solver
}

func New(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

// carveBudget bounds how long a single Generate call may spend carving.
const carveBudget = 900 * time.Millisecond

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var full domain.Board
	if !fillRandom(ctx, rng, &full) {
		// only reachable through cancellation
		err := ctx.Err()
		if err == nil {
			err = context.Canceled
		}
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	puz := full
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			puz.Fixed[r][c] = true
		}
	}

	order := rng.Perm(81)
	target := targetGivens(diff)
	deadline := start.Add(carveBudget)
	nodes := 0

	for _, pos := range order {
		if time.Now().After(deadline) || puz.Givens() <= target {
			break
		}
		r, c := pos/9, pos%9
		old := puz.Values[r][c]
		puz.Values[r][c] = 0
		puz.Fixed[r][c] = false
		unique, st, err := g.Solver.Unique(ctx, &domain.Board{Values: puz.Values})
		nodes += st.Nodes
		if err != nil || !unique {
			puz.Values[r][c] = old
			puz.Fixed[r][c] = true
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      puz,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom completes an empty grid into a full valid solution, trying
// digits in a per-cell shuffled order.
func fillRandom(ctx context.Context, rng *rand.Rand, b *domain.Board) bool {
	var nums [9]uint8
	for i := range nums {
		nums[i] = uint8(i + 1)
	}
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			if b.Allowed(r, c, v) {
				b.Values[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				b.Values[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}
