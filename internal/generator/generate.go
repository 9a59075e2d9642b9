package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/cardoku/internal/domain"
	"svw.info/cardoku/internal/ports"
)

// fillRetries bounds restart attempts of the backtracking fill.
const fillRetries = 8

// Generate builds a puzzle: a full solved grid, every cell marked given,
// then a difficulty-dependent number of cells cleared at random. The
// solved grid is retained on the returned Puzzle as the answer key.
func (g *CardGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	solved, nodes, err := g.solvedGrid(ctx, rng)
	if err != nil {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			solved[r][c].Given = true
		}
	}

	// Carve: clear a uniform count of distinct positions.
	lo, hi := diff.ClearRange()
	clears := lo + rng.Intn(hi-lo+1)
	positions := make([]int, 81)
	for i := 0; i < 81; i++ {
		positions[i] = i
	}
	rng.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	puz := solved
	for _, pos := range positions[:clears] {
		puz[pos/9][pos%9] = domain.Cell{}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Grid:       puz,
		Solution:   solved,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// Solved produces a complete valid grid without carving, for callers
// that want a fully revealed board.
func (g *CardGenerator) Solved(ctx context.Context, seed int64) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	grid, nodes, err := g.solvedGrid(ctx, rng)
	return grid, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
}

// solvedGrid produces a complete valid grid. The first row is seeded
// with nine distinct-rank cards in shuffled order, which makes the
// rank-only constraint graph satisfiable; the retry loop keeps a broken
// search from spinning forever all the same.
func (g *CardGenerator) solvedGrid(ctx context.Context, rng *rand.Rand) (domain.Grid, int, error) {
	nodes := 0
	for attempt := 0; attempt < fillRetries; attempt++ {
		var grid domain.Grid
		seedRow(rng, &grid)
		if g.fill(ctx, rng, &grid, &nodes) {
			return grid, nodes, nil
		}
		if ctx.Err() != nil {
			return domain.Grid{}, nodes, ctx.Err()
		}
	}
	return domain.Grid{}, nodes, ErrGenerateFailed
}

// seedRow places one card per rank Ace..Nine into row 0, each with a
// random suit, in shuffled column order.
func seedRow(rng *rand.Rand, grid *domain.Grid) {
	cards := make([]domain.Card, 9)
	for i := range cards {
		cards[i] = domain.Card{
			Suit: domain.AllSuits[rng.Intn(len(domain.AllSuits))],
			Rank: domain.Rank(i + 1),
		}
	}
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	for c := 0; c < 9; c++ {
		grid[0][c].Card = cards[c]
	}
}

// fill assigns the first empty cell in row-major order, trying the legal
// candidates in random order and undoing on dead ends.
func (g *CardGenerator) fill(ctx context.Context, rng *rand.Rand, grid *domain.Grid, nodes *int) bool {
	if ctx.Err() != nil {
		return false
	}
	r, c, ok := findEmpty(grid)
	if !ok {
		return true
	}
	cands := g.Rules.Available(grid, r, c)
	rng.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })
	// Suits never constrain the fill, so candidates sharing a rank are
	// interchangeable here; trying one card per rank keeps dead ends cheap.
	var tried [int(domain.MaxSudokuRank) + 1]bool
	for _, card := range cands {
		if tried[card.Rank] {
			continue
		}
		tried[card.Rank] = true
		*nodes++
		grid[r][c].Card = card
		if g.fill(ctx, rng, grid, nodes) {
			return true
		}
		grid[r][c].Card = domain.Card{}
	}
	return false
}

func findEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c].Empty() {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
