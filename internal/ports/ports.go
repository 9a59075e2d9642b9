package ports

import (
	"context"
	"time"

	"svw.info/cardoku/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Generator creates solved grids and carved puzzles.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
	Solved(ctx context.Context, seed int64) (domain.Grid, Stats, error)
}

// Rules answers legality questions over a grid. Implementations never
// mutate the grid; callers commit moves themselves. All methods expect
// in-range coordinates.
type Rules interface {
	Available(g *domain.Grid, row, col int) []domain.Card
	CanPlace(g *domain.Grid, row, col int, card domain.Card, d domain.Difficulty) bool
	CheckPlacement(g *domain.Grid, row, col int, card domain.Card, d domain.Difficulty) domain.Rejection
	FindConflicts(g *domain.Grid, d domain.Difficulty) []domain.Conflict
	IsValidSolution(g *domain.Grid) bool
}

// Hinter returns the next forced placement if one exists.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid, d domain.Difficulty) (domain.Hint, bool, error)
}
