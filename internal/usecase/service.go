package usecase

import (
	"context"
	"errors"
	"fmt"

	"svw.info/cardoku/internal/domain"
	"svw.info/cardoku/internal/ports"
)

// Service is the engine façade the caller (UI or tests) talks to. It
// validates inputs and delegates; it never mutates the caller's grid.
type Service struct {
	Generator ports.Generator
	Rules     ports.Rules
	Hinter    ports.Hinter
}

func NewService(g ports.Generator, r ports.Rules, h ports.Hinter) *Service {
	return &Service{Generator: g, Rules: r, Hinter: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// ErrOutOfRange reports coordinates outside the 9×9 grid.
var ErrOutOfRange = errors.New("coordinates out of range")

func checkCoords(row, col int) error {
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return fmt.Errorf("%w: row=%d col=%d", ErrOutOfRange, row, col)
	}
	return nil
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

// GenerateSolved returns a fully revealed solved grid.
func (u *Service) GenerateSolved(ctx context.Context, seed int64) (domain.Grid, ports.Stats, error) {
	if u.Generator == nil {
		return domain.Grid{}, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Solved(ctx, seed)
}

// Available lists the cards still legal at a position by rank.
func (u *Service) Available(g *domain.Grid, row, col int) ([]domain.Card, error) {
	if u.Rules == nil {
		return nil, errNotConfigured
	}
	if err := checkCoords(row, col); err != nil {
		return nil, err
	}
	return u.Rules.Available(g, row, col), nil
}

// Place validates putting card at (row, col). The caller commits the
// mutation only on RejectionNone.
func (u *Service) Place(g *domain.Grid, row, col int, card domain.Card, d domain.Difficulty) (domain.Rejection, error) {
	if u.Rules == nil {
		return domain.RejectionNone, errNotConfigured
	}
	if err := checkCoords(row, col); err != nil {
		return domain.RejectionNone, err
	}
	return u.Rules.CheckPlacement(g, row, col, card, d), nil
}

// Remove validates clearing a cell; givens stay locked. The check reads
// only the given flag, so no port dependency is involved.
func (u *Service) Remove(g *domain.Grid, row, col int) (domain.Rejection, error) {
	if err := checkCoords(row, col); err != nil {
		return domain.RejectionNone, err
	}
	if g[row][col].Given {
		return domain.RejectCellLocked, nil
	}
	return domain.RejectionNone, nil
}

// Conflicts recomputes every violated scope on the current grid.
func (u *Service) Conflicts(g *domain.Grid, d domain.Difficulty) ([]domain.Conflict, error) {
	if u.Rules == nil {
		return nil, errNotConfigured
	}
	return u.Rules.FindConflicts(g, d), nil
}

// CheckSolution reports whether the grid is a finished, rank-valid
// solution.
func (u *Service) CheckSolution(g *domain.Grid) (bool, error) {
	if u.Rules == nil {
		return false, errNotConfigured
	}
	return u.Rules.IsValidSolution(g), nil
}

func (u *Service) Hint(ctx context.Context, g *domain.Grid, d domain.Difficulty) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g, d)
}
