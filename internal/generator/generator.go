package generator

import (
	"errors"

	"svw.info/cardoku/internal/ports"
)

// CardGenerator creates card-Sudoku puzzles using the provided rules
// engine for candidate filtering.
type CardGenerator struct {
	Rules ports.Rules
}

// New wires a generator that uses the given rules engine.
func New(r ports.Rules) *CardGenerator {
	return &CardGenerator{Rules: r}
}

// ErrGenerateFailed reports that the backtracking fill exhausted its
// retry budget. With a distinct-rank seed row this should not happen;
// callers may simply retry with a fresh seed.
var ErrGenerateFailed = errors.New("generator: could not fill a solved grid")
