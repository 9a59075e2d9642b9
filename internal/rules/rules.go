// Package rules implements the legality checks of card Sudoku: rank
// uniqueness per row, column, and box, plus suit uniqueness in expert
// games. All functions treat the grid as read-only.
package rules

import "svw.info/cardoku/internal/domain"

// Checker is the rules engine. It holds no state.
type Checker struct{}

func New() *Checker { return &Checker{} }

// clashes reports whether two cards may not share a row, column, or box.
func clashes(a, b domain.Card, d domain.Difficulty) bool {
	if domain.SameRank(a, b) {
		return true
	}
	return d.SuitsMatter() && a.Suit == b.Suit
}

func rowClash(g *domain.Grid, row, col int, card domain.Card, d domain.Difficulty) bool {
	for i := 0; i < 9; i++ {
		if i == col || g[row][i].Empty() {
			continue
		}
		if clashes(card, g[row][i].Card, d) {
			return true
		}
	}
	return false
}

func colClash(g *domain.Grid, row, col int, card domain.Card, d domain.Difficulty) bool {
	for i := 0; i < 9; i++ {
		if i == row || g[i][col].Empty() {
			continue
		}
		if clashes(card, g[i][col].Card, d) {
			return true
		}
	}
	return false
}

func boxClash(g *domain.Grid, row, col int, card domain.Card, d domain.Difficulty) bool {
	br, bc := (row/3)*3, (col/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			r, c := br+dr, bc+dc
			if (r == row && c == col) || g[r][c].Empty() {
				continue
			}
			if clashes(card, g[r][c].Card, d) {
				return true
			}
		}
	}
	return false
}

// Available returns every catalog card whose rank does not already
// appear among the filled cells sharing the row, column, or box with
// (row, col). The filter is rank-only at every difficulty.
func (*Checker) Available(g *domain.Grid, row, col int) []domain.Card {
	var seen [int(domain.MaxSudokuRank) + 1]bool
	for i := 0; i < 9; i++ {
		if i != col && !g[row][i].Empty() {
			seen[g[row][i].Card.Rank] = true
		}
		if i != row && !g[i][col].Empty() {
			seen[g[i][col].Card.Rank] = true
		}
	}
	br, bc := (row/3)*3, (col/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			r, c := br+dr, bc+dc
			if (r == row && c == col) || g[r][c].Empty() {
				continue
			}
			seen[g[r][c].Card.Rank] = true
		}
	}
	out := make([]domain.Card, 0, 36)
	for _, card := range domain.SudokuCards() {
		if !seen[card.Rank] {
			out = append(out, card)
		}
	}
	return out
}

// HasConflictAt reports whether placing card at (row, col) would clash
// with any peer in the same row, column, or box. The position itself is
// excluded from the scan.
func (*Checker) HasConflictAt(g *domain.Grid, row, col int, card domain.Card, d domain.Difficulty) bool {
	return rowClash(g, row, col, card, d) ||
		colClash(g, row, col, card, d) ||
		boxClash(g, row, col, card, d)
}

// CanPlace reports whether the player may put card at (row, col): the
// cell must not be a given and the placement must introduce no conflict.
func (c *Checker) CanPlace(g *domain.Grid, row, col int, card domain.Card, d domain.Difficulty) bool {
	if g[row][col].Given {
		return false
	}
	return !c.HasConflictAt(g, row, col, card, d)
}

// CheckPlacement explains a refused placement, probing the locked flag
// first and then row, column, box, in that order so user-facing messages
// stay stable. RejectionNone means the move is legal.
func (*Checker) CheckPlacement(g *domain.Grid, row, col int, card domain.Card, d domain.Difficulty) domain.Rejection {
	switch {
	case g[row][col].Given:
		return domain.RejectCellLocked
	case rowClash(g, row, col, card, d):
		return domain.RejectRowConflict
	case colClash(g, row, col, card, d):
		return domain.RejectColumnConflict
	case boxClash(g, row, col, card, d):
		return domain.RejectBoxConflict
	}
	return domain.RejectionNone
}

// FindConflicts records every violated scope for every filled cell. A
// cell clashing in its row, column, and box yields three records; the
// order of the result is unspecified.
func (*Checker) FindConflicts(g *domain.Grid, d domain.Difficulty) []domain.Conflict {
	conf := make([]domain.Conflict, 0, 8)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c].Empty() {
				continue
			}
			card := g[r][c].Card
			pos := domain.CellCoord{Row: r, Col: c}
			if rowClash(g, r, c, card, d) {
				conf = append(conf, domain.Conflict{Pos: pos, Type: domain.RowConflict})
			}
			if colClash(g, r, c, card, d) {
				conf = append(conf, domain.Conflict{Pos: pos, Type: domain.ColumnConflict})
			}
			if boxClash(g, r, c, card, d) {
				conf = append(conf, domain.Conflict{Pos: pos, Type: domain.BoxConflict})
			}
		}
	}
	return conf
}

// IsValidSolution reports whether the grid is complete with pairwise
// distinct ranks in every row, column, and box. The check is rank-only
// regardless of difficulty: expert suit discipline is enforced move by
// move, not as a win gate.
func (*Checker) IsValidSolution(g *domain.Grid) bool {
	var rowMask, colMask, boxMask [9]uint
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c].Empty() {
				return false
			}
			bit := uint(1) << g[r][c].Card.Rank
			box := (r/3)*3 + c/3
			if rowMask[r]&bit != 0 || colMask[c]&bit != 0 || boxMask[box]&bit != 0 {
				return false
			}
			rowMask[r] |= bit
			colMask[c] |= bit
			boxMask[box] |= bit
		}
	}
	return true
}
