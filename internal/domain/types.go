package domain

// Cell holds an optional card plus per-cell flags. A cell with Given set
// always carries a card and is never player-editable.
type Cell struct {
	Card     Card `json:"card"`
	Given    bool `json:"given,omitempty"`
	Selected bool `json:"selected,omitempty"`
	Conflict bool `json:"conflict,omitempty"`
}

// Empty reports whether no card is placed in the cell.
func (c Cell) Empty() bool { return c.Card.IsZero() }

// Grid is the 9×9 playing field, partitioned into nine 3×3 boxes at
// offsets that are multiples of 3. Copying a Grid copies every cell.
type Grid [9][9]Cell

// Complete reports whether every cell holds a card.
func (g *Grid) Complete() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c].Empty() {
				return false
			}
		}
	}
	return true
}

// GivenCount counts the cells fixed at generation time.
func (g *Grid) GivenCount() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c].Given {
				n++
			}
		}
	}
	return n
}

// FilledCount counts the cells currently holding a card.
func (g *Grid) FilledCount() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !g[r][c].Empty() {
				n++
			}
		}
	}
	return n
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Conflict flags one violated scope at one position. Conflicts are
// derived on demand, never stored between checks.
type Conflict struct {
	Pos  CellCoord    `json:"pos"`
	Type ConflictType `json:"type"`
}

// Hint describes a forced placement for the UI.
type Hint struct {
	Message string    `json:"message,omitempty"`
	Pos     CellCoord `json:"pos"`
	Card    Card      `json:"card"`
}

// Puzzle is a generated game: the carved grid the player works on plus
// the fully revealed solution it came from.
type Puzzle struct {
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Grid       Grid       `json:"grid"`
	Solution   Grid       `json:"solution"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}
