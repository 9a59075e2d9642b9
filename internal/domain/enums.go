package domain

// Difficulty labels target puzzle generation & play rules.
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
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "expert"
	}
}

// ClearRange returns the inclusive range of cells removed when carving a
// puzzle out of a solved grid.
func (d Difficulty) ClearRange() (lo, hi int) {
	switch d {
	case Easy:
		return 35, 40
	case Medium:
		return 41, 46
	case Hard:
		return 47, 52
	default:
		// Expert clears fewer cells; the suit constraint makes each
		// remaining blank harder to fill.
		return 30, 35
	}
}

// SuitsMatter reports whether suit uniqueness is enforced alongside rank
// uniqueness during play.
func (d Difficulty) SuitsMatter() bool { return d == Expert }

// ConflictType identifies the scope a uniqueness violation occurs in.
type ConflictType int

const (
	RowConflict ConflictType = iota
	ColumnConflict
	BoxConflict
)

func (t ConflictType) String() string {
	switch t {
	case RowConflict:
		return "row"
	case ColumnConflict:
		return "column"
	default:
		return "box"
	}
}

// Rejection explains why a placement or removal was refused. The zero
// value means the move is legal.
type Rejection int

const (
	RejectionNone Rejection = iota
	RejectCellLocked
	RejectRowConflict
	RejectColumnConflict
	RejectBoxConflict
)

func (r Rejection) String() string {
	switch r {
	case RejectionNone:
		return ""
	case RejectCellLocked:
		return "cell is part of the puzzle"
	case RejectRowConflict:
		return "conflicts with the row"
	case RejectColumnConflict:
		return "conflicts with the column"
	default:
		return "conflicts with the box"
	}
}
