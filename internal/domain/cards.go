package domain

import "strconv"

// Suit is one of the four French suits.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

var AllSuits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Red reports whether the suit prints red (hearts and diamonds).
func (s Suit) Red() bool { return s == Hearts || s == Diamonds }

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	default:
		return "spades"
	}
}

// Glyph returns the suit symbol for display.
func (s Suit) Glyph() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "♠"
	}
}

// Rank is a card face value, Ace low.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// MaxSudokuRank bounds the ranks usable as Sudoku symbols; the court
// cards and Ten exist in the full catalog but never appear on a grid.
const MaxSudokuRank = Nine

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card pairs a suit with a rank. The zero value means "no card".
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// IsZero reports whether the card is the "no card" placeholder.
func (c Card) IsZero() bool { return c.Rank == 0 }

func (c Card) String() string { return c.Rank.String() + c.Suit.Glyph() }

// SameRank reports rank-only equality, the equivalence standard Sudoku
// play is scored against; suits are compared separately in expert games.
func SameRank(a, b Card) bool { return a.Rank == b.Rank }

// SudokuCards returns the fixed 36-card catalog: every suit crossed with
// ranks Ace through Nine.
func SudokuCards() []Card {
	cards := make([]Card, 0, 36)
	for _, s := range AllSuits {
		for r := Ace; r <= MaxSudokuRank; r++ {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return cards
}
