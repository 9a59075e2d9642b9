package domain

import "testing"

func TestSudokuCardsCatalog(t *testing.T) {
	cards := SudokuCards()
	if len(cards) != 36 {
		t.Fatalf("catalog size = %d, want 36", len(cards))
	}
	seen := map[Card]bool{}
	for _, c := range cards {
		if c.Rank < Ace || c.Rank > MaxSudokuRank {
			t.Fatalf("catalog card %v outside sudoku ranks", c)
		}
		if seen[c] {
			t.Fatalf("duplicate catalog card %v", c)
		}
		seen[c] = true
	}
}

func TestSameRankIgnoresSuit(t *testing.T) {
	a := Card{Suit: Hearts, Rank: Seven}
	b := Card{Suit: Spades, Rank: Seven}
	c := Card{Suit: Hearts, Rank: Eight}
	if !SameRank(a, b) {
		t.Errorf("SameRank(%v, %v) = false, want true", a, b)
	}
	if SameRank(a, c) {
		t.Errorf("SameRank(%v, %v) = true, want false", a, c)
	}
}

func TestSuitColors(t *testing.T) {
	for _, s := range AllSuits {
		want := s == Hearts || s == Diamonds
		if s.Red() != want {
			t.Errorf("%v.Red() = %v, want %v", s, s.Red(), want)
		}
	}
}

func TestCardZeroValueIsEmpty(t *testing.T) {
	var c Card
	if !c.IsZero() {
		t.Fatal("zero Card should be the empty placeholder")
	}
	cell := Cell{}
	if !cell.Empty() {
		t.Fatal("zero Cell should be empty")
	}
}

func TestClearRanges(t *testing.T) {
	cases := []struct {
		diff   Difficulty
		lo, hi int
	}{
		{Easy, 35, 40},
		{Medium, 41, 46},
		{Hard, 47, 52},
		{Expert, 30, 35},
	}
	for _, tc := range cases {
		lo, hi := tc.diff.ClearRange()
		if lo != tc.lo || hi != tc.hi {
			t.Errorf("%v.ClearRange() = %d..%d, want %d..%d", tc.diff, lo, hi, tc.lo, tc.hi)
		}
	}
	if Expert.SuitsMatter() != true || Hard.SuitsMatter() != false {
		t.Error("only Expert should enforce suit uniqueness")
	}
}
