package usecase

import (
	"context"
	"errors"
	"testing"

	"svw.info/cardoku/internal/domain"
	"svw.info/cardoku/internal/generator"
	"svw.info/cardoku/internal/hint"
	"svw.info/cardoku/internal/rules"
)

func newService() *Service {
	ck := rules.New()
	return NewService(generator.New(ck), ck, hint.NewSingles(ck))
}

func TestPlaceRejectsOutOfRange(t *testing.T) {
	svc := newService()
	var g domain.Grid
	card := domain.Card{Suit: domain.Hearts, Rank: domain.Ace}
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {9, 0}, {0, 9}, {100, 100}} {
		if _, err := svc.Place(&g, pos[0], pos[1], card, domain.Easy); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Place(%d,%d) err = %v, want ErrOutOfRange", pos[0], pos[1], err)
		}
	}
	if _, err := svc.Available(&g, 9, 9); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Available(9,9) err = %v, want ErrOutOfRange", err)
	}
	if _, err := svc.Remove(&g, -1, 4); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Remove(-1,4) err = %v, want ErrOutOfRange", err)
	}
}

func TestPlaceAndRemoveReasons(t *testing.T) {
	svc := newService()
	var g domain.Grid
	g[0][0].Card = domain.Card{Suit: domain.Spades, Rank: domain.Ace}
	g[0][0].Given = true

	card := domain.Card{Suit: domain.Hearts, Rank: domain.Ace}
	rej, err := svc.Place(&g, 0, 0, card, domain.Easy)
	if err != nil || rej != domain.RejectCellLocked {
		t.Fatalf("Place on given = (%v, %v), want locked rejection", rej, err)
	}
	rej, err = svc.Place(&g, 0, 4, card, domain.Easy)
	if err != nil || rej != domain.RejectRowConflict {
		t.Fatalf("Place ace in ace row = (%v, %v), want row rejection", rej, err)
	}
	rej, err = svc.Place(&g, 4, 4, card, domain.Easy)
	if err != nil || rej != domain.RejectionNone {
		t.Fatalf("legal Place = (%v, %v), want none", rej, err)
	}
	// Place never mutates the grid; commitment is the caller's job.
	if !g[4][4].Empty() {
		t.Fatal("Place mutated the grid")
	}

	rej, err = svc.Remove(&g, 0, 0)
	if err != nil || rej != domain.RejectCellLocked {
		t.Fatalf("Remove on given = (%v, %v), want locked rejection", rej, err)
	}
	rej, err = svc.Remove(&g, 4, 4)
	if err != nil || rej != domain.RejectionNone {
		t.Fatalf("Remove on free cell = (%v, %v), want none", rej, err)
	}
}

func TestServiceEndToEnd(t *testing.T) {
	svc := newService()
	p, _, err := svc.Generate(context.Background(), 2024, domain.Easy)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := svc.CheckSolution(&p.Solution)
	if err != nil || !ok {
		t.Fatalf("CheckSolution(solution) = (%v, %v), want true", ok, err)
	}
	ok, err = svc.CheckSolution(&p.Grid)
	if err != nil || ok {
		t.Fatalf("CheckSolution(carved grid) = (%v, %v), want false", ok, err)
	}

	// Filling every blank from the answer key must stay legal throughout.
	g := p.Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !g[r][c].Empty() {
				continue
			}
			card := p.Solution[r][c].Card
			rej, err := svc.Place(&g, r, c, card, p.Difficulty)
			if err != nil {
				t.Fatal(err)
			}
			if rej != domain.RejectionNone {
				t.Fatalf("solution card %v rejected at (%d,%d): %v", card, r, c, rej)
			}
			g[r][c].Card = card
		}
	}
	ok, err = svc.CheckSolution(&g)
	if err != nil || !ok {
		t.Fatalf("replayed solution = (%v, %v), want valid", ok, err)
	}
	conf, err := svc.Conflicts(&g, p.Difficulty)
	if err != nil || len(conf) != 0 {
		t.Fatalf("replayed solution has conflicts: %v (err=%v)", conf, err)
	}
}

func TestServiceNilDependencies(t *testing.T) {
	svc := &Service{}
	var g domain.Grid
	if _, _, err := svc.Generate(context.Background(), 1, domain.Easy); err == nil {
		t.Error("Generate with nil generator should fail")
	}
	if _, err := svc.Available(&g, 0, 0); err == nil {
		t.Error("Available with nil rules should fail")
	}
	if _, _, err := svc.Hint(context.Background(), &g, domain.Easy); err == nil {
		t.Error("Hint with nil hinter should fail")
	}
}
