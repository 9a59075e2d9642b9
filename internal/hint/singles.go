package hint

import (
	"context"
	"fmt"

	"svw.info/cardoku/internal/domain"
	"svw.info/cardoku/internal/ports"
)

// Singles implements a minimal Hinter that suggests cells with exactly
// one legal rank left.
type Singles struct {
	Rules ports.Rules
}

func NewSingles(r ports.Rules) *Singles { return &Singles{Rules: r} }

// Hint returns the first found sole candidate in row-major order. Four
// suits of one rank still count as a single forced value; in expert
// games the suggested card is additionally vetted against suit clashes.
func (h *Singles) Hint(ctx context.Context, g *domain.Grid, d domain.Difficulty) (domain.Hint, bool, error) {
	for r := 0; r < 9; r++ {
		if ctx.Err() != nil {
			return domain.Hint{}, false, ctx.Err()
		}
		for c := 0; c < 9; c++ {
			if !g[r][c].Empty() {
				continue
			}
			cands := h.Rules.Available(g, r, c)
			if len(cands) == 0 || !soleRank(cands) {
				continue
			}
			for _, card := range cands {
				if h.Rules.CanPlace(g, r, c, card, d) {
					return domain.Hint{
						Message: fmt.Sprintf("Single: only %s fits here", card.Rank),
						Pos:     domain.CellCoord{Row: r, Col: c},
						Card:    card,
					}, true, nil
				}
			}
		}
	}
	return domain.Hint{}, false, nil
}

func soleRank(cards []domain.Card) bool {
	for _, c := range cards[1:] {
		if !domain.SameRank(c, cards[0]) {
			return false
		}
	}
	return true
}
