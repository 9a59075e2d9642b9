package tui

import (
	"github.com/charmbracelet/lipgloss"

	"svw.info/cardoku/internal/domain"
)

var (
	redCardStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
	blackCardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))

	givenStyle    = lipgloss.NewStyle().Bold(true)
	givenRedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5555"))

	conflictStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#8B0000")).
			Foreground(lipgloss.Color("#FFFFFF"))

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("220")).
			Foreground(lipgloss.Color("0")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500"))

	winBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("#FFD700"))

	winTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true).
			Align(lipgloss.Center)
)

// cellText renders a card as a fixed-width "A♥ " token, or dots when the
// cell is empty.
func cellText(cell domain.Cell) string {
	if cell.Empty() {
		return " · "
	}
	return cell.Card.Rank.String() + cell.Card.Suit.Glyph() + " "
}

// styleCell picks the cell style; the cursor wins over conflicts so the
// player always sees where they are.
func styleCell(cell domain.Cell) lipgloss.Style {
	switch {
	case cell.Selected:
		return cursorStyle
	case cell.Conflict:
		return conflictStyle
	case cell.Given:
		if cell.Card.Suit.Red() {
			return givenRedStyle
		}
		return givenStyle
	case cell.Card.Suit.Red():
		return redCardStyle
	default:
		return blackCardStyle
	}
}
