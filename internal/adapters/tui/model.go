// Package tui is the terminal front end of the puzzle engine. It owns
// the mutable grid for a session and commits moves only after the
// engine's validation passes.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	env "github.com/muesli/termenv"

	"svw.info/cardoku/internal/domain"
	"svw.info/cardoku/internal/usecase"
)

type gameState int

const (
	statePlaying gameState = iota
	stateWon
)

// Model is the Bubble Tea model for one game session.
type Model struct {
	svc        *usecase.Service
	logger     *slog.Logger
	difficulty domain.Difficulty

	puzzle *domain.Puzzle
	grid   domain.Grid

	cursor  domain.CellCoord
	suitIdx int

	keys   KeyMap
	state  gameState
	status string

	startTime    time.Time
	elapsedOnWin time.Duration

	width, height int

	originalBg env.Color
	output     *env.Output

	err error
}

type setBackgroundColorMsg struct {
	color env.Color
}

func setBackgroundColor(c env.Color) tea.Cmd {
	return func() tea.Msg {
		return setBackgroundColorMsg{color: c}
	}
}

// NewGame generates a puzzle and returns a ready model. A generation
// failure is kept on the model and rendered instead of the board.
func NewGame(svc *usecase.Service, diff domain.Difficulty, seed int64, logger *slog.Logger) Model {
	m := Model{
		svc:        svc,
		logger:     logger,
		difficulty: diff,
		keys:       Keys,
		originalBg: env.BackgroundColor(),
		output:     env.DefaultOutput(),
	}
	m.newPuzzle(seed)
	return m
}

func (m *Model) newPuzzle(seed int64) {
	p, st, err := m.svc.Generate(context.Background(), seed, m.difficulty)
	if err != nil {
		m.err = err
		return
	}
	if m.logger != nil {
		m.logger.Debug("generated puzzle",
			"difficulty", m.difficulty,
			"seed", seed,
			"givens", p.Grid.GivenCount(),
			"nodes", st.Nodes,
			"dur", st.Duration.Round(time.Millisecond),
		)
	}
	m.puzzle = p
	m.grid = p.Grid
	m.state = statePlaying
	m.status = ""
	m.startTime = time.Now()
	m.err = nil
	m.refresh()
}

// refresh recomputes the derived cell flags: conflicts from the engine,
// the selected flag from the cursor.
func (m *Model) refresh() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			m.grid[r][c].Conflict = false
			m.grid[r][c].Selected = false
		}
	}
	conf, err := m.svc.Conflicts(&m.grid, m.difficulty)
	if err != nil {
		m.err = err
		return
	}
	for _, cf := range conf {
		m.grid[cf.Pos.Row][cf.Pos.Col].Conflict = true
	}
	m.grid[m.cursor.Row][m.cursor.Col].Selected = true
}

func (m Model) Init() tea.Cmd {
	return setBackgroundColor(env.RGBColor("#1e1e1e"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case setBackgroundColorMsg:
		m.output.SetBackgroundColor(msg.color)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Sequence(
				setBackgroundColor(m.originalBg),
				tea.Quit,
			)

		case key.Matches(msg, m.keys.NewGame):
			m.newPuzzle(time.Now().UnixNano())
			return m, nil
		}
		if m.state == stateWon || m.err != nil {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1, 0)
		case key.Matches(msg, m.keys.Left):
			m.moveCursor(0, -1)
		case key.Matches(msg, m.keys.Right):
			m.moveCursor(0, 1)
		case key.Matches(msg, m.keys.Suit):
			m.suitIdx = (m.suitIdx + 1) % len(domain.AllSuits)
		case key.Matches(msg, m.keys.Rank):
			m.place(domain.Rank(msg.String()[0] - '0'))
		case key.Matches(msg, m.keys.Clear):
			m.clear()
		case key.Matches(msg, m.keys.Hint):
			m.hint()
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) moveCursor(dr, dc int) {
	m.cursor.Row = (m.cursor.Row + dr + 9) % 9
	m.cursor.Col = (m.cursor.Col + dc + 9) % 9
	m.status = ""
	m.refresh()
}

// place validates the move through the engine and commits it only when
// no rejection comes back.
func (m *Model) place(rank domain.Rank) {
	card := domain.Card{Suit: domain.AllSuits[m.suitIdx], Rank: rank}
	rej, err := m.svc.Place(&m.grid, m.cursor.Row, m.cursor.Col, card, m.difficulty)
	if err != nil {
		m.err = err
		return
	}
	if rej != domain.RejectionNone {
		m.status = fmt.Sprintf("%v rejected: %s", card, rej)
		return
	}
	m.grid[m.cursor.Row][m.cursor.Col].Card = card
	m.status = ""
	m.refresh()
	m.checkWin()
}

func (m *Model) clear() {
	rej, err := m.svc.Remove(&m.grid, m.cursor.Row, m.cursor.Col)
	if err != nil {
		m.err = err
		return
	}
	if rej != domain.RejectionNone {
		m.status = "cannot clear: " + rej.String()
		return
	}
	m.grid[m.cursor.Row][m.cursor.Col].Card = domain.Card{}
	m.status = ""
	m.refresh()
}

func (m *Model) hint() {
	h, ok, err := m.svc.Hint(context.Background(), &m.grid, m.difficulty)
	if err != nil {
		m.err = err
		return
	}
	if !ok {
		m.status = "no forced placement found"
		return
	}
	m.cursor = h.Pos
	m.status = h.Message
	m.refresh()
}

func (m *Model) checkWin() {
	if !m.grid.Complete() {
		return
	}
	ok, err := m.svc.CheckSolution(&m.grid)
	if err != nil {
		m.err = err
		return
	}
	if ok {
		m.state = stateWon
		m.elapsedOnWin = time.Since(m.startTime)
	} else {
		m.status = "the grid is full but not solved; check the highlighted cells"
	}
}

func (m Model) View() string {
	if m.err != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			"error: "+m.err.Error()+"\n\npress q to quit")
	}
	if m.state == stateWon {
		return m.renderWinScreen()
	}
	return m.renderGame()
}

func (m Model) renderGame() string {
	board := m.renderBoard()
	info := m.renderInfo()
	var status string
	if m.status != "" {
		status = statusStyle.Render(m.status)
	}
	main := lipgloss.JoinVertical(lipgloss.Center, board, info, status)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, main)
}

func (m Model) renderBoard() string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			b.WriteString(strings.Repeat("─", 9*3+2) + "\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				b.WriteString("│")
			}
			cell := m.grid[r][c]
			b.WriteString(styleCell(cell).Render(cellText(cell)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderInfo() string {
	suit := domain.AllSuits[m.suitIdx]
	elapsed := time.Since(m.startTime).Round(time.Second)
	info := fmt.Sprintf("cardoku · %s · suit %s%s · %02d:%02d\n",
		m.difficulty, suit, suit.Glyph(),
		int(elapsed.Minutes()), int(elapsed.Seconds())%60)
	info += "1-9 place (1 = ace) · tab suit · x clear · ? hint · n new · q quit"
	return infoStyle.Render(info)
}

func (m Model) renderWinScreen() string {
	msg := fmt.Sprintf("%s\n\nTime: %02d:%02d\n\nn new game · q quit",
		winTitleStyle.Render("Solved!"),
		int(m.elapsedOnWin.Minutes()), int(m.elapsedOnWin.Seconds())%60)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		winBoxStyle.Render(msg))
}
