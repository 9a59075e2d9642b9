package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"svw.info/cardoku/internal/adapters/tui"
	"svw.info/cardoku/internal/domain"
	"svw.info/cardoku/internal/generator"
	"svw.info/cardoku/internal/hint"
	"svw.info/cardoku/internal/rules"
	"svw.info/cardoku/internal/usecase"
)

func parseDifficulty(s string) domain.Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return domain.Easy
	case "hard":
		return domain.Hard
	case "expert":
		return domain.Expert
	default:
		return domain.Medium
	}
}

func main() {
	diffStr := flag.String("difficulty", "medium", "easy|medium|hard|expert")
	seed := flag.Int64("seed", 0, "puzzle seed (0 = time-based)")
	levelStr := flag.String("log-level", "warn", "debug|info|warn|error")
	flag.Parse()

	lvl := slog.LevelWarn
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	diff := parseDifficulty(*diffStr)

	// Wire providers → use cases → terminal adapter.
	r := rules.New()
	g := generator.New(r)
	h := hint.NewSingles(r)
	uc := usecase.NewService(g, r, h)

	m := tui.NewGame(uc, diff, *seed, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("tui error", "err", err)
		os.Exit(1)
	}
}
