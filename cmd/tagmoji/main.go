package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tagmoji/internal/config"
	"github.com/jask/tagmoji/internal/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	items, err := cfg.InitialItems()
	if err != nil {
		fmt.Fprintf(os.Stderr, "items: %v\n", err)
		return 1
	}

	// The alt screen owns the terminal, so the session logs to a file or nowhere.
	logger := log.New(io.Discard, "", 0)
	if cfg.Log.Path != "" {
		f, err := tea.LogToFile(cfg.Log.Path, "tagmoji")
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logger = log.Default()
	}

	m, err := tui.New(tui.Options{
		Title:           "Tags",
		InitialItems:    items,
		Placeholder:     cfg.UI.Placeholder,
		SimilarDistance: cfg.UI.SimilarDistance,
		Logger:          logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "session: %v\n", err)
		return 1
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if err := m.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if saved, err := config.RememberItems(cfg, m.Items()); err != nil {
		fmt.Fprintf(os.Stderr, "remember items: %v\n", err)
		return 1
	} else if saved {
		logger.Printf("saved %d items to config", len(m.Items()))
	}

	for _, item := range m.Selected() {
		fmt.Println(item)
	}
	return 0
}
