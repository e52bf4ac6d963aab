// cmd/querypad/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/querypad/internal/config"
	"github.com/nhath/querypad/internal/history"
	"github.com/nhath/querypad/internal/ui"
)

func main() {
	debug := flag.Bool("debug", false, "Enable debug logging to debug.log")
	flag.Parse()

	if *debug {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Printf("fatal: could not open debug log: %v", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ui.InitStyles(cfg.Theme)

	// History persistence is best-effort; recall still works in-session
	// when the store cannot be opened.
	store, err := history.NewStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: history disabled: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	model := ui.NewModel(cfg, store)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
