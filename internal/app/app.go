package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/pacsift/internal/logging"
	"github.com/atomicstack/pacsift/internal/logging/events"
	"github.com/atomicstack/pacsift/internal/pacman"
	"github.com/atomicstack/pacsift/internal/theme"
	"github.com/atomicstack/pacsift/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	ThemePath string
	PacmanBin string
	Width     int
	Height    int
	Verbose   bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	if os.Geteuid() != 0 {
		return fmt.Errorf("pacsift must be run with root permissions")
	}

	colors := theme.DefaultColors()
	if cfg.ThemePath != "" {
		loaded, err := theme.LoadColors(cfg.ThemePath)
		if err != nil {
			logging.Error(err)
		} else {
			colors = loaded
		}
	}

	source := pacman.NewCLI(cfg.PacmanBin)
	packages, err := source.Packages()
	if err != nil {
		return fmt.Errorf("load package database: %w", err)
	}
	upgradable := 0
	for _, pkg := range packages {
		if pkg.Upgradable() {
			upgradable++
		}
	}
	events.App.PackagesLoaded(len(packages), upgradable)

	model := ui.NewModel(source, packages, theme.NewStyles(colors), ui.Options{
		PacmanBin: cfg.PacmanBin,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Verbose:   cfg.Verbose,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
