package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"quantum-exchange/models"
)

// Run starts the dashboard and blocks until the user quits
func Run(cfg models.Config, logger *slog.Logger) error {
	m := NewModel(cfg, WithLogger(logger))

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, opts...)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	if finalModel, ok := finalModel.(Model); ok && finalModel.err != nil {
		return fmt.Errorf("dashboard ended with error: %w", finalModel.err)
	}
	return nil
}
