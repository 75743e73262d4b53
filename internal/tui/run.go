package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/okterm/internal/config"
)

// Run starts the interactive preview and blocks until the user quits or ctx
// is cancelled
func Run(ctx context.Context, cfg config.Config, opts ...Option) error {
	m, err := New(cfg, opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive preview failed: %w", err)
	}
	return nil
}
