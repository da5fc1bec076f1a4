package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ucsb-cs156/frontiers-tui/config"
)

// Run starts the interactive console and blocks until it exits.
func Run(cfg config.Config) error {
	p := tea.NewProgram(InitialModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
