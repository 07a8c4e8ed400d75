package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tastebook/tastebook/pkg/app/screens"
	"github.com/tastebook/tastebook/pkg/services"
)

// Run starts the interactive browser. An initial query, when given,
// opens the search view with that term already submitted.
func Run(ctrl *services.Controller, exportDir, initialQuery string) error {
	root := screens.NewRootScreen(ctrl, exportDir, initialQuery)
	program := tea.NewProgram(root, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
