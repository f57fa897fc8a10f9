package manage

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the management screen and blocks until the user quits.
func Run(service CategoryService) error {
	_, err := tea.NewProgram(NewModel(service), tea.WithAltScreen()).Run()
	return err
}
