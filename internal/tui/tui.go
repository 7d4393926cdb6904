package tui

import tea "github.com/charmbracelet/bubbletea"

// Run takes over the terminal until the user exits with Esc.
func Run() error {
	_, err := tea.NewProgram(NewModel(), tea.WithAltScreen()).Run()
	return err
}
