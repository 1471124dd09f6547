package wizard

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and advances the wizard state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.MoveCursorUp()
		return m, nil

	case "down", "j":
		m.MoveCursorDown()
		return m, nil

	// Direct jump with number keys.
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		index := int(msg.String()[0] - '1')
		return m.activate(index), nil

	// Jump to the row under the cursor.
	case "enter", " ":
		return m.activate(m.cursor), nil

	// Mark the current document reviewed and advance.
	case "c":
		return m.completeCurrent(), nil
	}

	return m, nil
}
