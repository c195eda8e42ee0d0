package cli

import (
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is a minimal yes/no overlay: y accepts, anything else that
// closes the prompt declines.
type confirmModel struct {
	prompt   string
	accepted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.accepted = true
		return m, tea.Quit
	case "n", "N", "enter", "esc", "ctrl+c":
		m.accepted = false
		return m, tea.Quit
	}

	return m, nil
}

func (m confirmModel) View() string {
	content := m.prompt + "\n\n"
	content += "y yes    n no"

	return overlayBoxStyle.Render(content)
}

// confirmPrompt runs the overlay and reports the user's answer. Any failure
// to run the program counts as a decline, keeping reset conservative.
func confirmPrompt(prompt string) bool {
	final, err := tea.NewProgram(confirmModel{prompt: prompt}).Run()
	if err != nil {
		return false
	}

	m, ok := final.(confirmModel)

	return ok && m.accepted
}
