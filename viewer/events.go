package viewer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// HandleMouseEvents scrolls on the wheel and focuses the clicked cell
func HandleMouseEvents(m *TuiModel, msg *tea.MouseMsg) {
	if m.UI.EditModeEnabled || m.UI.HelpDisplay {
		return
	}

	switch msg.Type {
	case tea.MouseWheelDown:
		m.MoveCursor(1, 0)
	case tea.MouseWheelUp:
		m.MoveCursor(-1, 0)
	case tea.MouseLeft:
		m.SelectCell(msg.X, msg.Y)
	}
}

// HandleWindowSizeEvents sizes the body between header and footer
func HandleWindowSizeEvents(m *TuiModel, msg *tea.WindowSizeMsg) {
	verticalMargins := HeaderHeight + FooterHeight

	m.Viewport.Width = msg.Width
	m.Viewport.Height = Max(msg.Height-verticalMargins, 1)
	m.TextInput.Model.Width = Max(msg.Width-len(m.TextInput.Model.Prompt)-1, 1)
	m.Ready = true
	m.MoveCursor(0, 0) // keep the cursor on screen after a shrink
}

// HandleKeyboardEvents routes a key to the edit line or the command table
func HandleKeyboardEvents(m *TuiModel, msg *tea.KeyMsg) tea.Cmd {
	str := msg.String()

	if m.UI.EditModeEnabled {
		switch str {
		case "enter":
			m.TextInput.EnterBehavior(m, m.TextInput.Model.Value())
			return nil
		case "esc":
			exitToDefaultView(m)
			return nil
		}

		var cmd tea.Cmd
		m.TextInput.Model, cmd = m.TextInput.Model.Update(*msg)
		return cmd
	}

	if m.UI.HelpDisplay && str != "esc" && str != "?" {
		return nil
	}

	if command, ok := GlobalCommands[str]; ok {
		return command(m)
	}

	return nil
}
