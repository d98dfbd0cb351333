package viewer

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"notegrid/tuiutil"
)

type Command func(m *TuiModel) tea.Cmd

var (
	GlobalCommands = make(map[string]Command)
)

func init() {
	GlobalCommands["t"] = func(m *TuiModel) tea.Cmd {
		themeName := tuiutil.NextTheme()
		SetStyles()
		m.WriteMessage(fmt.Sprintf("Changed themes to %s", themeName))
		return nil
	}
	GlobalCommands["b"] = func(m *TuiModel) tea.Cmd {
		m.UI.BorderToggle = !m.UI.BorderToggle
		return nil
	}
	GlobalCommands["p"] = func(m *TuiModel) tea.Cmd {
		fn, err := m.Serialize()
		if err != nil {
			m.WriteError(fmt.Sprintf("Export failed: %v", err))
			m.Log.Error("grid export failed", err)
			return nil
		}
		m.WriteMessage(fmt.Sprintf("Wrote grid to %s", fn))
		return nil
	}
	GlobalCommands["up"] = func(m *TuiModel) tea.Cmd {
		m.MoveCursor(-1, 0)
		return nil
	}
	GlobalCommands["down"] = func(m *TuiModel) tea.Cmd {
		m.MoveCursor(1, 0)
		return nil
	}
	GlobalCommands["left"] = func(m *TuiModel) tea.Cmd {
		m.MoveCursor(0, -1)
		return nil
	}
	GlobalCommands["right"] = func(m *TuiModel) tea.Cmd {
		m.MoveCursor(0, 1)
		return nil
	}
	GlobalCommands["pgdown"] = func(m *TuiModel) tea.Cmd {
		m.MoveCursor(Max(m.Viewport.Height, 1), 0)
		return nil
	}
	GlobalCommands["pgup"] = func(m *TuiModel) tea.Cmd {
		m.MoveCursor(-Max(m.Viewport.Height, 1), 0)
		return nil
	}
	GlobalCommands["enter"] = func(m *TuiModel) tea.Cmd {
		return beginEdit(m)
	}
	GlobalCommands["esc"] = func(m *TuiModel) tea.Cmd {
		if m.UI.HelpDisplay {
			m.UI.HelpDisplay = false
			m.Viewport.YOffset = m.Scroll.PreScrollYOffset
			return nil
		}
		m.WriteMessage("")
		return nil
	}
	GlobalCommands["?"] = func(m *TuiModel) tea.Cmd {
		if m.UI.HelpDisplay {
			return GlobalCommands["esc"](m)
		}
		m.Scroll.PreScrollYOffset = m.Viewport.YOffset
		m.UI.HelpDisplay = true
		return nil
	}

	GlobalCommands[":"] = GlobalCommands["enter"] // dual bind of enter/:
	GlobalCommands["k"] = GlobalCommands["up"]    // dual bind of up/k
	GlobalCommands["j"] = GlobalCommands["down"]  // dual bind of down/j
	GlobalCommands["l"] = GlobalCommands["right"] // dual bind of right/l
	GlobalCommands["h"] = GlobalCommands["left"]  // dual bind of left/h
	GlobalCommands["w"] = GlobalCommands["up"]
	GlobalCommands["s"] = GlobalCommands["down"]
	GlobalCommands["d"] = GlobalCommands["right"]
	GlobalCommands["a"] = GlobalCommands["left"]
}
