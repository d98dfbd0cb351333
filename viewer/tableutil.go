package viewer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"notegrid/grid"
	"notegrid/tuiutil"
)

// AssembleTable shows either the help text or the visible slice of rows
func AssembleTable(m *TuiModel) string {
	if m.UI.HelpDisplay {
		return displayHelp(m)
	}

	return displayTable(m)
}

// displayTable renders the rows between the header and the footer, padded
// so the footer stays at the bottom
func displayTable(m *TuiModel) string {
	height := Max(m.Viewport.Height, 1)
	lines := make([]string, 0, height)

	if m.Grid.Len() == 0 {
		lines = append(lines, m.GetBaseStyle().Width(m.Viewport.Width).Render(" No players to show."))
	}

	rows := m.Grid.Rows()
	end := Min(m.Viewport.YOffset+height, len(rows))
	for r := m.Viewport.YOffset; r < end; r++ {
		var rowBuilder []string
		for c, val := range rows[r].Cells {
			base := m.GetBaseStyle()
			// handle highlighting
			if r == m.Cursor.Row && grid.Column(c) == m.Cursor.Column {
				if tuiutil.Ascii {
					base = base.Reverse(true)
				} else {
					base = base.Foreground(lipgloss.Color(tuiutil.Highlight())).Bold(true)
				}
			}
			text := " " + tuiutil.Truncate(val, m.CellWidth()-2)
			rowBuilder = append(rowBuilder, base.Render(text))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, rowBuilder...))
	}

	for len(lines) < height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func displayHelp(m *TuiModel) string {
	lines := strings.Split(GetHelpText(), "\n")
	height := Max(m.Viewport.Height, 1)
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, l := range lines {
		lines[i] = tuiutil.Truncate(strings.ReplaceAll(l, "\t", "  "), m.Viewport.Width)
	}
	return strings.Join(lines, "\n")
}
