package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"notegrid/grid"
	"notegrid/tuiutil"
)

// AssembleHeader renders the title line (or the edit line while editing)
// above the column titles
func AssembleHeader(m *TuiModel) string {
	var builder []string

	style := m.GetBaseStyle()
	if !tuiutil.Ascii {
		// for column headers
		style = style.Foreground(lipgloss.Color(tuiutil.HeaderForeground())).
			BorderBackground(lipgloss.Color(tuiutil.HeaderBorderBackground())).
			Background(lipgloss.Color(tuiutil.HeaderBackground()))
	}
	for _, d := range grid.Headers {
		builder = append(builder, style.Render(" "+tuiutil.Truncate(d, m.CellWidth()-1)))
	}

	var headerTop string
	if m.UI.EditModeEnabled {
		headerTop = m.TextInput.Model.View()
	} else {
		headerTop = fmt.Sprintf(" %s - %d record(s) + %d column(s)",
			m.TableName,
			m.Grid.Len(),
			grid.NumColumns)
		headerTop = HeaderStyle.Render(tuiutil.Truncate(headerTop, m.Viewport.Width))
	}

	headerMid := lipgloss.JoinHorizontal(lipgloss.Left, builder...)
	return lipgloss.JoinVertical(lipgloss.Left, headerTop, headerMid)
}

// AssembleFooter renders the cursor position and the last status message
func AssembleFooter(m *TuiModel) string {
	position := fmt.Sprintf(" %d, %d", m.Cursor.Row, m.Cursor.Column)
	if m.Grid.Len() == 0 {
		position = " -, -"
	}

	gapSize := Max(m.Viewport.Width-lipgloss.Width(position)-2, 0)
	message := ""
	if m.Message != "" {
		message = tuiutil.Truncate(" "+m.Message+" ", gapSize)
		gapSize -= lipgloss.Width(message)
		if m.UI.MessageIsError {
			message = ErrorStyle.Render(message)
		} else {
			message = FooterStyle.Render(message)
		}
	}

	return "├" + message + strings.Repeat("─", gapSize) + "┤" + FooterStyle.Render(position)
}
