package viewer

import (
	"context"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"notegrid/grid"
	"notegrid/logger"
	"notegrid/tuiutil"
)

// GetNewModel returns a TuiModel over g
func GetNewModel(ctx context.Context, g *grid.Grid, tableName string, l *logger.Logger) TuiModel {
	return TuiModel{
		Grid:      g,
		TableName: tableName,
		ExportDir: ".",
		Ctx:       ctx,
		Log:       l,
		Viewport:  viewport.New(0, 0),
		TextInput: NewLineEdit(HeaderLineEditEnterBehavior),
	}
}

// CellWidth splits the width evenly between the three columns
func (m *TuiModel) CellWidth() int {
	return Max(m.Viewport.Width/grid.NumColumns, 1)
}

// GetBaseStyle returns a new style that is used everywhere
func (m *TuiModel) GetBaseStyle() lipgloss.Style {
	s := lipgloss.NewStyle().
		Width(m.CellWidth()).
		MaxHeight(1).
		Align(lipgloss.Left)

	if !tuiutil.Ascii {
		s = s.Foreground(lipgloss.Color(tuiutil.TextColor()))
		if m.UI.BorderToggle {
			s = s.BorderLeft(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color(tuiutil.BorderColor()))
		}
	}

	return s
}

// WriteMessage puts msg in the footer
func (m *TuiModel) WriteMessage(msg string) {
	m.Message = msg
	m.UI.MessageIsError = false
}

// WriteError puts msg in the footer, styled as a failure
func (m *TuiModel) WriteError(msg string) {
	m.Message = msg
	m.UI.MessageIsError = true
}

// MoveCursor shifts the focused cell, keeping it inside the grid and on screen
func (m *TuiModel) MoveCursor(dRow, dCol int) {
	rows := m.Grid.Len()
	if rows == 0 {
		m.Cursor = Cursor{}
		return
	}

	m.Cursor.Row = tuiutil.Clamp(m.Cursor.Row+dRow, 0, rows-1)
	m.Cursor.Column = grid.Column(tuiutil.Clamp(int(m.Cursor.Column)+dCol, 0, grid.NumColumns-1))

	height := Max(m.Viewport.Height, 1)
	if m.Cursor.Row < m.Viewport.YOffset {
		m.Viewport.YOffset = m.Cursor.Row
	} else if m.Cursor.Row >= m.Viewport.YOffset+height {
		m.Viewport.YOffset = m.Cursor.Row - height + 1
	}
}

// SelectCell focuses the cell under screen coordinates x, y
func (m *TuiModel) SelectCell(x, y int) {
	row := y - HeaderHeight + m.Viewport.YOffset
	if y < HeaderHeight || row >= m.Grid.Len() {
		return
	}
	m.Cursor.Row = row
	m.Cursor.Column = grid.Column(tuiutil.Clamp(x/m.CellWidth(), 0, grid.NumColumns-1))
}

func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
