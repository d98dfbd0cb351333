package viewer

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"notegrid/database"
	"notegrid/grid"
)

type EnterFunction func(m *TuiModel, input string)

type LineEdit struct {
	Model         textinput.Model
	EnterBehavior EnterFunction
	Original      string
}

func NewLineEdit(enter EnterFunction) LineEdit {
	model := textinput.New()
	model.Prompt = " > "
	model.CharLimit = 256
	return LineEdit{Model: model, EnterBehavior: enter}
}

// beginEdit loads the focused cell into the header line edit
func beginEdit(m *TuiModel) tea.Cmd {
	value, err := m.Grid.Cell(m.Cursor.Row, m.Cursor.Column)
	if err != nil {
		return nil
	}

	m.UI.EditModeEnabled = true
	m.TextInput.Original = value
	m.TextInput.Model.SetValue(value)
	m.TextInput.Model.CursorEnd()
	return m.TextInput.Model.Focus()
}

func exitToDefaultView(m *TuiModel) {
	m.UI.EditModeEnabled = false
	m.UI.HelpDisplay = false
	m.TextInput.Model.Blur()
	m.TextInput.Model.Reset()
	m.TextInput.Original = ""
}

// HeaderLineEditEnterBehavior commits the edit line into the focused cell.
// The grid takes the text even when the write behind it fails; the failure
// only shows up in the footer.
func HeaderLineEditEnterBehavior(m *TuiModel, input string) {
	row, col := m.Cursor.Row, m.Cursor.Column
	original := m.TextInput.Original
	exitToDefaultView(m)

	if input == original {
		return
	}

	err := m.Grid.SetCell(m.Ctx, row, col, input)
	if err != nil {
		m.WriteError(describeEditError(err))
		return
	}

	if col != grid.NoteColumn {
		m.WriteMessage(fmt.Sprintf("%s changed on screen only", col))
		return
	}

	name, _ := m.Grid.Cell(row, grid.NameColumn)
	m.WriteMessage(fmt.Sprintf("New note for %s: %s", name, input))
	m.Log.Debug("edit committed", zap.Int("row", row), zap.Stringer("column", col))
}

func describeEditError(err error) string {
	var (
		perr    *grid.ParseError
		connErr *database.ConnectionError
	)
	switch {
	case errors.As(err, &perr):
		return fmt.Sprintf("Not saved: %q is not a whole number", perr.Text)
	case errors.As(err, &connErr):
		return "Not saved, database unreachable: " + connErr.Error()
	case errors.Is(err, database.ErrNoRows):
		return "Not saved: no player with that name in the table"
	default:
		return "Not saved: " + err.Error()
	}
}
