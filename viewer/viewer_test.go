package viewer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notegrid/database"
	"notegrid/grid"
	"notegrid/logger"
	"notegrid/tuiutil"
)

type fakeGateway struct {
	players   []database.PlayerRecord
	updateErr error
	updates   []database.NoteUpdate
}

func (f *fakeGateway) ForEachPlayer(ctx context.Context, fn func(database.PlayerRecord) error) error {
	for _, p := range f.players {
		if err := fn(p); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeGateway) UpdateNote(ctx context.Context, u database.NoteUpdate) error {
	f.updates = append(f.updates, u)
	return f.updateErr
}

func newTestModel(t *testing.T) (TuiModel, *fakeGateway) {
	t.Helper()

	gw := &fakeGateway{players: []database.PlayerRecord{
		{ID: "1", Name: "Ana", Club: "FC", Note: 10},
		{ID: "2", Name: "Ben", Club: "RC", Note: 7},
	}}
	g := grid.New()
	require.NoError(t, grid.NewSynchronizer(g, gw, logger.Nop()).Load(context.Background()))

	m := GetNewModel(context.Background(), g, "jeu", logger.Nop())
	m.Init()
	return send(m, tea.WindowSizeMsg{Width: 90, Height: 20}), gw
}

func send(m TuiModel, msg tea.Msg) TuiModel {
	next, _ := m.Update(msg)
	return next.(TuiModel)
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(m TuiModel, keys ...string) TuiModel {
	for _, k := range keys {
		m = send(m, key(k))
	}
	return m
}

// editCell focuses (row, col), opens the edit line and commits value
func editCell(m TuiModel, row int, col grid.Column, value string) TuiModel {
	m.Cursor = Cursor{Row: row, Column: col}
	m = press(m, "enter")
	m.TextInput.Model.SetValue(value)
	return press(m, "enter")
}

func TestNoteEditWritesOnce(t *testing.T) {
	m, gw := newTestModel(t)

	m = press(m, "right", "right", "down")
	assert.Equal(t, Cursor{Row: 1, Column: grid.NoteColumn}, m.Cursor)

	m = press(m, "enter")
	require.True(t, m.UI.EditModeEnabled)
	assert.Equal(t, "7", m.TextInput.Model.Value())

	m = press(m, "5", "enter")
	assert.False(t, m.UI.EditModeEnabled)
	require.Len(t, gw.updates, 1)
	assert.Equal(t, database.NoteUpdate{ID: "2", Name: "Ben", Note: 75}, gw.updates[0])

	v, _ := m.Grid.Cell(1, grid.NoteColumn)
	assert.Equal(t, "75", v)
	assert.Equal(t, "New note for Ben: 75", m.Message)
	assert.False(t, m.UI.MessageIsError)
}

func TestInvalidNoteIsKeptButNotWritten(t *testing.T) {
	m, gw := newTestModel(t)

	m = editCell(m, 0, grid.NoteColumn, "abc")

	assert.Empty(t, gw.updates)
	v, _ := m.Grid.Cell(0, grid.NoteColumn)
	assert.Equal(t, "abc", v)
	assert.True(t, m.UI.MessageIsError)
	assert.Contains(t, m.Message, "not a whole number")
}

func TestNameEditIsLocalOnly(t *testing.T) {
	m, gw := newTestModel(t)

	m = editCell(m, 0, grid.NameColumn, "Anna")

	assert.Empty(t, gw.updates)
	v, _ := m.Grid.Cell(0, grid.NameColumn)
	assert.Equal(t, "Anna", v)
	assert.Equal(t, "Nom changed on screen only", m.Message)
}

func TestUnchangedEditDoesNotWrite(t *testing.T) {
	m, gw := newTestModel(t)

	m = editCell(m, 0, grid.NoteColumn, "10")

	assert.Empty(t, gw.updates)
	assert.False(t, m.UI.EditModeEnabled)
}

func TestEscapeCancelsEdit(t *testing.T) {
	m, gw := newTestModel(t)

	m.Cursor = Cursor{Row: 0, Column: grid.NoteColumn}
	m = press(m, ":")
	require.True(t, m.UI.EditModeEnabled)
	m.TextInput.Model.SetValue("99")
	m = press(m, "esc")

	assert.False(t, m.UI.EditModeEnabled)
	assert.Empty(t, gw.updates)
	v, _ := m.Grid.Cell(0, grid.NoteColumn)
	assert.Equal(t, "10", v)
}

func TestWriteFailureShowsErrorAndKeepsText(t *testing.T) {
	m, gw := newTestModel(t)
	gw.updateErr = &database.ConnectionError{Driver: "mysql", Host: "localhost", Database: "jeu", Err: errors.New("refused")}

	m = editCell(m, 0, grid.NoteColumn, "15")

	require.Len(t, gw.updates, 1)
	v, _ := m.Grid.Cell(0, grid.NoteColumn)
	assert.Equal(t, "15", v)
	assert.True(t, m.UI.MessageIsError)
	assert.Contains(t, m.Message, "database unreachable")
}

func TestDescribeEditError(t *testing.T) {
	noRows := &database.QueryError{Query: "UPDATE", Err: database.ErrNoRows}
	assert.Equal(t, "Not saved: no player with that name in the table", describeEditError(noRows))
	assert.Equal(t, "Not saved: boom", describeEditError(errors.New("boom")))
}

func TestCursorStaysInBounds(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, "up", "left", "h", "k")
	assert.Equal(t, Cursor{}, m.Cursor)

	m = press(m, "d", "d", "d", "d", "s", "s", "s")
	assert.Equal(t, Cursor{Row: 1, Column: grid.NoteColumn}, m.Cursor)
}

func TestScrollFollowsCursor(t *testing.T) {
	gw := &fakeGateway{}
	for i := 0; i < 30; i++ {
		gw.players = append(gw.players, database.PlayerRecord{ID: "x", Name: "P", Club: "C", Note: i})
	}
	g := grid.New()
	require.NoError(t, grid.NewSynchronizer(g, gw, logger.Nop()).Load(context.Background()))
	m := send(GetNewModel(context.Background(), g, "jeu", logger.Nop()), tea.WindowSizeMsg{Width: 60, Height: 13})
	require.Equal(t, 10, m.Viewport.Height)

	for i := 0; i < 12; i++ {
		m = press(m, "down")
	}
	assert.Equal(t, 12, m.Cursor.Row)
	assert.Equal(t, 3, m.Viewport.YOffset)

	m = send(m, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 2, m.Cursor.Row)
	assert.Equal(t, 2, m.Viewport.YOffset)
}

func TestMouseSelectsCell(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(m, tea.MouseMsg{X: m.CellWidth()*2 + 1, Y: HeaderHeight + 1, Type: tea.MouseLeft})
	assert.Equal(t, Cursor{Row: 1, Column: grid.NoteColumn}, m.Cursor)

	m = send(m, tea.MouseMsg{Type: tea.MouseWheelUp})
	assert.Equal(t, 0, m.Cursor.Row)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := m.Update(key(k))
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestQWhileEditingIsText(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, "enter", "q")
	assert.True(t, m.UI.EditModeEnabled)
	assert.Equal(t, "Anaq", m.TextInput.Model.Value())
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, "\n\tInitializing...", GetNewModel(context.Background(), m.Grid, "jeu", logger.Nop()).View())

	view := m.View()
	assert.Contains(t, view, "jeu - 2 record(s) + 3 column(s)")
	assert.Contains(t, view, "Nom")
	assert.Contains(t, view, "Ana")
	assert.Contains(t, view, "Ben")
	assert.Equal(t, 20, len(strings.Split(view, "\n")))
}

func TestViewEmptyGrid(t *testing.T) {
	m := send(GetNewModel(context.Background(), grid.New(), "jeu", logger.Nop()), tea.WindowSizeMsg{Width: 60, Height: 10})
	m.WriteError("connection refused")

	view := m.View()
	assert.Contains(t, view, "No players to show.")
	assert.Contains(t, view, "connection refused")

	m = press(m, "enter", "down")
	assert.False(t, m.UI.EditModeEnabled)
	assert.Equal(t, Cursor{}, m.Cursor)
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, "?")
	assert.True(t, m.UI.HelpDisplay)
	assert.Contains(t, m.View(), "Controls:")

	m = press(m, "down")
	assert.Equal(t, 0, m.Cursor.Row, "navigation is frozen while help is shown")

	m = press(m, "esc")
	assert.False(t, m.UI.HelpDisplay)
}

func TestExport(t *testing.T) {
	m, _ := newTestModel(t)
	m.ExportDir = t.TempDir()

	m = press(m, "p")
	require.False(t, m.UI.MessageIsError, m.Message)

	matches, err := filepath.Glob(filepath.Join(m.ExportDir, "jeu-*.json"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Wrote grid to "+matches[0], m.Message)

	b, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(b), `"name": "Ana"`)
}

func TestExportFailure(t *testing.T) {
	m, _ := newTestModel(t)
	m.ExportDir = filepath.Join(t.TempDir(), "missing")

	m = press(m, "p")
	assert.True(t, m.UI.MessageIsError)
	assert.Contains(t, m.Message, "Export failed")
}

func TestThemeAndBorders(t *testing.T) {
	defer tuiutil.SetTheme("default")
	m, _ := newTestModel(t)

	m = press(m, "t")
	assert.Equal(t, "Changed themes to nord", m.Message)

	m = press(m, "b")
	assert.True(t, m.UI.BorderToggle)
	assert.NotEmpty(t, m.View())
}

func TestErrorMessage(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(m, errors.New("something broke"))
	assert.True(t, m.UI.MessageIsError)
	assert.Equal(t, "something broke", m.Message)
}
