package viewer

import (
	"context"

	"github.com/charmbracelet/bubbles/viewport"

	"notegrid/grid"
	"notegrid/logger"
)

type ScrollData struct {
	PreScrollYOffset int // where the table was before help took over the body
}

type UIState struct {
	EditModeEnabled bool // edit mode
	HelpDisplay     bool // help display mode
	BorderToggle    bool
	MessageIsError  bool
}

// Cursor is the focused cell
type Cursor struct {
	Row    int
	Column grid.Column
}

// TuiModel holds all the state the grid view needs
type TuiModel struct {
	Grid      *grid.Grid
	TableName string
	ExportDir string
	Ctx       context.Context // used for the database calls edits trigger
	Log       *logger.Logger
	UI        UIState
	Scroll    ScrollData
	Cursor    Cursor
	Ready     bool
	Viewport  viewport.Model
	TextInput LineEdit
	Message   string
}
