// Package grid holds the editable in-memory view of the players table and
// keeps it in step with the store: rows come in once at load time and every
// edited note goes back out as a single update.
package grid

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"notegrid/database"
)

var (
	ErrAlreadyLoaded = errors.New("grid already loaded")
	ErrOutOfRange    = errors.New("cell out of range")
)

// Column indexes a grid column
type Column int

const (
	NameColumn Column = iota
	ClubColumn
	NoteColumn
)

// NumColumns is the fixed width of the grid
const NumColumns = 3

// Headers are the column titles in display order
var Headers = [NumColumns]string{"Nom", "Club", "Note"}

func (c Column) String() string {
	if c < 0 || int(c) >= NumColumns {
		return "Column(" + strconv.Itoa(int(c)) + ")"
	}
	return Headers[c]
}

// State of a grid instance
type State int

const (
	Empty State = iota
	Populated
)

func (s State) String() string {
	if s == Populated {
		return "populated"
	}
	return "empty"
}

// Row is the positional copy of one player. ID rides along for id matching
// and is never shown.
type Row struct {
	ID    string
	Cells [NumColumns]string
}

func newRow(p database.PlayerRecord) Row {
	return Row{
		ID:    p.ID,
		Cells: [NumColumns]string{p.Name, p.Club, strconv.Itoa(p.Note)},
	}
}

func (r Row) Name() string { return r.Cells[NameColumn] }
func (r Row) Club() string { return r.Cells[ClubColumn] }
func (r Row) Note() string { return r.Cells[NoteColumn] }

// Grid is the tabular view. It is not safe for concurrent use; everything
// runs on the UI event loop.
type Grid struct {
	rows     []Row
	state    State
	handlers []*subscription
}

func New() *Grid {
	return &Grid{}
}

func (g *Grid) State() State {
	return g.state
}

func (g *Grid) Len() int {
	return len(g.rows)
}

// Rows returns a copy of the current rows
func (g *Grid) Rows() []Row {
	out := make([]Row, len(g.rows))
	copy(out, g.rows)
	return out
}

func (g *Grid) Row(row int) (Row, error) {
	if row < 0 || row >= len(g.rows) {
		return Row{}, fmt.Errorf("row %d: %w", row, ErrOutOfRange)
	}
	return g.rows[row], nil
}

func (g *Grid) Cell(row int, col Column) (string, error) {
	if err := g.checkCell(row, col); err != nil {
		return "", err
	}
	return g.rows[row].Cells[col], nil
}

// SetCell is a user edit: the text replaces the cell in place, then one
// CellChanged goes out to every subscriber. The text stays even if a
// subscriber fails.
func (g *Grid) SetCell(ctx context.Context, row int, col Column, text string) error {
	if err := g.checkCell(row, col); err != nil {
		return err
	}
	g.rows[row].Cells[col] = text
	return g.publish(ctx, CellChanged{Row: row, Column: col, Value: text})
}

// populate swaps in a freshly loaded set of rows
func (g *Grid) populate(rows []Row) {
	g.rows = rows
	g.state = Populated
}

func (g *Grid) checkCell(row int, col Column) error {
	if row < 0 || row >= len(g.rows) || col < 0 || int(col) >= NumColumns {
		return fmt.Errorf("cell (%d, %d): %w", row, col, ErrOutOfRange)
	}
	return nil
}
