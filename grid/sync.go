package grid

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"notegrid/database"
	"notegrid/logger"
)

// Gateway is the slice of the data access gateway the synchronizer needs.
// Each call owns its connection.
type Gateway interface {
	ForEachPlayer(ctx context.Context, fn func(database.PlayerRecord) error) error
	UpdateNote(ctx context.Context, u database.NoteUpdate) error
}

// ParseError is returned when an edited note is not an integer. Nothing is
// written in that case.
type ParseError struct {
	Row  int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("note %q on row %d is not a valid integer", e.Text, e.Row)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Synchronizer loads a grid from the gateway and turns note edits into
// updates.
type Synchronizer struct {
	grid        *Grid
	gw          Gateway
	log         *logger.Logger
	unsubscribe func()
}

// NewSynchronizer wires s to g's cell-change events
func NewSynchronizer(g *Grid, gw Gateway, l *logger.Logger) *Synchronizer {
	s := &Synchronizer{grid: g, gw: gw, log: l}
	s.unsubscribe = g.Subscribe(s)
	return s
}

// Close stops listening to the grid
func (s *Synchronizer) Close() {
	s.unsubscribe()
}

// Load fills an empty grid with one row per player, in the order the store
// returns them. On failure the grid stays empty.
func (s *Synchronizer) Load(ctx context.Context) error {
	if s.grid.State() != Empty {
		return ErrAlreadyLoaded
	}

	var rows []Row
	err := s.gw.ForEachPlayer(ctx, func(p database.PlayerRecord) error {
		rows = append(rows, newRow(p))
		return nil
	})
	if err != nil {
		s.log.Error("loading players failed", err)
		return err
	}

	s.grid.populate(rows)
	s.log.Info("grid loaded", zap.Int("rows", len(rows)))
	return nil
}

// CellChanged implements Handler
func (s *Synchronizer) CellChanged(ctx context.Context, ev CellChanged) error {
	return s.OnNoteEdited(ctx, ev)
}

// OnNoteEdited writes the new note of ev's row back to the store. Edits to
// other columns are ignored. A failed parse or write leaves the edited text
// in the grid and is not retried.
func (s *Synchronizer) OnNoteEdited(ctx context.Context, ev CellChanged) error {
	if ev.Column != NoteColumn {
		return nil
	}

	log := s.log.With(zap.String("edit_id", uuid.NewString()), zap.Int("row", ev.Row))

	note, err := strconv.ParseInt(strings.TrimSpace(ev.Value), 10, 32)
	if err != nil {
		log.Warn("note is not a valid integer", zap.String("text", ev.Value))
		return &ParseError{Row: ev.Row, Text: ev.Value, Err: err}
	}

	row, err := s.grid.Row(ev.Row)
	if err != nil {
		log.Error("edited row is gone", err)
		return err
	}

	u := database.NoteUpdate{ID: row.ID, Name: row.Name(), Note: int(note)}
	if err := s.gw.UpdateNote(ctx, u); err != nil {
		log.Error("note update failed", err, zap.String("name", u.Name), zap.Int("note", u.Note))
		return err
	}

	log.Debug("note synchronized", zap.String("name", u.Name), zap.Int("note", u.Note))
	return nil
}
