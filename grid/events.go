package grid

import (
	"context"
	"errors"
)

// CellChanged is the one event a grid emits: the text of a cell was
// replaced by a user edit.
type CellChanged struct {
	Row    int
	Column Column
	Value  string
}

// Handler reacts to cell changes
type Handler interface {
	CellChanged(ctx context.Context, ev CellChanged) error
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, ev CellChanged) error

func (f HandlerFunc) CellChanged(ctx context.Context, ev CellChanged) error {
	return f(ctx, ev)
}

type subscription struct {
	h Handler
}

// Subscribe registers h and returns a function that removes it
func (g *Grid) Subscribe(h Handler) (unsubscribe func()) {
	s := &subscription{h: h}
	g.handlers = append(g.handlers, s)
	return func() {
		for i, other := range g.handlers {
			if other == s {
				g.handlers = append(g.handlers[:i], g.handlers[i+1:]...)
				return
			}
		}
	}
}

// publish delivers ev to every subscriber in registration order
func (g *Grid) publish(ctx context.Context, ev CellChanged) error {
	var errs []error
	for _, s := range g.handlers {
		if err := s.h.CellChanged(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
