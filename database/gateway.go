package database

import (
	"context"

	"go.uber.org/zap"

	"notegrid/logger"
)

// ConnectFunc opens a connection; swapped out in tests
type ConnectFunc func(ctx context.Context, cfg Config) (*Connection, error)

// Gateway runs each operation on its own connection: open, use, close on
// every exit path. Nothing is shared between calls.
type Gateway struct {
	cfg     Config
	log     *logger.Logger
	connect ConnectFunc
}

// NewGateway returns a Gateway for cfg
func NewGateway(cfg Config, l *logger.Logger) *Gateway {
	return &Gateway{cfg: cfg, log: l, connect: Connect}
}

func (g *Gateway) Config() Config {
	return g.cfg
}

func (g *Gateway) withConnection(ctx context.Context, op string, fn func(*Connection) error) error {
	conn, err := g.connect(ctx, g.cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			g.log.Warn("closing connection failed", zap.String("op", op), zap.Error(err))
		}
	}()

	g.log.Debug("connected", zap.String("op", op), zap.String("host", conn.Host()))
	return fn(conn)
}

// ForEachPlayer streams the table scan into fn in the order the store
// returns rows. An error from fn stops the scan and is returned as is.
func (g *Gateway) ForEachPlayer(ctx context.Context, fn func(PlayerRecord) error) error {
	return g.withConnection(ctx, "fetch", func(conn *Connection) error {
		rows, err := conn.FetchAllPlayers(ctx)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			if err := fn(rows.Record()); err != nil {
				return err
			}
		}
		return rows.Err()
	})
}

// UpdateNote writes one note on a fresh connection
func (g *Gateway) UpdateNote(ctx context.Context, u NoteUpdate) error {
	return g.withConnection(ctx, "update", func(conn *Connection) error {
		affected, err := conn.UpdateNote(ctx, u)
		if err != nil {
			return err
		}

		fields := []zap.Field{zap.String("name", u.Name), zap.Int("note", u.Note), zap.Int64("rows", affected)}
		if affected > 1 {
			g.log.Warn("note update matched several players", fields...)
		}
		g.log.Info("note updated", fields...)
		return nil
	})
}

// Probe checks the store is reachable and readable at startup, logging
// every player it sees. It returns the number of rows read.
func (g *Gateway) Probe(ctx context.Context) (int, error) {
	count := 0
	err := g.ForEachPlayer(ctx, func(p PlayerRecord) error {
		count++
		g.log.Debug("player", zap.String("name", p.Name), zap.String("club", p.Club))
		return nil
	})
	if err != nil {
		return count, err
	}

	g.log.Info("startup probe ok", zap.String("database", g.cfg.Name), zap.Int("rows", count))
	return count, nil
}
