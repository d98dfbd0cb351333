package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestStore creates a sqlite file holding a seeded jeu table and returns
// a config pointing at it.
func newTestStore(t *testing.T, players ...PlayerRecord) Config {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Driver = DriverSQLite
	cfg.Name = filepath.Join(t.TempDir(), "jeu.db")

	db, err := sql.Open("sqlite", cfg.Name)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE jeu (id INTEGER PRIMARY KEY, Nom TEXT, club TEXT, Note INTEGER)`)
	require.NoError(t, err)
	for _, p := range players {
		_, err = db.Exec(`INSERT INTO jeu (id, Nom, club, Note) VALUES (?, ?, ?, ?)`, p.ID, p.Name, p.Club, p.Note)
		require.NoError(t, err)
	}

	return cfg
}

func readNotes(t *testing.T, cfg Config) map[string]int {
	t.Helper()

	db, err := sql.Open("sqlite", cfg.Name)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.QueryContext(context.Background(), `SELECT id, Note FROM jeu`)
	require.NoError(t, err)
	defer rows.Close()

	notes := make(map[string]int)
	for rows.Next() {
		var id string
		var note int
		require.NoError(t, rows.Scan(&id, &note))
		notes[id] = note
	}
	require.NoError(t, rows.Err())
	return notes
}
