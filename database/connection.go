package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// minPlayerColumns is id, name, club, note, addressed by position
const minPlayerColumns = 4

// PlayerRecord is one row of the players table
type PlayerRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Club string `json:"club"`
	Note int    `json:"note"`
}

// Connection is one owned, unpooled handle on the store. Whoever opens it
// closes it.
type Connection struct {
	db     *sql.DB
	cfg    Config
	closed bool
}

// Connect opens and verifies a single connection
func Connect(ctx context.Context, cfg Config) (*Connection, error) {
	connErr := func(err error) error {
		return &ConnectionError{Driver: cfg.Driver, Host: cfg.hostOrDefault(), Database: cfg.Name, Err: err}
	}

	db, err := sql.Open(cfg.DriverName(), cfg.DSN())
	if err != nil {
		return nil, connErr(err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, connErr(err)
	}

	return &Connection{db: db, cfg: cfg}, nil
}

// Host reports where the connection points, for diagnostics
func (c *Connection) Host() string {
	if c.cfg.Driver == DriverSQLite {
		return c.cfg.Name
	}
	return c.cfg.hostOrDefault()
}

// FetchAllPlayers starts the full table scan. The returned rows must be
// closed before the connection is.
func (c *Connection) FetchAllPlayers(ctx context.Context) (*PlayerRows, error) {
	query := c.cfg.SelectAllQuery()
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}

	columns, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, &QueryError{Query: query, Err: err}
	}
	if len(columns) < minPlayerColumns {
		rows.Close()
		return nil, &QueryError{Query: query, Err: fmt.Errorf("expected at least %d columns, got %d", minPlayerColumns, len(columns))}
	}

	values := make([]interface{}, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	return &PlayerRows{rows: rows, query: query, values: values, dest: dest}, nil
}

// UpdateNote writes one note and returns how many rows matched. Several
// players sharing a name all receive the note when matching by name.
func (c *Connection) UpdateNote(ctx context.Context, u NoteUpdate) (int64, error) {
	query, args := c.cfg.GenerateQuery(u)
	result, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, &QueryError{Query: query, Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, &QueryError{Query: query, Err: err}
	}
	if affected == 0 {
		return 0, &QueryError{Query: query, Err: ErrNoRows}
	}

	return affected, nil
}

// Close releases the connection. Calling it more than once is fine.
func (c *Connection) Close() error {
	if c == nil || c.closed {
		return nil
	}
	c.closed = true
	return c.db.Close()
}

// PlayerRows is a one-pass, non-restartable iterator over the scan
type PlayerRows struct {
	rows    *sql.Rows
	query   string
	values  []interface{}
	dest    []interface{}
	current PlayerRecord
	err     error
}

// Next advances to the next record
func (r *PlayerRows) Next() bool {
	if r.err != nil || !r.rows.Next() {
		return false
	}
	if err := r.rows.Scan(r.dest...); err != nil {
		r.err = &QueryError{Query: r.query, Err: err}
		return false
	}

	r.current = PlayerRecord{
		ID:   stringValue(r.values[0]),
		Name: stringValue(r.values[1]),
		Club: stringValue(r.values[2]),
		Note: intValue(r.values[3]),
	}
	return true
}

// Record returns the record Next stopped on
func (r *PlayerRows) Record() PlayerRecord {
	return r.current
}

// Err reports the error, if any, that ended iteration
func (r *PlayerRows) Err() error {
	if r.err != nil {
		return r.err
	}
	if err := r.rows.Err(); err != nil {
		return &QueryError{Query: r.query, Err: err}
	}
	return nil
}

func (r *PlayerRows) Close() error {
	return r.rows.Close()
}

// stringValue renders whatever the driver handed back as display text
func stringValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}

// intValue reads a note; anything that is not an integer reads as 0
func intValue(v interface{}) int {
	switch t := v.(type) {
	case int64:
		return int(t)
	case int32:
		return int(t)
	case float64:
		return int(t)
	case []byte:
		return atoi(string(t))
	case string:
		return atoi(t)
	default:
		return 0
	}
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
