package database

import (
	"errors"
	"fmt"
)

// ErrNoRows is wrapped in a QueryError when an update matched nothing
var ErrNoRows = errors.New("no row matched")

// ConnectionError means the store could not be reached or refused the credentials.
type ConnectionError struct {
	Driver   string
	Host     string
	Database string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s database %q on %s failed: %v", e.Driver, e.Database, e.Host, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// QueryError means a statement was malformed, rejected, or matched no row.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %q failed: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
