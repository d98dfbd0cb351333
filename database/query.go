package database

import (
	"fmt"
	"strings"
)

// NoteUpdate carries one edited note. Name is the match key unless the
// gateway is configured to match by id, in which case ID is used.
type NoteUpdate struct {
	ID   string
	Name string
	Note int
}

// GetPlaceholderForDatabaseType returns the bind placeholder for the n-th
// argument (1-based) of a statement
func (c Config) GetPlaceholderForDatabaseType(n int) string {
	if c.Driver == DriverPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// QuoteIdentifier quotes a table or column name for the configured dialect
func (c Config) QuoteIdentifier(name string) string {
	q := `"`
	if c.Driver == DriverMySQL {
		q = "`"
	}
	return q + strings.ReplaceAll(name, q, q+q) + q
}

// SelectAllQuery is the unordered full scan the grid is populated from
func (c Config) SelectAllQuery() string {
	return "SELECT * FROM " + c.QuoteIdentifier(c.Table)
}

// GenerateQuery builds the UPDATE for a note change and the values to bind,
// in placeholder order.
func (c Config) GenerateQuery(u NoteUpdate) (string, []interface{}) {
	keyColumn, key := c.NameColumn, u.Name
	if c.MatchBy == MatchByID {
		keyColumn, key = c.IDColumn, u.ID
	}

	query := fmt.Sprintf("UPDATE %s SET %s = %s WHERE %s = %s",
		c.QuoteIdentifier(c.Table),
		c.QuoteIdentifier(c.NoteColumn),
		c.GetPlaceholderForDatabaseType(1),
		c.QuoteIdentifier(keyColumn),
		c.GetPlaceholderForDatabaseType(2))

	return query, []interface{}{u.Note, key}
}
