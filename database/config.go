package database

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

const (
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	MatchByName = "name"
	MatchByID   = "id"
)

// Config is the flat set of connection settings plus the table layout the
// gateway reads and writes.
type Config struct {
	Driver         string        `mapstructure:"driver"`
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	Name           string        `mapstructure:"name"` // database name, or file path for sqlite
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	Table          string        `mapstructure:"table"`
	IDColumn       string        `mapstructure:"id_column"`
	NameColumn     string        `mapstructure:"name_column"`
	NoteColumn     string        `mapstructure:"note_column"`
	MatchBy        string        `mapstructure:"match_by"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// DefaultConfig mirrors the store the grid was written against: a local
// MySQL database and table both named jeu.
func DefaultConfig() Config {
	return Config{
		Driver:         DriverMySQL,
		Host:           "localhost",
		Name:           "jeu",
		Table:          "jeu",
		IDColumn:       "id",
		NameColumn:     "Nom",
		NoteColumn:     "Note",
		MatchBy:        MatchByName,
		ConnectTimeout: 10 * time.Second,
	}
}

// Validate checks the parts of the config the gateway cannot work without
func (c Config) Validate() error {
	switch c.Driver {
	case DriverMySQL, DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Driver)
	}
	if c.Name == "" {
		return errors.New("database.name is required")
	}
	if c.Table == "" {
		return errors.New("database.table is required")
	}
	if c.NameColumn == "" || c.NoteColumn == "" {
		return errors.New("database.name_column and database.note_column are required")
	}
	switch c.MatchBy {
	case MatchByName:
	case MatchByID:
		if c.IDColumn == "" {
			return errors.New("database.id_column is required when matching by id")
		}
	default:
		return fmt.Errorf("unsupported match_by %q (want %q or %q)", c.MatchBy, MatchByName, MatchByID)
	}
	return nil
}

// DriverName is the name the driver registered itself under with database/sql
func (c Config) DriverName() string {
	if c.Driver == DriverPostgres {
		return "pgx"
	}
	return c.Driver
}

// DSN builds the data source name for the configured driver
func (c Config) DSN() string {
	switch c.Driver {
	case DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(c.hostOrDefault(), strconv.Itoa(c.portOrDefault()))
		mc.DBName = c.Name
		mc.Timeout = c.ConnectTimeout
		// report matched rows rather than changed rows, otherwise rewriting
		// the same note looks like a missing player
		mc.ClientFoundRows = true
		return mc.FormatDSN()
	case DriverPostgres:
		parts := []string{
			"host=" + pgQuote(c.hostOrDefault()),
			"port=" + strconv.Itoa(c.portOrDefault()),
			"dbname=" + pgQuote(c.Name),
		}
		if c.User != "" {
			parts = append(parts, "user="+pgQuote(c.User))
		}
		if c.Password != "" {
			parts = append(parts, "password="+pgQuote(c.Password))
		}
		if c.ConnectTimeout > 0 {
			parts = append(parts, "connect_timeout="+strconv.Itoa(int(c.ConnectTimeout.Seconds())))
		}
		return strings.Join(parts, " ")
	default:
		return c.Name
	}
}

func (c Config) hostOrDefault() string {
	if c.Host == "" {
		return "localhost"
	}
	return c.Host
}

func (c Config) portOrDefault() int {
	if c.Port > 0 {
		return c.Port
	}
	if c.Driver == DriverPostgres {
		return 5432
	}
	return 3306
}

// pgQuote quotes a keyword/value connection string value
func pgQuote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
