package store

import (
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
)

// Dialect isolates the SQL differences between the supported engines.
type Dialect interface {
	// Name returns the store driver name (sqlite or postgres).
	Name() string

	// Placeholder returns the squirrel placeholder format of the engine.
	Placeholder() sq.PlaceholderFormat

	// GooseDialect returns the goose dialect used for migrations.
	GooseDialect() goose.Dialect

	// MigrationsSubdir returns the embedded migrations directory.
	MigrationsSubdir() string

	// JSONArrayContains returns a predicate that is true when the JSON
	// array stored in column contains the single bound string value.
	JSONArrayContains(column string) string

	// ConfigureConnection applies engine-specific pool settings.
	ConfigureConnection(db *sql.DB) error
}

// ---------------------------------------------------------------------------
// SQLite
// ---------------------------------------------------------------------------

type sqliteDialect struct{}

func (sqliteDialect) Name() string                      { return "sqlite" }
func (sqliteDialect) Placeholder() sq.PlaceholderFormat { return sq.Question }
func (sqliteDialect) GooseDialect() goose.Dialect       { return goose.DialectSQLite3 }
func (sqliteDialect) MigrationsSubdir() string          { return "migrations/sqlite" }

func (sqliteDialect) JSONArrayContains(column string) string {
	return fmt.Sprintf("EXISTS (SELECT 1 FROM json_each(%s) WHERE json_each.value = ?)", column)
}

// ConfigureConnection pins the pool to a single connection: SQLite allows
// one writer at a time and the app is single-user.
func (sqliteDialect) ConfigureConnection(db *sql.DB) error {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	return nil
}

func sqliteDSN(path string) string {
	return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL"
}

// ---------------------------------------------------------------------------
// PostgreSQL
// ---------------------------------------------------------------------------

type postgresDialect struct{}

func (postgresDialect) Name() string                      { return "postgres" }
func (postgresDialect) Placeholder() sq.PlaceholderFormat { return sq.Dollar }
func (postgresDialect) GooseDialect() goose.Dialect       { return goose.DialectPostgres }
func (postgresDialect) MigrationsSubdir() string          { return "migrations/postgres" }

func (postgresDialect) JSONArrayContains(column string) string {
	return column + " @> jsonb_build_array(?::text)"
}

// ConfigureConnection only tunes idle handling; the pgx pool owns connection limits.
func (postgresDialect) ConfigureConnection(db *sql.DB) error {
	db.SetConnMaxIdleTime(5 * time.Minute)
	return nil
}
