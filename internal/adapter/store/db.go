// Package store is the record store: a transactional SQL layer over SQLite
// or PostgreSQL shared by all repositories.
package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver for database/sql

	"github.com/heartmarshall/wordbook/internal/config"
)

// DB wraps the database handle with its dialect.
type DB struct {
	sql     *sql.DB
	pool    *pgxpool.Pool
	dialect Dialect
}

// Open connects to the store selected by cfg.Driver, pings it and applies
// dialect-specific connection settings. Migrations are not applied; call
// Migrate for that.
func Open(ctx context.Context, cfg config.StoreConfig, dbCfg config.DatabaseConfig) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := NewPool(ctx, dbCfg)
		if err != nil {
			return nil, err
		}
		return wrap(ctx, stdlib.OpenDBFromPool(pool), pool, postgresDialect{})
	case config.DriverSQLite, "":
		sqlDB, err := sql.Open("sqlite3", sqliteDSN(cfg.SQLitePath))
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		return wrap(ctx, sqlDB, nil, sqliteDialect{})
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}

// NewSQLite wraps an already opened sqlite3 handle. Used by tests.
func NewSQLite(ctx context.Context, sqlDB *sql.DB) (*DB, error) {
	return wrap(ctx, sqlDB, nil, sqliteDialect{})
}

// NewPostgres wraps a pgx pool through the pgx database/sql adapter.
func NewPostgres(ctx context.Context, pool *pgxpool.Pool) (*DB, error) {
	return wrap(ctx, stdlib.OpenDBFromPool(pool), pool, postgresDialect{})
}

func wrap(ctx context.Context, sqlDB *sql.DB, pool *pgxpool.Pool, d Dialect) (*DB, error) {
	if err := d.ConfigureConnection(sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("configure %s connection: %w", d.Name(), err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", d.Name(), err)
	}
	return &DB{sql: sqlDB, pool: pool, dialect: d}, nil
}

// SQL returns the underlying database handle.
func (db *DB) SQL() *sql.DB { return db.sql }

// Dialect returns the engine dialect.
func (db *DB) Dialect() Dialect { return db.dialect }

// Builder returns a squirrel statement builder with the dialect's placeholders.
func (db *DB) Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.Placeholder())
}

// Ping checks that the store is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.sql.PingContext(ctx)
}

// Close releases the database handle and, for PostgreSQL, the pool.
func (db *DB) Close() error {
	err := db.sql.Close()
	if db.pool != nil {
		db.pool.Close()
	}
	return err
}
