// Package testhelper provides migrated record stores for repository tests.
package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/wordbook/internal/adapter/store"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetupSQLite opens a fresh SQLite database file in t.TempDir and applies
// all migrations. The store is closed via t.Cleanup.
func SetupSQLite(t *testing.T) *store.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	path := filepath.Join(t.TempDir(), "wordbook-test.db")
	sqlDB, err := sql.Open("sqlite3", "file:"+path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		t.Fatalf("testhelper: open sqlite: %v", err)
	}

	db, err := store.NewSQLite(ctx, sqlDB)
	if err != nil {
		t.Fatalf("testhelper: wrap sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.Migrate(ctx, quietLogger()); err != nil {
		t.Fatalf("testhelper: migrate sqlite: %v", err)
	}

	return db
}

// SetupPostgres starts a shared PostgreSQL container (once for the entire
// test run), applies goose migrations, and returns a store connected to it.
// Skipped in -short mode. The container lives until the process exits.
func SetupPostgres(t *testing.T) *store.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: postgres container skipped in -short mode")
	}

	once.Do(func() {
		sharedDSN, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, sharedDSN)
	if err != nil {
		t.Fatalf("testhelper: failed to create pgxpool: %v", err)
	}

	db, err := store.NewPostgres(ctx, pool)
	if err != nil {
		pool.Close()
		t.Fatalf("testhelper: wrap postgres: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func startContainerAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return "", fmt.Errorf("create pool: %w", err)
	}

	db, err := store.NewPostgres(ctx, pool)
	if err != nil {
		pool.Close()
		return "", fmt.Errorf("wrap postgres: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx, quietLogger()); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}

	return dsn, nil
}
