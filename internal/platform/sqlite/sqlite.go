// Copyright (c) 2026 Book Alchemy. All rights reserved.

// Package sqlite opens the file-based SQLite database that backs the catalog.
//
// # Architecture
//
// This package is part of the Infrastructure layer. It owns the physical
// [*sql.DB] handle; domain stores receive it through their constructors.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	// Registers the "sqlite3" database/sql driver.
	_ "github.com/mattn/go-sqlite3"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const (
	// driverName is the name registered by mattn/go-sqlite3.
	driverName = "sqlite3"
	// busyTimeoutMillis makes writers wait on a locked database instead of failing at once.
	busyTimeoutMillis = 5000
	// pingTimeout is the maximum duration for a health check ping.
	pingTimeout = 2 * time.Second
)

// Open creates the database file (and its directory) if needed, enables
// foreign keys and verifies the connection.
//
// # Parameters
//   - ctx: Context for the initial ping.
//   - path: A filesystem path or [MemoryPath].
//   - logger: Structured logger for connection events.
func Open(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open(driverName, DSN(path))
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open %s: %w", path, err)
	}

	// One connection serializes writers and keeps an in-memory database alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := Ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("sqlite database opened", slog.String("path", path))

	return db, nil
}

// DSN builds the go-sqlite3 connection string for path.
func DSN(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=%d", path, busyTimeoutMillis)
}

// Ping verifies that the database is reachable.
func Ping(ctx context.Context, db *sql.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("sqlite: ping failed: %w", err)
	}

	return nil
}
