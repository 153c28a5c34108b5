// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nagrapoonam/Book-Alchemy/internal/platform/migration"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/sqlite"
)

// Logger returns a logger that discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// NewDB opens a migrated in-memory database that is closed when t ends.
func NewDB(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sqlite.Open(context.Background(), sqlite.MemoryPath, Logger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migration.RunUp(db, Logger()))
	return db
}

// CountRows returns the number of rows in table.
func CountRows(t testing.TB, db *sql.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow("SELECT count(*) FROM "+table).Scan(&n))
	return n
}
