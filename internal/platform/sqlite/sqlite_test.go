// Copyright (c) 2026 Book Alchemy. All rights reserved.

package sqlite_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nagrapoonam/Book-Alchemy/internal/platform/sqlite"
)

/*
TestOpen_CreatesFileAndEnablesForeignKeys opens a database in a nested
directory that does not exist yet.
*/
func TestOpen_CreatesFileAndEnablesForeignKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "library.sqlite3")
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	db, err := sqlite.Open(context.Background(), path, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var foreignKeys int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&foreignKeys))
	assert.Equal(t, 1, foreignKeys)

	_, err = os.Stat(path)
	assert.NoError(t, err)

	assert.NoError(t, sqlite.Ping(context.Background(), db))
}

func TestDSN(t *testing.T) {
	assert.Equal(t, "file::memory:?_foreign_keys=on&_busy_timeout=5000", sqlite.DSN(sqlite.MemoryPath))
}
