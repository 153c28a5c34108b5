// Copyright (c) 2026 Book Alchemy. All rights reserved.

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nagrapoonam/Book-Alchemy/internal/platform/config"
)

/*
TestLoadFrom_Defaults checks the defaults with no dotenv file present.
*/
func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "5002", cfg.ServerPort)
	assert.Equal(t, "data/library.sqlite3", cfg.DatabasePath)
	assert.Equal(t, "https://openlibrary.org", cfg.LookupBaseURL)
	assert.Equal(t, 10*time.Second, cfg.LookupTimeout)
	assert.Equal(t, 1.0, cfg.LookupRPS)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.CacheEnabled())
}

/*
TestLoadFrom_EnvFile reads values from a dotenv file while real
environment variables keep precedence.
*/
func TestLoadFrom_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	content := "DATABASE_PATH=/tmp/catalog.sqlite3\nREDIS_URL=redis://localhost:6379/0\nSERVER_PORT=9000\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	// godotenv sets process variables; make sure they are restored afterwards.
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("REDIS_URL", "")
	require.NoError(t, os.Unsetenv("DATABASE_PATH"))
	require.NoError(t, os.Unsetenv("REDIS_URL"))

	cfg, err := config.LoadFrom(envFile)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.ServerPort)
	assert.Equal(t, "/tmp/catalog.sqlite3", cfg.DatabasePath)
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadFrom_InvalidCoverTemplate(t *testing.T) {
	t.Setenv("COVER_URL_TEMPLATE", "https://covers.example/no-verb.jpg")

	_, err := config.LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
