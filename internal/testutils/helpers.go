package testutils

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTempConfigFile writes content to config.yaml in a fresh temporary
// directory and returns the file path. The directory is removed when the
// test completes.
func CreateTempConfigFile(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err, "Failed to create temporary config file")
	return configPath
}

// AssertCloseNoError ensures that the Close() method on the provided closer
// executes without error. It uses assert.NoError to allow subsequent defers
// to run even if this one fails.
//
// Usage:
//
//	db, err := sql.Open("pgx", dbURL)
//	require.NoError(t, err)
//	defer testutils.AssertCloseNoError(t, db)
func AssertCloseNoError(t *testing.T, closer io.Closer) {
	t.Helper()
	if closer == nil {
		return
	}
	err := closer.Close()
	assert.NoError(t, err, "Deferred Close() failed for %T", closer)
}
