//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/junction-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 30 * time.Second

var (
	sharedOnce sync.Once
	sharedURL  string
	sharedErr  error
)

// GetTestDatabaseURL returns the database URL configured for tests, checking
// JUNCTION_TEST_DB_URL and then DATABASE_URL. Empty means none is configured.
func GetTestDatabaseURL() string {
	if url := os.Getenv("JUNCTION_TEST_DB_URL"); url != "" {
		return url
	}
	return os.Getenv("DATABASE_URL")
}

// GetTestDBWithT returns an open, migrated database connection and registers
// its cleanup with t.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	sharedOnce.Do(func() {
		sharedURL = GetTestDatabaseURL()
		if sharedURL == "" {
			sharedURL, sharedErr = startContainer(context.Background())
		}
	})
	require.NoError(t, sharedErr, "failed to provision test database")

	db, err := sql.Open("pgx", sharedURL)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "test database is not reachable")
	require.NoError(t, postgres.Migrate(ctx, db, postgres.MigrateUp, nil), "failed to migrate test database")

	return db
}
