//go:build integration

// Package testdb provides utilities for PostgreSQL integration tests.
//
// GetTestDBWithT returns a migrated database: the one named by
// JUNCTION_TEST_DB_URL (or DATABASE_URL) when set, otherwise a throwaway
// container started with testcontainers-go. The container is shared by every
// test in the package binary and reaped when the binary exits.
//
// Tests isolate themselves with WithTx, which runs the test body inside a
// transaction that is always rolled back:
//
//	func TestHeroStore(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        stores := postgres.NewStores(tx, nil)
//	        // ...
//	    })
//	}
package testdb
