// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in internal/store, together with the embedded goose
// migrations that create their schema.
//
// Every store works against store.DBTX, so the same code runs on a pooled
// *sql.DB or inside a *sql.Tx. Deleting a hero, power, vendor or sweet removes
// its join rows in the same statement; every foreign key column is indexed so
// that cascade stays cheap.
package postgres
