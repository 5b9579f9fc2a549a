// Package memory provides an in-process implementation of the store
// interfaces. Rows live in per-table maps keyed by ID (the arena), and every
// foreign key has a reverse index from the referenced ID to the set of join
// row IDs, so cascading deletes and association lookups only touch matching
// rows.
//
// It is selected with database.driver=memory and backs the API tests.
package memory
