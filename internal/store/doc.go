// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic: the PostgreSQL and in-memory
// implementations satisfy the same contracts, including validation of
// join entities before every write and cascading removal of join rows.
package store
