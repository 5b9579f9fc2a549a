// Package service contains the application use cases for both data models.
// It orchestrates the stores defined in internal/store: primary entities and
// their associations are loaded in explicit steps (join rows by foreign key,
// then the entities they reference), and writes go through the domain
// constructors so field rules run before anything reaches a store.
//
// The service layer depends on domain entities and store interfaces, never on
// a specific storage implementation.
package service
