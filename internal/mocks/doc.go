// Package mocks provides centralized mock implementations for testing.
//
// Two styles are used. Service mocks carry a function field per method plus
// a DefaultError returned when the field is nil; they suit handler tests
// that only care about one call. Store mocks embed testify's mock.Mock so
// tests can assert on the exact calls made.
//
// Usage:
//
//	svc := &mocks.MockHeroService{
//	    ListHeroesFn: func(ctx context.Context) ([]*domain.Hero, error) {
//	        return nil, errors.New("connection reset")
//	    },
//	}
//
// This package must not import the packages whose interfaces it mocks, so
// those packages can use it from their own tests. Interface conformance is
// checked in mocks_test.go instead.
package mocks
