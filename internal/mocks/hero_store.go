package mocks

import (
	"context"

	"github.com/phrazzld/junction-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

// TestifyMockHeroStore is a mock of store.HeroStore interface for use with testify/mock
type TestifyMockHeroStore struct {
	mock.Mock
}

// Create is a mock implementation of store.HeroStore.Create
func (m *TestifyMockHeroStore) Create(ctx context.Context, hero *domain.Hero) error {
	args := m.Called(ctx, hero)
	return args.Error(0)
}

// GetByID is a mock implementation of store.HeroStore.GetByID
func (m *TestifyMockHeroStore) GetByID(ctx context.Context, id int64) (*domain.Hero, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hero), args.Error(1)
}

// List is a mock implementation of store.HeroStore.List
func (m *TestifyMockHeroStore) List(ctx context.Context) ([]*domain.Hero, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Hero), args.Error(1)
}

// Delete is a mock implementation of store.HeroStore.Delete
func (m *TestifyMockHeroStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
