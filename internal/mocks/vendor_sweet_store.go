package mocks

import (
	"context"

	"github.com/phrazzld/junction-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

// TestifyMockVendorSweetStore is a mock of store.VendorSweetStore interface for use with testify/mock
type TestifyMockVendorSweetStore struct {
	mock.Mock
}

// Create is a mock implementation of store.VendorSweetStore.Create
func (m *TestifyMockVendorSweetStore) Create(ctx context.Context, vs *domain.VendorSweet) error {
	args := m.Called(ctx, vs)
	return args.Error(0)
}

// GetByID is a mock implementation of store.VendorSweetStore.GetByID
func (m *TestifyMockVendorSweetStore) GetByID(ctx context.Context, id int64) (*domain.VendorSweet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VendorSweet), args.Error(1)
}

// ListByVendor is a mock implementation of store.VendorSweetStore.ListByVendor
func (m *TestifyMockVendorSweetStore) ListByVendor(ctx context.Context, vendorID int64) ([]*domain.VendorSweet, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.VendorSweet), args.Error(1)
}

// ListBySweet is a mock implementation of store.VendorSweetStore.ListBySweet
func (m *TestifyMockVendorSweetStore) ListBySweet(ctx context.Context, sweetID int64) ([]*domain.VendorSweet, error) {
	args := m.Called(ctx, sweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.VendorSweet), args.Error(1)
}

// Delete is a mock implementation of store.VendorSweetStore.Delete
func (m *TestifyMockVendorSweetStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// DeleteAll is a mock implementation of store.VendorSweetStore.DeleteAll
func (m *TestifyMockVendorSweetStore) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
