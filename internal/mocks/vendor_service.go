package mocks

import (
	"context"

	"github.com/phrazzld/junction-api/internal/domain"
)

// MockVendorService implements service.VendorService for testing
type MockVendorService struct {
	ListVendorsFn       func(ctx context.Context) ([]*domain.Vendor, error)
	GetVendorFn         func(ctx context.Context, id int64) (*domain.Vendor, error)
	ListSweetsFn        func(ctx context.Context) ([]*domain.Sweet, error)
	GetSweetFn          func(ctx context.Context, id int64) (*domain.Sweet, error)
	CreateVendorSweetFn func(ctx context.Context, price any, sweetID, vendorID *int64) (*domain.VendorSweet, error)
	DeleteVendorSweetFn func(ctx context.Context, id int64) error

	DefaultError error
}

// ListVendors implements the VendorService.ListVendors method
func (m *MockVendorService) ListVendors(ctx context.Context) ([]*domain.Vendor, error) {
	if m.ListVendorsFn != nil {
		return m.ListVendorsFn(ctx)
	}
	return nil, m.DefaultError
}

// GetVendor implements the VendorService.GetVendor method
func (m *MockVendorService) GetVendor(ctx context.Context, id int64) (*domain.Vendor, error) {
	if m.GetVendorFn != nil {
		return m.GetVendorFn(ctx, id)
	}
	return nil, m.DefaultError
}

// ListSweets implements the VendorService.ListSweets method
func (m *MockVendorService) ListSweets(ctx context.Context) ([]*domain.Sweet, error) {
	if m.ListSweetsFn != nil {
		return m.ListSweetsFn(ctx)
	}
	return nil, m.DefaultError
}

// GetSweet implements the VendorService.GetSweet method
func (m *MockVendorService) GetSweet(ctx context.Context, id int64) (*domain.Sweet, error) {
	if m.GetSweetFn != nil {
		return m.GetSweetFn(ctx, id)
	}
	return nil, m.DefaultError
}

// CreateVendorSweet implements the VendorService.CreateVendorSweet method
func (m *MockVendorService) CreateVendorSweet(
	ctx context.Context,
	price any,
	sweetID, vendorID *int64,
) (*domain.VendorSweet, error) {
	if m.CreateVendorSweetFn != nil {
		return m.CreateVendorSweetFn(ctx, price, sweetID, vendorID)
	}
	return nil, m.DefaultError
}

// DeleteVendorSweet implements the VendorService.DeleteVendorSweet method
func (m *MockVendorService) DeleteVendorSweet(ctx context.Context, id int64) error {
	if m.DeleteVendorSweetFn != nil {
		return m.DeleteVendorSweetFn(ctx, id)
	}
	return m.DefaultError
}
