package store

import (
	"context"

	"github.com/phrazzld/junction-api/internal/domain"
)

// VendorStore defines the interface for vendor persistence.
type VendorStore interface {
	Create(ctx context.Context, vendor *domain.Vendor) error

	// GetByID returns ErrVendorNotFound if the vendor does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Vendor, error)

	List(ctx context.Context) ([]*domain.Vendor, error)

	// Delete removes a vendor together with its vendor sweets.
	Delete(ctx context.Context, id int64) error
}

// SweetStore defines the interface for sweet persistence.
type SweetStore interface {
	Create(ctx context.Context, sweet *domain.Sweet) error

	// GetByID returns ErrSweetNotFound if the sweet does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Sweet, error)

	List(ctx context.Context) ([]*domain.Sweet, error)

	// Delete removes a sweet together with its vendor sweets.
	Delete(ctx context.Context, id int64) error
}

// VendorSweetStore defines the interface for the vendor/sweet join entity.
type VendorSweetStore interface {
	// Create validates and saves a new vendor sweet, assigning its ID.
	// Returns a domain validation error if the price is absent or negative and
	// ErrInvalidEntity if the vendor or sweet does not exist.
	Create(ctx context.Context, vs *domain.VendorSweet) error

	// GetByID returns ErrVendorSweetNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.VendorSweet, error)

	ListByVendor(ctx context.Context, vendorID int64) ([]*domain.VendorSweet, error)

	ListBySweet(ctx context.Context, sweetID int64) ([]*domain.VendorSweet, error)

	// Delete removes a vendor sweet.
	// Returns ErrVendorSweetNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	DeleteAll(ctx context.Context) error
}
