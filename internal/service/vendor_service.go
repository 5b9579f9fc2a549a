package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/junction-api/internal/domain"
	"github.com/phrazzld/junction-api/internal/platform/logger"
	"github.com/phrazzld/junction-api/internal/store"
)

const vendorService = "vendor_service"

// VendorService provides the operations of the vendors model.
type VendorService interface {
	ListVendors(ctx context.Context) ([]*domain.Vendor, error)

	// GetVendor returns a vendor with its vendor sweets attached.
	GetVendor(ctx context.Context, id int64) (*domain.Vendor, error)

	ListSweets(ctx context.Context) ([]*domain.Sweet, error)

	GetSweet(ctx context.Context, id int64) (*domain.Sweet, error)

	// CreateVendorSweet validates and stores a vendor sweet and returns it
	// with its sweet and vendor attached. Both references are required.
	CreateVendorSweet(ctx context.Context, price any, sweetID, vendorID *int64) (*domain.VendorSweet, error)

	DeleteVendorSweet(ctx context.Context, id int64) error
}

type vendorServiceImpl struct {
	vendors      store.VendorStore
	sweets       store.SweetStore
	vendorSweets store.VendorSweetStore
	logger       *slog.Logger
}

// NewVendorService creates a VendorService over the vendors stores in stores.
func NewVendorService(stores store.Stores, logger *slog.Logger) (VendorService, error) {
	if stores.Vendors == nil || stores.Sweets == nil || stores.VendorSweets == nil {
		return nil, &ServiceError{
			Service:   vendorService,
			Operation: "create_service",
			Message:   "vendors, sweets and vendor sweets stores are required",
			Err:       ErrMissingDependency,
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &vendorServiceImpl{
		vendors:      stores.Vendors,
		sweets:       stores.Sweets,
		vendorSweets: stores.VendorSweets,
		logger:       logger.With("component", vendorService),
	}, nil
}

func (s *vendorServiceImpl) ListVendors(ctx context.Context) ([]*domain.Vendor, error) {
	vendors, err := s.vendors.List(ctx)
	if err != nil {
		return nil, newServiceError(vendorService, "list_vendors", "failed to list vendors", err)
	}
	return vendors, nil
}

func (s *vendorServiceImpl) GetVendor(ctx context.Context, id int64) (*domain.Vendor, error) {
	vendor, err := s.vendors.GetByID(ctx, id)
	if err != nil {
		return nil, newServiceError(vendorService, "get_vendor", "failed to get vendor", err)
	}

	vendor.VendorSweets, err = s.vendorSweets.ListByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, newServiceError(vendorService, "get_vendor", "failed to load vendor sweets", err)
	}
	return vendor, nil
}

func (s *vendorServiceImpl) ListSweets(ctx context.Context) ([]*domain.Sweet, error) {
	sweets, err := s.sweets.List(ctx)
	if err != nil {
		return nil, newServiceError(vendorService, "list_sweets", "failed to list sweets", err)
	}
	return sweets, nil
}

func (s *vendorServiceImpl) GetSweet(ctx context.Context, id int64) (*domain.Sweet, error) {
	sweet, err := s.sweets.GetByID(ctx, id)
	if err != nil {
		return nil, newServiceError(vendorService, "get_sweet", "failed to get sweet", err)
	}
	return sweet, nil
}

func (s *vendorServiceImpl) CreateVendorSweet(
	ctx context.Context,
	price any,
	sweetID, vendorID *int64,
) (*domain.VendorSweet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	vs, err := domain.NewVendorSweet(price, derefID(sweetID), derefID(vendorID))
	if err != nil {
		log.Warn("vendor sweet rejected", slog.String("error", err.Error()))
		return nil, err
	}
	if sweetID == nil || vendorID == nil {
		log.Warn("vendor sweet is missing a reference")
		return nil, fmt.Errorf("%w: sweet_id and vendor_id are required", store.ErrInvalidEntity)
	}

	if err := s.vendorSweets.Create(ctx, vs); err != nil {
		return nil, newServiceError(vendorService, "create_vendor_sweet", "failed to save vendor sweet", err)
	}

	if vs.Sweet, err = s.sweets.GetByID(ctx, vs.SweetID); err != nil {
		s.discardVendorSweet(ctx, vs.ID)
		return nil, newServiceError(vendorService, "create_vendor_sweet", "failed to load sweet", err)
	}
	if vs.Vendor, err = s.vendors.GetByID(ctx, vs.VendorID); err != nil {
		s.discardVendorSweet(ctx, vs.ID)
		return nil, newServiceError(vendorService, "create_vendor_sweet", "failed to load vendor", err)
	}
	return vs, nil
}

// discardVendorSweet removes a vendor sweet whose creation could not be completed.
func (s *vendorServiceImpl) discardVendorSweet(ctx context.Context, id int64) {
	if err := s.vendorSweets.Delete(ctx, id); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to discard vendor sweet",
			slog.Int64("vendor_sweet_id", id),
			slog.String("error", err.Error()))
	}
}

func (s *vendorServiceImpl) DeleteVendorSweet(ctx context.Context, id int64) error {
	err := s.vendorSweets.Delete(ctx, id)
	return newServiceError(vendorService, "delete_vendor_sweet", "failed to delete vendor sweet", err)
}

func derefID(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}
