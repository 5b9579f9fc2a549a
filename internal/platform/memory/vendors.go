package memory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/junction-api/internal/domain"
	"github.com/phrazzld/junction-api/internal/platform/logger"
	"github.com/phrazzld/junction-api/internal/store"
)

const (
	tableVendors      = "vendors"
	tableSweets       = "sweets"
	tableVendorSweets = "vendor_sweets"
)

// VendorStore implements store.VendorStore over a DB.
type VendorStore struct {
	db     *DB
	logger *slog.Logger
}

var _ store.VendorStore = (*VendorStore)(nil)

func (s *VendorStore) Create(ctx context.Context, vendor *domain.Vendor) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if err := vendor.Validate(); err != nil {
		log.Warn("vendor validation failed during create", slog.String("error", err.Error()))
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	vendor.ID = s.db.allocate(tableVendors)
	s.db.vendors[vendor.ID] = domain.Vendor{ID: vendor.ID, Name: vendor.Name}

	log.Info("vendor created successfully", slog.Int64("vendor_id", vendor.ID))
	return nil
}

func (s *VendorStore) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	vendor, ok := s.db.vendors[id]
	if !ok {
		return nil, store.ErrVendorNotFound
	}
	return &vendor, nil
}

func (s *VendorStore) List(ctx context.Context) ([]*domain.Vendor, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	vendors := make([]*domain.Vendor, 0, len(s.db.vendors))
	for _, id := range sortedKeys(s.db.vendors) {
		vendor := s.db.vendors[id]
		vendors = append(vendors, &vendor)
	}
	return vendors, nil
}

// Delete removes the vendor and its vendor sweets under the same lock.
func (s *VendorStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.vendors[id]; !ok {
		return store.ErrVendorNotFound
	}
	removed := s.db.deleteVendorSweets(s.db.vsByVendor.ids(id))
	delete(s.db.vendors, id)

	log.Info("vendor deleted successfully",
		slog.Int64("vendor_id", id),
		slog.Int("vendor_sweets_removed", removed))
	return nil
}

// SweetStore implements store.SweetStore over a DB.
type SweetStore struct {
	db     *DB
	logger *slog.Logger
}

var _ store.SweetStore = (*SweetStore)(nil)

func (s *SweetStore) Create(ctx context.Context, sweet *domain.Sweet) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if err := sweet.Validate(); err != nil {
		log.Warn("sweet validation failed during create", slog.String("error", err.Error()))
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	sweet.ID = s.db.allocate(tableSweets)
	s.db.sweets[sweet.ID] = domain.Sweet{ID: sweet.ID, Name: sweet.Name}

	log.Info("sweet created successfully", slog.Int64("sweet_id", sweet.ID))
	return nil
}

func (s *SweetStore) GetByID(ctx context.Context, id int64) (*domain.Sweet, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	sweet, ok := s.db.sweets[id]
	if !ok {
		return nil, store.ErrSweetNotFound
	}
	return &sweet, nil
}

func (s *SweetStore) List(ctx context.Context) ([]*domain.Sweet, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	sweets := make([]*domain.Sweet, 0, len(s.db.sweets))
	for _, id := range sortedKeys(s.db.sweets) {
		sweet := s.db.sweets[id]
		sweets = append(sweets, &sweet)
	}
	return sweets, nil
}

// Delete removes the sweet and its vendor sweets under the same lock.
func (s *SweetStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.sweets[id]; !ok {
		return store.ErrSweetNotFound
	}
	removed := s.db.deleteVendorSweets(s.db.vsBySweet.ids(id))
	delete(s.db.sweets, id)

	log.Info("sweet deleted successfully",
		slog.Int64("sweet_id", id),
		slog.Int("vendor_sweets_removed", removed))
	return nil
}

// VendorSweetStore implements store.VendorSweetStore over a DB.
type VendorSweetStore struct {
	db     *DB
	logger *slog.Logger
}

var _ store.VendorSweetStore = (*VendorSweetStore)(nil)

// Create validates the price, checks both references and stores the row.
func (s *VendorSweetStore) Create(ctx context.Context, vs *domain.VendorSweet) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if err := vs.Validate(); err != nil {
		log.Warn("vendor sweet validation failed during create", slog.String("error", err.Error()))
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.sweets[vs.SweetID]; !ok {
		log.Warn("vendor sweet references a missing sweet", slog.Int64("sweet_id", vs.SweetID))
		return fmt.Errorf("%w: sweet %d does not exist", store.ErrInvalidEntity, vs.SweetID)
	}
	if _, ok := s.db.vendors[vs.VendorID]; !ok {
		log.Warn("vendor sweet references a missing vendor", slog.Int64("vendor_id", vs.VendorID))
		return fmt.Errorf("%w: vendor %d does not exist", store.ErrInvalidEntity, vs.VendorID)
	}

	vs.ID = s.db.allocate(tableVendorSweets)
	s.db.vendorSweets[vs.ID] = domain.VendorSweet{
		ID:       vs.ID,
		Price:    copyInt64(vs.Price),
		SweetID:  vs.SweetID,
		VendorID: vs.VendorID,
	}
	s.db.vsBySweet.add(vs.SweetID, vs.ID)
	s.db.vsByVendor.add(vs.VendorID, vs.ID)

	log.Info("vendor sweet created successfully",
		slog.Int64("vendor_sweet_id", vs.ID),
		slog.Int64("price", *vs.Price))
	return nil
}

func (s *VendorSweetStore) GetByID(ctx context.Context, id int64) (*domain.VendorSweet, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	vs, ok := s.db.vendorSweets[id]
	if !ok {
		return nil, store.ErrVendorSweetNotFound
	}
	return cloneVendorSweet(vs), nil
}

func (s *VendorSweetStore) ListByVendor(ctx context.Context, vendorID int64) ([]*domain.VendorSweet, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return s.collect(s.db.vsByVendor.ids(vendorID)), nil
}

func (s *VendorSweetStore) ListBySweet(ctx context.Context, sweetID int64) ([]*domain.VendorSweet, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return s.collect(s.db.vsBySweet.ids(sweetID)), nil
}

func (s *VendorSweetStore) collect(ids []int64) []*domain.VendorSweet {
	out := make([]*domain.VendorSweet, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneVendorSweet(s.db.vendorSweets[id]))
	}
	return out
}

func (s *VendorSweetStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if s.db.deleteVendorSweets([]int64{id}) == 0 {
		return store.ErrVendorSweetNotFound
	}
	log.Info("vendor sweet deleted successfully", slog.Int64("vendor_sweet_id", id))
	return nil
}

func (s *VendorSweetStore) DeleteAll(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	removed := len(s.db.vendorSweets)
	s.db.vendorSweets = make(map[int64]domain.VendorSweet)
	s.db.vsByVendor = make(fkIndex)
	s.db.vsBySweet = make(fkIndex)
	log.Info("vendor sweets cleared", slog.Int("count", removed))
	return nil
}

// deleteVendorSweets removes the given rows and their index entries.
// Callers must hold the write lock.
func (db *DB) deleteVendorSweets(ids []int64) int {
	removed := 0
	for _, id := range ids {
		row, ok := db.vendorSweets[id]
		if !ok {
			continue
		}
		db.vsBySweet.remove(row.SweetID, id)
		db.vsByVendor.remove(row.VendorID, id)
		delete(db.vendorSweets, id)
		removed++
	}
	return removed
}

func cloneVendorSweet(vs domain.VendorSweet) *domain.VendorSweet {
	vs.Price = copyInt64(vs.Price)
	return &vs
}
