package memory

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/phrazzld/junction-api/internal/domain"
	"github.com/phrazzld/junction-api/internal/store"
)

// fkIndex maps a referenced row ID to the IDs of the join rows pointing at it.
type fkIndex map[int64]map[int64]struct{}

func (ix fkIndex) add(parentID, rowID int64) {
	set, ok := ix[parentID]
	if !ok {
		set = make(map[int64]struct{})
		ix[parentID] = set
	}
	set[rowID] = struct{}{}
}

func (ix fkIndex) remove(parentID, rowID int64) {
	set, ok := ix[parentID]
	if !ok {
		return
	}
	delete(set, rowID)
	if len(set) == 0 {
		delete(ix, parentID)
	}
}

// ids returns the join row IDs for parentID in ascending order.
func (ix fkIndex) ids(parentID int64) []int64 {
	set := ix[parentID]
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// DB holds every table of both data models. All stores created from the same
// DB share its lock, so each store call is atomic with respect to the others.
type DB struct {
	mu sync.RWMutex

	heroes     map[int64]domain.Hero
	powers     map[int64]domain.Power
	heroPowers map[int64]domain.HeroPower
	hpByHero   fkIndex
	hpByPower  fkIndex

	vendors      map[int64]domain.Vendor
	sweets       map[int64]domain.Sweet
	vendorSweets map[int64]domain.VendorSweet
	vsByVendor   fkIndex
	vsBySweet    fkIndex

	nextID map[string]int64
}

// NewDB creates an empty database.
func NewDB() *DB {
	return &DB{
		heroes:       make(map[int64]domain.Hero),
		powers:       make(map[int64]domain.Power),
		heroPowers:   make(map[int64]domain.HeroPower),
		hpByHero:     make(fkIndex),
		hpByPower:    make(fkIndex),
		vendors:      make(map[int64]domain.Vendor),
		sweets:       make(map[int64]domain.Sweet),
		vendorSweets: make(map[int64]domain.VendorSweet),
		vsByVendor:   make(fkIndex),
		vsBySweet:    make(fkIndex),
		nextID:       make(map[string]int64),
	}
}

// allocate returns the next ID for table. IDs start at 1 and are never reused.
// Callers must hold the write lock.
func (db *DB) allocate(table string) int64 {
	db.nextID[table]++
	return db.nextID[table]
}

// NewStores builds every store over db.
func NewStores(db *DB, logger *slog.Logger) store.Stores {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return store.Stores{
		Heroes:       &HeroStore{db: db, logger: logger.With(slog.String("component", "hero_store"))},
		Powers:       &PowerStore{db: db, logger: logger.With(slog.String("component", "power_store"))},
		HeroPowers:   &HeroPowerStore{db: db, logger: logger.With(slog.String("component", "hero_power_store"))},
		Vendors:      &VendorStore{db: db, logger: logger.With(slog.String("component", "vendor_store"))},
		Sweets:       &SweetStore{db: db, logger: logger.With(slog.String("component", "sweet_store"))},
		VendorSweets: &VendorSweetStore{db: db, logger: logger.With(slog.String("component", "vendor_sweet_store"))},
	}
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
