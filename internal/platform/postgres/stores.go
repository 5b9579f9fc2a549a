package postgres

import (
	"log/slog"

	"github.com/phrazzld/junction-api/internal/store"
)

// NewStores builds every PostgreSQL store bound to the same connection or
// transaction.
func NewStores(db store.DBTX, logger *slog.Logger) store.Stores {
	return store.Stores{
		Heroes:       NewPostgresHeroStore(db, logger),
		Powers:       NewPostgresPowerStore(db, logger),
		HeroPowers:   NewPostgresHeroPowerStore(db, logger),
		Vendors:      NewPostgresVendorStore(db, logger),
		Sweets:       NewPostgresSweetStore(db, logger),
		VendorSweets: NewPostgresVendorSweetStore(db, logger),
	}
}
