package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/junction-api/internal/domain"
	"github.com/phrazzld/junction-api/internal/platform/logger"
	"github.com/phrazzld/junction-api/internal/store"
)

// PostgresVendorSweetStore implements the store.VendorSweetStore interface
// using a PostgreSQL database as the storage backend.
type PostgresVendorSweetStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresVendorSweetStore creates a new PostgreSQL implementation of the VendorSweetStore interface.
func NewPostgresVendorSweetStore(db store.DBTX, logger *slog.Logger) *PostgresVendorSweetStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresVendorSweetStore{
		db:     db,
		logger: logger.With(slog.String("component", "vendor_sweet_store")),
	}
}

var _ store.VendorSweetStore = (*PostgresVendorSweetStore)(nil)

const vendorSweetColumns = `id, price, sweet_id, vendor_id`

// Create implements store.VendorSweetStore.Create
// Returns a domain validation error if the price is absent or negative.
// Returns store.ErrInvalidEntity if the vendor or sweet does not exist.
func (s *PostgresVendorSweetStore) Create(ctx context.Context, vs *domain.VendorSweet) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := vs.Validate(); err != nil {
		log.Warn("vendor sweet validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO vendor_sweets (price, sweet_id, vendor_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, *vs.Price, vs.SweetID, vs.VendorID).Scan(&vs.ID)
	if err != nil {
		switch {
		case IsForeignKeyViolation(err):
			log.Warn("foreign key violation during vendor sweet creation",
				slog.String("error", err.Error()),
				slog.Int64("sweet_id", vs.SweetID),
				slog.Int64("vendor_id", vs.VendorID))
		case IsNotNullViolation(err):
			log.Warn("not null violation during vendor sweet creation",
				slog.String("error", err.Error()))
		default:
			log.Error("failed to create vendor sweet", slog.String("error", err.Error()))
		}
		return MapError(err)
	}

	log.Info("vendor sweet created successfully",
		slog.Int64("vendor_sweet_id", vs.ID),
		slog.Int64("price", *vs.Price))
	return nil
}

// GetByID implements store.VendorSweetStore.GetByID
func (s *PostgresVendorSweetStore) GetByID(ctx context.Context, id int64) (*domain.VendorSweet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, `SELECT `+vendorSweetColumns+` FROM vendor_sweets WHERE id = $1`, id)
	vs, err := scanVendorSweet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("vendor sweet not found", slog.Int64("vendor_sweet_id", id))
			return nil, store.ErrVendorSweetNotFound
		}
		log.Error("failed to get vendor sweet by ID",
			slog.String("error", err.Error()),
			slog.Int64("vendor_sweet_id", id))
		return nil, err
	}
	return vs, nil
}

// ListByVendor implements store.VendorSweetStore.ListByVendor
func (s *PostgresVendorSweetStore) ListByVendor(ctx context.Context, vendorID int64) ([]*domain.VendorSweet, error) {
	return s.listBy(ctx, "vendor_id", vendorID)
}

// ListBySweet implements store.VendorSweetStore.ListBySweet
func (s *PostgresVendorSweetStore) ListBySweet(ctx context.Context, sweetID int64) ([]*domain.VendorSweet, error) {
	return s.listBy(ctx, "sweet_id", sweetID)
}

func (s *PostgresVendorSweetStore) listBy(ctx context.Context, column string, id int64) ([]*domain.VendorSweet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + vendorSweetColumns + ` FROM vendor_sweets WHERE ` + column + ` = $1 ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		log.Error("failed to list vendor sweets",
			slog.String("error", err.Error()),
			slog.String("by", column),
			slog.Int64("id", id))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make([]*domain.VendorSweet, 0)
	for rows.Next() {
		vs, err := scanVendorSweet(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, vs)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating vendor sweet rows", slog.String("error", err.Error()))
		return nil, err
	}
	return result, nil
}

// Delete implements store.VendorSweetStore.Delete
// Returns store.ErrVendorSweetNotFound if the vendor sweet does not exist.
func (s *PostgresVendorSweetStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM vendor_sweets WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete vendor sweet",
			slog.String("error", err.Error()),
			slog.Int64("vendor_sweet_id", id))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrVendorSweetNotFound); err != nil {
		log.Debug("vendor sweet not found for deletion", slog.Int64("vendor_sweet_id", id))
		return err
	}

	log.Info("vendor sweet deleted successfully", slog.Int64("vendor_sweet_id", id))
	return nil
}

// DeleteAll implements store.VendorSweetStore.DeleteAll
func (s *PostgresVendorSweetStore) DeleteAll(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM vendor_sweets`)
	if err != nil {
		log.Error("failed to clear vendor sweets", slog.String("error", err.Error()))
		return MapError(err)
	}
	removed, _ := result.RowsAffected()
	log.Info("vendor sweets cleared", slog.Int64("count", removed))
	return nil
}

func scanVendorSweet(row rowScanner) (*domain.VendorSweet, error) {
	var (
		vs    domain.VendorSweet
		price int64
	)
	if err := row.Scan(&vs.ID, &price, &vs.SweetID, &vs.VendorID); err != nil {
		return nil, err
	}
	vs.Price = &price
	return &vs, nil
}
