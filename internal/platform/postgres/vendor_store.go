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

// PostgresVendorStore implements the store.VendorStore interface
// using a PostgreSQL database as the storage backend.
type PostgresVendorStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresVendorStore creates a new PostgreSQL implementation of the VendorStore interface.
func NewPostgresVendorStore(db store.DBTX, logger *slog.Logger) *PostgresVendorStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresVendorStore{
		db:     db,
		logger: logger.With(slog.String("component", "vendor_store")),
	}
}

var _ store.VendorStore = (*PostgresVendorStore)(nil)

// Create implements store.VendorStore.Create
func (s *PostgresVendorStore) Create(ctx context.Context, vendor *domain.Vendor) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := vendor.Validate(); err != nil {
		log.Warn("vendor validation failed during create", slog.String("error", err.Error()))
		return err
	}

	err := s.db.QueryRowContext(ctx, `INSERT INTO vendors (name) VALUES ($1) RETURNING id`, vendor.Name).
		Scan(&vendor.ID)
	if err != nil {
		log.Error("failed to create vendor", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("vendor created successfully", slog.Int64("vendor_id", vendor.ID))
	return nil
}

// GetByID implements store.VendorStore.GetByID
func (s *PostgresVendorStore) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var vendor domain.Vendor
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM vendors WHERE id = $1`, id).
		Scan(&vendor.ID, &vendor.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("vendor not found", slog.Int64("vendor_id", id))
			return nil, store.ErrVendorNotFound
		}
		log.Error("failed to get vendor by ID",
			slog.String("error", err.Error()),
			slog.Int64("vendor_id", id))
		return nil, err
	}
	return &vendor, nil
}

// List implements store.VendorStore.List
func (s *PostgresVendorStore) List(ctx context.Context) ([]*domain.Vendor, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM vendors ORDER BY id`)
	if err != nil {
		log.Error("failed to list vendors", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	vendors := make([]*domain.Vendor, 0)
	for rows.Next() {
		var vendor domain.Vendor
		if err := rows.Scan(&vendor.ID, &vendor.Name); err != nil {
			return nil, err
		}
		vendors = append(vendors, &vendor)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating vendor rows", slog.String("error", err.Error()))
		return nil, err
	}
	return vendors, nil
}

// Delete implements store.VendorStore.Delete
// The vendor's vendor sweets are removed in the same statement.
func (s *PostgresVendorStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		WITH removed AS (
			DELETE FROM vendor_sweets WHERE vendor_id = $1
		)
		DELETE FROM vendors WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete vendor",
			slog.String("error", err.Error()),
			slog.Int64("vendor_id", id))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrVendorNotFound); err != nil {
		return err
	}

	log.Info("vendor deleted successfully", slog.Int64("vendor_id", id))
	return nil
}
