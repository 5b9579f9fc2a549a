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

// PostgresSweetStore implements the store.SweetStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSweetStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSweetStore creates a new PostgreSQL implementation of the SweetStore interface.
func NewPostgresSweetStore(db store.DBTX, logger *slog.Logger) *PostgresSweetStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSweetStore{
		db:     db,
		logger: logger.With(slog.String("component", "sweet_store")),
	}
}

var _ store.SweetStore = (*PostgresSweetStore)(nil)

// Create implements store.SweetStore.Create
func (s *PostgresSweetStore) Create(ctx context.Context, sweet *domain.Sweet) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := sweet.Validate(); err != nil {
		log.Warn("sweet validation failed during create", slog.String("error", err.Error()))
		return err
	}

	err := s.db.QueryRowContext(ctx, `INSERT INTO sweets (name) VALUES ($1) RETURNING id`, sweet.Name).
		Scan(&sweet.ID)
	if err != nil {
		log.Error("failed to create sweet", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("sweet created successfully", slog.Int64("sweet_id", sweet.ID))
	return nil
}

// GetByID implements store.SweetStore.GetByID
func (s *PostgresSweetStore) GetByID(ctx context.Context, id int64) (*domain.Sweet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var sweet domain.Sweet
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM sweets WHERE id = $1`, id).
		Scan(&sweet.ID, &sweet.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("sweet not found", slog.Int64("sweet_id", id))
			return nil, store.ErrSweetNotFound
		}
		log.Error("failed to get sweet by ID",
			slog.String("error", err.Error()),
			slog.Int64("sweet_id", id))
		return nil, err
	}
	return &sweet, nil
}

// List implements store.SweetStore.List
func (s *PostgresSweetStore) List(ctx context.Context) ([]*domain.Sweet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM sweets ORDER BY id`)
	if err != nil {
		log.Error("failed to list sweets", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	sweets := make([]*domain.Sweet, 0)
	for rows.Next() {
		var sweet domain.Sweet
		if err := rows.Scan(&sweet.ID, &sweet.Name); err != nil {
			return nil, err
		}
		sweets = append(sweets, &sweet)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating sweet rows", slog.String("error", err.Error()))
		return nil, err
	}
	return sweets, nil
}

// Delete implements store.SweetStore.Delete
// The sweet's vendor sweets are removed in the same statement.
func (s *PostgresSweetStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		WITH removed AS (
			DELETE FROM vendor_sweets WHERE sweet_id = $1
		)
		DELETE FROM sweets WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete sweet",
			slog.String("error", err.Error()),
			slog.Int64("sweet_id", id))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrSweetNotFound); err != nil {
		return err
	}

	log.Info("sweet deleted successfully", slog.Int64("sweet_id", id))
	return nil
}
