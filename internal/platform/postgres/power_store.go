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

// PostgresPowerStore implements the store.PowerStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPowerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPowerStore creates a new PostgreSQL implementation of the PowerStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresPowerStore(db store.DBTX, logger *slog.Logger) *PostgresPowerStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPowerStore{
		db:     db,
		logger: logger.With(slog.String("component", "power_store")),
	}
}

// Ensure PostgresPowerStore implements store.PowerStore interface
var _ store.PowerStore = (*PostgresPowerStore)(nil)

// Create implements store.PowerStore.Create
// Returns a domain validation error if the description is too short.
func (s *PostgresPowerStore) Create(ctx context.Context, power *domain.Power) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := power.Validate(); err != nil {
		log.Warn("power validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO powers (name, description)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := s.db.QueryRowContext(ctx, query, power.Name, power.Description).Scan(&power.ID); err != nil {
		log.Error("failed to create power", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("power created successfully", slog.Int64("power_id", power.ID))
	return nil
}

// GetByID implements store.PowerStore.GetByID
// Returns store.ErrPowerNotFound if the power does not exist.
func (s *PostgresPowerStore) GetByID(ctx context.Context, id int64) (*domain.Power, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving power by ID", slog.Int64("power_id", id))

	query := `
		SELECT id, name, description
		FROM powers
		WHERE id = $1
	`

	var power domain.Power
	err := s.db.QueryRowContext(ctx, query, id).Scan(&power.ID, &power.Name, &power.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("power not found", slog.Int64("power_id", id))
			return nil, store.ErrPowerNotFound
		}
		log.Error("failed to get power by ID",
			slog.String("error", err.Error()),
			slog.Int64("power_id", id))
		return nil, err
	}

	return &power, nil
}

// List implements store.PowerStore.List
func (s *PostgresPowerStore) List(ctx context.Context) ([]*domain.Power, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, description FROM powers ORDER BY id`)
	if err != nil {
		log.Error("failed to list powers", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	powers := make([]*domain.Power, 0)
	for rows.Next() {
		var power domain.Power
		if err := rows.Scan(&power.ID, &power.Name, &power.Description); err != nil {
			log.Error("failed to scan power row", slog.String("error", err.Error()))
			return nil, err
		}
		powers = append(powers, &power)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating power rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("powers listed", slog.Int("count", len(powers)))
	return powers, nil
}

// Update implements store.PowerStore.Update
// The description is validated before anything is written.
// Returns store.ErrPowerNotFound if the power does not exist.
func (s *PostgresPowerStore) Update(ctx context.Context, power *domain.Power) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := power.Validate(); err != nil {
		log.Warn("power validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("power_id", power.ID))
		return err
	}

	query := `
		UPDATE powers
		SET name = $1, description = $2
		WHERE id = $3
	`
	result, err := s.db.ExecContext(ctx, query, power.Name, power.Description, power.ID)
	if err != nil {
		log.Error("failed to update power",
			slog.String("error", err.Error()),
			slog.Int64("power_id", power.ID))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrPowerNotFound); err != nil {
		log.Debug("power not found for update", slog.Int64("power_id", power.ID))
		return err
	}

	log.Info("power updated successfully", slog.Int64("power_id", power.ID))
	return nil
}

// Delete implements store.PowerStore.Delete
// The power's hero powers are removed in the same statement.
// Returns store.ErrPowerNotFound if the power does not exist.
func (s *PostgresPowerStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		WITH removed AS (
			DELETE FROM hero_powers WHERE power_id = $1
		)
		DELETE FROM powers WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete power",
			slog.String("error", err.Error()),
			slog.Int64("power_id", id))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrPowerNotFound); err != nil {
		log.Debug("power not found for deletion", slog.Int64("power_id", id))
		return err
	}

	log.Info("power deleted successfully", slog.Int64("power_id", id))
	return nil
}
