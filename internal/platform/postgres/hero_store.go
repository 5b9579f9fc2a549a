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

// PostgresHeroStore implements the store.HeroStore interface
// using a PostgreSQL database as the storage backend.
type PostgresHeroStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresHeroStore creates a new PostgreSQL implementation of the HeroStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresHeroStore(db store.DBTX, logger *slog.Logger) *PostgresHeroStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresHeroStore{
		db:     db,
		logger: logger.With(slog.String("component", "hero_store")),
	}
}

// Ensure PostgresHeroStore implements store.HeroStore interface
var _ store.HeroStore = (*PostgresHeroStore)(nil)

// Create implements store.HeroStore.Create
func (s *PostgresHeroStore) Create(ctx context.Context, hero *domain.Hero) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := hero.Validate(); err != nil {
		log.Warn("hero validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO heroes (name, super_name)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := s.db.QueryRowContext(ctx, query, hero.Name, hero.SuperName).Scan(&hero.ID); err != nil {
		log.Error("failed to create hero", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("hero created successfully", slog.Int64("hero_id", hero.ID))
	return nil
}

// GetByID implements store.HeroStore.GetByID
// Returns store.ErrHeroNotFound if the hero does not exist.
func (s *PostgresHeroStore) GetByID(ctx context.Context, id int64) (*domain.Hero, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving hero by ID", slog.Int64("hero_id", id))

	query := `
		SELECT id, name, super_name
		FROM heroes
		WHERE id = $1
	`

	var hero domain.Hero
	err := s.db.QueryRowContext(ctx, query, id).Scan(&hero.ID, &hero.Name, &hero.SuperName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("hero not found", slog.Int64("hero_id", id))
			return nil, store.ErrHeroNotFound
		}
		log.Error("failed to get hero by ID",
			slog.String("error", err.Error()),
			slog.Int64("hero_id", id))
		return nil, err
	}

	return &hero, nil
}

// List implements store.HeroStore.List
func (s *PostgresHeroStore) List(ctx context.Context) ([]*domain.Hero, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, super_name FROM heroes ORDER BY id`)
	if err != nil {
		log.Error("failed to list heroes", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	heroes := make([]*domain.Hero, 0)
	for rows.Next() {
		var hero domain.Hero
		if err := rows.Scan(&hero.ID, &hero.Name, &hero.SuperName); err != nil {
			log.Error("failed to scan hero row", slog.String("error", err.Error()))
			return nil, err
		}
		heroes = append(heroes, &hero)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating hero rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("heroes listed", slog.Int("count", len(heroes)))
	return heroes, nil
}

// Delete implements store.HeroStore.Delete
// The hero's hero powers are removed in the same statement.
// Returns store.ErrHeroNotFound if the hero does not exist.
func (s *PostgresHeroStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		WITH removed AS (
			DELETE FROM hero_powers WHERE hero_id = $1
		)
		DELETE FROM heroes WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete hero",
			slog.String("error", err.Error()),
			slog.Int64("hero_id", id))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrHeroNotFound); err != nil {
		log.Debug("hero not found for deletion", slog.Int64("hero_id", id))
		return err
	}

	log.Info("hero deleted successfully", slog.Int64("hero_id", id))
	return nil
}
