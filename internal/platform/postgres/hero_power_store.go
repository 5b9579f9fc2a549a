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

// PostgresHeroPowerStore implements the store.HeroPowerStore interface
// using a PostgreSQL database as the storage backend.
type PostgresHeroPowerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresHeroPowerStore creates a new PostgreSQL implementation of the HeroPowerStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresHeroPowerStore(db store.DBTX, logger *slog.Logger) *PostgresHeroPowerStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresHeroPowerStore{
		db:     db,
		logger: logger.With(slog.String("component", "hero_power_store")),
	}
}

// Ensure PostgresHeroPowerStore implements store.HeroPowerStore interface
var _ store.HeroPowerStore = (*PostgresHeroPowerStore)(nil)

const heroPowerColumns = `id, strength, hero_id, power_id`

// Create implements store.HeroPowerStore.Create
// Returns a domain validation error if the strength is invalid.
// Returns store.ErrInvalidEntity if the hero or power does not exist.
func (s *PostgresHeroPowerStore) Create(ctx context.Context, hp *domain.HeroPower) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := hp.Validate(); err != nil {
		log.Warn("hero power validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO hero_powers (strength, hero_id, power_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, hp.Strength, nullableID(hp.HeroID), nullableID(hp.PowerID)).
		Scan(&hp.ID)
	if err != nil {
		switch {
		case IsForeignKeyViolation(err):
			log.Warn("foreign key violation during hero power creation",
				slog.String("error", err.Error()))
		case IsNotNullViolation(err):
			log.Warn("not null violation during hero power creation",
				slog.String("error", err.Error()))
		default:
			log.Error("failed to create hero power", slog.String("error", err.Error()))
		}
		return MapError(err)
	}

	log.Info("hero power created successfully",
		slog.Int64("hero_power_id", hp.ID),
		slog.String("strength", hp.Strength))
	return nil
}

// GetByID implements store.HeroPowerStore.GetByID
// Returns store.ErrHeroPowerNotFound if the hero power does not exist.
func (s *PostgresHeroPowerStore) GetByID(ctx context.Context, id int64) (*domain.HeroPower, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, `SELECT `+heroPowerColumns+` FROM hero_powers WHERE id = $1`, id)
	hp, err := scanHeroPower(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("hero power not found", slog.Int64("hero_power_id", id))
			return nil, store.ErrHeroPowerNotFound
		}
		log.Error("failed to get hero power by ID",
			slog.String("error", err.Error()),
			slog.Int64("hero_power_id", id))
		return nil, err
	}
	return hp, nil
}

// ListByHero implements store.HeroPowerStore.ListByHero
func (s *PostgresHeroPowerStore) ListByHero(ctx context.Context, heroID int64) ([]*domain.HeroPower, error) {
	return s.listBy(ctx, "hero_id", heroID)
}

// ListByPower implements store.HeroPowerStore.ListByPower
func (s *PostgresHeroPowerStore) ListByPower(ctx context.Context, powerID int64) ([]*domain.HeroPower, error) {
	return s.listBy(ctx, "power_id", powerID)
}

// listBy lists the rows whose column matches id. column is always one of the
// two fixed foreign key names, never caller input.
func (s *PostgresHeroPowerStore) listBy(ctx context.Context, column string, id int64) ([]*domain.HeroPower, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + heroPowerColumns + ` FROM hero_powers WHERE ` + column + ` = $1 ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		log.Error("failed to list hero powers",
			slog.String("error", err.Error()),
			slog.String("by", column),
			slog.Int64("id", id))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make([]*domain.HeroPower, 0)
	for rows.Next() {
		hp, err := scanHeroPower(rows)
		if err != nil {
			log.Error("failed to scan hero power row", slog.String("error", err.Error()))
			return nil, err
		}
		result = append(result, hp)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating hero power rows", slog.String("error", err.Error()))
		return nil, err
	}
	return result, nil
}

// Delete implements store.HeroPowerStore.Delete
// Returns store.ErrHeroPowerNotFound if the hero power does not exist.
func (s *PostgresHeroPowerStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM hero_powers WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete hero power",
			slog.String("error", err.Error()),
			slog.Int64("hero_power_id", id))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrHeroPowerNotFound); err != nil {
		return err
	}

	log.Info("hero power deleted successfully", slog.Int64("hero_power_id", id))
	return nil
}

// DeleteAll implements store.HeroPowerStore.DeleteAll
func (s *PostgresHeroPowerStore) DeleteAll(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM hero_powers`)
	if err != nil {
		log.Error("failed to clear hero powers", slog.String("error", err.Error()))
		return MapError(err)
	}
	removed, _ := result.RowsAffected()
	log.Info("hero powers cleared", slog.Int64("count", removed))
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHeroPower(row rowScanner) (*domain.HeroPower, error) {
	var (
		hp      domain.HeroPower
		heroID  sql.NullInt64
		powerID sql.NullInt64
	)
	if err := row.Scan(&hp.ID, &hp.Strength, &heroID, &powerID); err != nil {
		return nil, err
	}
	hp.HeroID = idPtr(heroID)
	hp.PowerID = idPtr(powerID)
	return &hp, nil
}
