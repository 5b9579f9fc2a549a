package store

import (
	"context"

	"github.com/phrazzld/junction-api/internal/domain"
)

// HeroStore defines the interface for hero persistence.
type HeroStore interface {
	// Create saves a new hero and assigns its ID.
	Create(ctx context.Context, hero *domain.Hero) error

	// GetByID retrieves a hero by its ID.
	// Returns ErrHeroNotFound if the hero does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Hero, error)

	// List returns all heroes ordered by ID.
	List(ctx context.Context) ([]*domain.Hero, error)

	// Delete removes a hero together with its hero powers.
	// Returns ErrHeroNotFound if the hero does not exist.
	Delete(ctx context.Context, id int64) error
}

// PowerStore defines the interface for power persistence.
type PowerStore interface {
	// Create validates and saves a new power, assigning its ID.
	// Returns a domain validation error if the description is invalid.
	Create(ctx context.Context, power *domain.Power) error

	// GetByID retrieves a power by its ID.
	// Returns ErrPowerNotFound if the power does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Power, error)

	// List returns all powers ordered by ID.
	List(ctx context.Context) ([]*domain.Power, error)

	// Update validates and saves the name and description of an existing power.
	// Returns ErrPowerNotFound if the power does not exist.
	Update(ctx context.Context, power *domain.Power) error

	// Delete removes a power together with its hero powers.
	// Returns ErrPowerNotFound if the power does not exist.
	Delete(ctx context.Context, id int64) error
}

// HeroPowerStore defines the interface for the hero/power join entity.
type HeroPowerStore interface {
	// Create validates and saves a new hero power, assigning its ID.
	// Returns a domain validation error if the strength is invalid and
	// ErrInvalidEntity if a set reference points to a missing row.
	Create(ctx context.Context, hp *domain.HeroPower) error

	// GetByID retrieves a hero power by its ID.
	// Returns ErrHeroPowerNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.HeroPower, error)

	// ListByHero returns the hero powers referencing the hero, ordered by ID.
	ListByHero(ctx context.Context, heroID int64) ([]*domain.HeroPower, error)

	// ListByPower returns the hero powers referencing the power, ordered by ID.
	ListByPower(ctx context.Context, powerID int64) ([]*domain.HeroPower, error)

	// Delete removes a hero power.
	// Returns ErrHeroPowerNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// DeleteAll removes every hero power, including rows with no references.
	DeleteAll(ctx context.Context) error
}
