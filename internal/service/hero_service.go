package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/junction-api/internal/domain"
	"github.com/phrazzld/junction-api/internal/platform/logger"
	"github.com/phrazzld/junction-api/internal/store"
)

const heroService = "hero_service"

// HeroService provides the operations of the heroes model.
type HeroService interface {
	// ListHeroes returns all heroes without associations.
	ListHeroes(ctx context.Context) ([]*domain.Hero, error)

	// GetHero returns a hero with its hero powers, each carrying its power.
	GetHero(ctx context.Context, id int64) (*domain.Hero, error)

	// DeleteHero removes a hero and its hero powers.
	DeleteHero(ctx context.Context, id int64) error

	// ListPowers returns all powers without associations.
	ListPowers(ctx context.Context) ([]*domain.Power, error)

	// GetPower returns a power without associations.
	GetPower(ctx context.Context, id int64) (*domain.Power, error)

	// UpdatePowerDescription sets a power's description. The power must
	// exist before the new value is validated.
	UpdatePowerDescription(ctx context.Context, id int64, description any) (*domain.Power, error)

	// DeletePower removes a power and its hero powers.
	DeletePower(ctx context.Context, id int64) error

	// CreateHeroPower validates and stores a hero power and returns it with
	// its hero and power attached.
	CreateHeroPower(ctx context.Context, strength any, heroID, powerID *int64) (*domain.HeroPower, error)
}

type heroServiceImpl struct {
	heroes     store.HeroStore
	powers     store.PowerStore
	heroPowers store.HeroPowerStore
	logger     *slog.Logger
}

// NewHeroService creates a HeroService over the heroes stores in stores.
// It returns an error if any of them is nil.
func NewHeroService(stores store.Stores, logger *slog.Logger) (HeroService, error) {
	if stores.Heroes == nil || stores.Powers == nil || stores.HeroPowers == nil {
		return nil, &ServiceError{
			Service:   heroService,
			Operation: "create_service",
			Message:   "heroes, powers and hero powers stores are required",
			Err:       ErrMissingDependency,
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &heroServiceImpl{
		heroes:     stores.Heroes,
		powers:     stores.Powers,
		heroPowers: stores.HeroPowers,
		logger:     logger.With("component", heroService),
	}, nil
}

func (s *heroServiceImpl) ListHeroes(ctx context.Context) ([]*domain.Hero, error) {
	heroes, err := s.heroes.List(ctx)
	if err != nil {
		return nil, newServiceError(heroService, "list_heroes", "failed to list heroes", err)
	}
	return heroes, nil
}

func (s *heroServiceImpl) GetHero(ctx context.Context, id int64) (*domain.Hero, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	hero, err := s.heroes.GetByID(ctx, id)
	if err != nil {
		return nil, newServiceError(heroService, "get_hero", "failed to get hero", err)
	}

	hps, err := s.heroPowers.ListByHero(ctx, hero.ID)
	if err != nil {
		return nil, newServiceError(heroService, "get_hero", "failed to load hero powers", err)
	}

	powers := make(map[int64]*domain.Power)
	for _, hp := range hps {
		if hp.PowerID == nil {
			continue
		}
		power, ok := powers[*hp.PowerID]
		if !ok {
			power, err = s.powers.GetByID(ctx, *hp.PowerID)
			if err != nil {
				if store.IsNotFoundError(err) {
					log.Warn("hero power references a missing power",
						slog.Int64("hero_power_id", hp.ID),
						slog.Int64("power_id", *hp.PowerID))
					continue
				}
				return nil, newServiceError(heroService, "get_hero", "failed to load power", err)
			}
			powers[*hp.PowerID] = power
		}
		hp.Power = power
	}
	hero.HeroPowers = hps

	log.Debug("hero loaded",
		slog.Int64("hero_id", hero.ID),
		slog.Int("hero_powers", len(hps)))
	return hero, nil
}

func (s *heroServiceImpl) DeleteHero(ctx context.Context, id int64) error {
	return newServiceError(heroService, "delete_hero", "failed to delete hero", s.heroes.Delete(ctx, id))
}

func (s *heroServiceImpl) ListPowers(ctx context.Context) ([]*domain.Power, error) {
	powers, err := s.powers.List(ctx)
	if err != nil {
		return nil, newServiceError(heroService, "list_powers", "failed to list powers", err)
	}
	return powers, nil
}

func (s *heroServiceImpl) GetPower(ctx context.Context, id int64) (*domain.Power, error) {
	power, err := s.powers.GetByID(ctx, id)
	if err != nil {
		return nil, newServiceError(heroService, "get_power", "failed to get power", err)
	}
	return power, nil
}

func (s *heroServiceImpl) UpdatePowerDescription(
	ctx context.Context,
	id int64,
	description any,
) (*domain.Power, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	power, err := s.powers.GetByID(ctx, id)
	if err != nil {
		return nil, newServiceError(heroService, "update_power", "failed to get power", err)
	}

	if err := power.SetDescription(description); err != nil {
		log.Warn("power description rejected",
			slog.Int64("power_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.powers.Update(ctx, power); err != nil {
		return nil, newServiceError(heroService, "update_power", "failed to save power", err)
	}
	return power, nil
}

func (s *heroServiceImpl) DeletePower(ctx context.Context, id int64) error {
	return newServiceError(heroService, "delete_power", "failed to delete power", s.powers.Delete(ctx, id))
}

func (s *heroServiceImpl) CreateHeroPower(
	ctx context.Context,
	strength any,
	heroID, powerID *int64,
) (*domain.HeroPower, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	hp, err := domain.NewHeroPower(strength, heroID, powerID)
	if err != nil {
		log.Warn("hero power rejected", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.heroPowers.Create(ctx, hp); err != nil {
		return nil, newServiceError(heroService, "create_hero_power", "failed to save hero power", err)
	}

	if hp.HeroID != nil {
		if hp.Hero, err = s.heroes.GetByID(ctx, *hp.HeroID); err != nil {
			s.discardHeroPower(ctx, hp.ID)
			return nil, newServiceError(heroService, "create_hero_power", "failed to load hero", err)
		}
	}
	if hp.PowerID != nil {
		if hp.Power, err = s.powers.GetByID(ctx, *hp.PowerID); err != nil {
			s.discardHeroPower(ctx, hp.ID)
			return nil, newServiceError(heroService, "create_hero_power", "failed to load power", err)
		}
	}
	return hp, nil
}

// discardHeroPower removes a hero power whose creation could not be completed.
func (s *heroServiceImpl) discardHeroPower(ctx context.Context, id int64) {
	if err := s.heroPowers.Delete(ctx, id); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to discard hero power",
			slog.Int64("hero_power_id", id),
			slog.String("error", err.Error()))
	}
}
