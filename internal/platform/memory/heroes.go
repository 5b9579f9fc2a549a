package memory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/junction-api/internal/domain"
	"github.com/phrazzld/junction-api/internal/platform/logger"
	"github.com/phrazzld/junction-api/internal/store"
)

const (
	tableHeroes     = "heroes"
	tablePowers     = "powers"
	tableHeroPowers = "hero_powers"
)

// HeroStore implements store.HeroStore over a DB.
type HeroStore struct {
	db     *DB
	logger *slog.Logger
}

var _ store.HeroStore = (*HeroStore)(nil)

// Create implements store.HeroStore.Create
func (s *HeroStore) Create(ctx context.Context, hero *domain.Hero) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if err := hero.Validate(); err != nil {
		log.Warn("hero validation failed during create", slog.String("error", err.Error()))
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	hero.ID = s.db.allocate(tableHeroes)
	s.db.heroes[hero.ID] = domain.Hero{ID: hero.ID, Name: hero.Name, SuperName: hero.SuperName}

	log.Info("hero created successfully", slog.Int64("hero_id", hero.ID))
	return nil
}

// GetByID implements store.HeroStore.GetByID
func (s *HeroStore) GetByID(ctx context.Context, id int64) (*domain.Hero, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	hero, ok := s.db.heroes[id]
	if !ok {
		return nil, store.ErrHeroNotFound
	}
	return &hero, nil
}

// List implements store.HeroStore.List
func (s *HeroStore) List(ctx context.Context) ([]*domain.Hero, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	heroes := make([]*domain.Hero, 0, len(s.db.heroes))
	for _, id := range sortedKeys(s.db.heroes) {
		hero := s.db.heroes[id]
		heroes = append(heroes, &hero)
	}
	return heroes, nil
}

// Delete implements store.HeroStore.Delete
// The hero's hero powers are removed under the same lock.
func (s *HeroStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.heroes[id]; !ok {
		return store.ErrHeroNotFound
	}
	removed := s.db.deleteHeroPowers(s.db.hpByHero.ids(id))
	delete(s.db.heroes, id)

	log.Info("hero deleted successfully",
		slog.Int64("hero_id", id),
		slog.Int("hero_powers_removed", removed))
	return nil
}

// PowerStore implements store.PowerStore over a DB.
type PowerStore struct {
	db     *DB
	logger *slog.Logger
}

var _ store.PowerStore = (*PowerStore)(nil)

// Create implements store.PowerStore.Create
func (s *PowerStore) Create(ctx context.Context, power *domain.Power) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if err := power.Validate(); err != nil {
		log.Warn("power validation failed during create", slog.String("error", err.Error()))
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	power.ID = s.db.allocate(tablePowers)
	s.db.powers[power.ID] = domain.Power{ID: power.ID, Name: power.Name, Description: power.Description}

	log.Info("power created successfully", slog.Int64("power_id", power.ID))
	return nil
}

// GetByID implements store.PowerStore.GetByID
func (s *PowerStore) GetByID(ctx context.Context, id int64) (*domain.Power, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	power, ok := s.db.powers[id]
	if !ok {
		return nil, store.ErrPowerNotFound
	}
	return &power, nil
}

// List implements store.PowerStore.List
func (s *PowerStore) List(ctx context.Context) ([]*domain.Power, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	powers := make([]*domain.Power, 0, len(s.db.powers))
	for _, id := range sortedKeys(s.db.powers) {
		power := s.db.powers[id]
		powers = append(powers, &power)
	}
	return powers, nil
}

// Update implements store.PowerStore.Update
func (s *PowerStore) Update(ctx context.Context, power *domain.Power) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if err := power.Validate(); err != nil {
		log.Warn("power validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("power_id", power.ID))
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.powers[power.ID]; !ok {
		return store.ErrPowerNotFound
	}
	s.db.powers[power.ID] = domain.Power{ID: power.ID, Name: power.Name, Description: power.Description}

	log.Info("power updated successfully", slog.Int64("power_id", power.ID))
	return nil
}

// Delete implements store.PowerStore.Delete
// The power's hero powers are removed under the same lock.
func (s *PowerStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.powers[id]; !ok {
		return store.ErrPowerNotFound
	}
	removed := s.db.deleteHeroPowers(s.db.hpByPower.ids(id))
	delete(s.db.powers, id)

	log.Info("power deleted successfully",
		slog.Int64("power_id", id),
		slog.Int("hero_powers_removed", removed))
	return nil
}

// HeroPowerStore implements store.HeroPowerStore over a DB.
type HeroPowerStore struct {
	db     *DB
	logger *slog.Logger
}

var _ store.HeroPowerStore = (*HeroPowerStore)(nil)

// Create implements store.HeroPowerStore.Create
// Set references must point at existing rows; unset ones are allowed.
func (s *HeroPowerStore) Create(ctx context.Context, hp *domain.HeroPower) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if err := hp.Validate(); err != nil {
		log.Warn("hero power validation failed during create", slog.String("error", err.Error()))
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if hp.HeroID != nil {
		if _, ok := s.db.heroes[*hp.HeroID]; !ok {
			log.Warn("hero power references a missing hero", slog.Int64("hero_id", *hp.HeroID))
			return fmt.Errorf("%w: hero %d does not exist", store.ErrInvalidEntity, *hp.HeroID)
		}
	}
	if hp.PowerID != nil {
		if _, ok := s.db.powers[*hp.PowerID]; !ok {
			log.Warn("hero power references a missing power", slog.Int64("power_id", *hp.PowerID))
			return fmt.Errorf("%w: power %d does not exist", store.ErrInvalidEntity, *hp.PowerID)
		}
	}

	hp.ID = s.db.allocate(tableHeroPowers)
	row := domain.HeroPower{
		ID:       hp.ID,
		Strength: hp.Strength,
		HeroID:   copyInt64(hp.HeroID),
		PowerID:  copyInt64(hp.PowerID),
	}
	s.db.heroPowers[hp.ID] = row
	if row.HeroID != nil {
		s.db.hpByHero.add(*row.HeroID, row.ID)
	}
	if row.PowerID != nil {
		s.db.hpByPower.add(*row.PowerID, row.ID)
	}

	log.Info("hero power created successfully",
		slog.Int64("hero_power_id", hp.ID),
		slog.String("strength", hp.Strength))
	return nil
}

// GetByID implements store.HeroPowerStore.GetByID
func (s *HeroPowerStore) GetByID(ctx context.Context, id int64) (*domain.HeroPower, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	hp, ok := s.db.heroPowers[id]
	if !ok {
		return nil, store.ErrHeroPowerNotFound
	}
	return cloneHeroPower(hp), nil
}

// ListByHero implements store.HeroPowerStore.ListByHero
func (s *HeroPowerStore) ListByHero(ctx context.Context, heroID int64) ([]*domain.HeroPower, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return s.collect(s.db.hpByHero.ids(heroID)), nil
}

// ListByPower implements store.HeroPowerStore.ListByPower
func (s *HeroPowerStore) ListByPower(ctx context.Context, powerID int64) ([]*domain.HeroPower, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return s.collect(s.db.hpByPower.ids(powerID)), nil
}

func (s *HeroPowerStore) collect(ids []int64) []*domain.HeroPower {
	out := make([]*domain.HeroPower, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneHeroPower(s.db.heroPowers[id]))
	}
	return out
}

// Delete implements store.HeroPowerStore.Delete
func (s *HeroPowerStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if s.db.deleteHeroPowers([]int64{id}) == 0 {
		return store.ErrHeroPowerNotFound
	}
	log.Info("hero power deleted successfully", slog.Int64("hero_power_id", id))
	return nil
}

// DeleteAll implements store.HeroPowerStore.DeleteAll
func (s *HeroPowerStore) DeleteAll(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	removed := len(s.db.heroPowers)
	s.db.heroPowers = make(map[int64]domain.HeroPower)
	s.db.hpByHero = make(fkIndex)
	s.db.hpByPower = make(fkIndex)
	log.Info("hero powers cleared", slog.Int("count", removed))
	return nil
}

// deleteHeroPowers removes the given rows and their index entries, returning
// how many existed. Callers must hold the write lock.
func (db *DB) deleteHeroPowers(ids []int64) int {
	removed := 0
	for _, id := range ids {
		row, ok := db.heroPowers[id]
		if !ok {
			continue
		}
		if row.HeroID != nil {
			db.hpByHero.remove(*row.HeroID, id)
		}
		if row.PowerID != nil {
			db.hpByPower.remove(*row.PowerID, id)
		}
		delete(db.heroPowers, id)
		removed++
	}
	return removed
}

func cloneHeroPower(hp domain.HeroPower) *domain.HeroPower {
	hp.HeroID = copyInt64(hp.HeroID)
	hp.PowerID = copyInt64(hp.PowerID)
	return &hp
}

func copyInt64(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
