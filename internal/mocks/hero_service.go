package mocks

import (
	"context"

	"github.com/phrazzld/junction-api/internal/domain"
)

// MockHeroService implements service.HeroService for testing
type MockHeroService struct {
	ListHeroesFn             func(ctx context.Context) ([]*domain.Hero, error)
	GetHeroFn                func(ctx context.Context, id int64) (*domain.Hero, error)
	DeleteHeroFn             func(ctx context.Context, id int64) error
	ListPowersFn             func(ctx context.Context) ([]*domain.Power, error)
	GetPowerFn               func(ctx context.Context, id int64) (*domain.Power, error)
	UpdatePowerDescriptionFn func(ctx context.Context, id int64, description any) (*domain.Power, error)
	DeletePowerFn            func(ctx context.Context, id int64) error
	CreateHeroPowerFn        func(ctx context.Context, strength any, heroID, powerID *int64) (*domain.HeroPower, error)

	// DefaultError is returned by every method whose function field is nil.
	DefaultError error
}

// ListHeroes implements the HeroService.ListHeroes method
func (m *MockHeroService) ListHeroes(ctx context.Context) ([]*domain.Hero, error) {
	if m.ListHeroesFn != nil {
		return m.ListHeroesFn(ctx)
	}
	return nil, m.DefaultError
}

// GetHero implements the HeroService.GetHero method
func (m *MockHeroService) GetHero(ctx context.Context, id int64) (*domain.Hero, error) {
	if m.GetHeroFn != nil {
		return m.GetHeroFn(ctx, id)
	}
	return nil, m.DefaultError
}

// DeleteHero implements the HeroService.DeleteHero method
func (m *MockHeroService) DeleteHero(ctx context.Context, id int64) error {
	if m.DeleteHeroFn != nil {
		return m.DeleteHeroFn(ctx, id)
	}
	return m.DefaultError
}

// ListPowers implements the HeroService.ListPowers method
func (m *MockHeroService) ListPowers(ctx context.Context) ([]*domain.Power, error) {
	if m.ListPowersFn != nil {
		return m.ListPowersFn(ctx)
	}
	return nil, m.DefaultError
}

// GetPower implements the HeroService.GetPower method
func (m *MockHeroService) GetPower(ctx context.Context, id int64) (*domain.Power, error) {
	if m.GetPowerFn != nil {
		return m.GetPowerFn(ctx, id)
	}
	return nil, m.DefaultError
}

// UpdatePowerDescription implements the HeroService.UpdatePowerDescription method
func (m *MockHeroService) UpdatePowerDescription(
	ctx context.Context,
	id int64,
	description any,
) (*domain.Power, error) {
	if m.UpdatePowerDescriptionFn != nil {
		return m.UpdatePowerDescriptionFn(ctx, id, description)
	}
	return nil, m.DefaultError
}

// DeletePower implements the HeroService.DeletePower method
func (m *MockHeroService) DeletePower(ctx context.Context, id int64) error {
	if m.DeletePowerFn != nil {
		return m.DeletePowerFn(ctx, id)
	}
	return m.DefaultError
}

// CreateHeroPower implements the HeroService.CreateHeroPower method
func (m *MockHeroService) CreateHeroPower(
	ctx context.Context,
	strength any,
	heroID, powerID *int64,
) (*domain.HeroPower, error) {
	if m.CreateHeroPowerFn != nil {
		return m.CreateHeroPowerFn(ctx, strength, heroID, powerID)
	}
	return nil, m.DefaultError
}
