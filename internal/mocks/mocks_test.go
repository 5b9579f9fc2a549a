package mocks

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/junction-api/internal/domain"
	"github.com/phrazzld/junction-api/internal/service"
	"github.com/phrazzld/junction-api/internal/store"
	"github.com/stretchr/testify/assert"
)

var (
	_ service.HeroService    = (*MockHeroService)(nil)
	_ service.VendorService  = (*MockVendorService)(nil)
	_ store.HeroStore        = (*TestifyMockHeroStore)(nil)
	_ store.VendorSweetStore = (*TestifyMockVendorSweetStore)(nil)
)

func TestMockHeroServiceDefaults(t *testing.T) {
	errBoom := errors.New("boom")
	m := &MockHeroService{DefaultError: errBoom}

	_, err := m.ListHeroes(context.Background())
	assert.ErrorIs(t, err, errBoom)
	assert.ErrorIs(t, m.DeletePower(context.Background(), 1), errBoom)

	m.GetHeroFn = func(ctx context.Context, id int64) (*domain.Hero, error) {
		return &domain.Hero{ID: id}, nil
	}
	h, err := m.GetHero(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), h.ID)
}

func TestMockVendorServiceDefaults(t *testing.T) {
	m := &MockVendorService{}
	vs, err := m.CreateVendorSweet(context.Background(), 1, nil, nil)
	assert.Nil(t, vs)
	assert.NoError(t, err)
}
