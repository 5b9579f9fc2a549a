package seed

import (
	"context"
	"math/rand"
	"testing"

	"github.com/phrazzld/junction-api/internal/domain"
	"github.com/phrazzld/junction-api/internal/platform/logger"
	"github.com/phrazzld/junction-api/internal/platform/memory"
	"github.com/phrazzld/junction-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countHeroPowers(t *testing.T, stores store.Stores) int {
	t.Helper()
	hs, err := stores.Heroes.List(context.Background())
	require.NoError(t, err)
	n := 0
	for _, h := range hs {
		hps, err := stores.HeroPowers.ListByHero(context.Background(), h.ID)
		require.NoError(t, err)
		n += len(hps)
	}
	return n
}

func TestRun(t *testing.T) {
	_, log := logger.SetupTestLogger(t)
	ctx := context.Background()
	stores := memory.NewStores(memory.NewDB(), log)

	sum, err := Run(ctx, stores, rand.New(rand.NewSource(1)), log)
	require.NoError(t, err)

	assert.Equal(t, 4, sum.Powers)
	assert.Equal(t, 10, sum.Heroes)
	assert.Equal(t, 10, sum.HeroPowers)
	assert.Equal(t, 4, sum.Vendors)
	assert.Equal(t, 6, sum.Sweets)

	hs, err := stores.Heroes.List(ctx)
	require.NoError(t, err)
	require.Len(t, hs, 10)
	assert.Equal(t, "Ms. Marvel", hs[0].SuperName)

	for _, h := range hs {
		hps, err := stores.HeroPowers.ListByHero(ctx, h.ID)
		require.NoError(t, err)
		require.Len(t, hps, 1, "every hero gets exactly one power")
		assert.Contains(t, []string{domain.StrengthStrong, domain.StrengthWeak, domain.StrengthAverage}, hps[0].Strength)
	}

	vs, err := stores.Vendors.List(ctx)
	require.NoError(t, err)
	total := 0
	for _, v := range vs {
		rows, err := stores.VendorSweets.ListByVendor(ctx, v.ID)
		require.NoError(t, err)
		for _, row := range rows {
			require.NotNil(t, row.Price)
			assert.GreaterOrEqual(t, *row.Price, int64(0))
			assert.LessOrEqual(t, *row.Price, int64(maxPrice))
		}
		total += len(rows)
	}
	assert.Equal(t, sum.VendorSweets, total)
}

func TestRunReplacesExistingData(t *testing.T) {
	_, log := logger.SetupTestLogger(t)
	ctx := context.Background()
	stores := memory.NewStores(memory.NewDB(), log)

	_, err := Run(ctx, stores, rand.New(rand.NewSource(1)), log)
	require.NoError(t, err)
	_, err = Run(ctx, stores, rand.New(rand.NewSource(2)), log)
	require.NoError(t, err)

	hs, err := stores.Heroes.List(ctx)
	require.NoError(t, err)
	assert.Len(t, hs, 10)
	assert.Equal(t, 10, countHeroPowers(t, stores))

	ps, err := stores.Powers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ps, 4)

	ss, err := stores.Sweets.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ss, 6)
}

func TestRunClearsUnreferencedHeroPowers(t *testing.T) {
	_, log := logger.SetupTestLogger(t)
	ctx := context.Background()
	stores := memory.NewStores(memory.NewDB(), log)

	orphan, err := domain.NewHeroPower(domain.StrengthWeak, nil, nil)
	require.NoError(t, err)
	require.NoError(t, stores.HeroPowers.Create(ctx, orphan))

	_, err = Run(ctx, stores, rand.New(rand.NewSource(1)), log)
	require.NoError(t, err)

	_, err = stores.HeroPowers.GetByID(ctx, orphan.ID)
	assert.ErrorIs(t, err, store.ErrHeroPowerNotFound)
	assert.Equal(t, 10, countHeroPowers(t, stores))
}

func TestRunIsDeterministicForSeed(t *testing.T) {
	_, log := logger.SetupTestLogger(t)

	first, err := Run(context.Background(), memory.NewStores(memory.NewDB(), log), rand.New(rand.NewSource(7)), log)
	require.NoError(t, err)
	second, err := Run(context.Background(), memory.NewStores(memory.NewDB(), log), rand.New(rand.NewSource(7)), log)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
