//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/phrazzld/junction-api/internal/domain"
	"github.com/phrazzld/junction-api/internal/platform/postgres"
	"github.com/phrazzld/junction-api/internal/store"
	"github.com/phrazzld/junction-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresHeroStores(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		stores := postgres.NewStores(tx, nil)

		hero := domain.NewHero("Kamala Khan", "Ms. Marvel")
		require.NoError(t, stores.Heroes.Create(ctx, hero))
		power, err := domain.NewPower("super strength", "gives the wielder super-human strengths")
		require.NoError(t, err)
		require.NoError(t, stores.Powers.Create(ctx, power))

		hp, err := domain.NewHeroPower("Strong", &hero.ID, &power.ID)
		require.NoError(t, err)
		require.NoError(t, stores.HeroPowers.Create(ctx, hp))
		assert.NotZero(t, hp.ID)

		t.Run("association accessors", func(t *testing.T) {
			byHero, err := stores.HeroPowers.ListByHero(ctx, hero.ID)
			require.NoError(t, err)
			require.Len(t, byHero, 1)
			assert.Equal(t, hp.ID, byHero[0].ID)

			byPower, err := stores.HeroPowers.ListByPower(ctx, power.ID)
			require.NoError(t, err)
			assert.Len(t, byPower, 1)
		})

		t.Run("invalid strength persists nothing", func(t *testing.T) {
			bad := &domain.HeroPower{Strength: "Mighty", HeroID: &hero.ID, PowerID: &power.ID}
			assert.ErrorIs(t, stores.HeroPowers.Create(ctx, bad), domain.ErrValidation)

			byHero, err := stores.HeroPowers.ListByHero(ctx, hero.ID)
			require.NoError(t, err)
			assert.Len(t, byHero, 1)
		})

		t.Run("power update", func(t *testing.T) {
			power.Description = "gives the wielder the ability to fly"
			require.NoError(t, stores.Powers.Update(ctx, power))

			got, err := stores.Powers.GetByID(ctx, power.ID)
			require.NoError(t, err)
			assert.Equal(t, "gives the wielder the ability to fly", got.Description)
		})

		t.Run("deleting a hero removes its hero powers", func(t *testing.T) {
			require.NoError(t, stores.Heroes.Delete(ctx, hero.ID))

			_, err := stores.HeroPowers.GetByID(ctx, hp.ID)
			assert.ErrorIs(t, err, store.ErrHeroPowerNotFound)
			_, err = stores.Heroes.GetByID(ctx, hero.ID)
			assert.ErrorIs(t, err, store.ErrHeroNotFound)
			assert.ErrorIs(t, stores.Heroes.Delete(ctx, hero.ID), store.ErrHeroNotFound)

			// the power is untouched
			_, err = stores.Powers.GetByID(ctx, power.ID)
			assert.NoError(t, err)
		})
	})
}

func TestPostgresHeroPowerStore_UnknownReference(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		stores := postgres.NewStores(tx, nil)
		missing := int64(987654)

		hp := &domain.HeroPower{Strength: "Weak", HeroID: &missing}
		err := stores.HeroPowers.Create(context.Background(), hp)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestPostgresVendorStores(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		stores := postgres.NewStores(tx, nil)

		vendor := domain.NewVendor("Insomnia Cookies")
		require.NoError(t, stores.Vendors.Create(ctx, vendor))
		sweet := domain.NewSweet("Chocolate Chip Cookie")
		require.NoError(t, stores.Sweets.Create(ctx, sweet))

		vs, err := domain.NewVendorSweet(0, sweet.ID, vendor.ID)
		require.NoError(t, err)
		require.NoError(t, stores.VendorSweets.Create(ctx, vs))

		got, err := stores.VendorSweets.GetByID(ctx, vs.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Price)
		assert.Equal(t, int64(0), *got.Price)

		_, err = domain.NewVendorSweet(-1, sweet.ID, vendor.ID)
		assert.ErrorIs(t, err, domain.ErrValidation)

		require.NoError(t, stores.VendorSweets.Delete(ctx, vs.ID))
		assert.ErrorIs(t, stores.VendorSweets.Delete(ctx, vs.ID), store.ErrVendorSweetNotFound)

		again, err := domain.NewVendorSweet(250, sweet.ID, vendor.ID)
		require.NoError(t, err)
		require.NoError(t, stores.VendorSweets.Create(ctx, again))
		require.NoError(t, stores.Sweets.Delete(ctx, sweet.ID))

		left, err := stores.VendorSweets.ListByVendor(ctx, vendor.ID)
		require.NoError(t, err)
		assert.Empty(t, left)

		// A failed statement aborts the transaction, so this runs last.
		bad := &domain.VendorSweet{Price: got.Price, SweetID: sweet.ID, VendorID: vendor.ID + 1000}
		assert.ErrorIs(t, stores.VendorSweets.Create(ctx, bad), store.ErrInvalidEntity)
	})
}
