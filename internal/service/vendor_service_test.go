package service

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/junction-api/internal/domain"
	"github.com/phrazzld/junction-api/internal/mocks"
	"github.com/phrazzld/junction-api/internal/platform/memory"
	"github.com/phrazzld/junction-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVendorServiceWithData(t *testing.T) (VendorService, store.Stores) {
	t.Helper()
	stores := memory.NewStores(memory.NewDB(), nil)
	svc, err := NewVendorService(stores, nil)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, stores.Vendors.Create(ctx, domain.NewVendor("Insomnia Cookies")))
	require.NoError(t, stores.Sweets.Create(ctx, domain.NewSweet("Chocolate Chip Cookie")))
	return svc, stores
}

func TestVendorService_CreateVendorSweet(t *testing.T) {
	ctx := context.Background()
	sweetID, vendorID := int64(1), int64(1)

	t.Run("attaches sweet and vendor", func(t *testing.T) {
		svc, _ := newVendorServiceWithData(t)
		vs, err := svc.CreateVendorSweet(ctx, 0, &sweetID, &vendorID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), *vs.Price)
		assert.Equal(t, "Chocolate Chip Cookie", vs.Sweet.Name)
		assert.Equal(t, "Insomnia Cookies", vs.Vendor.Name)
	})

	t.Run("price rules", func(t *testing.T) {
		svc, stores := newVendorServiceWithData(t)
		for _, price := range []any{nil, -1, "cheap", 1.5} {
			_, err := svc.CreateVendorSweet(ctx, price, &sweetID, &vendorID)
			assert.ErrorIs(t, err, domain.ErrValidation, "price %v", price)
		}
		rows, err := stores.VendorSweets.ListByVendor(ctx, vendorID)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("missing references", func(t *testing.T) {
		svc, _ := newVendorServiceWithData(t)
		_, err := svc.CreateVendorSweet(ctx, 10, nil, &vendorID)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)

		unknown := int64(77)
		_, err = svc.CreateVendorSweet(ctx, 10, &sweetID, &unknown)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestVendorService_CreateVendorSweetDiscardsRowWhenLookupFails(t *testing.T) {
	ctx := context.Background()
	sweetID, vendorID := int64(1), int64(1)

	newService := func(t *testing.T) (VendorService, *mocks.TestifyMockVendorSweetStore) {
		t.Helper()
		vendorSweets := new(mocks.TestifyMockVendorSweetStore)
		// The sweet and vendor rows are gone by the time they are loaded.
		stores := memory.NewStores(memory.NewDB(), nil)
		stores.VendorSweets = vendorSweets
		svc, err := NewVendorService(stores, nil)
		require.NoError(t, err)

		vendorSweets.On("Create", mock.Anything, mock.AnythingOfType("*domain.VendorSweet")).
			Run(func(args mock.Arguments) { args.Get(1).(*domain.VendorSweet).ID = 9 }).
			Return(nil)
		return svc, vendorSweets
	}

	t.Run("row is deleted", func(t *testing.T) {
		svc, vendorSweets := newService(t)
		vendorSweets.On("Delete", mock.Anything, int64(9)).Return(nil)

		vs, err := svc.CreateVendorSweet(ctx, 100, &sweetID, &vendorID)
		assert.Nil(t, vs)
		assert.ErrorIs(t, err, store.ErrSweetNotFound)
		vendorSweets.AssertExpectations(t)
	})

	t.Run("lookup error wins over delete error", func(t *testing.T) {
		svc, vendorSweets := newService(t)
		vendorSweets.On("Delete", mock.Anything, int64(9)).Return(errors.New("connection reset"))

		_, err := svc.CreateVendorSweet(ctx, 100, &sweetID, &vendorID)
		assert.ErrorIs(t, err, store.ErrSweetNotFound)
		vendorSweets.AssertExpectations(t)
	})
}

func TestVendorService_GetVendorAttachesVendorSweets(t *testing.T) {
	svc, _ := newVendorServiceWithData(t)
	ctx := context.Background()
	sweetID, vendorID := int64(1), int64(1)
	_, err := svc.CreateVendorSweet(ctx, 200, &sweetID, &vendorID)
	require.NoError(t, err)

	vendor, err := svc.GetVendor(ctx, vendorID)
	require.NoError(t, err)
	require.Len(t, vendor.VendorSweets, 1)
	assert.Equal(t, int64(200), *vendor.VendorSweets[0].Price)

	_, err = svc.GetVendor(ctx, 5)
	assert.ErrorIs(t, err, store.ErrVendorNotFound)
	_, err = svc.GetSweet(ctx, 5)
	assert.ErrorIs(t, err, store.ErrSweetNotFound)
}

func TestVendorService_DeleteVendorSweet(t *testing.T) {
	svc, _ := newVendorServiceWithData(t)
	ctx := context.Background()
	sweetID, vendorID := int64(1), int64(1)
	vs, err := svc.CreateVendorSweet(ctx, 200, &sweetID, &vendorID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteVendorSweet(ctx, vs.ID))
	assert.ErrorIs(t, svc.DeleteVendorSweet(ctx, vs.ID), store.ErrVendorSweetNotFound)
}

func TestVendorService_WrapsUnexpectedErrors(t *testing.T) {
	vendorSweets := new(mocks.TestifyMockVendorSweetStore)
	stores := memory.NewStores(memory.NewDB(), nil)
	stores.VendorSweets = vendorSweets
	svc, err := NewVendorService(stores, nil)
	require.NoError(t, err)

	dbErr := errors.New("deadlock detected")
	vendorSweets.On("Delete", mock.Anything, int64(3)).Return(dbErr)

	err = svc.DeleteVendorSweet(context.Background(), 3)
	var serviceErr *ServiceError
	require.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, vendorService, serviceErr.Service)
	assert.False(t, store.IsNotFoundError(err))
	vendorSweets.AssertExpectations(t)
}
