package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dishpatch/internal/domain/account"
	"dishpatch/internal/domain/order"
	vo "dishpatch/internal/domain/order/valueobjects"
)

func TestOrderRepository_SaveAndUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	ord, err := order.NewOrder(10, 7, 20)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, ord))
	assert.NotZero(t, ord.ID())

	require.NoError(t, ord.ChangeStatus(vo.StatusPending))
	require.NoError(t, ord.ChangeStatus(vo.StatusPaid))
	require.NoError(t, ord.ChangeStatus(vo.StatusPreparing))
	require.NoError(t, ord.AcceptBy(30))
	require.NoError(t, repo.Update(ctx, ord))

	found, err := repo.FindByID(ctx, ord.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusShipping, found.Status())
	require.NotNil(t, found.ShipperID())
	assert.Equal(t, uint(30), *found.ShipperID())
	assert.NotNil(t, found.ShippedAt())
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)

	_, err := repo.FindByID(context.Background(), 12345)
	assert.Error(t, err)
}

func TestAccountRepository_SaveAndUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	acc, err := account.NewAccount("Dana", account.RoleShipper)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, acc))
	assert.NotZero(t, acc.ID())

	require.NoError(t, acc.SetCourierStatus(account.CourierOnline))
	require.NoError(t, repo.Update(ctx, acc))

	found, err := repo.FindByID(ctx, acc.ID())
	require.NoError(t, err)
	assert.Equal(t, account.CourierOnline, found.CourierStatus())
	assert.True(t, found.IsAvailableForDelivery())
}
