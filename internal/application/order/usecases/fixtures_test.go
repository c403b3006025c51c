package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dishpatch/internal/domain/account"
	"dishpatch/internal/domain/order"
	vo "dishpatch/internal/domain/order/valueobjects"
	"dishpatch/internal/shared/db"
	"dishpatch/internal/shared/errors"
)

const (
	testCustomerID = uint(10)
	testOwnerID    = uint(20)
	testShipperID  = uint(30)
	testAdminID    = uint(40)
	testOrderID    = uint(5)
)

func noTx() *db.TransactionManager {
	return &db.TransactionManager{}
}

func testAccount(t *testing.T, id uint, role account.Role, courierStatus account.CourierStatus) *account.Account {
	t.Helper()
	now := time.Now().UTC()
	acc, err := account.ReconstructAccount(id, "test account", role, courierStatus, now, now)
	require.NoError(t, err)
	return acc
}

func accountRepoOf(t *testing.T, accounts ...*account.Account) *mockAccountRepository {
	t.Helper()
	byID := make(map[uint]*account.Account, len(accounts))
	for _, acc := range accounts {
		byID[acc.ID()] = acc
	}
	return &mockAccountRepository{
		FindByIDFunc: func(ctx context.Context, accountID uint) (*account.Account, error) {
			acc, ok := byID[accountID]
			if !ok {
				return nil, errors.NewNotFoundError("account not found")
			}
			return acc, nil
		},
	}
}

func testOrder(t *testing.T, status vo.OrderStatus, shipperID *uint) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	var shippedAt, startedAt *time.Time
	if shipperID != nil {
		shipped := now.Add(-5 * time.Minute)
		shippedAt = &shipped
		if status.IsShipping() || status.IsCompleted() {
			started := now.Add(-4 * time.Minute)
			startedAt = &started
		}
	}
	ord, err := order.ReconstructOrder(
		testOrderID, testCustomerID, 7, testOwnerID, shipperID,
		status, nil,
		nil, shippedAt, startedAt, nil,
		now.Add(-time.Hour), now,
	)
	require.NoError(t, err)
	return ord
}

func orderRepoOf(ord *order.Order, updated **order.Order) *mockOrderRepository {
	return &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, orderID uint) (*order.Order, error) {
			if ord == nil || orderID != ord.ID() {
				return nil, errors.NewNotFoundError("order not found")
			}
			return ord, nil
		},
		UpdateFunc: func(ctx context.Context, o *order.Order) error {
			if updated != nil {
				*updated = o
			}
			return nil
		},
	}
}
