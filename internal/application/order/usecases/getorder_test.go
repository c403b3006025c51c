package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dishpatch/internal/domain/account"
	vo "dishpatch/internal/domain/order/valueobjects"
	"dishpatch/internal/shared/errors"
)

func TestGetOrderUseCase_Execute_ViewRules(t *testing.T) {
	shipperID := testShipperID
	ord := testOrder(t, vo.StatusShipping, &shipperID)

	tests := []struct {
		name    string
		id      uint
		role    account.Role
		allowed bool
	}{
		{"order customer", testCustomerID, account.RoleCustomer, true},
		{"other customer", 99, account.RoleCustomer, false},
		{"restaurant owner", testOwnerID, account.RoleOwner, true},
		{"other owner", 77, account.RoleOwner, false},
		{"assigned courier", testShipperID, account.RoleShipper, true},
		{"other courier", 31, account.RoleShipper, false},
		{"admin", testAdminID, account.RoleAdmin, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			courierStatus := account.CourierStatus("")
			if tt.role.IsShipper() {
				courierStatus = account.CourierBusy
			}
			acc := testAccount(t, tt.id, tt.role, courierStatus)

			useCase := NewGetOrderUseCase(orderRepoOf(ord, nil), accountRepoOf(t, acc), &mockLogger{})

			dto, err := useCase.Execute(context.Background(), GetOrderQuery{
				OrderID:   testOrderID,
				AccountID: tt.id,
			})

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, testOrderID, dto.ID)
				assert.Equal(t, vo.StatusShipping.String(), dto.Status)
			} else {
				require.Error(t, err)
				assert.True(t, errors.IsForbiddenError(err))
			}
		})
	}
}

func TestGetOrderUseCase_Execute_OverdueFlag(t *testing.T) {
	shipperID := testShipperID
	// shipped 5 minutes ago against the 2 minute default estimate
	ord := testOrder(t, vo.StatusShipping, &shipperID)
	admin := testAccount(t, testAdminID, account.RoleAdmin, "")

	useCase := NewGetOrderUseCase(orderRepoOf(ord, nil), accountRepoOf(t, admin), &mockLogger{})

	dto, err := useCase.Execute(context.Background(), GetOrderQuery{
		OrderID:   testOrderID,
		AccountID: testAdminID,
	})

	require.NoError(t, err)
	assert.True(t, dto.Overdue)
}

func TestGetOrderUseCase_Execute_MissingOrder(t *testing.T) {
	admin := testAccount(t, testAdminID, account.RoleAdmin, "")

	useCase := NewGetOrderUseCase(orderRepoOf(nil, nil), accountRepoOf(t, admin), &mockLogger{})

	_, err := useCase.Execute(context.Background(), GetOrderQuery{
		OrderID:   testOrderID,
		AccountID: testAdminID,
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
