package issue

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dishpatch/internal/domain/account"
	vo "dishpatch/internal/domain/issue/valueobjects"
)

func uintPtr(v uint) *uint    { return &v }
func int64Ptr(v int64) *int64 { return &v }

func newTestIssue(t *testing.T, category vo.Category, targetType vo.TargetType, orderID *uint, ownerID *uint) *Issue {
	t.Helper()
	iss, err := NewIssue(
		orderID, 10, account.RoleCustomer,
		targetType, nil, "",
		category, "",
		"cold food", "the food arrived cold",
		ownerID,
	)
	require.NoError(t, err)
	return iss
}

func TestNewIssue_Validation(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func() (*Issue, error)
		expectedError string
	}{
		{
			name: "missing title",
			mutate: func() (*Issue, error) {
				return NewIssue(uintPtr(1), 10, account.RoleCustomer, vo.TargetRestaurant, nil, "",
					vo.CategoryFood, "", "", "desc", uintPtr(2))
			},
			expectedError: "title is required",
		},
		{
			name: "title too long",
			mutate: func() (*Issue, error) {
				return NewIssue(uintPtr(1), 10, account.RoleCustomer, vo.TargetRestaurant, nil, "",
					vo.CategoryFood, "", strings.Repeat("x", 201), "desc", uintPtr(2))
			},
			expectedError: "title exceeds maximum length",
		},
		{
			name: "description too long",
			mutate: func() (*Issue, error) {
				return NewIssue(uintPtr(1), 10, account.RoleCustomer, vo.TargetRestaurant, nil, "",
					vo.CategoryFood, "", "title", strings.Repeat("x", 5001), uintPtr(2))
			},
			expectedError: "description exceeds maximum length",
		},
		{
			name: "OTHER category requires description of the category",
			mutate: func() (*Issue, error) {
				return NewIssue(nil, 10, account.RoleCustomer, vo.TargetOther, nil, "",
					vo.CategoryOther, "", "title", "desc", nil)
			},
			expectedError: "other category description is required",
		},
		{
			name: "order required for RESTAURANT target",
			mutate: func() (*Issue, error) {
				return NewIssue(nil, 10, account.RoleCustomer, vo.TargetRestaurant, nil, "",
					vo.CategoryFood, "", "title", "desc", nil)
			},
			expectedError: "order ID is required",
		},
		{
			name: "missing creator",
			mutate: func() (*Issue, error) {
				return NewIssue(uintPtr(1), 0, account.RoleCustomer, vo.TargetRestaurant, nil, "",
					vo.CategoryFood, "", "title", "desc", uintPtr(2))
			},
			expectedError: "creator ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.mutate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestNewIssue_RoutesMerchantCategoriesToOwner(t *testing.T) {
	for _, category := range []vo.Category{
		vo.CategoryFood, vo.CategoryItem, vo.CategoryRestaurant, vo.CategoryMixed,
	} {
		t.Run(category.String(), func(t *testing.T) {
			iss := newTestIssue(t, category, vo.TargetRestaurant, uintPtr(1), uintPtr(42))

			assert.Equal(t, vo.StatusNeedOwnerAction, iss.Status())
			require.NotNil(t, iss.AssignedOwnerID())
			assert.Equal(t, uint(42), *iss.AssignedOwnerID())
			assert.Equal(t, vo.DecisionPending, iss.OwnerRefundStatus())
			assert.Equal(t, vo.DecisionNone, iss.AdminCreditStatus())
		})
	}
}

func TestNewIssue_RoutesDeliveryCategoriesToAdmin(t *testing.T) {
	for _, category := range []vo.Category{
		vo.CategoryDelivery, vo.CategoryShipperBehavior, vo.CategorySafety,
	} {
		t.Run(category.String(), func(t *testing.T) {
			iss := newTestIssue(t, category, vo.TargetShipper, uintPtr(1), uintPtr(42))

			assert.Equal(t, vo.StatusNeedAdminAction, iss.Status())
			assert.Nil(t, iss.AssignedOwnerID())
			assert.Equal(t, vo.DecisionNone, iss.OwnerRefundStatus())
		})
	}
}

func TestNewIssue_UnlinkedGoesToAdmin(t *testing.T) {
	iss, err := NewIssue(
		nil, 10, account.RoleCustomer,
		vo.TargetSystem, nil, "",
		vo.CategoryOther, "app kept crashing",
		"app crash", "",
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, vo.StatusNeedAdminAction, iss.Status())
	assert.Nil(t, iss.OrderID())
}

func TestFormatCode(t *testing.T) {
	createdAt := time.Date(2025, 3, 7, 13, 45, 0, 0, time.UTC)

	assert.Equal(t, "ISS-20250307-000042", FormatCode(42, createdAt))
	assert.Equal(t, "ISS-20250307-1234567", FormatCode(1234567, createdAt))
}

func TestIssue_SetCode_Once(t *testing.T) {
	iss := newTestIssue(t, vo.CategoryFood, vo.TargetRestaurant, uintPtr(1), uintPtr(2))

	require.NoError(t, iss.SetCode("ISS-20250307-000001"))
	assert.Error(t, iss.SetCode("ISS-20250307-000002"))
	assert.Equal(t, "ISS-20250307-000001", iss.Code())
}

func TestIssue_ChangeStatus(t *testing.T) {
	t.Run("active states interchange", func(t *testing.T) {
		iss := newTestIssue(t, vo.CategoryFood, vo.TargetRestaurant, uintPtr(1), uintPtr(2))

		require.NoError(t, iss.ChangeStatus(vo.StatusNeedAdminAction, "escalating"))
		assert.Equal(t, vo.StatusNeedAdminAction, iss.Status())
		assert.Nil(t, iss.ResolvedAt())
	})

	t.Run("resolving stamps resolution metadata", func(t *testing.T) {
		iss := newTestIssue(t, vo.CategoryFood, vo.TargetRestaurant, uintPtr(1), uintPtr(2))

		require.NoError(t, iss.ChangeStatus(vo.StatusResolved, "refund issued"))
		assert.Equal(t, vo.StatusResolved, iss.Status())
		require.NotNil(t, iss.ResolvedAt())
		assert.Equal(t, "refund issued", iss.ResolvedReason())
	})

	t.Run("closed is terminal", func(t *testing.T) {
		iss := newTestIssue(t, vo.CategoryFood, vo.TargetRestaurant, uintPtr(1), uintPtr(2))
		require.NoError(t, iss.ChangeStatus(vo.StatusClosed, "done"))

		err := iss.ChangeStatus(vo.StatusOpen, "reopen")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot transition")
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		iss := newTestIssue(t, vo.CategoryFood, vo.TargetRestaurant, uintPtr(1), uintPtr(2))

		require.NoError(t, iss.ChangeStatus(vo.StatusNeedOwnerAction, ""))
		assert.Equal(t, vo.StatusNeedOwnerAction, iss.Status())
	})
}

func TestIssue_DecideOwnerRefund(t *testing.T) {
	t.Run("approval requires positive amount", func(t *testing.T) {
		iss := newTestIssue(t, vo.CategoryFood, vo.TargetRestaurant, uintPtr(1), uintPtr(2))

		assert.Error(t, iss.DecideOwnerRefund(vo.DecisionApproved, nil))
		assert.Error(t, iss.DecideOwnerRefund(vo.DecisionApproved, int64Ptr(0)))

		require.NoError(t, iss.DecideOwnerRefund(vo.DecisionApproved, int64Ptr(1500)))
		assert.Equal(t, vo.DecisionApproved, iss.OwnerRefundStatus())
		assert.Equal(t, int64(1500), *iss.OwnerRefundAmount())
	})

	t.Run("rejection clears the amount", func(t *testing.T) {
		iss := newTestIssue(t, vo.CategoryFood, vo.TargetRestaurant, uintPtr(1), uintPtr(2))
		require.NoError(t, iss.DecideOwnerRefund(vo.DecisionApproved, int64Ptr(1500)))

		require.NoError(t, iss.DecideOwnerRefund(vo.DecisionRejected, nil))
		assert.Equal(t, vo.DecisionRejected, iss.OwnerRefundStatus())
		assert.Nil(t, iss.OwnerRefundAmount())
	})

	t.Run("re-rejecting is allowed", func(t *testing.T) {
		iss := newTestIssue(t, vo.CategoryFood, vo.TargetRestaurant, uintPtr(1), uintPtr(2))
		require.NoError(t, iss.DecideOwnerRefund(vo.DecisionRejected, nil))
		require.NoError(t, iss.DecideOwnerRefund(vo.DecisionRejected, nil))

		assert.Equal(t, vo.DecisionRejected, iss.OwnerRefundStatus())
	})

	t.Run("does not change the issue status", func(t *testing.T) {
		iss := newTestIssue(t, vo.CategoryFood, vo.TargetRestaurant, uintPtr(1), uintPtr(2))
		require.NoError(t, iss.DecideOwnerRefund(vo.DecisionApproved, int64Ptr(500)))

		assert.Equal(t, vo.StatusNeedOwnerAction, iss.Status())
	})
}

func TestIssue_DecideAdminCredit(t *testing.T) {
	t.Run("approval resolves the issue", func(t *testing.T) {
		iss := newTestIssue(t, vo.CategoryDelivery, vo.TargetShipper, uintPtr(1), nil)

		require.NoError(t, iss.DecideAdminCredit(vo.DecisionApproved, int64Ptr(300), "late delivery"))
		assert.Equal(t, vo.DecisionApproved, iss.AdminCreditStatus())
		assert.Equal(t, vo.StatusResolved, iss.Status())
		require.NotNil(t, iss.ResolvedAt())
		assert.Equal(t, "late delivery", iss.ResolvedReason())
	})

	t.Run("rejection rejects the issue", func(t *testing.T) {
		iss := newTestIssue(t, vo.CategoryDelivery, vo.TargetShipper, uintPtr(1), nil)

		require.NoError(t, iss.DecideAdminCredit(vo.DecisionRejected, nil, "no evidence"))
		assert.Equal(t, vo.DecisionRejected, iss.AdminCreditStatus())
		assert.Equal(t, vo.StatusRejected, iss.Status())
	})

	t.Run("approval requires an amount", func(t *testing.T) {
		iss := newTestIssue(t, vo.CategoryDelivery, vo.TargetShipper, uintPtr(1), nil)

		assert.Error(t, iss.DecideAdminCredit(vo.DecisionApproved, nil, ""))
	})

	t.Run("rejection after approval clears the amount", func(t *testing.T) {
		iss := newTestIssue(t, vo.CategoryDelivery, vo.TargetShipper, uintPtr(1), nil)
		require.NoError(t, iss.DecideAdminCredit(vo.DecisionApproved, int64Ptr(300), "late delivery"))

		require.NoError(t, iss.DecideAdminCredit(vo.DecisionRejected, nil, "reversed on appeal"))
		assert.Equal(t, vo.DecisionRejected, iss.AdminCreditStatus())
		assert.Nil(t, iss.AdminCreditAmount())
		assert.Equal(t, vo.StatusRejected, iss.Status())
	})

	t.Run("closed issue cannot be re-decided", func(t *testing.T) {
		iss := newTestIssue(t, vo.CategoryDelivery, vo.TargetShipper, uintPtr(1), nil)
		require.NoError(t, iss.ChangeStatus(vo.StatusClosed, "withdrawn"))

		err := iss.DecideAdminCredit(vo.DecisionApproved, int64Ptr(300), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already closed")
		assert.Equal(t, vo.StatusClosed, iss.Status())
	})
}

func TestIssue_ResolveByOwnerRefund(t *testing.T) {
	iss := newTestIssue(t, vo.CategoryFood, vo.TargetRestaurant, uintPtr(1), uintPtr(2))

	require.NoError(t, iss.ResolveByOwnerRefund(2500, "full refund"))
	assert.Equal(t, vo.StatusClosed, iss.Status())
	assert.Equal(t, vo.DecisionApproved, iss.OwnerRefundStatus())
	assert.Equal(t, int64(2500), *iss.OwnerRefundAmount())
	assert.Equal(t, "full refund", iss.ResolvedReason())

	assert.Error(t, iss.ResolveByOwnerRefund(100, "again"))
}

func TestIssue_RejectByOwnerRefund(t *testing.T) {
	iss := newTestIssue(t, vo.CategoryFood, vo.TargetRestaurant, uintPtr(1), uintPtr(2))

	require.NoError(t, iss.RejectByOwnerRefund("not justified"))
	assert.Equal(t, vo.StatusClosed, iss.Status())
	assert.Equal(t, vo.DecisionRejected, iss.OwnerRefundStatus())
	assert.Nil(t, iss.OwnerRefundAmount())

	assert.Error(t, iss.RejectByOwnerRefund("again"))
}

func TestIssue_AssignAdmin(t *testing.T) {
	iss := newTestIssue(t, vo.CategoryDelivery, vo.TargetShipper, uintPtr(1), nil)

	require.NoError(t, iss.AssignAdmin(99))
	require.NotNil(t, iss.AssignedAdminID())
	assert.Equal(t, uint(99), *iss.AssignedAdminID())

	assert.Error(t, iss.AssignAdmin(0))
}
