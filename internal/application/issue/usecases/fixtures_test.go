package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dishpatch/internal/domain/account"
	"dishpatch/internal/domain/issue"
	vo "dishpatch/internal/domain/issue/valueobjects"
	"dishpatch/internal/domain/order"
	ordervo "dishpatch/internal/domain/order/valueobjects"
	"dishpatch/internal/shared/db"
	"dishpatch/internal/shared/errors"
)

const (
	testCustomerID = uint(10)
	testOwnerID    = uint(20)
	testShipperID  = uint(30)
	testAdminID    = uint(40)
	testOrderID    = uint(5)
	testIssueID    = uint(100)
)

func noTx() *db.TransactionManager {
	return &db.TransactionManager{}
}

func testAccount(t *testing.T, id uint, role account.Role) *account.Account {
	t.Helper()
	now := time.Now().UTC()
	status := account.CourierStatus("")
	if role.IsShipper() {
		status = account.CourierOnline
	}
	acc, err := account.ReconstructAccount(id, "test account", role, status, now, now)
	require.NoError(t, err)
	return acc
}

// accountRepoOf serves the given accounts by id.
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

func testCompletedOrder(t *testing.T) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	shipperID := testShipperID
	shipped := now.Add(-30 * time.Minute)
	started := now.Add(-20 * time.Minute)
	completed := now.Add(-10 * time.Minute)
	ord, err := order.ReconstructOrder(
		testOrderID, testCustomerID, 7, testOwnerID, &shipperID,
		ordervo.StatusCompleted, nil,
		nil, &shipped, &started, &completed,
		now.Add(-time.Hour), now,
	)
	require.NoError(t, err)
	return ord
}

// testLinkedIssue is a customer-filed FOOD complaint on the completed
// order, routed to the restaurant owner.
func testLinkedIssue(t *testing.T) *issue.Issue {
	t.Helper()
	now := time.Now().UTC()
	orderID := testOrderID
	ownerID := testOwnerID
	iss, err := issue.ReconstructIssue(
		testIssueID, "ISS-20250307-000100", &orderID,
		testCustomerID, account.RoleCustomer,
		vo.TargetOrder, nil, "",
		vo.CategoryFood, "",
		"cold food", "the food arrived cold",
		&ownerID, nil,
		vo.StatusNeedOwnerAction,
		vo.DecisionPending, nil,
		vo.DecisionNone, nil,
		"", nil,
		now.Add(-time.Hour), now,
	)
	require.NoError(t, err)
	return iss
}

// testUnlinkedIssue is an admin-routed SYSTEM issue with no order.
func testUnlinkedIssue(t *testing.T) *issue.Issue {
	t.Helper()
	now := time.Now().UTC()
	iss, err := issue.ReconstructIssue(
		testIssueID, "ISS-20250307-000100", nil,
		testCustomerID, account.RoleCustomer,
		vo.TargetSystem, nil, "",
		vo.CategoryOther, "app keeps logging me out",
		"app bug", "",
		nil, nil,
		vo.StatusNeedAdminAction,
		vo.DecisionNone, nil,
		vo.DecisionNone, nil,
		"", nil,
		now.Add(-time.Hour), now,
	)
	require.NoError(t, err)
	return iss
}
