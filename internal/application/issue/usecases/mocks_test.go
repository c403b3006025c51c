package usecases

import (
	"context"

	"dishpatch/internal/domain/account"
	"dishpatch/internal/domain/issue"
	"dishpatch/internal/domain/order"
	"dishpatch/internal/shared/logger"
)

type mockIssueRepository struct {
	SaveFunc       func(ctx context.Context, iss *issue.Issue) error
	UpdateFunc     func(ctx context.Context, iss *issue.Issue) error
	FindByIDFunc   func(ctx context.Context, issueID uint) (*issue.Issue, error)
	FindByCodeFunc func(ctx context.Context, code string) (*issue.Issue, error)
	ListFunc       func(ctx context.Context, filter issue.Filter) ([]*issue.Issue, int64, error)
}

func (m *mockIssueRepository) Save(ctx context.Context, iss *issue.Issue) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, iss)
	}
	return nil
}

func (m *mockIssueRepository) Update(ctx context.Context, iss *issue.Issue) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, iss)
	}
	return nil
}

func (m *mockIssueRepository) FindByID(ctx context.Context, issueID uint) (*issue.Issue, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, issueID)
	}
	return nil, nil
}

func (m *mockIssueRepository) FindByCode(ctx context.Context, code string) (*issue.Issue, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockIssueRepository) List(ctx context.Context, filter issue.Filter) ([]*issue.Issue, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockEventRepository struct {
	SaveFunc          func(ctx context.Context, event *issue.Event) error
	SaveAllFunc       func(ctx context.Context, events []*issue.Event) error
	ListByIssueIDFunc func(ctx context.Context, issueID uint) ([]*issue.Event, error)
}

func (m *mockEventRepository) Save(ctx context.Context, event *issue.Event) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, event)
	}
	return nil
}

func (m *mockEventRepository) SaveAll(ctx context.Context, events []*issue.Event) error {
	if m.SaveAllFunc != nil {
		return m.SaveAllFunc(ctx, events)
	}
	return nil
}

func (m *mockEventRepository) ListByIssueID(ctx context.Context, issueID uint) ([]*issue.Event, error) {
	if m.ListByIssueIDFunc != nil {
		return m.ListByIssueIDFunc(ctx, issueID)
	}
	return nil, nil
}

type mockOrderRepository struct {
	SaveFunc     func(ctx context.Context, ord *order.Order) error
	UpdateFunc   func(ctx context.Context, ord *order.Order) error
	FindByIDFunc func(ctx context.Context, orderID uint) (*order.Order, error)
}

func (m *mockOrderRepository) Save(ctx context.Context, ord *order.Order) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, ord)
	}
	return nil
}

func (m *mockOrderRepository) Update(ctx context.Context, ord *order.Order) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, ord)
	}
	return nil
}

func (m *mockOrderRepository) FindByID(ctx context.Context, orderID uint) (*order.Order, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, orderID)
	}
	return nil, nil
}

type mockAccountRepository struct {
	SaveFunc     func(ctx context.Context, acc *account.Account) error
	UpdateFunc   func(ctx context.Context, acc *account.Account) error
	FindByIDFunc func(ctx context.Context, accountID uint) (*account.Account, error)
}

func (m *mockAccountRepository) Save(ctx context.Context, acc *account.Account) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, acc)
	}
	return nil
}

func (m *mockAccountRepository) Update(ctx context.Context, acc *account.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, acc)
	}
	return nil
}

func (m *mockAccountRepository) FindByID(ctx context.Context, accountID uint) (*account.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, accountID)
	}
	return nil, nil
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	DebugwFunc func(msg string, keysAndValues ...interface{})
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
