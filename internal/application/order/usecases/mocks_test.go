package usecases

import (
	"context"

	"dishpatch/internal/domain/account"
	"dishpatch/internal/domain/order"
	"dishpatch/internal/shared/logger"
)

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
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

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
