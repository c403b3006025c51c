package order

import "context"

type Repository interface {
	Save(ctx context.Context, order *Order) error
	Update(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, orderID uint) (*Order, error)
}
