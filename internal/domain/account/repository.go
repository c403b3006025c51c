package account

import "context"

type Repository interface {
	Save(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	FindByID(ctx context.Context, accountID uint) (*Account, error)
}
