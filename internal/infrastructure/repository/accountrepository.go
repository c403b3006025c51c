package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dishpatch/internal/domain/account"
	"dishpatch/internal/infrastructure/persistence/mappers"
	"dishpatch/internal/infrastructure/persistence/models"
	db "dishpatch/internal/shared/db"
	"dishpatch/internal/shared/errors"
)

type AccountRepository struct {
	db     *gorm.DB
	mapper mappers.AccountMapper
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{
		db:     db,
		mapper: mappers.NewAccountMapper(),
	}
}

func (r *AccountRepository) Save(ctx context.Context, a *account.Account) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AccountRepository) Update(ctx context.Context, a *account.Account) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AccountModel{}).
		Where("id = ?", model.ID).
		Select("name", "role", "courier_status", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}

	return nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id uint) (*account.Account, error) {
	var model models.AccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("account not found")
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
