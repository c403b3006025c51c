package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dishpatch/internal/domain/order"
	"dishpatch/internal/infrastructure/persistence/mappers"
	"dishpatch/internal/infrastructure/persistence/models"
	db "dishpatch/internal/shared/db"
	"dishpatch/internal/shared/errors"
)

type OrderRepository struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		db:     db,
		mapper: mappers.NewOrderMapper(),
	}
}

func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	model := r.mapper.ToModel(o)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	return o.SetID(model.ID)
}

func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	model := r.mapper.ToModel(o)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.OrderModel{}).
		Where("id = ?", model.ID).
		Select(
			"shipper_id", "status", "restaurant_accepted_at",
			"shipped_at", "delivery_started_at", "completed_at", "updated_at",
		).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update order: %w", result.Error)
	}

	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model models.OrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
