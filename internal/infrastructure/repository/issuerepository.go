package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dishpatch/internal/domain/issue"
	"dishpatch/internal/infrastructure/persistence/mappers"
	"dishpatch/internal/infrastructure/persistence/models"
	db "dishpatch/internal/shared/db"
	"dishpatch/internal/shared/errors"
)

type IssueRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{
		db:     db,
		mapper: mappers.NewIssueMapper(),
	}
}

// Save inserts the issue and then writes its code in a second statement.
// The code embeds the generated id, so it cannot exist before the insert;
// callers run Save inside a transaction so both statements land together.
func (r *IssueRepository) Save(ctx context.Context, i *issue.Issue) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save issue: %w", err)
	}

	if err := i.SetID(model.ID); err != nil {
		return err
	}

	code := issue.FormatCode(model.ID, i.CreatedAt())
	if err := tx.
		Model(&models.IssueModel{}).
		Where("id = ?", model.ID).
		Update("code", code).Error; err != nil {
		return fmt.Errorf("failed to assign issue code: %w", err)
	}

	return i.SetCode(code)
}

func (r *IssueRepository) Update(ctx context.Context, i *issue.Issue) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.IssueModel{}).
		Where("id = ?", model.ID).
		Select(
			"assigned_owner_id", "assigned_admin_id", "status",
			"owner_refund_status", "owner_refund_amount",
			"admin_credit_status", "admin_credit_amount",
			"resolved_reason", "resolved_at", "updated_at",
		).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update issue: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *IssueRepository) FindByID(ctx context.Context, id uint) (*issue.Issue, error) {
	var model models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("issue not found")
		}
		return nil, fmt.Errorf("failed to find issue: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *IssueRepository) FindByCode(ctx context.Context, code string) (*issue.Issue, error) {
	var model models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("code = ?", code).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("issue not found")
		}
		return nil, fmt.Errorf("failed to find issue: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *IssueRepository) List(
	ctx context.Context,
	filter issue.Filter,
) ([]*issue.Issue, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.IssueModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.CreatorID != nil {
		query = query.Where("created_by_id = ?", *filter.CreatorID)
	}
	if filter.AssignedToID != nil {
		query = query.Where(
			"assigned_owner_id = ? OR assigned_admin_id = ?",
			*filter.AssignedToID, *filter.AssignedToID,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count issues: %w", err)
	}

	query = query.Order("created_at DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var issueModels []models.IssueModel
	if err := query.Find(&issueModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list issues: %w", err)
	}

	issues := make([]*issue.Issue, len(issueModels))
	for idx, model := range issueModels {
		i, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		issues[idx] = i
	}

	return issues, total, nil
}
