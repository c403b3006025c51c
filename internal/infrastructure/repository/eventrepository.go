package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dishpatch/internal/domain/issue"
	"dishpatch/internal/infrastructure/persistence/mappers"
	"dishpatch/internal/infrastructure/persistence/models"
	db "dishpatch/internal/shared/db"
)

// EventRepository persists the append-only issue timeline. Rows are only
// ever inserted.
type EventRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{
		db:     db,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *EventRepository) Save(ctx context.Context, e *issue.Event) error {
	model := r.mapper.EventToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save issue event: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *EventRepository) SaveAll(ctx context.Context, events []*issue.Event) error {
	if len(events) == 0 {
		return nil
	}

	eventModels := make([]*models.IssueEventModel, len(events))
	for i, e := range events {
		eventModels[i] = r.mapper.EventToModel(e)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(eventModels).Error; err != nil {
		return fmt.Errorf("failed to save issue events: %w", err)
	}

	for i, e := range events {
		if err := e.SetID(eventModels[i].ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *EventRepository) ListByIssueID(ctx context.Context, issueID uint) ([]*issue.Event, error) {
	var eventModels []models.IssueEventModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("issue_id = ?", issueID).
		Order("created_at ASC, id ASC").
		Find(&eventModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list issue events: %w", err)
	}

	events := make([]*issue.Event, len(eventModels))
	for i, model := range eventModels {
		e, err := r.mapper.EventToDomain(&model)
		if err != nil {
			return nil, err
		}
		events[i] = e
	}

	return events, nil
}
