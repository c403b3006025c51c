package mappers

import (
	"time"

	"dishpatch/internal/domain/account"
	"dishpatch/internal/domain/issue"
	vo "dishpatch/internal/domain/issue/valueobjects"
	"dishpatch/internal/infrastructure/persistence/models"
)

// IssueMapper handles the conversion between issue domain entities and persistence models.
type IssueMapper interface {
	// ToModel converts an issue domain entity to a persistence model.
	ToModel(i *issue.Issue) *models.IssueModel

	// ToDomain converts an issue persistence model to a domain entity.
	ToDomain(model *models.IssueModel) (*issue.Issue, error)

	// EventToModel converts an event domain entity to a persistence model.
	EventToModel(e *issue.Event) *models.IssueEventModel

	// EventToDomain converts an event persistence model to a domain entity.
	EventToDomain(model *models.IssueEventModel) (*issue.Event, error)
}

// IssueMapperImpl is the concrete implementation of IssueMapper.
type IssueMapperImpl struct{}

// NewIssueMapper creates a new IssueMapper.
func NewIssueMapper() IssueMapper {
	return &IssueMapperImpl{}
}

// ToModel converts an issue domain entity to a persistence model.
func (m *IssueMapperImpl) ToModel(i *issue.Issue) *models.IssueModel {
	model := &models.IssueModel{
		ID:                i.ID(),
		OrderID:           i.OrderID(),
		CreatedByID:       i.CreatedByID(),
		CreatedByRole:     i.CreatedByRole().String(),
		TargetType:        i.TargetType().String(),
		TargetID:          i.TargetID(),
		TargetNote:        i.TargetNote(),
		Category:          i.Category().String(),
		OtherCategory:     i.OtherCategory(),
		Title:             i.Title(),
		Description:       i.Description(),
		AssignedOwnerID:   i.AssignedOwnerID(),
		AssignedAdminID:   i.AssignedAdminID(),
		Status:            i.Status().String(),
		OwnerRefundStatus: i.OwnerRefundStatus().String(),
		OwnerRefundAmount: i.OwnerRefundAmount(),
		AdminCreditStatus: i.AdminCreditStatus().String(),
		AdminCreditAmount: i.AdminCreditAmount(),
		ResolvedReason:    i.ResolvedReason(),
		CreatedAt:         i.CreatedAt().UnixMilli(),
		UpdatedAt:         i.UpdatedAt().UnixMilli(),
	}

	if code := i.Code(); code != "" {
		model.Code = &code
	}

	if i.ResolvedAt() != nil {
		resolved := i.ResolvedAt().UnixMilli()
		model.ResolvedAt = &resolved
	}

	return model
}

// ToDomain converts an issue persistence model to a domain entity.
// Events must be loaded separately by the repository.
func (m *IssueMapperImpl) ToDomain(model *models.IssueModel) (*issue.Issue, error) {
	var code string
	if model.Code != nil {
		code = *model.Code
	}

	createdAt := convertMillisToTime(model.CreatedAt)
	updatedAt := convertMillisToTime(model.UpdatedAt)

	var resolvedAt *time.Time
	if model.ResolvedAt != nil {
		t := convertMillisToTime(*model.ResolvedAt)
		resolvedAt = &t
	}

	return issue.ReconstructIssue(
		model.ID,
		code,
		model.OrderID,
		model.CreatedByID,
		account.Role(model.CreatedByRole),
		vo.TargetType(model.TargetType),
		model.TargetID,
		model.TargetNote,
		vo.Category(model.Category),
		model.OtherCategory,
		model.Title,
		model.Description,
		model.AssignedOwnerID,
		model.AssignedAdminID,
		vo.IssueStatus(model.Status),
		vo.DecisionStatus(model.OwnerRefundStatus),
		model.OwnerRefundAmount,
		vo.DecisionStatus(model.AdminCreditStatus),
		model.AdminCreditAmount,
		model.ResolvedReason,
		resolvedAt,
		createdAt,
		updatedAt,
	)
}

// EventToModel converts an event domain entity to a persistence model.
func (m *IssueMapperImpl) EventToModel(e *issue.Event) *models.IssueEventModel {
	return &models.IssueEventModel{
		ID:            e.ID(),
		IssueID:       e.IssueID(),
		AccountID:     e.AccountID(),
		AccountRole:   e.AccountRole().String(),
		EventType:     e.Type().String(),
		Content:       e.Content(),
		OldValue:      e.OldValue(),
		NewValue:      e.NewValue(),
		Amount:        e.Amount(),
		AttachmentURL: e.AttachmentURL(),
		CreatedAt:     e.CreatedAt().UnixMilli(),
	}
}

// EventToDomain converts an event persistence model to a domain entity.
func (m *IssueMapperImpl) EventToDomain(model *models.IssueEventModel) (*issue.Event, error) {
	return issue.ReconstructEvent(
		model.ID,
		model.IssueID,
		model.AccountID,
		account.Role(model.AccountRole),
		vo.EventType(model.EventType),
		model.Content,
		model.OldValue,
		model.NewValue,
		model.Amount,
		model.AttachmentURL,
		convertMillisToTime(model.CreatedAt),
	)
}

func convertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
