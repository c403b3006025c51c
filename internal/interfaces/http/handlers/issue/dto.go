package issue

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"dishpatch/internal/application/issue/usecases"
	"dishpatch/internal/shared/errors"
)

type CreateIssueRequest struct {
	OrderID       *uint    `json:"order_id,omitempty"`
	TargetType    string   `json:"target_type" binding:"required"`
	TargetID      *uint    `json:"target_id,omitempty"`
	TargetNote    string   `json:"target_note,omitempty"`
	Category      string   `json:"category" binding:"required"`
	OtherCategory string   `json:"other_category,omitempty"`
	Title         string   `json:"title" binding:"required,max=200"`
	Description   string   `json:"description,omitempty" binding:"max=5000"`
	Attachments   []string `json:"attachments,omitempty"`
}

func (r *CreateIssueRequest) ToCommand(accountID uint) usecases.CreateIssueCommand {
	return usecases.CreateIssueCommand{
		AccountID:     accountID,
		OrderID:       r.OrderID,
		TargetType:    r.TargetType,
		TargetID:      r.TargetID,
		TargetNote:    r.TargetNote,
		Category:      r.Category,
		OtherCategory: r.OtherCategory,
		Title:         r.Title,
		Description:   r.Description,
		Attachments:   r.Attachments,
	}
}

type AddMessageRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

type AddAttachmentRequest struct {
	URL  string `json:"url" binding:"required,max=500"`
	Note string `json:"note,omitempty" binding:"max=500"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason,omitempty" binding:"max=1000"`
}

type DecisionRequest struct {
	Decision string `json:"decision" binding:"required"`
	Amount   *int64 `json:"amount,omitempty"`
	Note     string `json:"note,omitempty" binding:"max=1000"`
}

type DecisionInput struct {
	Decision string `json:"decision" binding:"required"`
	Amount   *int64 `json:"amount,omitempty"`
	Note     string `json:"note,omitempty" binding:"max=1000"`
}

type ReplyIssueRequest struct {
	Message      string         `json:"message,omitempty" binding:"max=5000"`
	Status       string         `json:"status,omitempty"`
	StatusReason string         `json:"status_reason,omitempty" binding:"max=1000"`
	OwnerRefund  *DecisionInput `json:"owner_refund,omitempty"`
	AdminCredit  *DecisionInput `json:"admin_credit,omitempty"`
}

func (r *ReplyIssueRequest) ToCommand(issueID, accountID uint) usecases.ReplyIssueCommand {
	cmd := usecases.ReplyIssueCommand{
		IssueID:      issueID,
		AccountID:    accountID,
		Message:      r.Message,
		Status:       r.Status,
		StatusReason: r.StatusReason,
	}
	if r.OwnerRefund != nil {
		cmd.OwnerRefund = &usecases.DecisionInput{
			Decision: r.OwnerRefund.Decision,
			Amount:   r.OwnerRefund.Amount,
			Note:     r.OwnerRefund.Note,
		}
	}
	if r.AdminCredit != nil {
		cmd.AdminCredit = &usecases.DecisionInput{
			Decision: r.AdminCredit.Decision,
			Amount:   r.AdminCredit.Amount,
			Note:     r.AdminCredit.Note,
		}
	}
	return cmd
}

type ResolveIssueRequest struct {
	Resolution string `json:"resolution" binding:"required"`
	Amount     *int64 `json:"amount,omitempty"`
	Reason     string `json:"reason,omitempty" binding:"max=1000"`
}

type ListIssuesRequest struct {
	Scope    string
	Status   string
	Category string
	Page     int
	PageSize int
}

func (r *ListIssuesRequest) ToQuery(accountID uint) usecases.ListIssuesQuery {
	return usecases.ListIssuesQuery{
		AccountID: accountID,
		Scope:     r.Scope,
		Status:    r.Status,
		Category:  r.Category,
		Page:      r.Page,
		PageSize:  r.PageSize,
	}
}

func parseListIssuesRequest(c *gin.Context) *ListIssuesRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return &ListIssuesRequest{
		Scope:    c.DefaultQuery("scope", "MY"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Page:     page,
		PageSize: pageSize,
	}
}

func parseIssueID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid issue ID")
	}
	return uint(id), nil
}
