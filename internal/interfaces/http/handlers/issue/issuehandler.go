package issue

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dishpatch/internal/application/issue/usecases"
	"dishpatch/internal/interfaces/http/middleware"
	"dishpatch/internal/shared/errors"
	"dishpatch/internal/shared/logger"
	"dishpatch/internal/shared/utils"
)

type IssueHandler struct {
	createIssueUC  usecases.CreateIssueExecutor
	addMessageUC   usecases.AddMessageExecutor
	addAttachUC    usecases.AddAttachmentExecutor
	changeStatusUC usecases.ChangeStatusExecutor
	ownerRefundUC  usecases.OwnerRefundExecutor
	adminCreditUC  usecases.AdminCreditExecutor
	replyIssueUC   usecases.ReplyIssueExecutor
	resolveOwnerUC usecases.ResolveOwnerIssueExecutor
	getIssueUC     usecases.GetIssueExecutor
	listIssuesUC   usecases.ListIssuesExecutor
	logger         logger.Interface
}

func NewIssueHandler(
	createIssueUC usecases.CreateIssueExecutor,
	addMessageUC usecases.AddMessageExecutor,
	addAttachUC usecases.AddAttachmentExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	ownerRefundUC usecases.OwnerRefundExecutor,
	adminCreditUC usecases.AdminCreditExecutor,
	replyIssueUC usecases.ReplyIssueExecutor,
	resolveOwnerUC usecases.ResolveOwnerIssueExecutor,
	getIssueUC usecases.GetIssueExecutor,
	listIssuesUC usecases.ListIssuesExecutor,
) *IssueHandler {
	return &IssueHandler{
		createIssueUC:  createIssueUC,
		addMessageUC:   addMessageUC,
		addAttachUC:    addAttachUC,
		changeStatusUC: changeStatusUC,
		ownerRefundUC:  ownerRefundUC,
		adminCreditUC:  adminCreditUC,
		replyIssueUC:   replyIssueUC,
		resolveOwnerUC: resolveOwnerUC,
		getIssueUC:     getIssueUC,
		listIssuesUC:   listIssuesUC,
		logger:         logger.NewLogger(),
	}
}

// CreateIssue handles POST /issues
func (h *IssueHandler) CreateIssue(c *gin.Context) {
	var req CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create issue", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := req.ToCommand(middleware.AccountID(c))

	result, err := h.createIssueUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Issue created successfully")
}

// GetIssue handles GET /issues/:id. The path segment is either a numeric
// issue ID or a human-facing issue code such as ISS-20250307-000100.
func (h *IssueHandler) GetIssue(c *gin.Context) {
	query := usecases.GetIssueQuery{
		AccountID: middleware.AccountID(c),
	}

	ref := c.Param("id")
	if id, err := strconv.ParseUint(ref, 10, 32); err == nil && id > 0 {
		query.IssueID = uint(id)
	} else {
		query.Code = ref
	}

	result, err := h.getIssueUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListIssues handles GET /issues
func (h *IssueHandler) ListIssues(c *gin.Context) {
	req := parseListIssuesRequest(c)

	query := req.ToQuery(middleware.AccountID(c))

	result, err := h.listIssuesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Issues, result.TotalCount, result.Page, result.PageSize)
}

// AddMessage handles POST /issues/:id/messages
func (h *IssueHandler) AddMessage(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.AddMessageCommand{
		IssueID:   issueID,
		AccountID: middleware.AccountID(c),
		Content:   req.Content,
	}

	result, err := h.addMessageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message added successfully")
}

// AddAttachment handles POST /issues/:id/attachments
func (h *IssueHandler) AddAttachment(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.AddAttachmentCommand{
		IssueID:       issueID,
		AccountID:     middleware.AccountID(c),
		AttachmentURL: req.URL,
		Note:          req.Note,
	}

	result, err := h.addAttachUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment added successfully")
}

// ChangeStatus handles PATCH /issues/:id/status
func (h *IssueHandler) ChangeStatus(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.ChangeStatusCommand{
		IssueID:   issueID,
		AccountID: middleware.AccountID(c),
		Status:    req.Status,
		Reason:    req.Reason,
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue status updated successfully", result)
}

// OwnerRefund handles POST /issues/:id/owner-refund
func (h *IssueHandler) OwnerRefund(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.OwnerRefundCommand{
		IssueID:   issueID,
		AccountID: middleware.AccountID(c),
		Decision:  req.Decision,
		Amount:    req.Amount,
		Note:      req.Note,
	}

	result, err := h.ownerRefundUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Refund decision recorded successfully", result)
}

// AdminCredit handles POST /issues/:id/admin-credit
func (h *IssueHandler) AdminCredit(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.AdminCreditCommand{
		IssueID:   issueID,
		AccountID: middleware.AccountID(c),
		Decision:  req.Decision,
		Amount:    req.Amount,
		Note:      req.Note,
	}

	result, err := h.adminCreditUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Credit decision recorded successfully", result)
}

// ReplyIssue handles POST /issues/:id/reply
func (h *IssueHandler) ReplyIssue(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReplyIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := req.ToCommand(issueID, middleware.AccountID(c))

	result, err := h.replyIssueUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reply recorded successfully", result)
}

// ResolveIssue handles POST /issues/:id/resolve
func (h *IssueHandler) ResolveIssue(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResolveIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.ResolveOwnerIssueCommand{
		IssueID:    issueID,
		AccountID:  middleware.AccountID(c),
		Resolution: req.Resolution,
		Amount:     req.Amount,
		Reason:     req.Reason,
	}

	result, err := h.resolveOwnerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue resolved successfully", result)
}
