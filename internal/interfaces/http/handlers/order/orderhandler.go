package order

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dishpatch/internal/application/order/usecases"
	"dishpatch/internal/interfaces/http/middleware"
	"dishpatch/internal/shared/errors"
	"dishpatch/internal/shared/logger"
	"dishpatch/internal/shared/utils"
)

type OrderHandler struct {
	updateStatusUC     usecases.UpdateOrderStatusExecutor
	acceptOrderUC      usecases.AcceptOrderExecutor
	startDeliveryUC    usecases.StartDeliveryExecutor
	completeDeliveryUC usecases.CompleteDeliveryExecutor
	getOrderUC         usecases.GetOrderExecutor
	logger             logger.Interface
}

func NewOrderHandler(
	updateStatusUC usecases.UpdateOrderStatusExecutor,
	acceptOrderUC usecases.AcceptOrderExecutor,
	startDeliveryUC usecases.StartDeliveryExecutor,
	completeDeliveryUC usecases.CompleteDeliveryExecutor,
	getOrderUC usecases.GetOrderExecutor,
) *OrderHandler {
	return &OrderHandler{
		updateStatusUC:     updateStatusUC,
		acceptOrderUC:      acceptOrderUC,
		startDeliveryUC:    startDeliveryUC,
		completeDeliveryUC: completeDeliveryUC,
		getOrderUC:         getOrderUC,
		logger:             logger.NewLogger(),
	}
}

// UpdateStatus handles PATCH /orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := parseOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update order status", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.UpdateOrderStatusCommand{
		OrderID:   orderID,
		AccountID: middleware.AccountID(c),
		Status:    req.Status,
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order status updated successfully", result)
}

// AcceptOrder handles POST /orders/:id/accept
func (h *OrderHandler) AcceptOrder(c *gin.Context) {
	orderID, err := parseOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AcceptOrderCommand{
		OrderID:   orderID,
		AccountID: middleware.AccountID(c),
	}

	result, err := h.acceptOrderUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order accepted successfully", result)
}

// StartDelivery handles POST /orders/:id/delivery-start
func (h *OrderHandler) StartDelivery(c *gin.Context) {
	orderID, err := parseOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.StartDeliveryCommand{
		OrderID:   orderID,
		AccountID: middleware.AccountID(c),
	}

	result, err := h.startDeliveryUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Delivery started successfully", result)
}

// CompleteDelivery handles POST /orders/:id/complete
func (h *OrderHandler) CompleteDelivery(c *gin.Context) {
	orderID, err := parseOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CompleteDeliveryCommand{
		OrderID:   orderID,
		AccountID: middleware.AccountID(c),
	}

	result, err := h.completeDeliveryUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Delivery completed successfully", result)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := parseOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetOrderQuery{
		OrderID:   orderID,
		AccountID: middleware.AccountID(c),
	}

	result, err := h.getOrderUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
