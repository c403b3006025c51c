package order

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"dishpatch/internal/shared/errors"
)

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func parseOrderID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid order ID")
	}
	return uint(id), nil
}
