package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dishpatch/internal/shared/logger"
	"dishpatch/internal/shared/utils"
)

const accountIDHeader = "X-Account-ID"

// ContextAccountIDKey is where Identity stores the resolved account id.
const ContextAccountIDKey = "account_id"

// Identity resolves the acting account. The X-Account-ID header set by the
// API gateway takes precedence; without it the accountId or actorId query
// parameter is accepted. Authentication itself happens upstream; this
// service only trusts the forwarded id.
func Identity(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(accountIDHeader)
		if raw == "" {
			raw = c.Query("accountId")
		}
		if raw == "" {
			raw = c.Query("actorId")
		}
		if raw == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing account identity")
			c.Abort()
			return
		}

		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			log.Warnw("invalid account identity header", "value", raw)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid account identity")
			c.Abort()
			return
		}

		c.Set(ContextAccountIDKey, uint(id))
		c.Next()
	}
}

// AccountID reads the account id stored by Identity.
func AccountID(c *gin.Context) uint {
	if v, exists := c.Get(ContextAccountIDKey); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
