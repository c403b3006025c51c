package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"dishpatch/internal/shared/logger"
)

func identityRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))

	engine := gin.New()
	engine.Use(Identity(log))
	engine.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"account_id": AccountID(c)})
	})
	return engine
}

func TestIdentity(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		query      string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "gateway header",
			header:     "42",
			wantStatus: http.StatusOK,
			wantBody:   `"account_id":42`,
		},
		{
			name:       "accountId query parameter",
			query:      "?accountId=7",
			wantStatus: http.StatusOK,
			wantBody:   `"account_id":7`,
		},
		{
			name:       "actorId query parameter",
			query:      "?actorId=9",
			wantStatus: http.StatusOK,
			wantBody:   `"account_id":9`,
		},
		{
			name:       "header wins over query",
			header:     "42",
			query:      "?accountId=7",
			wantStatus: http.StatusOK,
			wantBody:   `"account_id":42`,
		},
		{
			name:       "missing identity",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-numeric identity",
			header:     "abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "zero identity",
			query:      "?accountId=0",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := identityRouter()

			req := httptest.NewRequest(http.MethodGet, "/whoami"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("X-Account-ID", tt.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
