package routes

import (
	"github.com/gin-gonic/gin"

	issuehandlers "dishpatch/internal/interfaces/http/handlers/issue"
	"dishpatch/internal/interfaces/http/middleware"
	"dishpatch/internal/shared/logger"
)

type IssueRouteConfig struct {
	IssueHandler *issuehandlers.IssueHandler
	Logger       logger.Interface
}

func SetupIssueRoutes(engine *gin.Engine, config *IssueRouteConfig) {
	issues := engine.Group("/issues")
	issues.Use(middleware.Identity(config.Logger))
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		issues.POST("", config.IssueHandler.CreateIssue)
		issues.GET("", config.IssueHandler.ListIssues)

		issues.POST("/:id/messages", config.IssueHandler.AddMessage)
		issues.POST("/:id/attachments", config.IssueHandler.AddAttachment)
		issues.PATCH("/:id/status", config.IssueHandler.ChangeStatus)
		issues.POST("/:id/owner-refund", config.IssueHandler.OwnerRefund)
		issues.POST("/:id/admin-credit", config.IssueHandler.AdminCredit)
		issues.POST("/:id/reply", config.IssueHandler.ReplyIssue)
		issues.POST("/:id/resolve", config.IssueHandler.ResolveIssue)

		issues.GET("/:id", config.IssueHandler.GetIssue)
	}
}
