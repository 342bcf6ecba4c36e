package routes

import (
	"quotation_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

func addAdminRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc, analytics *handlers.AnalyticsHandler, users *handlers.UserHandler) {
	admin := rg.Group(PathAdmin, requireAuth)
	{
		admin.GET("/analytics", analytics.GetAnalytics)
		admin.GET("/analytics/export", analytics.ExportAnalytics)
		admin.GET("/users", users.ListUsers)
		admin.POST("/users", users.CreateUser)
	}
}
