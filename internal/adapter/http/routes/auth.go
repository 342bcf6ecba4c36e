package routes

import (
	"quotation_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAuth = "/auth"

func addAuthRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc, h *handlers.AuthHandler) {
	authGroup := rg.Group(PathAuth)
	{
		authGroup.POST("/login", h.Login)
		authGroup.GET("/me", requireAuth, h.Me)
	}
}
