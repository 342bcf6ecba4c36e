package routes

import (
	"quotation_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices = "/services"
	PathAddons   = "/addons"
	PathBundles  = "/bundles"
)

// Catalog writes are admin only; the use case enforces the role.
func addCatalogRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc, h *handlers.CatalogHandler) {
	services := rg.Group(PathServices, requireAuth)
	{
		services.GET("", h.ListServices)
		services.GET("/:id", h.GetService)
		services.POST("", h.CreateService)
		services.PUT("/:id", h.UpdateService)
		services.DELETE("/:id", h.DeleteService)
	}

	addons := rg.Group(PathAddons, requireAuth)
	{
		addons.GET("", h.ListAddons)
		addons.GET("/:id", h.GetAddon)
		addons.POST("", h.CreateAddon)
		addons.PUT("/:id", h.UpdateAddon)
		addons.DELETE("/:id", h.DeleteAddon)
	}

	bundles := rg.Group(PathBundles, requireAuth)
	{
		bundles.GET("", h.ListBundles)
		bundles.GET("/:id", h.GetBundle)
		bundles.POST("", h.CreateBundle)
		bundles.PUT("/:id", h.UpdateBundle)
		bundles.DELETE("/:id", h.DeleteBundle)
	}
}
