package handlers

import (
	"errors"
	"net/http"

	request "quotation_service/internal/adapter/http/dto/request"
	response "quotation_service/internal/adapter/http/dto/response"
	"quotation_service/internal/adapter/http/middleware"
	"quotation_service/internal/usecase"
	"quotation_service/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles HTTP requests for services, add-ons and bundles.
// Reads are open to any authenticated user; writes are admin only.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListServices godoc
// @Summary  List active services with their add-ons
// @Tags     services
// @Produce  json
// @Success  200  {array}  response.ServiceResponse
// @Router   /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	list, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServicesWithAddons(list))
}

// GetService godoc
// @Summary  Get a service
// @Tags     services
// @Param    id  path  string  true  "Service ID"
// @Success  200  {object}  response.ServiceResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	s, err := h.usecase.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceWithAddons(s))
}

// CreateService godoc
// @Summary   Create a service
// @Tags      services
// @Security  Bearer
// @Param     body  body  request.ServiceRequest  true  "Service"
// @Router    /services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	s, err := h.usecase.CreateService(c.Request.Context(), middleware.CallerFrom(c), payload.ToEntity())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, s)
}

// UpdateService godoc
// @Summary   Update a service
// @Tags      services
// @Security  Bearer
// @Param     id    path  string                  true  "Service ID"
// @Param     body  body  request.ServiceRequest  true  "Service"
// @Router    /services/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	s, err := h.usecase.UpdateService(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

// DeleteService godoc
// @Summary   Deactivate a service
// @Tags      services
// @Security  Bearer
// @Param     id  path  string  true  "Service ID"
// @Router    /services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.DeleteService(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Service deleted"})
}

// @Summary  List active add-ons
// @Tags     addons
// @Router   /addons [get]
func (h *CatalogHandler) ListAddons(c *gin.Context) {
	list, err := h.usecase.ListAddons(c.Request.Context())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAddons(list))
}

// @Summary  Get an add-on
// @Tags     addons
// @Router   /addons/{id} [get]
func (h *CatalogHandler) GetAddon(c *gin.Context) {
	a, err := h.usecase.GetAddon(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, a)
}

// @Summary   Create an add-on
// @Tags      addons
// @Security  Bearer
// @Router    /addons [post]
func (h *CatalogHandler) CreateAddon(c *gin.Context) {
	var payload request.AddonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	a, err := h.usecase.CreateAddon(c.Request.Context(), middleware.CallerFrom(c), payload.ToEntity())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, a)
}

// @Summary   Update an add-on
// @Tags      addons
// @Security  Bearer
// @Router    /addons/{id} [put]
func (h *CatalogHandler) UpdateAddon(c *gin.Context) {
	var payload request.AddonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	a, err := h.usecase.UpdateAddon(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, a)
}

// @Summary   Deactivate an add-on
// @Tags      addons
// @Security  Bearer
// @Router    /addons/{id} [delete]
func (h *CatalogHandler) DeleteAddon(c *gin.Context) {
	if err := h.usecase.DeleteAddon(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Addon deleted"})
}

// @Summary  List active bundles with their services
// @Tags     bundles
// @Router   /bundles [get]
func (h *CatalogHandler) ListBundles(c *gin.Context) {
	list, err := h.usecase.ListBundles(c.Request.Context())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBundlesWithServices(list))
}

// @Summary  Get a bundle
// @Tags     bundles
// @Router   /bundles/{id} [get]
func (h *CatalogHandler) GetBundle(c *gin.Context) {
	b, err := h.usecase.GetBundle(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBundleWithServices(b))
}

// @Summary   Create a bundle
// @Tags      bundles
// @Security  Bearer
// @Router    /bundles [post]
func (h *CatalogHandler) CreateBundle(c *gin.Context) {
	var payload request.BundleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	b, err := h.usecase.CreateBundle(c.Request.Context(), middleware.CallerFrom(c), payload.ToEntity())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, b)
}

// @Summary   Update a bundle
// @Tags      bundles
// @Security  Bearer
// @Router    /bundles/{id} [put]
func (h *CatalogHandler) UpdateBundle(c *gin.Context) {
	var payload request.BundleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	b, err := h.usecase.UpdateBundle(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary   Deactivate a bundle
// @Tags      bundles
// @Security  Bearer
// @Router    /bundles/{id} [delete]
func (h *CatalogHandler) DeleteBundle(c *gin.Context) {
	if err := h.usecase.DeleteBundle(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Bundle deleted"})
}

func mapCatalogError(err error) *pkg.AppError {
	if appErr := mapAccessError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidCatalogID), errors.Is(err, usecase.ErrInvalidCatalogInput):
		return invalidInput("INVALID_CATALOG_INPUT", err)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAddonNotFound):
		return pkg.NewDomainErrorSimple("ADDON_NOT_FOUND", "Addon not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBundleNotFound):
		return pkg.NewDomainErrorSimple("BUNDLE_NOT_FOUND", "Bundle not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
