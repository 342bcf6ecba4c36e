package routes

import (
	"quotation_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/quotations"
	PathPDF        = "/pdf"
)

func addQuotationRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc, h *handlers.QuotationHandler) {
	quotations := rg.Group(PathQuotations, requireAuth)
	{
		quotations.POST("", h.CreateQuotation)
		quotations.GET("", h.ListQuotations)
		quotations.GET("/:id", h.GetQuotation)
		quotations.PATCH("/:id/status", h.UpdateQuotationStatus)
	}

	pdf := rg.Group(PathPDF, requireAuth)
	{
		pdf.GET("/:id", h.DownloadQuotationPDF)
	}
}
