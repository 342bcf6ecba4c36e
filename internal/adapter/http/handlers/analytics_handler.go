package handlers

import (
	"net/http"

	"quotation_service/internal/adapter/http/middleware"
	"quotation_service/internal/usecase"
	"quotation_service/internal/usecase/interfaces"
	"quotation_service/pkg"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AnalyticsHandler serves the admin dashboard report and its spreadsheet
// export.
type AnalyticsHandler struct {
	usecase  usecase.IAnalyticsUseCase
	exporter interfaces.IDocumentExporter
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase, exporter interfaces.IDocumentExporter) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc, exporter: exporter}
}

// GetAnalytics godoc
// @Summary   Quotation analytics
// @Tags      admin
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  entities.AnalyticsReport
// @Failure   403  {object}  pkg.HTTPError
// @Router    /admin/analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	report, err := h.usecase.Report(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		writeError(c, mapAnalyticsError(err))
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportAnalytics godoc
// @Summary   Quotation analytics as an XLSX workbook
// @Tags      admin
// @Produce   application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security  Bearer
// @Router    /admin/analytics/export [get]
func (h *AnalyticsHandler) ExportAnalytics(c *gin.Context) {
	report, err := h.usecase.Report(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		writeError(c, mapAnalyticsError(err))
		return
	}

	doc, err := h.exporter.AnalyticsXLSX(report)
	if err != nil {
		writeError(c, internalError(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="analytics.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, doc)
}

func mapAnalyticsError(err error) *pkg.AppError {
	if appErr := mapAccessError(err); appErr != nil {
		return appErr
	}
	return internalError(err)
}
