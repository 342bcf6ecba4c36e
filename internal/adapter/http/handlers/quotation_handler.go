package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "quotation_service/internal/adapter/http/dto/request"
	response "quotation_service/internal/adapter/http/dto/response"
	"quotation_service/internal/adapter/http/middleware"
	"quotation_service/internal/infrastructure/metrics"
	"quotation_service/internal/usecase"
	"quotation_service/internal/usecase/interfaces"
	"quotation_service/pkg"

	"github.com/gin-gonic/gin"
)

// QuotationHandler handles HTTP requests for the quotation lifecycle and the
// quotation PDF download.
type QuotationHandler struct {
	usecase  usecase.IQuotationUseCase
	exporter interfaces.IDocumentExporter
	metrics  *metrics.Metrics
}

func NewQuotationHandler(uc usecase.IQuotationUseCase, exporter interfaces.IDocumentExporter, m *metrics.Metrics) *QuotationHandler {
	return &QuotationHandler{usecase: uc, exporter: exporter, metrics: m}
}

// CreateQuotation godoc
// @Summary      Create a quotation
// @Description  Prices the requested services, applies eligible bundle discounts and stores a draft quotation.
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.CreateQuotationRequest  true  "Quotation"
// @Success      201   {object}  response.QuotationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /quotations [post]
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	view, err := h.usecase.Create(c.Request.Context(), middleware.CallerFrom(c), payload.ToInput())
	if err != nil {
		writeError(c, mapQuotationError(err))
		return
	}

	h.metrics.QuotationCreated(view.Total)
	c.JSON(http.StatusCreated, response.FromQuotationView(view))
}

// ListQuotations godoc
// @Summary      List quotations
// @Description  Admins see every quotation, sales agents only their own. Newest first.
// @Tags         quotations
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  response.QuotationResponse
// @Router       /quotations [get]
func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	views, err := h.usecase.List(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		writeError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotationViews(views))
}

// GetQuotation godoc
// @Summary   Get a quotation
// @Tags      quotations
// @Produce   json
// @Security  Bearer
// @Param     id   path      string  true  "Quotation ID"
// @Success   200  {object}  response.QuotationResponse
// @Failure   403  {object}  pkg.HTTPError
// @Failure   404  {object}  pkg.HTTPError
// @Router    /quotations/{id} [get]
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	view, err := h.usecase.GetByID(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotationView(view))
}

// UpdateQuotationStatus godoc
// @Summary      Update a quotation status
// @Description  Any non-empty status is stored as given.
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                                true  "Quotation ID"
// @Param        body  body      request.UpdateQuotationStatusRequest  true  "Status"
// @Success      200   {object}  entities.Quotation
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /quotations/{id}/status [patch]
func (h *QuotationHandler) UpdateQuotationStatus(c *gin.Context) {
	var payload request.UpdateQuotationStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	q, err := h.usecase.UpdateStatus(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), payload.Status)
	if err != nil {
		writeError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusOK, q)
}

// DownloadQuotationPDF godoc
// @Summary   Download a quotation as PDF
// @Tags      pdf
// @Produce   application/pdf
// @Security  Bearer
// @Param     id   path  string  true  "Quotation ID"
// @Success   200  {file}  binary
// @Failure   404  {object}  pkg.HTTPError
// @Router    /pdf/{id} [get]
func (h *QuotationHandler) DownloadQuotationPDF(c *gin.Context) {
	view, err := h.usecase.GetByID(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, mapQuotationError(err))
		return
	}

	doc, err := h.exporter.QuotationPDF(view)
	if err != nil {
		if errors.Is(err, interfaces.ErrIncompleteQuotation) {
			writeError(c, pkg.NewDomainError("QUOTATION_INCOMPLETE", err.Error(), err, http.StatusUnprocessableEntity))
			return
		}
		writeError(c, internalError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="quotation-%s.pdf"`, view.Number))
	c.Data(http.StatusOK, "application/pdf", doc)
}

func mapQuotationError(err error) *pkg.AppError {
	if appErr := mapAccessError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID),
		errors.Is(err, usecase.ErrInvalidClientName),
		errors.Is(err, usecase.ErrMissingItems),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidQuotationStatus):
		return invalidInput("INVALID_QUOTATION_INPUT", err)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNumberConflict):
		return pkg.NewDomainError("QUOTATION_NUMBER_CONFLICT", err.Error(), err, http.StatusConflict)
	default:
		return internalError(err)
	}
}
