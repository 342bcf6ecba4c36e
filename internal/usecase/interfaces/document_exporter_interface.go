package interfaces

import (
	"errors"

	"quotation_service/internal/domain/entities"
)

// ErrIncompleteQuotation is returned when a quotation view lacks data the
// document needs (dates or an item's service).
var ErrIncompleteQuotation = errors.New("quotation is missing data required for export")

// IDocumentExporter renders resolved domain data into downloadable documents.
type IDocumentExporter interface {
	QuotationPDF(v entities.QuotationView) ([]byte, error)
	AnalyticsXLSX(r entities.AnalyticsReport) ([]byte, error)
}
