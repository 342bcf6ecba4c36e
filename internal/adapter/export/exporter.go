package export

import "quotation_service/internal/usecase/interfaces"

// DocumentExporter turns resolved quotations and analytics reports into
// downloadable files.
type DocumentExporter struct{}

var _ interfaces.IDocumentExporter = (*DocumentExporter)(nil)

func NewDocumentExporter() *DocumentExporter {
	return &DocumentExporter{}
}
