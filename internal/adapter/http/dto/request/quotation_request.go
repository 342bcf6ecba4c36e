package request

import (
	"strings"

	"quotation_service/internal/usecase"
)

type QuotationItemRequest struct {
	ServiceID string   `json:"service"`
	Quantity  int      `json:"quantity"`
	AddonIDs  []string `json:"addons"`
}

// CreateQuotationRequest is the body of POST /quotations. Items must be
// present but may be empty.
type CreateQuotationRequest struct {
	ClientName  string                 `json:"clientName"`
	ClientEmail string                 `json:"clientEmail"`
	ClientPhone string                 `json:"clientPhone"`
	Items       []QuotationItemRequest `json:"items"`
	BundleIDs   []string               `json:"bundles"`
	Notes       string                 `json:"notes"`
}

func (r CreateQuotationRequest) ToInput() usecase.CreateQuotationInput {
	var items []usecase.LineRequest
	if r.Items != nil {
		items = make([]usecase.LineRequest, 0, len(r.Items))
		for _, it := range r.Items {
			items = append(items, usecase.LineRequest{
				ServiceID: strings.TrimSpace(it.ServiceID),
				Quantity:  it.Quantity,
				AddonIDs:  it.AddonIDs,
			})
		}
	}
	return usecase.CreateQuotationInput{
		ClientName:  r.ClientName,
		ClientEmail: strings.TrimSpace(r.ClientEmail),
		ClientPhone: strings.TrimSpace(r.ClientPhone),
		Items:       items,
		BundleIDs:   r.BundleIDs,
		Notes:       r.Notes,
	}
}

type UpdateQuotationStatusRequest struct {
	Status string `json:"status"`
}
