package response

import (
	"time"

	"quotation_service/internal/domain/entities"
)

type QuotationItemResponse struct {
	ServiceID string            `json:"service_id"`
	Service   *entities.Service `json:"service"`
	AddonIDs  []string          `json:"addon_ids"`
	Addons    []entities.Addon  `json:"addons"`
	Quantity  int               `json:"quantity"`
	Price     float64           `json:"price"`
}

// QuotationResponse is a quotation with its catalog references and creator
// resolved for display.
type QuotationResponse struct {
	ID          string                  `json:"id"`
	Number      string                  `json:"quotation_number"`
	ClientName  string                  `json:"client_name"`
	ClientEmail string                  `json:"client_email,omitempty"`
	ClientPhone string                  `json:"client_phone,omitempty"`
	Items       []QuotationItemResponse `json:"items"`
	Bundles     []entities.Bundle       `json:"bundles"`
	Subtotal    float64                 `json:"subtotal"`
	Discount    float64                 `json:"discount"`
	Total       float64                 `json:"total"`
	Notes       string                  `json:"notes"`
	CreatedBy   *entities.UserSummary   `json:"created_by"`
	Status      string                  `json:"status"`
	ValidUntil  time.Time               `json:"valid_until"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

func FromQuotationView(v entities.QuotationView) QuotationResponse {
	items := make([]QuotationItemResponse, 0, len(v.ItemViews))
	for _, it := range v.ItemViews {
		items = append(items, QuotationItemResponse{
			ServiceID: it.ServiceID,
			Service:   it.Service,
			AddonIDs:  nonNilIDs(it.AddonIDs),
			Addons:    nonNilSlice(it.Addons),
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return QuotationResponse{
		ID:          v.ID,
		Number:      v.Number,
		ClientName:  v.ClientName,
		ClientEmail: v.ClientEmail,
		ClientPhone: v.ClientPhone,
		Items:       items,
		Bundles:     nonNilSlice(v.Bundles),
		Subtotal:    v.Subtotal,
		Discount:    v.Discount,
		Total:       v.Total,
		Notes:       v.Notes,
		CreatedBy:   v.Creator,
		Status:      string(v.Status),
		ValidUntil:  v.ValidUntil,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromQuotationViews(vs []entities.QuotationView) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromQuotationView(v))
	}
	return out
}

func nonNilIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
