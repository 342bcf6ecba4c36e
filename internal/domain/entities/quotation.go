package entities

import "time"

// QuotationStatus represents the lifecycle of a quotation.
//
// Domain notes:
//   - New quotations start as draft.
//   - Transitions are not guarded: the status update operation persists whatever
//     value the caller supplies, so a stored status may fall outside the
//     constants below.
type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "draft"
	QuotationStatusSent     QuotationStatus = "sent"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusRejected QuotationStatus = "rejected"
)

// QuotationValidity is how long a quotation stays valid after creation.
const QuotationValidity = 30 * 24 * time.Hour

// QuotationItem is one priced service selection. Price is captured at creation
// time as basePrice*quantity plus the resolved add-on prices.
type QuotationItem struct {
	ServiceID string   `json:"service_id"`
	AddonIDs  []string `json:"addon_ids"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
}

// Quotation is the priced proposal persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (created_by-index): created_by
//   - Guard table keyed by quotation_number keeps numbers unique.
//
// Subtotal, Discount and Total are derived at creation and never recomputed.
type Quotation struct {
	ID          string          `json:"id"`
	Number      string          `json:"quotation_number"`
	ClientName  string          `json:"client_name"`
	ClientEmail string          `json:"client_email,omitempty"`
	ClientPhone string          `json:"client_phone,omitempty"`
	Items       []QuotationItem `json:"items"`
	BundleIDs   []string        `json:"bundle_ids"`
	Subtotal    float64         `json:"subtotal"`
	Discount    float64         `json:"discount"`
	Total       float64         `json:"total"`
	Notes       string          `json:"notes"`
	CreatedBy   string          `json:"created_by"`
	Status      QuotationStatus `json:"status"`
	ValidUntil  time.Time       `json:"valid_until"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// QuotationItemView joins a stored item with the current catalog records for
// display. Service is nil when the referenced service no longer exists.
type QuotationItemView struct {
	QuotationItem
	Service *Service
	Addons  []Addon
}

// QuotationView is a quotation with its references resolved for display.
// The join never re-prices anything.
type QuotationView struct {
	Quotation
	ItemViews []QuotationItemView
	Bundles   []Bundle
	Creator   *UserSummary
}
