package entities

import "time"

// ServiceCategory groups services and add-ons into the fixed business lines
// sold by the agency.
type ServiceCategory string

const (
	CategoryWebsiteDevelopment ServiceCategory = "Website Development"
	CategoryVirtualAssistant   ServiceCategory = "Virtual Assistant Services"
	CategorySocialMedia        ServiceCategory = "Social Media Marketing"
	CategoryBrandedKit         ServiceCategory = "Branded Kit"
	CategoryCRM                ServiceCategory = "CRM Services"
	CategoryAllInOne           ServiceCategory = "All-in-One Solution"
)

var serviceCategories = []ServiceCategory{
	CategoryWebsiteDevelopment,
	CategoryVirtualAssistant,
	CategorySocialMedia,
	CategoryBrandedKit,
	CategoryCRM,
	CategoryAllInOne,
}

// ServiceCategories lists the accepted categories in display order.
func ServiceCategories() []ServiceCategory {
	out := make([]ServiceCategory, len(serviceCategories))
	copy(out, serviceCategories)
	return out
}

func (c ServiceCategory) Valid() bool {
	for _, known := range serviceCategories {
		if c == known {
			return true
		}
	}
	return false
}

// BillingType is the billing cadence of a service or add-on.
type BillingType string

const (
	BillingOneTime BillingType = "one-time"
	BillingMonthly BillingType = "monthly"
)

func (b BillingType) Valid() bool {
	return b == BillingOneTime || b == BillingMonthly
}

// Service is a sellable offering.
//
// Storage model (DynamoDB):
//   - PK: id
//
// BasePrice is copied into quotation lines at creation time; quotations never
// link back to it for pricing.
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    ServiceCategory `json:"category"`
	Description string          `json:"description"`
	BasePrice   float64         `json:"base_price"`
	Type        BillingType     `json:"type"`
	AddonIDs    []string        `json:"addon_ids"`
	IsActive    bool            `json:"is_active"`
	Icon        string          `json:"icon"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Addon is an optional extra priced separately from the service it is sold with.
type Addon struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    ServiceCategory `json:"category"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Type        BillingType     `json:"type"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DiscountType selects how a bundle discount value is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func (d DiscountType) Valid() bool {
	return d == DiscountPercentage || d == DiscountFixed
}

// Bundle unlocks a discount when every one of its services is quoted together.
//
// DiscountValue is a percentage (not clamped to 100) or a fixed amount,
// depending on DiscountType.
type Bundle struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	ServiceIDs    []string     `json:"service_ids"`
	AddonIDs      []string     `json:"addon_ids"`
	DiscountType  DiscountType `json:"discount_type"`
	DiscountValue float64      `json:"discount_value"`
	IsActive      bool         `json:"is_active"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// BundleWithServices is a bundle with its required services resolved.
// Services that no longer exist are absent from Services.
type BundleWithServices struct {
	Bundle
	Services []Service
	Addons   []Addon
}

// ServiceWithAddons is a service with its eligible add-ons resolved.
type ServiceWithAddons struct {
	Service
	Addons []Addon
}
