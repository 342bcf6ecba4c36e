package request

import "quotation_service/internal/domain/entities"

type ServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required,servicecategory"`
	Description string   `json:"description"`
	BasePrice   *float64 `json:"base_price" binding:"required,gte=0"`
	Type        string   `json:"type" binding:"required,billingtype"`
	AddonIDs    []string `json:"addon_ids"`
	Icon        string   `json:"icon"`
	IsActive    bool     `json:"is_active"`
}

func (r ServiceRequest) ToEntity() entities.Service {
	return entities.Service{
		Name:        r.Name,
		Category:    entities.ServiceCategory(r.Category),
		Description: r.Description,
		BasePrice:   deref(r.BasePrice),
		Type:        entities.BillingType(r.Type),
		AddonIDs:    r.AddonIDs,
		Icon:        r.Icon,
		IsActive:    r.IsActive,
	}
}

type AddonRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required,servicecategory"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Type        string   `json:"type" binding:"required,billingtype"`
	IsActive    bool     `json:"is_active"`
}

func (r AddonRequest) ToEntity() entities.Addon {
	return entities.Addon{
		Name:        r.Name,
		Category:    entities.ServiceCategory(r.Category),
		Description: r.Description,
		Price:       deref(r.Price),
		Type:        entities.BillingType(r.Type),
		IsActive:    r.IsActive,
	}
}

type BundleRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	ServiceIDs    []string `json:"service_ids" binding:"required"`
	AddonIDs      []string `json:"addon_ids"`
	DiscountType  string   `json:"discount_type" binding:"required,discounttype"`
	DiscountValue *float64 `json:"discount_value" binding:"required,gte=0"`
	IsActive      bool     `json:"is_active"`
}

func (r BundleRequest) ToEntity() entities.Bundle {
	return entities.Bundle{
		Name:          r.Name,
		Description:   r.Description,
		ServiceIDs:    r.ServiceIDs,
		AddonIDs:      r.AddonIDs,
		DiscountType:  entities.DiscountType(r.DiscountType),
		DiscountValue: deref(r.DiscountValue),
		IsActive:      r.IsActive,
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
