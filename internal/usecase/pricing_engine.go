package usecase

import (
	"context"
	"strings"

	"quotation_service/internal/domain/entities"
	"quotation_service/internal/domain/pricing"
	"quotation_service/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// LineRequest is one requested service selection before pricing.
type LineRequest struct {
	ServiceID string
	Quantity  int
	AddonIDs  []string
}

// PricingResult is the outcome of pricing a set of line requests.
type PricingResult struct {
	Items    []entities.QuotationItem
	Subtotal float64
	Discount float64
	Total    float64
}

// IPricingEngine prices quotation requests against the current catalog.
//
// Lenient by contract:
//   - line requests whose service cannot be resolved are skipped, not rejected
//   - unknown add-on ids contribute nothing to the line price
//   - bundle eligibility is checked against the requested service ids, so a
//     line skipped for an unknown service still counts towards a bundle
type IPricingEngine interface {
	ComputeQuotationPricing(ctx context.Context, lines []LineRequest, bundleIDs []string) (PricingResult, error)
}

type PricingEngine struct {
	services interfaces.IServiceRepository
	addons   interfaces.IAddonRepository
	bundles  interfaces.IBundleRepository
	log      logrus.FieldLogger
}

var _ IPricingEngine = (*PricingEngine)(nil)

func NewPricingEngine(services interfaces.IServiceRepository, addons interfaces.IAddonRepository, bundles interfaces.IBundleRepository, log logrus.FieldLogger) *PricingEngine {
	return &PricingEngine{services: services, addons: addons, bundles: bundles, log: log}
}

func (e *PricingEngine) ComputeQuotationPricing(ctx context.Context, lines []LineRequest, bundleIDs []string) (PricingResult, error) {
	res := PricingResult{Items: make([]entities.QuotationItem, 0, len(lines))}
	linePrices := make([]float64, 0, len(lines))

	for _, line := range lines {
		serviceID := strings.TrimSpace(line.ServiceID)
		if serviceID == "" {
			e.log.WithField("line", line).Debug("[pricing][engine] skipping line without service id")
			continue
		}

		svc, err := e.services.GetByID(ctx, serviceID)
		if err != nil {
			return PricingResult{}, err
		}
		if svc.ID == "" {
			e.log.WithField("service_id", serviceID).Debug("[pricing][engine] skipping unknown service")
			continue
		}

		var addonPrices []float64
		if len(line.AddonIDs) > 0 {
			addons, err := e.addons.GetByIDs(ctx, line.AddonIDs)
			if err != nil {
				return PricingResult{}, err
			}
			for _, a := range addons {
				addonPrices = append(addonPrices, a.Price)
			}
		}

		quantity := pricing.EffectiveQuantity(line.Quantity)
		price := pricing.LinePrice(svc.BasePrice, quantity, addonPrices)

		addonIDs := line.AddonIDs
		if addonIDs == nil {
			addonIDs = []string{}
		}
		res.Items = append(res.Items, entities.QuotationItem{
			ServiceID: serviceID,
			AddonIDs:  addonIDs,
			Quantity:  quantity,
			Price:     price,
		})
		linePrices = append(linePrices, price)
	}

	res.Subtotal = pricing.Sum(linePrices...)

	discount, err := e.bundleDiscount(ctx, lines, bundleIDs)
	if err != nil {
		return PricingResult{}, err
	}
	res.Discount = discount
	res.Total = pricing.Total(res.Subtotal, discount)

	e.log.WithFields(logrus.Fields{
		"lines":    len(res.Items),
		"subtotal": res.Subtotal,
		"discount": res.Discount,
		"total":    res.Total,
	}).Debug("[pricing][engine] computed")
	return res, nil
}

func (e *PricingEngine) bundleDiscount(ctx context.Context, lines []LineRequest, bundleIDs []string) (float64, error) {
	if len(bundleIDs) == 0 {
		return 0, nil
	}

	bundles, err := e.activeBundlesWithServices(ctx, bundleIDs)
	if err != nil {
		return 0, err
	}

	requested := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		requested[strings.TrimSpace(line.ServiceID)] = struct{}{}
	}

	var discounts []float64
	for _, b := range bundles {
		required := make([]string, 0, len(b.Services))
		prices := make([]float64, 0, len(b.Services))
		for _, s := range b.Services {
			required = append(required, s.ID)
			prices = append(prices, s.BasePrice)
		}
		if !pricing.IsBundleEligible(required, requested) {
			continue
		}
		d := pricing.BundleDiscount(b.DiscountType, b.DiscountValue, prices)
		e.log.WithFields(logrus.Fields{"bundle_id": b.ID, "discount": d}).Debug("[pricing][engine] bundle applied")
		discounts = append(discounts, d)
	}
	return pricing.Sum(discounts...), nil
}

// activeBundlesWithServices loads the active bundles among ids and resolves
// their required services in a single batch.
func (e *PricingEngine) activeBundlesWithServices(ctx context.Context, ids []string) ([]entities.BundleWithServices, error) {
	found, err := e.bundles.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	var active []entities.Bundle
	var serviceIDs []string
	for _, b := range found {
		if !b.IsActive {
			continue
		}
		active = append(active, b)
		serviceIDs = append(serviceIDs, b.ServiceIDs...)
	}
	if len(active) == 0 {
		return nil, nil
	}

	byID := map[string]entities.Service{}
	if len(serviceIDs) > 0 {
		services, err := e.services.GetByIDs(ctx, serviceIDs)
		if err != nil {
			return nil, err
		}
		for _, s := range services {
			byID[s.ID] = s
		}
	}

	out := make([]entities.BundleWithServices, 0, len(active))
	for _, b := range active {
		bw := entities.BundleWithServices{Bundle: b}
		for _, id := range b.ServiceIDs {
			if s, ok := byID[id]; ok {
				bw.Services = append(bw.Services, s)
			}
		}
		out = append(out, bw)
	}
	return out, nil
}
