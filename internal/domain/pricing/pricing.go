// Package pricing holds the money arithmetic behind quotation pricing.
//
// Amounts travel as float64 (that is what is persisted and rendered) but every
// sum and product is carried out in decimal so that totals such as 0.1+0.2 do
// not drift.
package pricing

import (
	"quotation_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// EffectiveQuantity maps an absent (zero) quantity to 1.
func EffectiveQuantity(quantity int) int {
	if quantity == 0 {
		return 1
	}
	return quantity
}

// LinePrice is basePrice*quantity plus every add-on price.
func LinePrice(basePrice float64, quantity int, addonPrices []float64) float64 {
	price := decimal.NewFromFloat(basePrice).Mul(decimal.NewFromInt(int64(EffectiveQuantity(quantity))))
	for _, p := range addonPrices {
		price = price.Add(decimal.NewFromFloat(p))
	}
	return price.InexactFloat64()
}

// Sum adds amounts exactly.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	return total.InexactFloat64()
}

// BundleDiscount computes the discount one eligible bundle grants.
// servicePrices are the base prices of the bundle's required services.
func BundleDiscount(discountType entities.DiscountType, discountValue float64, servicePrices []float64) float64 {
	if discountType == entities.DiscountPercentage {
		bundlePrice := decimal.NewFromFloat(Sum(servicePrices...))
		return bundlePrice.Mul(decimal.NewFromFloat(discountValue)).Div(hundred).InexactFloat64()
	}
	return discountValue
}

// Total is subtotal minus discount, never below zero.
func Total(subtotal, discount float64) float64 {
	t := decimal.NewFromFloat(subtotal).Sub(decimal.NewFromFloat(discount))
	if t.IsNegative() {
		return 0
	}
	return t.InexactFloat64()
}

// IsBundleEligible reports whether every required service id is among the
// requested ones. A bundle with no required services is trivially eligible.
func IsBundleEligible(requiredServiceIDs []string, requested map[string]struct{}) bool {
	for _, id := range requiredServiceIDs {
		if _, ok := requested[id]; !ok {
			return false
		}
	}
	return true
}
