// Package pricing derives monetary values from cart state without mutating
// it. Everything here is a pure function of the line items it is given;
// carts are small, so totals are recomputed on every read.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/myaseir/circuit-sphere-ecommerce/internal/domain"
)

// EffectivePrice returns the per-unit amount actually billed. The discounted
// price only applies while the product is flagged on sale; a stale discount
// value on a non-sale item must never leak into billing.
func EffectivePrice(item domain.LineItem) decimal.Decimal {
	if item.OnSale && item.DiscountedPrice.IsPositive() {
		return item.DiscountedPrice
	}
	return item.UnitPrice
}

// LineSubtotal is the effective price multiplied by the line quantity.
func LineSubtotal(item domain.LineItem) decimal.Decimal {
	return EffectivePrice(item).Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// CartTotal sums line subtotals exactly. Rounding to two places happens only
// at the presentation or payload boundary, never while accumulating.
func CartTotal(items []domain.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(LineSubtotal(item))
	}
	return total
}
