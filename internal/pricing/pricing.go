// Package pricing derives cart totals. All arithmetic is fixed-point
// decimal so currency amounts never pass through binary floats.
package pricing

import "github.com/shopspring/decimal"

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

type LineItem struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Subtotal sums unit price times quantity over all line items.
func Subtotal(items []LineItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}

// DiscountAmount computes the amount a discount takes off the subtotal.
// Percentage discounts are rounded half-up to 2 decimal places; fixed
// discounts are capped at the subtotal so the total can never go negative.
func DiscountAmount(subtotal decimal.Decimal, discountType string, discountValue decimal.Decimal) decimal.Decimal {
	switch discountType {
	case DiscountTypePercentage:
		return subtotal.Mul(discountValue).Div(decimal.NewFromInt(100)).Round(2)
	case DiscountTypeFixed:
		if discountValue.GreaterThan(subtotal) {
			return subtotal
		}
		return discountValue
	default:
		return decimal.Zero
	}
}

// Total is subtotal minus discount, floored at zero.
func Total(subtotal, discountAmount decimal.Decimal) decimal.Decimal {
	total := subtotal.Sub(discountAmount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// MinorUnits converts a 2-decimal amount to integer minor units
// (pence/cents), as the payment processor expects.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
