package domain

import "github.com/shopspring/decimal"

// Rates are the configured pricing rates, expressed as fractions
// (0.10 = 10%).
type Rates struct {
	Discount decimal.Decimal
	Tax      decimal.Decimal
}

// DefaultRates returns the standard till rates: 10% discount, 15% VAT.
func DefaultRates() Rates {
	return Rates{
		Discount: decimal.NewFromFloat(0.10),
		Tax:      decimal.NewFromFloat(0.15),
	}
}

// PricingResult is the full price breakdown for a cart. Derived on
// every read, never stored.
type PricingResult struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
}

// Price computes the breakdown for a cart snapshot.
//
// The order is a contract, not an implementation detail: the discount
// comes off the subtotal first, and VAT is charged on the discounted
// base. Swapping the two changes every total on every receipt.
//
//	subtotal = sum(price * quantity)
//	discount = subtotal * rates.Discount
//	tax      = (subtotal - discount) * rates.Tax
//	total    = (subtotal - discount) + tax
//
// An empty cart prices to all zeros. Because this is money, every
// output is floored at zero even if the inputs are malformed.
func Price(lines []CartLine, rates Rates) PricingResult {
	subtotal := decimal.Zero
	for _, line := range lines {
		lineTotal := line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		subtotal = subtotal.Add(lineTotal)
	}
	subtotal = floorZero(subtotal)

	discount := floorZero(subtotal.Mul(rates.Discount))
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	taxableBase := subtotal.Sub(discount)
	tax := floorZero(taxableBase.Mul(rates.Tax))
	total := floorZero(taxableBase.Add(tax))

	return PricingResult{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxAmount:      tax,
		TotalAmount:    total,
	}
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
