package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// LineInput is one line as the totals engine sees it, already coerced to
// non-negative decimals.
type LineInput struct {
	Qty         decimal.Decimal
	Price       decimal.Decimal
	DiscountPct decimal.Decimal
	TaxPct      decimal.Decimal
}

// Adjustments are the invoice-level knobs applied after the line pass.
// RoundOffValue is a manual delta and may be negative.
type Adjustments struct {
	AdditionalCharge        decimal.Decimal
	AdditionalChargeTaxPct  decimal.Decimal
	DiscountAfterTax        decimal.Decimal
	DiscountAfterTaxPercent bool
	AutoRoundOff            bool
	RoundOffValue           decimal.Decimal
}

// Totals is the derived money summary of an invoice.
type Totals struct {
	Subtotal      decimal.Decimal
	TaxTotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	GrandTotal    decimal.Decimal
}

// ParseNonNegativeDecimal coerces free-form numeric input. Empty,
// unparsable, or negative input yields zero; coercion is never an error.
func ParseNonNegativeDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// lineTaxAndDiscount derives a line's tax and discount amounts. Both use
// the raw line subtotal as their base: the tax base is NOT reduced by the
// line discount. Callers depend on this exact base; changing it changes
// every grand total downstream.
func lineTaxAndDiscount(lineSubtotal, taxPct, discountPct decimal.Decimal) (tax, discount decimal.Decimal) {
	tax = lineSubtotal.Mul(taxPct).Div(oneHundred)
	discount = lineSubtotal.Mul(discountPct).Div(oneHundred)
	return tax, discount
}

// LineAmount is a line's own computed amount: subtotal minus the line
// discount, plus tax on what remains. Note the asymmetry with the invoice
// tax column: the per-line amount taxes the discounted base, while
// lineTaxAndDiscount taxes the raw subtotal.
func LineAmount(qty, price, discountPct, taxPct decimal.Decimal) decimal.Decimal {
	sub := nonNegative(qty).Mul(nonNegative(price))
	discount := sub.Mul(nonNegative(discountPct)).Div(oneHundred)
	base := sub.Sub(discount)
	tax := base.Mul(nonNegative(taxPct)).Div(oneHundred)
	return base.Add(tax)
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ComputeTotals derives the invoice totals from its lines and adjustments.
// The function is pure; callers re-run it after every mutation.
func ComputeTotals(items []LineInput, adj Adjustments) Totals {
	subtotal := decimal.Zero
	taxTotal := decimal.Zero
	discountTotal := decimal.Zero

	for _, it := range items {
		lineSubtotal := nonNegative(it.Qty).Mul(nonNegative(it.Price))
		subtotal = subtotal.Add(lineSubtotal)

		tax, discount := lineTaxAndDiscount(lineSubtotal, nonNegative(it.TaxPct), nonNegative(it.DiscountPct))
		taxTotal = taxTotal.Add(tax)
		discountTotal = discountTotal.Add(discount)
	}

	running := subtotal.Add(taxTotal).Sub(discountTotal)

	charge := nonNegative(adj.AdditionalCharge)
	if charge.IsPositive() {
		running = running.Add(charge).Add(charge.Mul(nonNegative(adj.AdditionalChargeTaxPct)).Div(oneHundred))
	}

	if post := nonNegative(adj.DiscountAfterTax); post.IsPositive() {
		if adj.DiscountAfterTaxPercent {
			running = running.Sub(running.Mul(post).Div(oneHundred))
		} else {
			running = running.Sub(post)
		}
	}

	if adj.AutoRoundOff {
		running = running.Add(adj.RoundOffValue).Round(0)
	}

	if running.IsNegative() {
		running = decimal.Zero
	}

	return Totals{
		Subtotal:      subtotal,
		TaxTotal:      taxTotal,
		DiscountTotal: discountTotal,
		GrandTotal:    running,
	}
}

// BalanceAmount derives the outstanding balance from the grand total.
func BalanceAmount(grandTotal decimal.Decimal, fullyPaid bool) decimal.Decimal {
	if fullyPaid {
		return decimal.Zero
	}
	return grandTotal
}

// ExceedsCreditLimit reports whether grandTotal is over the party's limit.
// A nil limit never triggers. The check is advisory only.
func ExceedsCreditLimit(limit *decimal.Decimal, grandTotal decimal.Decimal) bool {
	return limit != nil && grandTotal.GreaterThan(*limit)
}
