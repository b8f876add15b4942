package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(qty, price, discountPct, taxPct string) LineInput {
	return LineInput{
		Qty:         dec(qty),
		Price:       dec(price),
		DiscountPct: dec(discountPct),
		TaxPct:      dec(taxPct),
	}
}

func TestComputeTotals_EmptyInvoice(t *testing.T) {
	totals := ComputeTotals(nil, Adjustments{})

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.TaxTotal.IsZero())
	assert.True(t, totals.DiscountTotal.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
}

func TestComputeTotals_SingleLine(t *testing.T) {
	totals := ComputeTotals([]LineInput{line("2", "100", "10", "18")}, Adjustments{})

	assert.True(t, totals.Subtotal.Equal(dec("200")), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.TaxTotal.Equal(dec("36")), "tax = %s", totals.TaxTotal)
	assert.True(t, totals.DiscountTotal.Equal(dec("20")), "discount = %s", totals.DiscountTotal)
	assert.True(t, totals.GrandTotal.Equal(dec("216")), "grand = %s", totals.GrandTotal)
}

func TestComputeTotals_AdditionalChargeWithTax(t *testing.T) {
	totals := ComputeTotals([]LineInput{line("2", "100", "10", "18")}, Adjustments{
		AdditionalCharge:       dec("50"),
		AdditionalChargeTaxPct: dec("5"),
	})

	assert.True(t, totals.GrandTotal.Equal(dec("268.5")), "grand = %s", totals.GrandTotal)
}

func TestComputeTotals_PostTaxPercentDiscount(t *testing.T) {
	totals := ComputeTotals([]LineInput{line("2", "100", "10", "18")}, Adjustments{
		AdditionalCharge:        dec("50"),
		AdditionalChargeTaxPct:  dec("5"),
		DiscountAfterTax:        dec("10"),
		DiscountAfterTaxPercent: true,
	})

	assert.True(t, totals.GrandTotal.Equal(dec("241.65")), "grand = %s", totals.GrandTotal)
}

func TestComputeTotals_PostTaxAbsoluteDiscount(t *testing.T) {
	totals := ComputeTotals([]LineInput{line("2", "100", "0", "0")}, Adjustments{
		DiscountAfterTax: dec("50"),
	})

	assert.True(t, totals.GrandTotal.Equal(dec("150")), "grand = %s", totals.GrandTotal)
}

func TestComputeTotals_AutoRoundOff(t *testing.T) {
	totals := ComputeTotals([]LineInput{line("2", "100", "10", "18")}, Adjustments{
		AdditionalCharge:        dec("50"),
		AdditionalChargeTaxPct:  dec("5"),
		DiscountAfterTax:        dec("10"),
		DiscountAfterTaxPercent: true,
		AutoRoundOff:            true,
		RoundOffValue:           dec("0.35"),
	})

	assert.True(t, totals.GrandTotal.Equal(dec("242")), "grand = %s", totals.GrandTotal)
}

func TestComputeTotals_ClampsNegativeGrandTotal(t *testing.T) {
	totals := ComputeTotals([]LineInput{line("1", "10", "0", "0")}, Adjustments{
		DiscountAfterTax: dec("100"),
	})

	assert.True(t, totals.GrandTotal.IsZero(), "grand = %s", totals.GrandTotal)
}

func TestComputeTotals_SubtotalMonotonicity(t *testing.T) {
	lines := []LineInput{line("2", "100", "10", "18")}
	before := ComputeTotals(lines, Adjustments{})

	lines = append(lines, line("1", "0.01", "0", "0"))
	after := ComputeTotals(lines, Adjustments{})

	assert.True(t, after.Subtotal.GreaterThanOrEqual(before.Subtotal))
}

func TestComputeTotals_IdempotentRecompute(t *testing.T) {
	lines := []LineInput{line("3", "99.99", "5", "12"), line("1", "250", "0", "28")}
	adj := Adjustments{
		AdditionalCharge:       dec("25"),
		AdditionalChargeTaxPct: dec("18"),
		AutoRoundOff:           true,
		RoundOffValue:          dec("-0.2"),
	}

	first := ComputeTotals(lines, adj)
	second := ComputeTotals(lines, adj)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.TaxTotal.Equal(second.TaxTotal))
	assert.True(t, first.DiscountTotal.Equal(second.DiscountTotal))
	assert.True(t, first.GrandTotal.Equal(second.GrandTotal))
}

// The per-line tax and discount bases are both the raw line subtotal. The
// discount does not shrink the tax base. This pins that behavior so any
// future change to the base shows up as an explicit diff here.
func TestLineTaxAndDiscount_RawSubtotalBase(t *testing.T) {
	tax, discount := lineTaxAndDiscount(dec("200"), dec("18"), dec("10"))

	assert.True(t, tax.Equal(dec("36")), "tax computed on raw subtotal, got %s", tax)
	assert.True(t, discount.Equal(dec("20")), "discount computed on raw subtotal, got %s", discount)
}

func TestLineAmount_DiscountedTaxBase(t *testing.T) {
	// 2 x 100 = 200, minus 10% discount = 180, plus 18% tax on 180 = 212.4.
	got := LineAmount(dec("2"), dec("100"), dec("10"), dec("18"))
	assert.True(t, got.Equal(dec("212.4")), "got %s", got)

	// No discount and no tax leaves the raw subtotal.
	got = LineAmount(dec("2"), dec("100"), decimal.Zero, decimal.Zero)
	assert.True(t, got.Equal(dec("200")), "got %s", got)

	// Negative inputs coerce to zero like everywhere else.
	got = LineAmount(dec("-2"), dec("100"), dec("10"), dec("18"))
	assert.True(t, got.IsZero(), "got %s", got)
}

func TestParseNonNegativeDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "0"},
		{"  ", "0"},
		{"abc", "0"},
		{"-5", "0"},
		{"0", "0"},
		{"12.5", "12.5"},
		{" 7 ", "7"},
	}
	for _, tc := range cases {
		got := ParseNonNegativeDecimal(tc.in)
		assert.True(t, got.Equal(dec(tc.want)), "ParseNonNegativeDecimal(%q) = %s", tc.in, got)
	}
}

func TestBalanceAmount(t *testing.T) {
	grand := dec("242")

	assert.True(t, BalanceAmount(grand, true).IsZero())
	assert.True(t, BalanceAmount(grand, false).Equal(grand))
}

func TestExceedsCreditLimit(t *testing.T) {
	limit := dec("200")

	assert.True(t, ExceedsCreditLimit(&limit, dec("242")))
	assert.False(t, ExceedsCreditLimit(&limit, dec("150")))
	assert.False(t, ExceedsCreditLimit(&limit, dec("200")))
	assert.False(t, ExceedsCreditLimit(nil, dec("242")))
}

func TestComputeTotals_NegativeInputsCoerceToZero(t *testing.T) {
	totals := ComputeTotals([]LineInput{
		{Qty: dec("-2"), Price: dec("100"), DiscountPct: dec("-10"), TaxPct: dec("-18")},
	}, Adjustments{
		AdditionalCharge: dec("-50"),
	})

	require.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
}
