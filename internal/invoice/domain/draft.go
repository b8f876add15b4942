package domain

import (
	"time"

	catalogdomain "github.com/1913176/ess-billing/internal/catalog/domain"
	partydomain "github.com/1913176/ess-billing/internal/party/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// DraftItem is one editable line. LineID is a stable identifier assigned at
// creation and never reused, so edits and removals survive reordering.
// Qty, Price, and DiscountPct hold the raw input verbatim; coercion to
// numbers happens inside the totals engine, never at entry.
type DraftItem struct {
	LineID        snowflake.ID    `json:"line_id"`
	CatalogID     *snowflake.ID   `json:"catalog_id,omitempty"`
	Type          string          `json:"type"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	Qty           string          `json:"qty"`
	Price         string          `json:"price"`
	DiscountPct   string          `json:"discount_pct"`
	TaxID         *snowflake.ID   `json:"tax_id,omitempty"`
	TaxLabel      string          `json:"tax_label"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	CessRate      decimal.Decimal `json:"cess_rate"`
	MeasuringUnit string          `json:"measuring_unit"`
}

// Amount is the line's computed amount after coercion: discounted subtotal
// plus tax on the discounted base.
func (it DraftItem) Amount() decimal.Decimal {
	return LineAmount(
		ParseNonNegativeDecimal(it.Qty),
		ParseNonNegativeDecimal(it.Price),
		ParseNonNegativeDecimal(it.DiscountPct),
		it.TaxRate,
	)
}

// DraftAdjustments mirrors the invoice-level inputs as entered. Numeric
// fields are verbatim strings for the same coercion reason as DraftItem.
type DraftAdjustments struct {
	AdditionalCharge        string `json:"additional_charge"`
	AdditionalChargeTaxPct  string `json:"additional_charge_tax_pct"`
	DiscountAfterTax        string `json:"discount_after_tax"`
	DiscountAfterTaxPercent bool   `json:"discount_after_tax_percent"`
	AutoRoundOff            bool   `json:"auto_round_off"`
	RoundOffValue           string `json:"round_off_value"`
	IsFullyPaid             bool   `json:"is_fully_paid"`
	ReceivedAmount          string `json:"received_amount"`
}

// Draft is the server-held editable invoice. The service guards each draft
// with a mutex; Draft itself is not safe for concurrent use.
type Draft struct {
	ID snowflake.ID `json:"id"`

	InvoiceNo     string        `json:"invoice_no"`
	InvoiceDate   time.Time     `json:"invoice_date"`
	DueDate       time.Time     `json:"due_date"`
	PaymentTermID int           `json:"payment_term_id"`
	SalespersonID *snowflake.ID `json:"salesperson_id,omitempty"`

	Party             *partydomain.Party            `json:"party,omitempty"`
	ShippingAddresses []partydomain.ShippingAddress `json:"shipping_addresses,omitempty"`
	SelectedShipping  *partydomain.ShippingAddress  `json:"selected_shipping,omitempty"`
	ShippingDisplay   string                        `json:"shipping_display"`

	Items       []DraftItem      `json:"items"`
	Adjustments DraftAdjustments `json:"adjustments"`

	Totals             Totals          `json:"totals"`
	ReceivedAmount     decimal.Decimal `json:"received_amount"`
	BalanceAmount      decimal.Decimal `json:"balance_amount"`
	ExceedsCreditLimit bool            `json:"exceeds_credit_limit"`

	IsSaved        bool         `json:"is_saved"`
	SavedInvoiceID snowflake.ID `json:"saved_invoice_id,omitempty"`

	// PartyGeneration orders SelectParty completions; a completion carrying
	// an older generation than the current one is discarded.
	PartyGeneration uint64 `json:"-"`
}

// Recompute re-derives every dependent field from the draft's inputs.
func (d *Draft) Recompute() {
	lines := make([]LineInput, 0, len(d.Items))
	for _, it := range d.Items {
		lines = append(lines, LineInput{
			Qty:         ParseNonNegativeDecimal(it.Qty),
			Price:       ParseNonNegativeDecimal(it.Price),
			DiscountPct: ParseNonNegativeDecimal(it.DiscountPct),
			TaxPct:      it.TaxRate,
		})
	}

	adj := Adjustments{
		AdditionalCharge:        ParseNonNegativeDecimal(d.Adjustments.AdditionalCharge),
		AdditionalChargeTaxPct:  ParseNonNegativeDecimal(d.Adjustments.AdditionalChargeTaxPct),
		DiscountAfterTax:        ParseNonNegativeDecimal(d.Adjustments.DiscountAfterTax),
		DiscountAfterTaxPercent: d.Adjustments.DiscountAfterTaxPercent,
		AutoRoundOff:            d.Adjustments.AutoRoundOff,
		RoundOffValue:           parseSignedDecimal(d.Adjustments.RoundOffValue),
	}

	d.Totals = ComputeTotals(lines, adj)
	d.BalanceAmount = BalanceAmount(d.Totals.GrandTotal, d.Adjustments.IsFullyPaid)
	if d.Adjustments.IsFullyPaid {
		d.ReceivedAmount = d.Totals.GrandTotal
	} else {
		d.ReceivedAmount = ParseNonNegativeDecimal(d.Adjustments.ReceivedAmount)
	}

	d.ExceedsCreditLimit = false
	if d.Party != nil {
		d.ExceedsCreditLimit = ExceedsCreditLimit(d.Party.CreditLimit, d.Totals.GrandTotal)
	}
}

// parseSignedDecimal is the manual round-off parser. Unlike the general
// coercion it keeps negative values, since a round delta can go either way.
func parseSignedDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FindItem returns the index of the line with the given id, or -1.
func (d *Draft) FindItem(lineID snowflake.ID) int {
	for i := range d.Items {
		if d.Items[i].LineID == lineID {
			return i
		}
	}
	return -1
}

// RemoveItem deletes the line with the given id in place, preserving the
// order of the remaining lines.
func (d *Draft) RemoveItem(lineID snowflake.ID) bool {
	i := d.FindItem(lineID)
	if i < 0 {
		return false
	}
	d.Items = append(d.Items[:i], d.Items[i+1:]...)
	return true
}

// ToInvoice maps the draft onto the persisted shape. Lines without a
// catalog reference are silently dropped; an empty result after the filter
// fails with ErrNoValidItems and leaves the draft untouched.
func (d *Draft) ToInvoice(genID func() snowflake.ID) (*Invoice, error) {
	items := make([]InvoiceItem, 0, len(d.Items))
	for _, it := range d.Items {
		if it.CatalogID == nil {
			continue
		}
		item := InvoiceItem{
			ID:            genID(),
			Name:          it.Name,
			Code:          it.Code,
			Quantity:      ParseNonNegativeDecimal(it.Qty),
			PricePerItem:  ParseNonNegativeDecimal(it.Price),
			DiscountPct:   ParseNonNegativeDecimal(it.DiscountPct),
			TaxID:         it.TaxID,
			GSTRate:       it.TaxRate,
			CessRate:      it.CessRate,
			MeasuringUnit: it.MeasuringUnit,
			Amount:        it.Amount(),
		}
		if it.Type == catalogdomain.TypeService {
			item.ServiceItemID = it.CatalogID
		} else {
			item.ProductItemID = it.CatalogID
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, ErrNoValidItems
	}

	inv := &Invoice{
		InvoiceNo:               d.InvoiceNo,
		InvoiceDate:             d.InvoiceDate,
		DueDate:                 d.DueDate,
		PaymentTermID:           d.PaymentTermID,
		SalespersonID:           d.SalespersonID,
		AdditionalCharge:        ParseNonNegativeDecimal(d.Adjustments.AdditionalCharge),
		AdditionalChargeTaxRate: ParseNonNegativeDecimal(d.Adjustments.AdditionalChargeTaxPct),
		DiscountAfterTax:        ParseNonNegativeDecimal(d.Adjustments.DiscountAfterTax),
		DiscountAfterTaxPercent: d.Adjustments.DiscountAfterTaxPercent,
		AutoRoundOff:            d.Adjustments.AutoRoundOff,
		RoundOffValue:           parseSignedDecimal(d.Adjustments.RoundOffValue),
		Subtotal:                d.Totals.Subtotal,
		TaxTotal:                d.Totals.TaxTotal,
		DiscountTotal:           d.Totals.DiscountTotal,
		GrandTotal:              d.Totals.GrandTotal,
		IsFullyPaid:             d.Adjustments.IsFullyPaid,
		ReceivedAmount:          d.ReceivedAmount,
		BalanceAmount:           d.BalanceAmount,
		Items:                   items,
	}
	if d.Party != nil {
		if d.Party.ID != 0 {
			id := d.Party.ID
			inv.PartyID = &id
		}
		inv.PartyName = d.Party.PartyName
		inv.MobileNumber = d.Party.MobileNumber
	} else {
		inv.PartyName = partydomain.CashSaleName
	}
	inv.ShippingAddress = d.ShippingDisplay
	return inv, nil
}

// ApplyInvoice reverse-maps a saved invoice into editable state. Lines get
// fresh stable IDs; the caller supplies the resolved party, if any.
func (d *Draft) ApplyInvoice(inv *Invoice, party *partydomain.Party, genID func() snowflake.ID) {
	d.InvoiceNo = inv.InvoiceNo
	d.InvoiceDate = inv.InvoiceDate
	d.DueDate = inv.DueDate
	d.PaymentTermID = inv.PaymentTermID
	d.SalespersonID = inv.SalespersonID
	d.Party = party
	d.ShippingDisplay = inv.ShippingAddress

	d.Items = d.Items[:0]
	for _, it := range inv.Items {
		line := DraftItem{
			LineID:        genID(),
			Name:          it.Name,
			Code:          it.Code,
			Qty:           it.Quantity.String(),
			Price:         it.PricePerItem.String(),
			DiscountPct:   it.DiscountPct.String(),
			TaxID:         it.TaxID,
			TaxRate:       it.GSTRate,
			CessRate:      it.CessRate,
			MeasuringUnit: it.MeasuringUnit,
		}
		switch {
		case it.ProductItemID != nil:
			line.CatalogID = it.ProductItemID
			line.Type = catalogdomain.TypeProduct
		case it.ServiceItemID != nil:
			line.CatalogID = it.ServiceItemID
			line.Type = catalogdomain.TypeService
		}
		d.Items = append(d.Items, line)
	}

	d.Adjustments = DraftAdjustments{
		AdditionalCharge:        inv.AdditionalCharge.String(),
		AdditionalChargeTaxPct:  inv.AdditionalChargeTaxRate.String(),
		DiscountAfterTax:        inv.DiscountAfterTax.String(),
		DiscountAfterTaxPercent: inv.DiscountAfterTaxPercent,
		AutoRoundOff:            inv.AutoRoundOff,
		RoundOffValue:           inv.RoundOffValue.String(),
		IsFullyPaid:             inv.IsFullyPaid,
		ReceivedAmount:          inv.ReceivedAmount.String(),
	}

	d.SavedInvoiceID = inv.ID
	d.IsSaved = false
	d.Recompute()
}
