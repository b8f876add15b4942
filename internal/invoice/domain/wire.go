package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// WireInvoice is the saved-invoice JSON shape served to clients. Its field
// names differ from the persisted model on purpose; ToWire and FromWire are
// the only two places allowed to know both vocabularies.
type WireInvoice struct {
	ID              snowflake.ID  `json:"id"`
	InvoiceNo       string        `json:"invoice_no"`
	InvoiceDate     string        `json:"invoice_date"`
	DueDate         string        `json:"due_date"`
	PartyID         *snowflake.ID `json:"party,omitempty"`
	PartyName       string        `json:"party_name"`
	MobileNumber    string        `json:"mobile_number"`
	ShippingAddress string        `json:"shipping_address"`
	PaymentTermID   int           `json:"payment_term"`
	SalespersonID   *snowflake.ID `json:"salesperson,omitempty"`

	SalesInvoiceItems []WireItem `json:"sales_invoice_items"`
	TotalAmount       WireTotal  `json:"total_amount"`

	AdditionalCharge        decimal.Decimal `json:"additional_charge"`
	AdditionalChargeTaxRate decimal.Decimal `json:"additional_charge_tax_rate"`
	DiscountAfterTax        decimal.Decimal `json:"discount_after_tax"`
	DiscountAfterTaxPercent bool            `json:"discount_after_tax_percent"`
	AutoRoundOff            bool            `json:"auto_round_off"`
	RoundOffValue           decimal.Decimal `json:"round_off_value"`

	IsFullyPaid    bool            `json:"isFullyPaid"`
	ReceivedAmount decimal.Decimal `json:"receivedAmount"`
	BalanceAmount  decimal.Decimal `json:"balanceAmount"`

	Metadata map[string]any `json:"metadata,omitempty"`
}

// WireTotal nests the derived totals; Total is the payable amount.
type WireTotal struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// WireItem is one saved line on the wire. Exactly one of ProductItem and
// ServiceItem is set.
type WireItem struct {
	ID            snowflake.ID    `json:"id"`
	ProductItem   *snowflake.ID   `json:"product_item,omitempty"`
	ServiceItem   *snowflake.ID   `json:"service_item,omitempty"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	Quantity      decimal.Decimal `json:"quantity"`
	PricePerItem  decimal.Decimal `json:"price_per_item"`
	Discount      decimal.Decimal `json:"discount"`
	TaxID         *snowflake.ID   `json:"tax_id,omitempty"`
	GSTRate       decimal.Decimal `json:"gst_rate"`
	CessRate      decimal.Decimal `json:"cess_rate"`
	MeasuringUnit string          `json:"measuring_unit"`
	Amount        decimal.Decimal `json:"amount"`
}

const wireDateLayout = "2006-01-02"

// ToWire maps the persisted model onto the client shape.
func ToWire(inv *Invoice) *WireInvoice {
	w := &WireInvoice{
		ID:                      inv.ID,
		InvoiceNo:               inv.InvoiceNo,
		InvoiceDate:             inv.InvoiceDate.Format(wireDateLayout),
		DueDate:                 inv.DueDate.Format(wireDateLayout),
		PartyID:                 inv.PartyID,
		PartyName:               inv.PartyName,
		MobileNumber:            inv.MobileNumber,
		ShippingAddress:         inv.ShippingAddress,
		PaymentTermID:           inv.PaymentTermID,
		SalespersonID:           inv.SalespersonID,
		AdditionalCharge:        inv.AdditionalCharge,
		AdditionalChargeTaxRate: inv.AdditionalChargeTaxRate,
		DiscountAfterTax:        inv.DiscountAfterTax,
		DiscountAfterTaxPercent: inv.DiscountAfterTaxPercent,
		AutoRoundOff:            inv.AutoRoundOff,
		RoundOffValue:           inv.RoundOffValue,
		IsFullyPaid:             inv.IsFullyPaid,
		ReceivedAmount:          inv.ReceivedAmount,
		BalanceAmount:           inv.BalanceAmount,
		Metadata:                inv.Metadata,
		TotalAmount: WireTotal{
			Subtotal: inv.Subtotal,
			Tax:      inv.TaxTotal,
			Discount: inv.DiscountTotal,
			Total:    inv.GrandTotal,
		},
		SalesInvoiceItems: make([]WireItem, 0, len(inv.Items)),
	}
	for _, it := range inv.Items {
		w.SalesInvoiceItems = append(w.SalesInvoiceItems, WireItem{
			ID:            it.ID,
			ProductItem:   it.ProductItemID,
			ServiceItem:   it.ServiceItemID,
			Name:          it.Name,
			Code:          it.Code,
			Quantity:      it.Quantity,
			PricePerItem:  it.PricePerItem,
			Discount:      it.DiscountPct,
			TaxID:         it.TaxID,
			GSTRate:       it.GSTRate,
			CessRate:      it.CessRate,
			MeasuringUnit: it.MeasuringUnit,
			Amount:        it.Amount,
		})
	}
	return w
}

// FromWire maps the client shape back onto the persisted model. Dates that
// fail to parse fall back to the zero time; the caller validates.
func FromWire(w *WireInvoice) *Invoice {
	invoiceDate, _ := time.Parse(wireDateLayout, w.InvoiceDate)
	dueDate, _ := time.Parse(wireDateLayout, w.DueDate)

	inv := &Invoice{
		ID:                      w.ID,
		InvoiceNo:               w.InvoiceNo,
		InvoiceDate:             invoiceDate,
		DueDate:                 dueDate,
		PartyID:                 w.PartyID,
		PartyName:               w.PartyName,
		MobileNumber:            w.MobileNumber,
		ShippingAddress:         w.ShippingAddress,
		PaymentTermID:           w.PaymentTermID,
		SalespersonID:           w.SalespersonID,
		AdditionalCharge:        w.AdditionalCharge,
		AdditionalChargeTaxRate: w.AdditionalChargeTaxRate,
		DiscountAfterTax:        w.DiscountAfterTax,
		DiscountAfterTaxPercent: w.DiscountAfterTaxPercent,
		AutoRoundOff:            w.AutoRoundOff,
		RoundOffValue:           w.RoundOffValue,
		Subtotal:                w.TotalAmount.Subtotal,
		TaxTotal:                w.TotalAmount.Tax,
		DiscountTotal:           w.TotalAmount.Discount,
		GrandTotal:              w.TotalAmount.Total,
		IsFullyPaid:             w.IsFullyPaid,
		ReceivedAmount:          w.ReceivedAmount,
		BalanceAmount:           w.BalanceAmount,
		Metadata:                datatypes.JSONMap(w.Metadata),
		Items:                   make([]InvoiceItem, 0, len(w.SalesInvoiceItems)),
	}
	for _, it := range w.SalesInvoiceItems {
		inv.Items = append(inv.Items, InvoiceItem{
			ID:            it.ID,
			InvoiceID:     w.ID,
			ProductItemID: it.ProductItem,
			ServiceItemID: it.ServiceItem,
			Name:          it.Name,
			Code:          it.Code,
			Quantity:      it.Quantity,
			PricePerItem:  it.PricePerItem,
			DiscountPct:   it.Discount,
			TaxID:         it.TaxID,
			GSTRate:       it.GSTRate,
			CessRate:      it.CessRate,
			MeasuringUnit: it.MeasuringUnit,
			Amount:        it.Amount,
		})
	}
	return inv
}
