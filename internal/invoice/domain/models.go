// Package domain contains the sales invoice aggregate: drafts, the totals
// engine, the persisted models, and the wire mappers.
package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Invoice is the persisted aggregate root. Party fields are snapshotted at
// save time so a deleted party does not orphan the invoice.
type Invoice struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	InvoiceNo   string       `gorm:"column:invoice_no;type:text;not null" json:"invoice_no"`
	InvoiceDate time.Time    `gorm:"column:invoice_date;not null" json:"invoice_date"`
	DueDate     time.Time    `gorm:"column:due_date;not null" json:"due_date"`

	PartyID         *snowflake.ID `gorm:"column:party_id;index" json:"party_id,omitempty"`
	PartyName       string        `gorm:"column:party_name;type:text;not null" json:"party_name"`
	MobileNumber    string        `gorm:"column:mobile_number;type:text" json:"mobile_number"`
	ShippingAddress string        `gorm:"column:shipping_address;type:text" json:"shipping_address"`

	PaymentTermID int           `gorm:"column:payment_term_id;not null;default:1" json:"payment_term_id"`
	SalespersonID *snowflake.ID `gorm:"column:salesperson_id" json:"salesperson_id,omitempty"`

	AdditionalCharge        decimal.Decimal `gorm:"column:additional_charge;type:numeric(12,2);not null;default:0" json:"additional_charge"`
	AdditionalChargeTaxRate decimal.Decimal `gorm:"column:additional_charge_tax_rate;type:numeric(6,3);not null;default:0" json:"additional_charge_tax_rate"`
	DiscountAfterTax        decimal.Decimal `gorm:"column:discount_after_tax;type:numeric(12,2);not null;default:0" json:"discount_after_tax"`
	DiscountAfterTaxPercent bool            `gorm:"column:discount_after_tax_percent;not null;default:false" json:"discount_after_tax_percent"`
	AutoRoundOff            bool            `gorm:"column:auto_round_off;not null;default:false" json:"auto_round_off"`
	RoundOffValue           decimal.Decimal `gorm:"column:round_off_value;type:numeric(12,2);not null;default:0" json:"round_off_value"`

	Subtotal      decimal.Decimal `gorm:"column:subtotal;type:numeric(12,2);not null;default:0" json:"subtotal"`
	TaxTotal      decimal.Decimal `gorm:"column:tax_total;type:numeric(12,2);not null;default:0" json:"tax_total"`
	DiscountTotal decimal.Decimal `gorm:"column:discount_total;type:numeric(12,2);not null;default:0" json:"discount_total"`
	GrandTotal    decimal.Decimal `gorm:"column:grand_total;type:numeric(12,2);not null;default:0" json:"grand_total"`

	IsFullyPaid    bool            `gorm:"column:is_fully_paid;not null;default:false" json:"is_fully_paid"`
	ReceivedAmount decimal.Decimal `gorm:"column:received_amount;type:numeric(12,2);not null;default:0" json:"received_amount"`
	BalanceAmount  decimal.Decimal `gorm:"column:balance_amount;type:numeric(12,2);not null;default:0" json:"balance_amount"`

	// Metadata carries client-defined key/values verbatim. The server never
	// interprets it.
	Metadata datatypes.JSONMap `gorm:"column:metadata" json:"metadata,omitempty"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "sales_invoices" }

// InvoiceItem is one persisted line. Exactly one of ProductItemID and
// ServiceItemID is set.
type InvoiceItem struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	InvoiceID snowflake.ID `gorm:"column:invoice_id;not null;index" json:"invoice_id"`

	ProductItemID *snowflake.ID `gorm:"column:product_item_id" json:"product_item_id,omitempty"`
	ServiceItemID *snowflake.ID `gorm:"column:service_item_id" json:"service_item_id,omitempty"`

	Name          string          `gorm:"type:text;not null" json:"name"`
	Code          string          `gorm:"type:text" json:"code"`
	Quantity      decimal.Decimal `gorm:"column:quantity;type:numeric(12,3);not null;default:0" json:"quantity"`
	PricePerItem  decimal.Decimal `gorm:"column:price_per_item;type:numeric(12,2);not null;default:0" json:"price_per_item"`
	DiscountPct   decimal.Decimal `gorm:"column:discount_pct;type:numeric(6,3);not null;default:0" json:"discount_pct"`
	TaxID         *snowflake.ID   `gorm:"column:tax_id" json:"tax_id,omitempty"`
	GSTRate       decimal.Decimal `gorm:"column:gst_rate;type:numeric(6,3);not null;default:0" json:"gst_rate"`
	CessRate      decimal.Decimal `gorm:"column:cess_rate;type:numeric(6,3);not null;default:0" json:"cess_rate"`
	MeasuringUnit string          `gorm:"column:measuring_unit;type:text" json:"measuring_unit"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null;default:0" json:"amount"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (InvoiceItem) TableName() string { return "sales_invoice_items" }

var (
	ErrInvalidID    = errors.New("invalid_id")
	ErrNotFound     = errors.New("not_found")
	ErrDraftLocked  = errors.New("draft_locked")
	ErrLineNotFound = errors.New("line_not_found")
	ErrNoValidItems = errors.New("no_valid_items")
)
