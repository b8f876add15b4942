// Package domain contains the sellable catalog: products, service items,
// and the normalized item view the invoice editor consumes.
package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Item kinds as exposed on the normalized view.
const (
	TypeProduct = "Product"
	TypeService = "Service"
)

// Defaults applied when a stored record leaves a field blank.
const (
	DefaultPrice         = "0.00"
	DefaultDescription   = "N/A"
	DefaultCode          = "-"
	DefaultMeasuringUnit = "Unit"
	ServiceStockDisplay  = "N/A"
)

// Product is a stocked good.
type Product struct {
	ID            snowflake.ID     `gorm:"primaryKey" json:"id"`
	Name          string           `gorm:"type:text;not null" json:"name"`
	ItemCode      string           `gorm:"column:item_code;type:text" json:"item_code"`
	SalesPrice    *decimal.Decimal `gorm:"column:sales_price;type:numeric(12,2)" json:"sales_price,omitempty"`
	PurchasePrice *decimal.Decimal `gorm:"column:purchase_price;type:numeric(12,2)" json:"purchase_price,omitempty"`
	CurrentStock  decimal.Decimal  `gorm:"column:current_stock;type:numeric(12,3);not null;default:0" json:"current_stock"`
	Description   string           `gorm:"type:text" json:"description"`
	HSNCode       string           `gorm:"column:hsn_code;type:text" json:"hsn_code"`
	GSTTaxID      *snowflake.ID    `gorm:"column:gst_tax_id" json:"gst_tax_id,omitempty"`
	MeasuringUnit string           `gorm:"column:measuring_unit;type:text" json:"measuring_unit"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (Product) TableName() string { return "products" }

// ServiceItem is a billable service.
type ServiceItem struct {
	ID            snowflake.ID     `gorm:"primaryKey" json:"id"`
	Name          string           `gorm:"type:text;not null" json:"name"`
	ItemCode      string           `gorm:"column:item_code;type:text" json:"item_code"`
	SalesPrice    *decimal.Decimal `gorm:"column:sales_price;type:numeric(12,2)" json:"sales_price,omitempty"`
	Description   string           `gorm:"type:text" json:"description"`
	SACCode       string           `gorm:"column:sac_code;type:text" json:"sac_code"`
	GSTTaxID      *snowflake.ID    `gorm:"column:gst_tax_id" json:"gst_tax_id,omitempty"`
	MeasuringUnit string           `gorm:"column:measuring_unit;type:text" json:"measuring_unit"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (ServiceItem) TableName() string { return "service_items" }

// Item is the normalized view over products and services. String price
// fields carry two-decimal amounts; blanks are filled with the Default*
// constants so the editor never sees an empty field.
type Item struct {
	ID            snowflake.ID  `json:"id"`
	Name          string        `json:"name"`
	ItemCode      string        `json:"item_code"`
	SalesPrice    string        `json:"sales_price"`
	PurchasePrice string        `json:"purchase_price"`
	CurrentStock  string        `json:"current_stock"`
	Type          string        `json:"type"`
	Description   string        `json:"description"`
	HSNCode       string        `json:"hsn_code,omitempty"`
	SACCode       string        `json:"sac_code,omitempty"`
	GSTTaxID      *snowflake.ID `json:"gst_tax_id,omitempty"`
	MeasuringUnit string        `json:"measuring_unit"`
}

var (
	ErrInvalidID   = errors.New("invalid_id")
	ErrInvalidType = errors.New("invalid_type")
	ErrNotFound    = errors.New("not_found")
)
