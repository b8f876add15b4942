// Package domain contains the GST tax-rate table.
package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// ZeroRateName is the fallback entry applied to line items whose catalog
// tax reference has no match in the table.
const ZeroRateName = "GST @ 0%"

// GSTRate is one row of the flat tax lookup table. Rate and cess are
// percentages, not fractions.
type GSTRate struct {
	ID       snowflake.ID    `gorm:"primaryKey" json:"id"`
	Name     string          `gorm:"type:text;not null;uniqueIndex" json:"name"`
	GSTRate  decimal.Decimal `gorm:"column:gst_rate;type:numeric(6,3);not null" json:"gst_rate"`
	CessRate decimal.Decimal `gorm:"column:cess_rate;type:numeric(6,3);not null" json:"cess_rate"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (GSTRate) TableName() string { return "gst_taxes" }

var (
	ErrNotFound  = errors.New("not_found")
	ErrInvalidID = errors.New("invalid_id")
)
