// Package domain contains the party directory and shipping addresses.
package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Opening balance direction flags. "to_collect" means the party owes us.
const (
	BalanceToCollect = "to_collect"
	BalanceToPay     = "to_pay"
)

// Party is the counterparty on an invoice. Parties are owned by the
// directory; the invoice flow only reads them.
type Party struct {
	ID                   snowflake.ID     `gorm:"primaryKey" json:"id"`
	PartyName            string           `gorm:"column:party_name;type:text;not null" json:"party_name"`
	MobileNumber         string           `gorm:"column:mobile_number;type:text" json:"mobile_number"`
	CreditLimit          *decimal.Decimal `gorm:"column:credit_limit;type:numeric(12,2)" json:"credit_limit,omitempty"`
	OpeningBalanceAmount decimal.Decimal  `gorm:"column:opening_balance_amount;type:numeric(12,2);not null;default:0" json:"opening_balance_amount"`
	OpeningBalance       string           `gorm:"column:opening_balance;type:text;not null;default:'to_collect'" json:"opening_balance"`

	ShippingAddresses []ShippingAddress `gorm:"foreignKey:PartyID" json:"shipping_addresses,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Party) TableName() string { return "parties" }

// ShippingAddress is one deliverable address under a party. Pincode is a
// 6-digit string; State must be one of the Indian state names.
type ShippingAddress struct {
	ID      snowflake.ID `gorm:"primaryKey" json:"id"`
	PartyID snowflake.ID `gorm:"not null;index" json:"party_id"`
	Name    string       `gorm:"type:text;not null" json:"name"`
	Street  string       `gorm:"type:text;not null" json:"street"`
	City    string       `gorm:"type:text" json:"city"`
	State   string       `gorm:"type:text" json:"state"`
	Pincode string       `gorm:"type:text" json:"pincode"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (ShippingAddress) TableName() string { return "shipping_addresses" }

// FormatAddress renders the canonical three-line display string:
// name, street, then "city, state - pincode".
func FormatAddress(addr ShippingAddress) string {
	return fmt.Sprintf("%s\n%s\n%s, %s - %s", addr.Name, addr.Street, addr.City, addr.State, addr.Pincode)
}

var (
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidStreet  = errors.New("invalid_street")
	ErrInvalidState   = errors.New("invalid_state")
	ErrInvalidPincode = errors.New("invalid_pincode")
)
