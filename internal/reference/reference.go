// Package reference serves the small lookup tables the invoice editor
// needs: payment terms, salespersons, and the state list.
package reference

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

// PaymentTerm is a fixed due-period choice. Days is the offset added to
// the invoice date to produce the due date.
type PaymentTerm struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Days  int    `json:"days"`
}

// PaymentTerms is the fixed set offered by the editor, in display order.
var PaymentTerms = []PaymentTerm{
	{ID: 1, Label: "Due on Receipt", Days: 0},
	{ID: 2, Label: "Net 15", Days: 15},
	{ID: 3, Label: "Net 30", Days: 30},
	{ID: 4, Label: "Net 45", Days: 45},
	{ID: 5, Label: "Net 60", Days: 60},
}

// PaymentTermByID returns the term with the given id, or nil.
func PaymentTermByID(id int) *PaymentTerm {
	for i := range PaymentTerms {
		if PaymentTerms[i].ID == id {
			return &PaymentTerms[i]
		}
	}
	return nil
}

// Salesperson is an employee who can be credited on an invoice.
type Salesperson struct {
	ID   snowflake.ID `gorm:"primaryKey" json:"id"`
	Name string       `gorm:"type:text;not null" json:"name"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (Salesperson) TableName() string { return "salespersons" }

// Repository persists salespersons.
type Repository interface {
	ListSalespersons(ctx context.Context) ([]Salesperson, error)
	FindSalesperson(ctx context.Context, id snowflake.ID) (*Salesperson, error)
}

// Service exposes the reference tables.
type Service interface {
	ListPaymentTerms(ctx context.Context) ([]PaymentTerm, error)
	ListSalespersons(ctx context.Context) ([]Salesperson, error)
	FindSalesperson(ctx context.Context, id snowflake.ID) (*Salesperson, error)
	ListStates(ctx context.Context) ([]string, error)
}

var ErrInvalidID = errors.New("invalid_id")
