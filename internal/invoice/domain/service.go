package domain

import (
	"context"

	partydomain "github.com/1913176/ess-billing/internal/party/domain"
	"github.com/bwmarrin/snowflake"
)

// CreateDraftRequest seeds a new draft. Party may name a stored party by id,
// a position in the listing, or carry inline details; a failed resolution
// falls back to a cash sale. InvoiceNo empty means "suggest one".
type CreateDraftRequest struct {
	Party         partydomain.PartyRef
	InvoiceNo     string
	PaymentTermID int
	SalespersonID *snowflake.ID
}

// ShippingRequest adds or replaces a shipping address on a draft.
type ShippingRequest struct {
	AddressID snowflake.ID
	Name      string
	Street    string
	City      string
	State     string
	Pincode   string
}

// ItemSelection picks one catalog entry to add as a line.
type ItemSelection struct {
	CatalogID snowflake.ID
	Type      string
	Qty       string
}

// ItemPatch updates one line. Nil fields are left as they are. Values are
// stored verbatim; the totals engine coerces them.
type ItemPatch struct {
	Qty         *string
	Price       *string
	DiscountPct *string
	TaxLabel    *string
}

// Repository persists invoices and their items.
type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	Update(ctx context.Context, inv *Invoice) error
	FindByID(ctx context.Context, id snowflake.ID) (*Invoice, error)
	List(ctx context.Context) ([]Invoice, error)
	Delete(ctx context.Context, id snowflake.ID) error

	// NextSequence returns the next per-day sequence for invoice numbering.
	NextSequence(ctx context.Context) (int64, error)
}

// Service drives the invoice lifecycle: draft editing, totals, persistence,
// and the saved-invoice read side.
type Service interface {
	CreateDraft(ctx context.Context, req CreateDraftRequest) (*Draft, error)
	GetDraft(ctx context.Context, draftID snowflake.ID) (*Draft, error)
	SelectParty(ctx context.Context, draftID snowflake.ID, ref partydomain.PartyRef) (*Draft, error)
	SetShipping(ctx context.Context, draftID snowflake.ID, req ShippingRequest) (*Draft, error)
	AddItems(ctx context.Context, draftID snowflake.ID, selections []ItemSelection) (*Draft, error)
	UpdateItem(ctx context.Context, draftID, lineID snowflake.ID, patch ItemPatch) (*Draft, error)
	RemoveItem(ctx context.Context, draftID, lineID snowflake.ID) (*Draft, error)
	SetAdjustments(ctx context.Context, draftID snowflake.ID, adj DraftAdjustments) (*Draft, error)

	// Save persists the draft and locks it. The bool reports whether a new
	// invoice was created, as opposed to an update of a reopened one.
	Save(ctx context.Context, draftID snowflake.ID) (*WireInvoice, bool, error)
	Reopen(ctx context.Context, draftID snowflake.ID) (*Draft, error)
	ReopenInvoice(ctx context.Context, invoiceID snowflake.ID) (*Draft, error)

	// DiscardDraft drops a draft from the editing store. A draft that was
	// already saved keeps its invoice; only the editable state goes away.
	DiscardDraft(ctx context.Context, draftID snowflake.ID) error

	CreateInvoice(ctx context.Context, w *WireInvoice) (*WireInvoice, error)
	UpdateInvoice(ctx context.Context, invoiceID snowflake.ID, w *WireInvoice) (*WireInvoice, error)
	Delete(ctx context.Context, invoiceID snowflake.ID) error
	List(ctx context.Context) ([]*WireInvoice, error)
	Get(ctx context.Context, invoiceID snowflake.ID) (*WireInvoice, error)
}
