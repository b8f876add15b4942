package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

// CashSaleName is the fallback party name used when a reference cannot be
// resolved against the directory.
const CashSaleName = "CASH SALE"

// PartyRef is a loose reference to a party as carried on a saved invoice.
// ID takes precedence; Index is a position into the directory listing,
// negative when absent; Inline is a full record embedded in the payload.
type PartyRef struct {
	ID     snowflake.ID
	Index  int
	Inline *Party
}

// NoIndex marks an absent positional reference.
const NoIndex = -1

// RefByID references a stored party directly, with no positional or inline
// fallback. A zero id resolves to the synthetic cash sale party.
func RefByID(id snowflake.ID) PartyRef {
	return PartyRef{ID: id, Index: NoIndex}
}

// Repository persists parties and their shipping addresses.
type Repository interface {
	List(ctx context.Context) ([]Party, error)
	FindByID(ctx context.Context, id snowflake.ID) (*Party, error)
	ListAddresses(ctx context.Context, partyID snowflake.ID) ([]ShippingAddress, error)
	SaveAddress(ctx context.Context, addr *ShippingAddress) (*ShippingAddress, error)
}

// SaveAddressRequest carries the fields of a new shipping address. City and
// State may be left blank to be autofilled from the pincode.
type SaveAddressRequest struct {
	PartyID snowflake.ID
	Name    string
	Street  string
	City    string
	State   string
	Pincode string
}

// Service exposes the party directory to the invoice flow.
type Service interface {
	List(ctx context.Context) ([]Party, error)
	FindByID(ctx context.Context, id snowflake.ID) (*Party, error)

	// Resolve maps a loose reference onto a directory entry. Resolution
	// order is ID match, then positional index, then the inline record.
	// When nothing matches it returns a synthetic CASH SALE party.
	Resolve(ctx context.Context, ref PartyRef) (*Party, error)

	ListAddresses(ctx context.Context, partyID snowflake.ID) ([]ShippingAddress, error)
	SaveAddress(ctx context.Context, req SaveAddressRequest) (*ShippingAddress, error)
}
