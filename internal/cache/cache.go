// Package cache keeps the recent-invoices list used by the delete flow's
// bookkeeping. It is a cache, not the system of record; every operation is
// best effort and safe to lose.
package cache

import (
	"context"

	invoicedomain "github.com/1913176/ess-billing/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
)

// InvoiceCache is the persistence adapter for recently saved invoices. The
// medium is swappable; redis when configured, process memory otherwise.
type InvoiceCache interface {
	List(ctx context.Context) ([]*invoicedomain.WireInvoice, error)
	Set(ctx context.Context, inv *invoicedomain.WireInvoice) error
	Remove(ctx context.Context, id snowflake.ID) error
	Clear(ctx context.Context) error
}
