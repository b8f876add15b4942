package cache

import (
	"context"
	"sync"

	invoicedomain "github.com/1913176/ess-billing/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
)

type memoryCache struct {
	mu       sync.RWMutex
	invoices map[snowflake.ID]*invoicedomain.WireInvoice
}

// NewMemoryCache keeps the recent-invoices list in process memory. Used
// when no redis address is configured, and by tests.
func NewMemoryCache() InvoiceCache {
	return &memoryCache{
		invoices: make(map[snowflake.ID]*invoicedomain.WireInvoice),
	}
}

func (c *memoryCache) List(ctx context.Context) ([]*invoicedomain.WireInvoice, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	invoices := make([]*invoicedomain.WireInvoice, 0, len(c.invoices))
	for _, inv := range c.invoices {
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func (c *memoryCache) Set(ctx context.Context, inv *invoicedomain.WireInvoice) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invoices[inv.ID] = inv
	return nil
}

func (c *memoryCache) Remove(ctx context.Context, id snowflake.ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.invoices, id)
	return nil
}

func (c *memoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invoices = make(map[snowflake.ID]*invoicedomain.WireInvoice)
	return nil
}
