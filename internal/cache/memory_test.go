package cache

import (
	"context"
	"testing"

	invoicedomain "github.com/1913176/ess-billing/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	a := &invoicedomain.WireInvoice{ID: snowflake.ID(1), InvoiceNo: "20250615-0001"}
	b := &invoicedomain.WireInvoice{ID: snowflake.ID(2), InvoiceNo: "20250615-0002"}
	require.NoError(t, c.Set(ctx, a))
	require.NoError(t, c.Set(ctx, b))

	list, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	// Set on the same id overwrites, it does not duplicate.
	a2 := &invoicedomain.WireInvoice{ID: snowflake.ID(1), InvoiceNo: "20250615-0009"}
	require.NoError(t, c.Set(ctx, a2))
	list, err = c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, c.Remove(ctx, snowflake.ID(1)))
	list, err = c.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, snowflake.ID(2), list[0].ID)

	// Removing an absent id is a no-op.
	require.NoError(t, c.Remove(ctx, snowflake.ID(99)))

	require.NoError(t, c.Clear(ctx))
	list, err = c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
