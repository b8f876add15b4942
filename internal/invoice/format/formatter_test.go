package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextInvoiceNumber(t *testing.T) {
	issued := time.Date(2025, 3, 7, 10, 30, 0, 0, time.UTC)

	out, err := NextInvoiceNumber("{YYYY}{MM}{DD}-{SEQ4}", issued, 12)
	require.NoError(t, err)
	assert.Equal(t, "20250307-0012", out)
}

func TestNextInvoiceNumber_Tokens(t *testing.T) {
	issued := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	out, err := NextInvoiceNumber("INV-{YY}{MM}-{SEQ}", issued, 7)
	require.NoError(t, err)
	assert.Equal(t, "INV-2512-7", out)
}

func TestNextInvoiceNumber_EmptyTemplate(t *testing.T) {
	_, err := NextInvoiceNumber("", time.Now(), 1)
	assert.Error(t, err)
}

func TestNextInvoiceNumber_InvalidSequence(t *testing.T) {
	_, err := NextInvoiceNumber(DefaultInvoiceNumberTemplate, time.Now(), 0)
	assert.Error(t, err)
}

func TestNextInvoiceNumber_UnresolvedToken(t *testing.T) {
	_, err := NextInvoiceNumber("{NOPE}-{SEQ}", time.Now(), 1)
	assert.Error(t, err)
}
