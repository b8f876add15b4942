// Package format renders invoice numbers from the configurable template.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultInvoiceNumberTemplate is used when the configuration supplies none.
const DefaultInvoiceNumberTemplate = "{YYYY}{MM}{DD}-{SEQ4}"

// paddedSeq matches {SEQn} where n is the zero-pad width.
var paddedSeq = regexp.MustCompile(`\{SEQ(\d+)\}`)

// NextInvoiceNumber expands the template against the issue time and the
// per-day sequence. Supported tokens are {YYYY}, {YY}, {MM}, {DD}, {SEQ},
// and {SEQn}. A template that still holds braces after expansion is
// rejected rather than stored on an invoice.
func NextInvoiceNumber(template string, issuedAt time.Time, seq int64) (string, error) {
	if template == "" {
		return "", fmt.Errorf("invoice number template is empty")
	}
	if seq <= 0 {
		return "", fmt.Errorf("invalid invoice sequence: %d", seq)
	}

	out := paddedSeq.ReplaceAllStringFunc(template, func(tok string) string {
		width, err := strconv.Atoi(paddedSeq.FindStringSubmatch(tok)[1])
		if err != nil || width <= 0 {
			return tok
		}
		return fmt.Sprintf("%0*d", width, seq)
	})

	out = strings.NewReplacer(
		"{YYYY}", issuedAt.Format("2006"),
		"{YY}", issuedAt.Format("06"),
		"{MM}", issuedAt.Format("01"),
		"{DD}", issuedAt.Format("02"),
		"{SEQ}", strconv.FormatInt(seq, 10),
	).Replace(out)

	if strings.ContainsAny(out, "{}") {
		return "", fmt.Errorf("unresolved token in invoice format: %s", out)
	}
	return out, nil
}
