// Package pdf renders saved invoices for preview and download.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	invoicedomain "github.com/1913176/ess-billing/internal/invoice/domain"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// BusinessInfo is the seller block printed at the top of every invoice.
type BusinessInfo struct {
	Name   string
	Mobile string
}

// Provider renders a saved invoice into a single PDF document.
type Provider interface {
	RenderInvoice(ctx context.Context, inv *invoicedomain.WireInvoice, business BusinessInfo) (io.Reader, error)
}

// FileName is the suggested download name for a rendered invoice.
func FileName(invoiceNo string) string {
	return fmt.Sprintf("invoice_%s.pdf", invoiceNo)
}

type provider struct{}

func New() Provider {
	return &provider{}
}

func (p *provider) RenderInvoice(ctx context.Context, inv *invoicedomain.WireInvoice, business BusinessInfo) (io.Reader, error) {
	if inv == nil {
		return nil, fmt.Errorf("invoice is nil")
	}

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "BILL OF SUPPLY", props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	m.AddRow(16,
		col.New(6).Add(
			text.New(business.Name, props.Text{Style: fontstyle.Bold}),
			text.New("MOBILE NUMBER: "+business.Mobile, props.Text{Top: 5, Size: 9}),
		),
		col.New(6).Add(
			text.New("Invoice no: "+inv.InvoiceNo, props.Text{Align: align.Right, Size: 9}),
			text.New("Invoice date: "+inv.InvoiceDate, props.Text{Top: 4, Align: align.Right, Size: 9}),
			text.New("Due date: "+inv.DueDate, props.Text{Top: 8, Align: align.Right, Size: 9}),
		),
	)

	m.AddRow(24,
		col.New(6).Add(
			text.New("BILL TO", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.New(inv.PartyName, props.Text{Top: 5, Size: 9}),
			text.New(inv.MobileNumber, props.Text{Top: 9, Size: 9}),
			text.New(inv.ShippingAddress, props.Text{Top: 13, Size: 8}),
		),
		col.New(6),
	)

	m.AddRow(8,
		text.NewCol(1, "S.NO", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(5, "ITEMS", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "QTY.", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "RATE", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "AMOUNT", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for i, item := range inv.SalesInvoiceItems {
		qty := item.Quantity.String()
		if item.MeasuringUnit != "" {
			qty = qty + " " + item.MeasuringUnit
		}
		m.AddRow(8,
			text.NewCol(1, fmt.Sprintf("%d", i+1), props.Text{Size: 9}),
			text.NewCol(5, item.Name, props.Text{Size: 9}),
			text.NewCol(2, qty, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.PricePerItem.StringFixed(2), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.Amount.StringFixed(2), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "TOTAL", props.Text{Style: fontstyle.Bold, Size: 10}),
		text.NewCol(2, inv.TotalAmount.Total.StringFixed(2), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "RECEIVED AMOUNT", props.Text{Size: 9}),
		text.NewCol(2, inv.ReceivedAmount.StringFixed(2), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "BALANCE", props.Text{Size: 9}),
		text.NewCol(2, inv.BalanceAmount.StringFixed(2), props.Text{Size: 9, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
