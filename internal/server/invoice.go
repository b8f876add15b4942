package server

import (
	"io"
	"net/http"

	invoicedomain "github.com/1913176/ess-billing/internal/invoice/domain"
	"github.com/1913176/ess-billing/internal/providers/pdf"
	"github.com/1913176/ess-billing/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

// CreateInvoice is the direct persistence path: the client sends the saved
// wire shape and the server re-derives every total before storing it.
func (s *Server) CreateInvoice(c *gin.Context) {
	var wire invoicedomain.WireInvoice
	if err := c.ShouldBindJSON(&wire); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	saved, err := s.invoiceSvc.CreateInvoice(c.Request.Context(), &wire)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, saved)
}

func (s *Server) UpdateInvoice(c *gin.Context) {
	invoiceID := pathID(c, "id")
	if invoiceID == 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid invoice id"))
		return
	}

	var wire invoicedomain.WireInvoice
	if err := c.ShouldBindJSON(&wire); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	saved, err := s.invoiceSvc.UpdateInvoice(c.Request.Context(), invoiceID, &wire)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	invoiceID := pathID(c, "id")
	if invoiceID == 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid invoice id"))
		return
	}

	if err := s.invoiceSvc.Delete(c.Request.Context(), invoiceID); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) ListInvoices(c *gin.Context) {
	var page pagination.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	invoices, err := s.invoiceSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	// The bare list stays a plain array for existing clients.
	if !page.Requested() {
		c.JSON(http.StatusOK, invoices)
		return
	}

	after, err := pagination.DecodeCursor(page.PageToken)
	if err != nil {
		AbortWithError(c, newValidationError("page_token", "invalid_page_token", "malformed page token"))
		return
	}

	window, info := pagination.Window(invoices, func(inv *invoicedomain.WireInvoice) int64 {
		return int64(inv.ID)
	}, after, page.Limit())
	c.JSON(http.StatusOK, gin.H{
		"invoices":  window,
		"page_info": info,
	})
}

func (s *Server) GetInvoice(c *gin.Context) {
	invoiceID := pathID(c, "id")
	if invoiceID == 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid invoice id"))
		return
	}

	wire, err := s.invoiceSvc.Get(c.Request.Context(), invoiceID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, wire)
}

func (s *Server) DownloadInvoicePDF(c *gin.Context) {
	invoiceID := pathID(c, "id")
	if invoiceID == 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid invoice id"))
		return
	}

	wire, err := s.invoiceSvc.Get(c.Request.Context(), invoiceID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, err := s.pdfProvider.RenderInvoice(c.Request.Context(), wire, pdf.BusinessInfo{
		Name:   s.cfg.BusinessName,
		Mobile: s.cfg.BusinessMobile,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+pdf.FileName(wire.InvoiceNo)+`"`)
	c.Header("Content-Type", "application/pdf")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, doc)
}
