package server

import (
	"net/http"

	invoicedomain "github.com/1913176/ess-billing/internal/invoice/domain"
	partydomain "github.com/1913176/ess-billing/internal/party/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

// inlinePartyPayload carries party details embedded in the request body, for
// callers that never stored the party in the directory.
type inlinePartyPayload struct {
	Name         string `json:"name"`
	MobileNumber string `json:"mobile_number"`
}

// partyRefFrom builds the resolver reference. The positional index binds as a
// pointer so an absent field is distinguishable from position zero.
func partyRefFrom(partyID int64, partyIndex *int, inline *inlinePartyPayload) partydomain.PartyRef {
	ref := partydomain.RefByID(snowflake.ID(partyID))
	if partyIndex != nil {
		ref.Index = *partyIndex
	}
	if inline != nil {
		ref.Inline = &partydomain.Party{
			PartyName:    inline.Name,
			MobileNumber: inline.MobileNumber,
		}
	}
	return ref
}

type createDraftRequest struct {
	PartyID       int64               `json:"party_id"`
	PartyIndex    *int                `json:"party_index"`
	Party         *inlinePartyPayload `json:"party"`
	InvoiceNo     string              `json:"invoice_no"`
	PaymentTermID int                 `json:"payment_term_id"`
	SalespersonID int64               `json:"salesperson_id"`
}

func (s *Server) CreateDraft(c *gin.Context) {
	var req createDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	create := invoicedomain.CreateDraftRequest{
		Party:         partyRefFrom(req.PartyID, req.PartyIndex, req.Party),
		InvoiceNo:     req.InvoiceNo,
		PaymentTermID: req.PaymentTermID,
	}
	if req.SalespersonID > 0 {
		id := snowflake.ID(req.SalespersonID)
		create.SalespersonID = &id
	}

	draft, err := s.invoiceSvc.CreateDraft(c.Request.Context(), create)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": draft})
}

func (s *Server) GetDraft(c *gin.Context) {
	draftID := pathID(c, "id")
	if draftID == 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid draft id"))
		return
	}

	draft, err := s.invoiceSvc.GetDraft(c.Request.Context(), draftID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": draft})
}

type selectPartyRequest struct {
	PartyID    int64               `json:"party_id"`
	PartyIndex *int                `json:"party_index"`
	Party      *inlinePartyPayload `json:"party"`
}

func (s *Server) SelectDraftParty(c *gin.Context) {
	draftID := pathID(c, "id")
	if draftID == 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid draft id"))
		return
	}

	var req selectPartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	draft, err := s.invoiceSvc.SelectParty(c.Request.Context(), draftID, partyRefFrom(req.PartyID, req.PartyIndex, req.Party))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": draft})
}

type setShippingRequest struct {
	AddressID int64  `json:"address_id"`
	Name      string `json:"name"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
}

func (s *Server) SetDraftShipping(c *gin.Context) {
	draftID := pathID(c, "id")
	if draftID == 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid draft id"))
		return
	}

	var req setShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	draft, err := s.invoiceSvc.SetShipping(c.Request.Context(), draftID, invoicedomain.ShippingRequest{
		AddressID: snowflake.ID(req.AddressID),
		Name:      req.Name,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Pincode:   req.Pincode,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": draft})
}

type addItemsRequest struct {
	Items []struct {
		CatalogID int64  `json:"catalog_id"`
		Type      string `json:"type"`
		Qty       string `json:"qty"`
	} `json:"items"`
}

func (s *Server) AddDraftItems(c *gin.Context) {
	draftID := pathID(c, "id")
	if draftID == 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid draft id"))
		return
	}

	var req addItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	selections := make([]invoicedomain.ItemSelection, 0, len(req.Items))
	for _, it := range req.Items {
		selections = append(selections, invoicedomain.ItemSelection{
			CatalogID: snowflake.ID(it.CatalogID),
			Type:      it.Type,
			Qty:       it.Qty,
		})
	}

	draft, err := s.invoiceSvc.AddItems(c.Request.Context(), draftID, selections)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": draft})
}

type updateItemRequest struct {
	Qty         *string `json:"qty"`
	Price       *string `json:"price"`
	DiscountPct *string `json:"discount_pct"`
	TaxLabel    *string `json:"tax_label"`
}

func (s *Server) UpdateDraftItem(c *gin.Context) {
	draftID := pathID(c, "id")
	lineID := pathID(c, "lineId")
	if draftID == 0 || lineID == 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid draft or line id"))
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	draft, err := s.invoiceSvc.UpdateItem(c.Request.Context(), draftID, lineID, invoicedomain.ItemPatch{
		Qty:         req.Qty,
		Price:       req.Price,
		DiscountPct: req.DiscountPct,
		TaxLabel:    req.TaxLabel,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": draft})
}

func (s *Server) RemoveDraftItem(c *gin.Context) {
	draftID := pathID(c, "id")
	lineID := pathID(c, "lineId")
	if draftID == 0 || lineID == 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid draft or line id"))
		return
	}

	draft, err := s.invoiceSvc.RemoveItem(c.Request.Context(), draftID, lineID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": draft})
}

func (s *Server) SetDraftAdjustments(c *gin.Context) {
	draftID := pathID(c, "id")
	if draftID == 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid draft id"))
		return
	}

	var adj invoicedomain.DraftAdjustments
	if err := c.ShouldBindJSON(&adj); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	draft, err := s.invoiceSvc.SetAdjustments(c.Request.Context(), draftID, adj)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": draft})
}

func (s *Server) SaveDraft(c *gin.Context) {
	draftID := pathID(c, "id")
	if draftID == 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid draft id"))
		return
	}

	wire, created, err := s.invoiceSvc.Save(c.Request.Context(), draftID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"data": wire})
}

// EditInvoice rebuilds a fresh draft from a saved invoice.
func (s *Server) EditInvoice(c *gin.Context) {
	invoiceID := pathID(c, "id")
	if invoiceID == 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid invoice id"))
		return
	}

	draft, err := s.invoiceSvc.ReopenInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": draft})
}

func (s *Server) DiscardDraft(c *gin.Context) {
	draftID := pathID(c, "id")
	if draftID == 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid draft id"))
		return
	}

	if err := s.invoiceSvc.DiscardDraft(c.Request.Context(), draftID); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) ReopenDraft(c *gin.Context) {
	draftID := pathID(c, "id")
	if draftID == 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid draft id"))
		return
	}

	draft, err := s.invoiceSvc.Reopen(c.Request.Context(), draftID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": draft})
}
