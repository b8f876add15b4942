package server

import (
	"net/http"

	partydomain "github.com/1913176/ess-billing/internal/party/domain"
	"github.com/gin-gonic/gin"
)

// ListParties serves the party directory as a plain array, the shape the
// invoice editor consumes.
func (s *Server) ListParties(c *gin.Context) {
	parties, err := s.partySvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, parties)
}

// ListAddresses serves a party's shipping addresses wrapped in the
// historical {"shipping_address": ...} envelope.
func (s *Server) ListAddresses(c *gin.Context) {
	partyID := pathID(c, "partyId")
	if partyID == 0 {
		AbortWithError(c, newValidationError("partyId", "invalid_id", "invalid party id"))
		return
	}

	addrs, err := s.partySvc.ListAddresses(c.Request.Context(), partyID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shipping_address": addrs})
}

type saveAddressRequest struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

func (s *Server) SaveAddress(c *gin.Context) {
	partyID := pathID(c, "partyId")
	if partyID == 0 {
		AbortWithError(c, newValidationError("partyId", "invalid_id", "invalid party id"))
		return
	}

	var req saveAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	addr, err := s.partySvc.SaveAddress(c.Request.Context(), partydomain.SaveAddressRequest{
		PartyID: partyID,
		Name:    req.Name,
		Street:  req.Street,
		City:    req.City,
		State:   req.State,
		Pincode: req.Pincode,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"shipping_address": addr})
}
