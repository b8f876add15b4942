package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListGSTTaxes serves the tax table as a plain array of
// {id, name, gst_rate, cess_rate}.
func (s *Server) ListGSTTaxes(c *gin.Context) {
	rates, err := s.taxSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, rates)
}
