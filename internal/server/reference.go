package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListSalespersons(c *gin.Context) {
	persons, err := s.referenceSvc.ListSalespersons(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, persons)
}

// ListPaymentTerms serves the term map as {id: label}, the shape the
// editor's dropdown consumes.
func (s *Server) ListPaymentTerms(c *gin.Context) {
	terms, err := s.referenceSvc.ListPaymentTerms(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	out := make(map[string]string, len(terms))
	for _, t := range terms {
		out[strconv.Itoa(t.ID)] = t.Label
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) ListStates(c *gin.Context) {
	states, err := s.referenceSvc.ListStates(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": states})
}
