package server

import (
	"net/http"
	"strings"

	catalogdomain "github.com/1913176/ess-billing/internal/catalog/domain"
	"github.com/gin-gonic/gin"
)

// ListCatalogItems serves the normalized product/service listing. `search`
// filters by name substring, `type` by exact kind.
func (s *Server) ListCatalogItems(c *gin.Context) {
	filter := catalogdomain.ListFilter{
		Search: strings.TrimSpace(c.Query("search")),
		Type:   strings.TrimSpace(c.Query("type")),
	}

	items, err := s.catalogSvc.List(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
