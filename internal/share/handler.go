package share

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/pairing"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Share builds a share card for one recommendation. The response always
// succeeds; when no link store is configured the method degrades to
// clipboard and the client copies the text locally.
func (h *Handler) Share(c *gin.Context) {
	var rec pairing.Recommendation
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if strings.TrimSpace(rec.Name) == "" || strings.TrimSpace(rec.Type) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and type are required"})
		return
	}

	c.JSON(http.StatusOK, h.service.Share(c.Request.Context(), rec))
}

// Vendors returns retailer links for a drink name.
func (h *Handler) Vendors(c *gin.Context) {
	drink := strings.TrimSpace(c.Query("drink"))
	if drink == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "drink query parameter is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendors": VendorLinks(drink)})
}
