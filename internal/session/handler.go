package session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/geo"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/pairing"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/speech"
)

type Handler struct {
	controller *Controller
}

func NewHandler(controller *Controller) *Handler {
	return &Handler{controller: controller}
}

func clientID(c *gin.Context) string {
	return c.GetString("clientID")
}

func intQuery(c *gin.Context, key string) (int, error) {
	return strconv.Atoi(c.Query(key))
}

// --------------------------------------------------
// GET /session
// --------------------------------------------------
func (h *Handler) GetState(c *gin.Context) {
	state := h.controller.State(c.Request.Context(), clientID(c))
	c.JSON(http.StatusOK, gin.H{
		"state":          state,
		"voiceAvailable": h.controller.VoiceAvailable(),
	})
}

// --------------------------------------------------
// POST /session/search
// --------------------------------------------------
func (h *Handler) Search(c *gin.Context) {
	var req struct {
		Query  string `json:"query"`
		Budget string `json:"budget"`
		Season string `json:"season"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	state, err := h.controller.Search(
		c.Request.Context(),
		clientID(c),
		req.Query,
		req.Budget,
		req.Season,
	)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": state.Err, "state": state})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": state})
}

// --------------------------------------------------
// POST /session/voice
// --------------------------------------------------
func (h *Handler) Voice(c *gin.Context) {
	cfg := speech.AudioConfig{
		Encoding: c.Query("encoding"),
	}
	if v, err := intQuery(c, "sample_rate"); err == nil {
		cfg.SampleRate = v
	}
	if v, err := intQuery(c, "channels"); err == nil {
		cfg.Channels = v
	}

	state, err := h.controller.Voice(c.Request.Context(), clientID(c), c.Request.Body, cfg)
	if err != nil {
		if errors.Is(err, ErrVoiceUnavailable) {
			// Capability absent is a disabled feature, not a failure.
			c.JSON(http.StatusOK, gin.H{
				"available": false,
				"message":   "Voice input is not available.",
				"state":     state,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": true, "state": state})
}

// --------------------------------------------------
// POST /session/location
// --------------------------------------------------
func (h *Handler) ReportLocation(c *gin.Context) {
	var req struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Address   string   `json:"address"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var coords *geo.Coordinates
	if req.Latitude != nil && req.Longitude != nil {
		coords = &geo.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	state := h.controller.ReportLocation(
		c.Request.Context(),
		clientID(c),
		coords,
		req.Address,
	)

	c.JSON(http.StatusOK, gin.H{"state": state})
}

// --------------------------------------------------
// POST /session/nearby
// --------------------------------------------------
func (h *Handler) FindNearby(c *gin.Context) {
	var req struct {
		Drink string `json:"drink"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	state, err := h.controller.FindNearby(c.Request.Context(), clientID(c), req.Drink)
	if err != nil {
		if errors.Is(err, ErrLocationRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgLocationRequired})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "drink is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": state})
}

// --------------------------------------------------
// GET /session/history, DELETE /session/history
// --------------------------------------------------
func (h *Handler) GetHistory(c *gin.Context) {
	state := h.controller.State(c.Request.Context(), clientID(c))
	c.JSON(http.StatusOK, gin.H{"searchHistory": state.History})
}

func (h *Handler) ClearHistory(c *gin.Context) {
	state := h.controller.ClearHistory(c.Request.Context(), clientID(c))
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// --------------------------------------------------
// GET /favorites, POST /favorites/toggle
// --------------------------------------------------
func (h *Handler) GetFavorites(c *gin.Context) {
	state := h.controller.State(c.Request.Context(), clientID(c))
	c.JSON(http.StatusOK, gin.H{"favorites": state.Favorites})
}

func (h *Handler) ToggleFavorite(c *gin.Context) {
	var req pairing.Recommendation

	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a pairing with name and type is required"})
		return
	}

	state := h.controller.ToggleFavorite(c.Request.Context(), clientID(c), req)
	c.JSON(http.StatusOK, gin.H{"favorites": state.Favorites})
}

// --------------------------------------------------
// POST /session/tab
// --------------------------------------------------
func (h *Handler) SetTab(c *gin.Context) {
	var req struct {
		Tab string `json:"tab"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	state, err := h.controller.SetTab(c.Request.Context(), clientID(c), Tab(req.Tab))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown tab"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": state})
}
