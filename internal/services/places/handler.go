package places

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler serves the map routes.
type Handler struct {
	log   zerolog.Logger
	store Store
}

func NewHandler(log zerolog.Logger, store Store) *Handler {
	return &Handler{log: log, store: store}
}

// Register mounts the routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.info)
	r.GET("/locations", h.locations)
	r.GET("/places", h.places)
	r.GET("/directions", h.directions)
}

func (h *Handler) info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":   "Map Service",
		"version":   "1.0.0",
		"endpoints": []string{"/places", "/directions", "/locations"},
	})
}

func (h *Handler) locations(c *gin.Context) {
	locs, err := h.store.Locations(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list locations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locs})
}

func (h *Handler) places(c *gin.Context) {
	location := c.Query("location")
	if strings.TrimSpace(location) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location query parameter is required"})
		return
	}

	found, err := h.store.ByLocation(c.Request.Context(), strings.ToLower(location))
	if err != nil {
		h.log.Error().Err(err).Str("location", location).Msg("find places")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(found) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No places found for: %s", location)})
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *Handler) directions(c *gin.Context) {
	origin, destination := c.Query("origin"), c.Query("destination")
	if origin == "" || destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin and destination query parameters are required"})
		return
	}
	c.JSON(http.StatusOK, MockDirections(origin, destination))
}
