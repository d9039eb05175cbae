// Package packinglist exposes the packing list generator over HTTP.
package packinglist

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"travelassistant/internal/packing"
)

const defaultTripType = "leisure"

// ========== 請求 / 回應 ==========

// generateRequest uses pointers for the required fields so that a zero
// duration or an empty string still counts as present.
type generateRequest struct {
	Destination *string  `json:"destination" binding:"required"`
	Duration    *int     `json:"duration" binding:"required"`
	Season      *string  `json:"season" binding:"required"`
	TripType    tripType `json:"trip_type"`
	Activities  []string `json:"activities"`
	Gender      string   `json:"gender"`
	AgeGroup    string   `json:"age_group"`
}

func (r generateRequest) profile() packing.Profile {
	tripType := defaultTripType
	if r.TripType.set {
		tripType = r.TripType.value
	}
	return packing.Profile{
		Destination: *r.Destination,
		Duration:    *r.Duration,
		Season:      *r.Season,
		TripType:    tripType,
		Activities:  r.Activities,
		Gender:      r.Gender,
		AgeGroup:    r.AgeGroup,
	}
}

// tripType records whether trip_type was sent. An explicit "" is kept as is
// and null is rejected.
type tripType struct {
	value string
	set   bool
}

func (t *tripType) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return errors.New("trip_type must be a string")
	}
	if err := json.Unmarshal(b, &t.value); err != nil {
		return err
	}
	t.set = true
	return nil
}

type generateResponse struct {
	Items       []packing.Item `json:"items"`
	Destination string         `json:"destination"`
	Duration    int            `json:"duration"`
	Season      string         `json:"season"`
	TripType    string         `json:"trip_type"`
}

// ========== Handler ==========

// Handler serves the packing list routes.
type Handler struct {
	log zerolog.Logger
}

func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{log: log}
}

// Register mounts the routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.info)
	r.POST("/generate", h.generate)
}

func (h *Handler) info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":   "Packing List Service",
		"version":   "1.0.0",
		"model":     "Rule-based",
		"endpoints": []string{"/generate"},
	})
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := req.profile()
	items := packing.Generate(p)
	h.log.Debug().
		Str("destination", p.Destination).
		Int("duration", p.Duration).
		Str("season", p.Season).
		Int("items", len(items)).
		Msg("packing list generated")

	c.JSON(http.StatusOK, generateResponse{
		Items:       items,
		Destination: p.Destination,
		Duration:    p.Duration,
		Season:      p.Season,
		TripType:    p.TripType,
	})
}
