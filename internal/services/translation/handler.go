package translation

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	defaultPhraseLimit = 50
	defaultSpeakRate   = 1.0
)

// ========== 請求 / 回應 ==========

type translateRequest struct {
	Text           *string `json:"text" binding:"required"`
	SourceLanguage string  `json:"source_language" binding:"required"`
	TargetLanguage string  `json:"target_language" binding:"required"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

type ttsRequest struct {
	Text         *string  `json:"text" binding:"required"`
	LanguageCode string   `json:"language_code" binding:"required"`
	VoiceName    string   `json:"voice_name"`
	SpeakingRate *float64 `json:"speaking_rate"`
	Pitch        *float64 `json:"pitch"`
}

type ttsResponse struct {
	AudioContentBase64 string  `json:"audio_content_base64"`
	DurationSeconds    float64 `json:"duration_seconds"`
	AudioURL           *string `json:"audio_url"`
}

// ========== Handler ==========

// Handler serves the translation routes.
type Handler struct {
	log     zerolog.Logger
	svc     *Service
	phrases PhraseStore
}

func NewHandler(log zerolog.Logger, svc *Service, phrases PhraseStore) *Handler {
	return &Handler{log: log, svc: svc, phrases: phrases}
}

// Register mounts the routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.info)
	r.GET("/languages", h.languages)
	r.GET("/voices/:language_code", h.voices)
	r.POST("/translate/text", h.translate)
	r.POST("/translate/tts", h.tts)

	r.GET("/common-phrases", h.listPhrases)
	r.GET("/common-phrases/categories", h.categories)
	r.GET("/common-phrases/by-category/:category", h.phrasesByCategory)
	r.GET("/common-phrases/:phrase_id", h.phraseByID)
}

func (h *Handler) info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "Translation Service",
		"version": "1.0.0",
		"endpoints": []string{
			"/translate/text",
			"/translate/tts",
			"/languages",
			"/voices/{language_code}",
			"/common-phrases",
			"/common-phrases/categories",
			"/common-phrases/by-category/{category}",
			"/common-phrases/{phrase_id}",
		},
	})
}

func (h *Handler) languages(c *gin.Context) {
	c.JSON(http.StatusOK, SupportedLanguages)
}

func (h *Handler) voices(c *gin.Context) {
	code := c.Param("language_code")
	voice, ok := LanguageVoices[code]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No voices available for language code: " + code})
		return
	}
	c.JSON(http.StatusOK, gin.H{code: voice})
}

func (h *Handler) translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.svc.Translate(c.Request.Context(), *req.Text, req.SourceLanguage, req.TargetLanguage)
	if errors.Is(err, ErrUnsupportedLanguage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.log.Error().Err(err).
			Str("source", req.SourceLanguage).
			Str("target", req.TargetLanguage).
			Msg("translate")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Translation failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, translateResponse{
		TranslatedText: out,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
	})
}

func (h *Handler) tts(c *gin.Context) {
	var req ttsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sr := SpeechRequest{
		Text:         *req.Text,
		LanguageCode: req.LanguageCode,
		VoiceName:    req.VoiceName,
		SpeakingRate: defaultSpeakRate,
	}
	if req.SpeakingRate != nil {
		sr.SpeakingRate = *req.SpeakingRate
	}
	if req.Pitch != nil {
		sr.Pitch = *req.Pitch
	}

	speech, err := h.svc.Speak(c.Request.Context(), sr)
	if errors.Is(err, ErrUnsupportedLanguage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("language", req.LanguageCode).Msg("synthesize")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "TTS processing failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, ttsResponse{
		AudioContentBase64: speech.AudioBase64,
		DurationSeconds:    speech.DurationSeconds,
	})
}

// ========== Common phrases ==========

func (h *Handler) listPhrases(c *gin.Context) {
	limit, err := queryInt(c, "limit", defaultPhraseLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.phrases.List(c.Request.Context(), limit, skip)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(list))
}

func (h *Handler) categories(c *gin.Context) {
	cats, err := h.phrases.Categories(c.Request.Context())
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": nonNil(cats)})
}

func (h *Handler) phrasesByCategory(c *gin.Context) {
	category := c.Param("category")
	list, err := h.phrases.ByCategory(c.Request.Context(), category)
	if err != nil {
		h.storeError(c, err)
		return
	}
	if len(list) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No phrases found for category: " + category})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) phraseByID(c *gin.Context) {
	id := c.Param("phrase_id")
	p, err := h.phrases.ByID(c.Request.Context(), id)
	switch {
	case errors.Is(err, ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phrase ID format: " + id})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Phrase with ID %s not found", id)})
	case err != nil:
		h.storeError(c, err)
	default:
		c.JSON(http.StatusOK, p)
	}
}

func (h *Handler) storeError(c *gin.Context, err error) {
	h.log.Error().Err(err).Str("path", c.FullPath()).Msg("phrase store")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func queryInt(c *gin.Context, name string, def int64) (int64, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return v, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
