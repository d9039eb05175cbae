// Package gateway authenticates clients and relays their requests to the
// translation, map and packing services.
package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Upstreams names the backend services.
type Upstreams struct {
	Translation *Upstream
	Map         *Upstream
	Packing     *Upstream
}

// Gateway holds the dependencies of the gateway routes.
type Gateway struct {
	log      zerolog.Logger
	users    *Directory
	tokens   *TokenIssuer
	limiter  *RateLimiter
	upstream Upstreams
}

// New wires a gateway. limiter may be nil to disable rate limiting.
func New(log zerolog.Logger, users *Directory, tokens *TokenIssuer, limiter *RateLimiter, up Upstreams) *Gateway {
	return &Gateway{log: log, users: users, tokens: tokens, limiter: limiter, upstream: up}
}

// Register mounts every gateway route on r.
func (g *Gateway) Register(r gin.IRouter) {
	public := r.Group("/")
	authed := r.Group("/", g.requireUser)
	if g.limiter != nil {
		public.Use(g.limiter.Middleware())
		authed.Use(g.limiter.Middleware())
	}

	public.GET("/", g.catalogue)
	public.POST("/token", g.login)

	authed.GET("/users/me", g.me)

	// ========== Translation ==========
	tr := g.upstream.Translation
	authed.POST("/translate/text", g.forward(tr, fixed("/translate/text")))
	authed.POST("/translate/tts", g.forward(tr, fixed("/translate/tts")))
	authed.GET("/translate/languages", g.forward(tr, fixed("/languages")))
	authed.GET("/translate/voices/:language_code", g.forward(tr, withParam("/voices/", "language_code")))
	authed.GET("/translate/common-phrases", g.forward(tr, fixed("/common-phrases")))
	authed.GET("/translate/common-phrases/categories", g.forward(tr, fixed("/common-phrases/categories")))
	authed.GET("/translate/common-phrases/by-category/:category", g.forward(tr, withParam("/common-phrases/by-category/", "category")))
	authed.GET("/translate/common-phrases/:phrase_id", g.forward(tr, withParam("/common-phrases/", "phrase_id")))

	// ========== Map ==========
	authed.GET("/map/places", g.forward(g.upstream.Map, fixed("/places")))
	authed.GET("/map/directions", g.forward(g.upstream.Map, fixed("/directions")))

	// ========== Packing ==========
	authed.POST("/packing/generate", g.forward(g.upstream.Packing, fixed("/generate")))
}

func (g *Gateway) catalogue(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "Travel Assistant API Gateway",
		"version": "1.0.0",
		"endpoints": gin.H{
			"authentication": []string{"/token"},
			"translation": []string{
				"/translate/text",
				"/translate/tts",
				"/translate/languages",
				"/translate/voices/{language_code}",
				"/translate/common-phrases",
				"/translate/common-phrases/categories",
				"/translate/common-phrases/by-category/{category}",
				"/translate/common-phrases/{phrase_id}",
			},
			"map":     []string{"/map/places", "/map/directions"},
			"packing": []string{"/packing/generate"},
		},
	})
}
