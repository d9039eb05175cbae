package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userKey         = "gateway.user"
	bearerPrefix    = "Bearer "
	credentialsFail = "Could not validate credentials"
)

// ========== Tokens ==========

// TokenIssuer signs and verifies HS256 access tokens whose subject is the
// username.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed token for username.
func (t *TokenIssuer) Issue(username string) (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies raw and returns its subject.
func (t *TokenIssuer) Parse(raw string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}

// ========== Handlers ==========

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// login implements the OAuth2 password grant with form fields.
func (g *Gateway) login(c *gin.Context) {
	user, err := g.users.Authenticate(c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
		return
	}

	token, err := g.tokens.Issue(user.Username)
	if err != nil {
		g.log.Error().Err(err).Msg("issue token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}
	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (g *Gateway) me(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

// ========== Middleware ==========

// requireUser rejects requests without a valid bearer token for an active
// user and stores the user on the context.
func (g *Gateway) requireUser(c *gin.Context) {
	raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), bearerPrefix)
	if !ok || raw == "" {
		unauthorized(c)
		return
	}
	username, err := g.tokens.Parse(raw)
	if err != nil {
		g.log.Debug().Err(err).Msg("reject token")
		unauthorized(c)
		return
	}
	user, ok := g.users.Lookup(username)
	if !ok {
		unauthorized(c)
		return
	}
	if user.Disabled {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Inactive user"})
		return
	}
	c.Set(userKey, user)
	c.Next()
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": credentialsFail})
}

func currentUser(c *gin.Context) User {
	u, _ := c.Get(userKey)
	user, _ := u.(User)
	return user
}
