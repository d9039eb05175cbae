package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"travelassistant/internal/platform/logging"
)

const (
	defaultUpstreamTimeout = 30 * time.Second
	maxUpstreamBody        = 8 << 20
)

// ErrResponseTooLarge is returned by Upstream.Do when the reply body exceeds
// the relay limit.
var ErrResponseTooLarge = errors.New("upstream response too large")

// forwardedHeaders are copied from the client request to the upstream.
var forwardedHeaders = []string{"Authorization", "Content-Type", "Accept", logging.RequestIDHeader}

// ========== Upstream client ==========

// Upstream is an HTTP client bound to one backend service.
type Upstream struct {
	name    string
	baseURL string
	client  *http.Client
}

func NewUpstream(name, baseURL string, timeout time.Duration) *Upstream {
	if timeout == 0 {
		timeout = defaultUpstreamTimeout
	}
	return &Upstream{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Response is a fully read upstream reply.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// Do sends method path?query with body and header, and reads the reply.
func (u *Upstream) Do(ctx context.Context, method, path, query string, body io.Reader, header http.Header) (*Response, error) {
	target := u.baseURL + path
	if query != "" {
		target += "?" + query
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", u.name, err)
	}
	for _, h := range forwardedHeaders {
		if v := header.Get(h); v != "" {
			req.Header.Set(h, v)
		}
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", u.name, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody+1))
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", u.name, err)
	}
	if len(data) > maxUpstreamBody {
		return nil, fmt.Errorf("%s: %w", u.name, ErrResponseTooLarge)
	}
	return &Response{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}

// ========== Proxy handler ==========

// forward returns a handler relaying the request to up. pathFn maps the
// incoming request to the upstream path.
func (g *Gateway) forward(up *Upstream, pathFn func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body io.Reader
		if c.Request.ContentLength != 0 && c.Request.Body != nil {
			body = c.Request.Body
		}

		resp, err := up.Do(c.Request.Context(), c.Request.Method, pathFn(c), c.Request.URL.RawQuery, body, c.Request.Header)
		if err != nil {
			g.log.Error().Err(err).
				Str("request_id", logging.RequestID(c)).
				Str("upstream", up.name).
				Msg("upstream request failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("%s service unavailable", up.name)})
			return
		}

		contentType := resp.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
		c.Data(resp.Status, contentType, resp.Body)
	}
}

// fixed maps every request to path.
func fixed(path string) func(*gin.Context) string {
	return func(*gin.Context) string { return path }
}

// withParam maps a request to prefix followed by the escaped route param.
func withParam(prefix, param string) func(*gin.Context) string {
	return func(c *gin.Context) string {
		return prefix + url.PathEscape(c.Param(param))
	}
}
