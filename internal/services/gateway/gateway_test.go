package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

// echoUpstream replies with what it received so tests can assert on the
// forwarded request.
func echoUpstream(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"method":        r.Method,
			"path":          r.URL.EscapedPath(),
			"query":         r.URL.RawQuery,
			"authorization": r.Header.Get("Authorization"),
			"request_id":    r.Header.Get("X-Request-ID"),
			"body":          string(body),
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

type fixture struct {
	router *gin.Engine
	users  *Directory
	tokens *TokenIssuer
}

func newFixture(t *testing.T, limiter *RateLimiter, translation, maps, packing string) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users, err := NewDemoDirectory(bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, users.Add(User{Username: "ghost", Disabled: true}, "boo"))
	tokens := NewTokenIssuer(testSecret, 30*time.Minute)

	g := New(zerolog.Nop(), users, tokens, limiter, Upstreams{
		Translation: NewUpstream("translation", translation, time.Second),
		Map:         NewUpstream("map", maps, time.Second),
		Packing:     NewUpstream("packing", packing, time.Second),
	})
	r := gin.New()
	g.Register(r)
	return &fixture{router: r, users: users, tokens: tokens}
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) bearer(t *testing.T, username string) string {
	t.Helper()
	tok, err := f.tokens.Issue(username)
	require.NoError(t, err)
	return "Bearer " + tok
}

func loginRequest(username, password string) *http.Request {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestLoginAndMe(t *testing.T) {
	f := newFixture(t, nil, "http://unused", "http://unused", "http://unused")

	rec := f.do(loginRequest("testuser", "testpassword"))
	require.Equal(t, http.StatusOK, rec.Code)
	var tok tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tok))
	assert.Equal(t, "bearer", tok.TokenType)
	require.NotEmpty(t, tok.AccessToken)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	rec = f.do(req)
	require.Equal(t, http.StatusOK, rec.Code)

	var me User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, User{
		Username: "testuser",
		Email:    "testuser@example.com",
		FullName: "Test User",
	}, me)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t, nil, "http://unused", "http://unused", "http://unused")

	for _, tc := range [][2]string{{"testuser", "wrong"}, {"nobody", "testpassword"}, {"", ""}} {
		rec := f.do(loginRequest(tc[0], tc[1]))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		assert.Equal(t, "Incorrect username or password", decode(t, rec)["error"])
	}
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	f := newFixture(t, nil, "http://unused", "http://unused", "http://unused")

	expired := NewTokenIssuer(testSecret, -time.Minute)
	expiredTok, err := expired.Issue("testuser")
	require.NoError(t, err)
	otherKey, err := NewTokenIssuer("other-secret", time.Minute).Issue("testuser")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"wrong scheme", "Basic dGVzdHVzZXI6dGVzdHBhc3N3b3Jk"},
		{"garbage", "Bearer not-a-jwt"},
		{"expired", "Bearer " + expiredTok},
		{"wrong key", "Bearer " + otherKey},
		{"unknown user", f.bearer(t, "stranger")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := f.do(req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			assert.Equal(t, "Could not validate credentials", decode(t, rec)["error"])
		})
	}
}

func TestDisabledUser(t *testing.T) {
	f := newFixture(t, nil, "http://unused", "http://unused", "http://unused")

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", f.bearer(t, "ghost"))
	rec := f.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Inactive user", decode(t, rec)["error"])
}

func TestTokenIssuerRejectsOtherAlgorithms(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Minute)
	// alg "none" header with an empty signature.
	raw := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJ0ZXN0dXNlciJ9."
	_, err := issuer.Parse(raw)
	assert.Error(t, err)
}

func TestProxyRoutes(t *testing.T) {
	tr := echoUpstream(t, http.StatusOK)
	mp := echoUpstream(t, http.StatusOK)
	pk := echoUpstream(t, http.StatusOK)
	f := newFixture(t, nil, tr.URL, mp.URL, pk.URL)

	tests := []struct {
		method    string
		target    string
		body      string
		wantPath  string
		wantQuery string
	}{
		{http.MethodPost, "/translate/text", `{"text":"hi"}`, "/translate/text", ""},
		{http.MethodPost, "/translate/tts", `{"text":"hi"}`, "/translate/tts", ""},
		{http.MethodGet, "/translate/languages", "", "/languages", ""},
		{http.MethodGet, "/translate/voices/ja-JP", "", "/voices/ja-JP", ""},
		{http.MethodGet, "/translate/common-phrases?limit=5&skip=2", "", "/common-phrases", "limit=5&skip=2"},
		{http.MethodGet, "/translate/common-phrases/categories", "", "/common-phrases/categories", ""},
		{http.MethodGet, "/translate/common-phrases/by-category/Dining%20Out", "", "/common-phrases/by-category/Dining%20Out", ""},
		{http.MethodGet, "/translate/common-phrases/65f1c0ffee", "", "/common-phrases/65f1c0ffee", ""},
		{http.MethodGet, "/map/places?location=Paris", "", "/places", "location=Paris"},
		{http.MethodGet, "/map/directions?origin=a&destination=b", "", "/directions", "origin=a&destination=b"},
		{http.MethodPost, "/packing/generate", `{"destination":"Rome"}`, "/generate", ""},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.target, body)
			auth := f.bearer(t, "testuser")
			req.Header.Set("Authorization", auth)
			req.Header.Set("X-Request-ID", "req-1")
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}

			rec := f.do(req)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			got := decode(t, rec)
			assert.Equal(t, tt.method, got["method"])
			assert.Equal(t, tt.wantPath, got["path"])
			assert.Equal(t, tt.wantQuery, got["query"])
			assert.Equal(t, auth, got["authorization"])
			assert.Equal(t, "req-1", got["request_id"])
			assert.Equal(t, tt.body, got["body"])
		})
	}
}

func TestProxyRelaysUpstreamStatus(t *testing.T) {
	mp := echoUpstream(t, http.StatusNotFound)
	f := newFixture(t, nil, "http://unused", mp.URL, "http://unused")

	req := httptest.NewRequest(http.MethodGet, "/map/places?location=Atlantis", nil)
	req.Header.Set("Authorization", f.bearer(t, "testuser"))
	rec := f.do(req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "/places", decode(t, rec)["path"])
}

func TestProxyUnreachableUpstream(t *testing.T) {
	down := httptest.NewServer(http.NotFoundHandler())
	downURL := down.URL
	down.Close()
	f := newFixture(t, nil, "http://unused", "http://unused", downURL)

	req := httptest.NewRequest(http.MethodPost, "/packing/generate", strings.NewReader(`{}`))
	req.Header.Set("Authorization", f.bearer(t, "testuser"))
	req.Header.Set("Content-Type", "application/json")
	rec := f.do(req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "packing service unavailable", decode(t, rec)["error"])
}

func TestProxyRejectsOversizedUpstreamBody(t *testing.T) {
	big := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(strings.Repeat("a", maxUpstreamBody+1)))
	}))
	defer big.Close()
	f := newFixture(t, nil, "http://unused", big.URL, "http://unused")

	req := httptest.NewRequest(http.MethodGet, "/map/locations", nil)
	req.Header.Set("Authorization", f.bearer(t, "testuser"))
	rec := f.do(req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "map service unavailable", decode(t, rec)["error"])
}

func TestUpstreamBodyLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		size := maxUpstreamBody
		if r.URL.Path == "/over" {
			size++
		}
		_, _ = w.Write([]byte(strings.Repeat("a", size)))
	}))
	defer srv.Close()
	up := NewUpstream("map", srv.URL, time.Second)
	ctx := context.Background()

	resp, err := up.Do(ctx, http.MethodGet, "/exact", "", nil, http.Header{})
	require.NoError(t, err)
	assert.Len(t, resp.Body, maxUpstreamBody)

	_, err = up.Do(ctx, http.MethodGet, "/over", "", nil, http.Header{})
	assert.ErrorIs(t, err, ErrResponseTooLarge)
}

func TestProxyRequiresAuth(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(srv.Close)
	f := newFixture(t, nil, srv.URL, srv.URL, srv.URL)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/translate/languages", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestCatalogue(t *testing.T) {
	f := newFixture(t, nil, "http://unused", "http://unused", "http://unused")

	rec := f.do(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "Travel Assistant API Gateway", body["service"])
	endpoints := body["endpoints"].(map[string]any)
	assert.Equal(t, []any{"/token"}, endpoints["authentication"])
	assert.Len(t, endpoints["translation"], 8)
	assert.Equal(t, []any{"/packing/generate"}, endpoints["packing"])
}

func TestRateLimitedLogin(t *testing.T) {
	f := newFixture(t, NewRateLimiter(0.001, 2, time.Minute), "http://unused", "http://unused", "http://unused")

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusUnauthorized, f.do(loginRequest("testuser", "nope")).Code)
	}
	rec := f.do(loginRequest("testuser", "testpassword"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "rate limit exceeded", decode(t, rec)["error"])
}
