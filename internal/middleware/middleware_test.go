package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"distrital4/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func init() { gin.SetMode(gin.TestMode) }

func issue(t *testing.T, role string) string {
	t.Helper()
	tok, _, err := auth.NewSessionIssuer(testSecret, time.Hour).Issue(auth.Identity{ID: 3, Username: "oficial", Role: role})
	require.NoError(t, err)
	return tok
}

func ginTestRouter() *gin.Engine {
	r := gin.New()
	r.Use(JWTAuth(auth.NewSessionIssuer(testSecret, time.Hour)))
	r.GET("/protected", func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"id": claims.ID, "role": claims.Role})
	})
	r.GET("/admin", RequireRole("admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

// ── JWT ──────────────────────────────────────────────────────────────────────

func TestJWTAuth_NoToken(t *testing.T) {
	w := get(ginTestRouter(), "/protected", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Autenticacion requerida")
}

func TestJWTAuth_NotBearer(t *testing.T) {
	w := get(ginTestRouter(), "/protected", map[string]string{"Authorization": "Basic abc"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	w := get(ginTestRouter(), "/protected", map[string]string{"Authorization": "Bearer no.es.jwt"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token invalido o expirado")
}

func TestJWTAuth_ValidToken(t *testing.T) {
	w := get(ginTestRouter(), "/protected", map[string]string{"Authorization": "Bearer " + issue(t, "OFICIAL DE 15")})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":3,"role":"OFICIAL DE 15"}`, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	r := ginTestRouter()

	w := get(r, "/admin", map[string]string{"Authorization": "Bearer " + issue(t, "user")})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "rol insuficiente")

	w = get(r, "/admin", map[string]string{"Authorization": "Bearer " + issue(t, "admin")})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetClaims_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetClaims(c))
}

// ── Rate limiting ────────────────────────────────────────────────────────────

func TestRateLimit_RejectsAfterLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := gin.New()
	r.Use(RateLimit(NewMemoryStore(ctx), "auth", 2, time.Minute, "Demasiados intentos"))
	r.GET("/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, get(r, "/login", nil).Code)
	assert.Equal(t, http.StatusOK, get(r, "/login", nil).Code)

	w := get(r, "/login", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "Demasiados intentos")
}

func TestMemoryStore_WindowResets(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewMemoryStore(ctx)
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	n, end, err := s.Hit(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, base.Add(time.Minute), end)

	n, _, _ = s.Hit(ctx, "k", time.Minute)
	assert.Equal(t, int64(2), n)

	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	n, _, _ = s.Hit(ctx, "k", time.Minute)
	assert.Equal(t, int64(1), n)
}

func TestMemoryStore_Purge(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewMemoryStore(ctx)
	base := time.Now()
	s.now = func() time.Time { return base }
	_, _, _ = s.Hit(ctx, "a", time.Second)
	_, _, _ = s.Hit(ctx, "b", time.Hour)

	s.now = func() time.Time { return base.Add(time.Minute) }
	assert.Equal(t, 1, s.purge())
	assert.Len(t, s.entries, 1)
}

type failingStore struct{}

func (failingStore) Hit(context.Context, string, time.Duration) (int64, time.Time, error) {
	return 0, time.Time{}, errors.New("store down")
}

func TestRateLimit_StoreFailureLetsRequestThrough(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(failingStore{}, "auth", 1, time.Minute, "x"))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, get(r, "/", nil).Code)
	}
}

// ── CORS / headers / request id ──────────────────────────────────────────────

func corsRouter(origins ...string) *gin.Engine {
	r := gin.New()
	r.Use(CORS(origins))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestCORS_AllowedOrigin(t *testing.T) {
	w := get(corsRouter("https://jefatura.example"), "/", map[string]string{"Origin": "https://jefatura.example"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://jefatura.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_RejectedOrigin(t *testing.T) {
	w := get(corsRouter("https://jefatura.example"), "/", map[string]string{"Origin": "https://otro.example"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCORS_WildcardAndNoOrigin(t *testing.T) {
	w := get(corsRouter("*"), "/", map[string]string{"Origin": "https://cualquiera.example"})
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = get(corsRouter("https://jefatura.example"), "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://a.example")
	corsRouter("*").ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := get(r, "/", nil)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestForceHTTPS(t *testing.T) {
	r := gin.New()
	r.Use(ForceHTTPS())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := get(r, "/x", map[string]string{"X-Forwarded-Proto": "http"})
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "https://example.com/x", w.Header().Get("Location"))

	assert.Equal(t, http.StatusOK, get(r, "/x", map[string]string{"X-Forwarded-Proto": "https"}).Code)
	assert.Equal(t, http.StatusOK, get(r, "/x", nil).Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := get(r, "/", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())

	w = get(r, "/", nil)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

// ── Errors ───────────────────────────────────────────────────────────────────

func TestErrorHandler_AttachedErrorBecomes500(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/", func(c *gin.Context) { _ = c.Error(errors.New("db exploded")) })

	w := get(r, "/", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db exploded")
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := get(r, "/", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// ── Fallback store ───────────────────────────────────────────────────────────

type flakyStore struct {
	fail  bool
	calls int
}

func (f *flakyStore) Hit(context.Context, string, time.Duration) (int64, time.Time, error) {
	f.calls++
	if f.fail {
		return 0, time.Time{}, errors.New("redis: connection refused")
	}
	return 1, time.Now().Add(time.Minute), nil
}

func TestFallbackStore_OpensAfterThresholdAndRecovers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	primary := &flakyStore{fail: true}
	s := NewFallbackStore(primary, NewMemoryStore(ctx), 2, time.Minute)
	base := time.Now()
	s.now = func() time.Time { return base }

	// Failures are absorbed by the memory store.
	n, _, err := s.Hit(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, "closed", s.State())

	n, _, err = s.Hit(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, "open", s.State())

	// While open the primary is not called.
	_, _, _ = s.Hit(ctx, "k", time.Minute)
	assert.Equal(t, 2, primary.calls)

	// After cooldown a failed probe reopens the breaker.
	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, _, _ = s.Hit(ctx, "k", time.Minute)
	assert.Equal(t, 3, primary.calls)
	assert.Equal(t, "open", s.State())

	// A successful probe closes it.
	primary.fail = false
	s.now = func() time.Time { return base.Add(4 * time.Minute) }
	_, _, err = s.Hit(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "closed", s.State())
	assert.Equal(t, 4, primary.calls)
}
