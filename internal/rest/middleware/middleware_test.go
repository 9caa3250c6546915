package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/blog-article-api/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/articles", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := serve(r, httptest.NewRequest(http.MethodOptions, "/articles", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = serve(r, httptest.NewRequest(http.MethodGet, "/articles", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetRequestContextWithTimeout(t *testing.T) {
	r := gin.New()
	r.Use(SetRequestContextWithTimeout(50 * time.Millisecond))

	var deadline time.Time
	var ok bool
	r.GET("/", func(c *gin.Context) {
		deadline, ok = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString(RequestIDKey)
		c.Status(http.StatusOK)
	})

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
	assert.Len(t, seen, 36)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = serve(r, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestCurrentUser(t *testing.T) {
	r := gin.New()
	r.Use(CurrentUser(1))
	var uid int64
	r.GET("/", func(c *gin.Context) {
		uid = c.GetInt64(UserIDKey)
		c.Status(http.StatusOK)
	})

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), uid)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(UserIDHeader, "7")
	rec = serve(r, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), uid)

	for _, bad := range []string{"abc", "0", "-3"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(UserIDHeader, bad)
		rec := serve(r, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, bad)
	}
}

func TestRateLimit(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		codes = append(codes, serve(r, req).Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	assert.Equal(t, http.StatusOK, serve(r, req).Code)
}

func TestRateLimiterDropsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Now()
	rl.now = func() time.Time { return now }

	rl.getLimiter("10.0.0.1")
	require.Len(t, rl.limiters, 1)

	now = now.Add(limiterIdleTTL + time.Minute)
	rl.getLimiter("10.0.0.2")
	assert.Len(t, rl.limiters, 1)
	assert.Contains(t, rl.limiters, "10.0.0.2")
}

func TestMetrics(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/articles/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/articles/:id", "404")
	before := testutil.ToFloat64(counter)

	serve(r, httptest.NewRequestWithContext(context.TODO(), http.MethodGet, "/articles/5", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
