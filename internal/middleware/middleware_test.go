package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ytareq/portfolio/internal/metrics"
)

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	router.POST("/api/contact", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	router.GET("/api/faqs", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func doRequest(router http.Handler, method, path, remoteAddr string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitPerClient(t *testing.T) {
	m := metrics.New()
	rl := NewRateLimiter(1, 2)
	router := newTestRouter(RateLimit(rl, m))

	assert.Equal(t, http.StatusCreated, doRequest(router, http.MethodPost, "/api/contact", "10.0.0.1:1234", nil).Code)
	assert.Equal(t, http.StatusCreated, doRequest(router, http.MethodPost, "/api/contact", "10.0.0.1:1234", nil).Code)

	blocked := doRequest(router, http.MethodPost, "/api/contact", "10.0.0.1:1234", nil)
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "60", blocked.Header().Get("Retry-After"))
	assert.Contains(t, blocked.Body.String(), "Too many requests")

	// another client has its own bucket
	assert.Equal(t, http.StatusCreated, doRequest(router, http.MethodPost, "/api/contact", "10.0.0.2:1234", nil).Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimitBlocks))
}

func TestRateLimitSpoofedForwardedFor(t *testing.T) {
	router := newTestRouter(RateLimit(NewRateLimiter(1, 1), nil))
	require.NoError(t, router.SetTrustedProxies(nil))

	accepted := 0
	for i := 0; i < 10; i++ {
		w := doRequest(router, http.MethodPost, "/api/contact", "10.0.0.1:1234", map[string]string{
			"X-Forwarded-For": fmt.Sprintf("192.0.2.%d", i+1),
		})
		if w.Code == http.StatusCreated {
			accepted++
		}
	}
	assert.Equal(t, 1, accepted, "forwarded addresses from an untrusted peer share its bucket")
}

func TestRateLimiterRefillsAndCleansUp(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	now := time.Now()
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("1.1.1.1"))
	assert.False(t, rl.Allow("1.1.1.1"))

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("1.1.1.1"), "one token per second at 60 per minute")

	now = now.Add(2 * limiterTTL)
	rl.Allow("2.2.2.2")
	rl.mu.Lock()
	assert.Len(t, rl.limiters, 1, "stale limiters are dropped")
	rl.mu.Unlock()
}

func TestCORS(t *testing.T) {
	testCases := []struct {
		name           string
		allowed        []string
		origin         string
		expectedHeader string
	}{
		{name: "Wildcard", allowed: []string{"*"}, origin: "https://any.dev", expectedHeader: "*"},
		{name: "Listed origin", allowed: []string{"https://me.dev"}, origin: "https://me.dev", expectedHeader: "https://me.dev"},
		{name: "Unlisted origin", allowed: []string{"https://me.dev"}, origin: "https://evil.dev", expectedHeader: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(CORS(tc.allowed))
			w := doRequest(router, http.MethodGet, "/api/faqs", "10.0.0.1:1", map[string]string{"Origin": tc.origin})
			assert.Equal(t, tc.expectedHeader, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRequestLoggerRecordsMetrics(t *testing.T) {
	m := metrics.New()
	router := newTestRouter(RequestLogger(m))

	doRequest(router, http.MethodGet, "/api/faqs", "10.0.0.1:1", nil)
	doRequest(router, http.MethodGet, "/nope", "10.0.0.1:1", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/faqs", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}
