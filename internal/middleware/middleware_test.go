package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func limitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})
	return router
}

// TestRateLimiter_AllowsWithinLimit verifies requests under the limit pass
func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	router := limitedRouter(rl)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("request %d: expected status %d, got %d", i, http.StatusOK, w.Code)
		}
	}
}

// TestRateLimiter_RejectsOverLimit verifies the request past the limit gets 429
func TestRateLimiter_RejectsOverLimit(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	router := limitedRouter(rl)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected status %d, got %d", http.StatusTooManyRequests, w.Code)
	}
}

// TestRateLimiter_RefillsAfterWindow verifies tokens come back over time
func TestRateLimiter_RefillsAfterWindow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	current := time.Now()
	rl.now = func() time.Time { return current }

	if !rl.allow("1.2.3.4") || !rl.allow("1.2.3.4") {
		t.Fatal("expected first two requests to pass")
	}
	if rl.allow("1.2.3.4") {
		t.Fatal("expected third request to be rejected")
	}

	current = current.Add(time.Minute)
	if !rl.allow("1.2.3.4") {
		t.Fatal("expected request to pass after refill window")
	}
}

// TestRateLimiter_IsolatesClients verifies one client cannot exhaust another's budget
func TestRateLimiter_IsolatesClients(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	if !rl.allow("a") {
		t.Fatal("expected first client to pass")
	}
	if rl.allow("a") {
		t.Fatal("expected first client to be limited")
	}
	if !rl.allow("b") {
		t.Fatal("expected second client to have its own budget")
	}
}
