// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/goleak"
)

func postContext(path, remoteAddr string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", path, nil)
	c.Request.RemoteAddr = remoteAddr
	return w, c
}

func TestRateLimitAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(5, 10*time.Minute)
	defer limiter.Stop()

	w, c := postContext("/contact", "10.0.0.1:1234")
	RateLimitMiddleware(limiter, "/contact")(c)

	if w.Code == 429 {
		t.Error("Expected request to be allowed")
	}
	if got := w.Header().Get("X-RateLimit-Remaining"); got != "4" {
		t.Errorf("Expected 4 remaining, got %s", got)
	}
}

func TestRateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(2, 10*time.Minute)
	defer limiter.Stop()
	middleware := RateLimitMiddleware(limiter, "/contact")

	for i := 0; i < 2; i++ {
		w, c := postContext("/contact", "10.0.0.1:1234")
		middleware(c)
		if w.Code == 429 {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	w3, c3 := postContext("/contact", "10.0.0.1:1234")
	middleware(c3)

	if w3.Code != 429 {
		t.Errorf("Third request should be rate limited, got %d", w3.Code)
	}
	if w3.Header().Get("X-RateLimit-Limit") != "2" {
		t.Errorf("Expected X-RateLimit-Limit: 2, got %s", w3.Header().Get("X-RateLimit-Limit"))
	}
	if w3.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After header")
	}

	// A different client has its own bucket
	w4, c4 := postContext("/contact", "10.0.0.2:1234")
	middleware(c4)
	if w4.Code == 429 {
		t.Error("Other client should not be limited")
	}
}

func TestRateLimitJSONResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1, 10*time.Minute)
	defer limiter.Stop()
	middleware := RateLimitMiddleware(limiter, "/api/contact")

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("POST", "/api/contact", nil)
		c.Request.Header.Set("Content-Type", "application/json")
		c.Request.RemoteAddr = "10.0.0.9:1234"
		middleware(c)
		if i == 1 {
			if w.Code != 429 {
				t.Fatalf("expected 429, got %d", w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct == "" || ct[:16] != "application/json" {
				t.Errorf("expected JSON body, got %q", ct)
			}
		}
	}
}

func TestRateLimitRefills(t *testing.T) {
	limiter := NewRateLimiter(1, 10*time.Minute)
	defer limiter.Stop()

	now := time.Now()
	limiter.now = func() time.Time { return now }

	if ok, _ := limiter.Allow("ip"); !ok {
		t.Fatal("first request should be allowed")
	}
	if ok, _ := limiter.Allow("ip"); ok {
		t.Fatal("second request should be limited")
	}

	now = now.Add(10*time.Minute + time.Second)
	if ok, _ := limiter.Allow("ip"); !ok {
		t.Error("bucket should refill after the interval")
	}
}

func TestRateLimitPrune(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)
	defer limiter.Stop()

	now := time.Now()
	limiter.now = func() time.Time { return now }
	limiter.Allow("a")
	limiter.Allow("b")

	now = now.Add(2 * time.Minute)
	limiter.Allow("b")
	limiter.prune()

	if limiter.Len() != 1 {
		t.Errorf("expected idle bucket to be pruned, have %d", limiter.Len())
	}
}

func TestRateLimitDifferentPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()
	middleware := RateLimitMiddleware(limiter, "/contact")

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/contact", nil)
		c.Request.RemoteAddr = "10.0.0.1:1234"
		middleware(c)
		if w.Code == 429 {
			t.Error("GET requests should not be rate limited")
		}
	}

	w, c := postContext("/admin/leads", "10.0.0.1:1234")
	middleware(c)
	if w.Code == 429 {
		t.Error("Different path should not be rate limited")
	}
}

func TestRateLimiterStopLeavesNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	limiter := NewRateLimiter(5, time.Minute)
	limiter.Allow("10.0.0.1")
	limiter.Stop()
	limiter.Stop()
}
