package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3, time.Hour)
	for i := 0; i < 3; i++ {
		if !rl.Allow("1.2.3.4:/api/public/membership/applications") {
			t.Fatalf("request %d denied inside the limit", i+1)
		}
	}
	if rl.Allow("1.2.3.4:/api/public/membership/applications") {
		t.Fatalf("request over the limit allowed")
	}
	if !rl.Allow("5.6.7.8:/api/public/membership/applications") {
		t.Fatalf("other clients must have their own window")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	rl := NewRateLimiter(1, time.Millisecond)
	if !rl.Allow("key") {
		t.Fatalf("first request denied")
	}
	if rl.Allow("key") {
		t.Fatalf("second request allowed inside window")
	}
	time.Sleep(5 * time.Millisecond)
	if !rl.Allow("key") {
		t.Fatalf("request denied after window expired")
	}
}

func TestRateLimiterEvictsExpiredBuckets(t *testing.T) {
	rl := NewRateLimiter(1, time.Millisecond)
	for i := 0; i < 50; i++ {
		rl.Allow("client-" + strconv.Itoa(i))
	}
	time.Sleep(5 * time.Millisecond)
	rl.Allow("fresh")

	rl.mu.Lock()
	n := len(rl.buckets)
	rl.mu.Unlock()
	if n != 1 {
		t.Fatalf("expired buckets not swept, %d entries remain", n)
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	first := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/public/membership/applications", nil)
	r.RemoteAddr = "9.9.9.9:1234"
	handler.ServeHTTP(first, r)
	if first.Code != http.StatusNoContent {
		t.Fatalf("first status = %d", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, r)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d", second.Code)
	}
}

func TestClientIPForwardedFor(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:999"
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := clientIP(r); got != "203.0.113.7" {
		t.Fatalf("got %q", got)
	}
	r.Header.Del("X-Forwarded-For")
	if got := clientIP(r); got != "10.0.0.1" {
		t.Fatalf("got %q", got)
	}
}
