package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimitExhaustsBurstPerIP(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	mw := RateLimit(1, 2)

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/handoff/leads", nil)
		req.Header.Set("X-Real-Ip", ip)
		rec := httptest.NewRecorder()
		mw(handler).ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 2; i++ {
		if rec := send("10.0.0.1"); rec.Code != http.StatusCreated {
			t.Fatalf("request %d: expected status %d, got %d", i+1, http.StatusCreated, rec.Code)
		}
	}

	rec := send("10.0.0.1")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status %d after burst, got %d", http.StatusTooManyRequests, rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header on 429")
	}

	// A different client has its own bucket.
	if rec := send("10.0.0.2"); rec.Code != http.StatusCreated {
		t.Fatalf("expected other IP to pass, got %d", rec.Code)
	}
}

func TestRateLimiterRefills(t *testing.T) {
	rl := NewRateLimiter(100, 1)

	if ok, _ := rl.Allow("10.0.0.1"); !ok {
		t.Fatalf("expected first request to pass")
	}
	ok, wait := rl.Allow("10.0.0.1")
	if ok {
		t.Fatalf("expected second request to be limited")
	}
	if wait <= 0 {
		t.Fatalf("expected a positive wait hint, got %v", wait)
	}

	// At 100 tokens/sec the bucket refills within a few milliseconds.
	time.Sleep(20 * time.Millisecond)
	if ok, _ := rl.Allow("10.0.0.1"); !ok {
		t.Fatalf("expected request to pass after refill")
	}
}
