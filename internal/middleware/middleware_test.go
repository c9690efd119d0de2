package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"parish-liturgy-backend/internal/config"
	"parish-liturgy-backend/pkg/logger"
)

func TestRateLimitMiddlewareRejectsBurstOverflow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	manager := NewRateLimitManager(context.Background())
	t.Cleanup(func() { _ = manager.Shutdown() })

	cfg := &config.Config{RateLimitRPS: 0.001, RateLimitBurst: 2}
	router := gin.New()
	router.GET("/export", RateLimitMiddleware(manager, cfg), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/export", nil)
		req.RemoteAddr = "203.0.113.7:5555"
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("expected first two requests to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected third request to be limited, got %v", codes)
	}
}

func TestRateLimitDisabledWithZeroRate(t *testing.T) {
	manager := NewRateLimitManager(context.Background())
	t.Cleanup(func() { _ = manager.Shutdown() })

	if limiter := manager.GetVisitor("198.51.100.1", 0, 10); limiter != nil {
		t.Fatalf("expected nil limiter when rate is zero")
	}
}

func TestRateLimitCleanupEvictsIdleVisitors(t *testing.T) {
	manager := NewRateLimitManager(context.Background())
	t.Cleanup(func() { _ = manager.Shutdown() })

	manager.GetVisitor("198.51.100.1", 1, 1)
	manager.cleanup(time.Now().Add(visitorIdleTimeout + time.Second))

	manager.visitorsMu.Lock()
	remaining := len(manager.visitors)
	manager.visitorsMu.Unlock()
	if remaining != 0 {
		t.Fatalf("expected idle visitor to be evicted, %d remain", remaining)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var fromContext interface{}
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) {
		fromContext = logger.FromContext(c.Request.Context()).Data["request_id"]
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("expected echoed request id, got %q", got)
	}
	if fromContext != "abc-123" {
		t.Fatalf("expected request id in log context, got %v", fromContext)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Fatalf("expected generated request id")
	}
}

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		accept   string
		fallback string
		want     string
	}{
		{name: "explicit spanish", explicit: "es", fallback: "en", want: "es"},
		{name: "regional explicit", explicit: "es-MX", fallback: "en", want: "es"},
		{name: "accept header", accept: "fr-FR, es;q=0.8, en;q=0.5", fallback: "en", want: "es"},
		{name: "unsupported falls back", explicit: "de", accept: "de-DE", fallback: "es", want: "es"},
		{name: "invalid explicit uses header", explicit: "??", accept: "en-GB", fallback: "es", want: "en"},
		{name: "nothing given", fallback: "", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveLanguage(tt.explicit, tt.accept, tt.fallback); got != tt.want {
				t.Fatalf("ResolveLanguage() = %q, want %q", got, tt.want)
			}
		})
	}
}
