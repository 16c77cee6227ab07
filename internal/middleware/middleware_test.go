package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"taskpulse/internal/middleware"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newRouter(mw middleware.Middleware, limited bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID())
	handlers := []gin.HandlerFunc{}
	if limited {
		handlers = append(handlers, mw.RateLimit())
	}
	handlers = append(handlers, func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/ping", handlers...)
	return r
}

func TestRequestID(t *testing.T) {
	mw := middleware.New(nopLogger{}, middleware.Config{})
	r := newRouter(mw, false)

	t.Run("Generated when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)

		if w.Header().Get(middleware.HeaderRequestID) == "" {
			t.Errorf("expected generated request ID header")
		}
	})

	t.Run("Propagated when supplied", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.HeaderRequestID, "req-123")
		r.ServeHTTP(w, req)

		if got := w.Header().Get(middleware.HeaderRequestID); got != "req-123" {
			t.Errorf("request ID = %q, want req-123", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("Zero config disables limiting", func(t *testing.T) {
		mw := middleware.New(nopLogger{}, middleware.Config{})
		r := newRouter(mw, true)

		for i := 0; i < 50; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d got %d", i, w.Code)
			}
		}
	})

	t.Run("Burst exhaustion returns 429", func(t *testing.T) {
		mw := middleware.New(nopLogger{}, middleware.Config{RateLimitPerMin: 60, RateLimitBurst: 2})
		r := newRouter(mw, true)

		codes := []int{}
		for i := 0; i < 4; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			codes = append(codes, w.Code)
		}

		if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
			t.Errorf("first two requests should pass, got %v", codes)
		}
		if codes[3] != http.StatusTooManyRequests {
			t.Errorf("expected 429 after burst, got %v", codes)
		}
	})
}
