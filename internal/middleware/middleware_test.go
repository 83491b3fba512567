package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"desapega-api/config"
	"desapega-api/internal/middleware"
	"desapega-api/internal/model"
	"desapega-api/pkg/scope"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newTestRouter(mw middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		sc, ok := middleware.ScopeFromContext(c)
		if !ok {
			c.JSON(500, gin.H{"error": "scope missing"})
			return
		}
		c.JSON(200, gin.H{"user_id": sc.UserID})
	})
	return r
}

func TestAuthValidToken(t *testing.T) {
	manager := scope.New(scope.Config{Secret: "test-secret", TokenTTL: time.Hour})
	mw := middleware.New(&mockLogger{}, manager, config.RateLimitConfig{})
	r := newTestRouter(mw)

	token, err := manager.Issue(7, "ana@example.com", model.ProfileUser)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthMissingToken(t *testing.T) {
	manager := scope.New(scope.Config{Secret: "test-secret"})
	mw := middleware.New(&mockLogger{}, manager, config.RateLimitConfig{})
	r := newTestRouter(mw)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthTamperedToken(t *testing.T) {
	manager := scope.New(scope.Config{Secret: "test-secret"})
	other := scope.New(scope.Config{Secret: "other-secret"})
	mw := middleware.New(&mockLogger{}, manager, config.RateLimitConfig{})
	r := newTestRouter(mw)

	token, _ := other.Issue(7, "ana@example.com", model.ProfileUser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestRateLimitExhaustsBurst(t *testing.T) {
	manager := scope.New(scope.Config{Secret: "test-secret"})
	mw := middleware.New(&mockLogger{}, manager, config.RateLimitConfig{
		Enabled:   true,
		PerMinute: 1,
		Burst:     2,
		CacheSize: 16,
	})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) { c.Status(200) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}

	if codes[0] != 200 || codes[1] != 200 {
		t.Errorf("expected first two requests allowed, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("expected third request limited, got %v", codes)
	}
}
