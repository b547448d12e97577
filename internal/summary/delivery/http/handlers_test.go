package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/suncom1029-bot/ai-todo-manager/config"
	"github.com/suncom1029-bot/ai-todo-manager/internal/middleware"
	"github.com/suncom1029-bot/ai-todo-manager/internal/model"
	"github.com/suncom1029-bot/ai-todo-manager/internal/summary"
	"github.com/suncom1029-bot/ai-todo-manager/internal/task/repository"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/gauth"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

type mockUseCase struct {
	out summary.SummarizeOutput
	err error
}

func (m *mockUseCase) Summarize(ctx context.Context, sc model.Scope, input summary.SummarizeInput) (summary.SummarizeOutput, error) {
	return m.out, m.err
}

type allowVerifier struct{}

func (allowVerifier) Verify(ctx context.Context, accessToken string) (gauth.UserInfo, error) {
	return gauth.UserInfo{UserID: "u1"}, nil
}

func newTestServer(t *testing.T, uc summary.UseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mw, err := middleware.New(nopLogger{}, allowVerifier{}, &config.Config{
		Auth:      config.AuthConfig{SessionCacheSize: 16},
		RateLimit: config.RateLimitConfig{PerMinute: 600, Burst: 100, CacheSize: 16},
	})
	if err != nil {
		t.Fatalf("middleware.New: %v", err)
	}

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/assistant"), New(nopLogger{}, uc), mw)
	return r
}

func doSummarize(t *testing.T, r *gin.Engine, query string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/assistant/summary"+query, nil)
	req.Header.Set("Authorization", "Bearer token")
	r.ServeHTTP(w, req)
	return w
}

func TestSummarizeEndpointSuccess(t *testing.T) {
	uc := &mockUseCase{out: summary.SummarizeOutput{
		Statistics: summary.PeriodStatistics{Period: summary.PeriodDay, Total: 3, Completed: 2},
		Summary:    summary.Summary{Synopsis: "Two of three done."},
	}}
	r := newTestServer(t, uc)

	w := doSummarize(t, r, "?period=day")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200. body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Statistics struct {
				Total int `json:"total"`
			} `json:"statistics"`
			Summary struct {
				Synopsis string `json:"synopsis"`
			} `json:"summary"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Data.Statistics.Total != 3 || resp.Data.Summary.Synopsis != "Two of three done." {
		t.Errorf("data = %+v", resp.Data)
	}
}

func TestSummarizeEndpointBadPeriod(t *testing.T) {
	r := newTestServer(t, &mockUseCase{})

	for _, query := range []string{"", "?period=month"} {
		w := doSummarize(t, r, query)
		if w.Code != http.StatusBadRequest {
			t.Errorf("query %q: status = %d, want 400", query, w.Code)
		}
	}
}

func TestSummarizeEndpointStoreUnavailable(t *testing.T) {
	r := newTestServer(t, &mockUseCase{err: repository.ErrStoreUnavailable})

	w := doSummarize(t, r, "?period=week")
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
}

func TestSummarizeEndpointSessionExpired(t *testing.T) {
	r := newTestServer(t, &mockUseCase{err: repository.ErrSessionExpired})

	w := doSummarize(t, r, "?period=day")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
