package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/suncom1029-bot/ai-todo-manager/pkg/gemini"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                      {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)    {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                      {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)    {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)   {}

type mockProvider struct {
	name  string
	calls int
	resp  *Response
	errs  []error // returned per call; last entry repeats
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	idx := m.calls
	m.calls++
	if len(m.errs) > 0 {
		if idx >= len(m.errs) {
			idx = len(m.errs) - 1
		}
		if err := m.errs[idx]; err != nil {
			return nil, err
		}
	}
	if m.resp != nil {
		return m.resp, nil
	}
	return &Response{Text: "ok", ProviderName: m.name, Usage: &Usage{}}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.name + "-model" }

func newTestManager(cfg *Config, providers ...Provider) *Manager {
	return NewManager(providers, cfg, &mockLogger{})
}

func TestGenerateContentSuccess(t *testing.T) {
	p := &mockProvider{name: "gemini"}
	m := newTestManager(&Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, p)

	resp, err := m.GenerateContent(context.Background(), &Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if resp.Text != "ok" {
		t.Errorf("unexpected text %q", resp.Text)
	}
	if p.calls != 1 {
		t.Errorf("expected 1 call, got %d", p.calls)
	}
}

func TestGenerateContentRetriesThenSucceeds(t *testing.T) {
	p := &mockProvider{
		name: "gemini",
		errs: []error{errors.New("transient"), nil},
	}
	m := newTestManager(&Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, p)

	if _, err := m.GenerateContent(context.Background(), &Request{Prompt: "hi"}); err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if p.calls != 2 {
		t.Errorf("expected 2 calls, got %d", p.calls)
	}
}

func TestGenerateContentFallback(t *testing.T) {
	failing := &mockProvider{name: "gemini", errs: []error{errors.New("down")}}
	backup := &mockProvider{name: "deepseek"}
	m := newTestManager(&Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		RetryDelay:      time.Millisecond,
	}, failing, backup)

	resp, err := m.GenerateContent(context.Background(), &Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if resp.ProviderName != "deepseek" {
		t.Errorf("expected fallback to deepseek, got %s", resp.ProviderName)
	}
}

func TestGenerateContentAuthNotRetried(t *testing.T) {
	authErr := &ProviderError{Provider: "gemini", Err: ErrAuth}
	p := &mockProvider{name: "gemini", errs: []error{authErr}}
	m := newTestManager(&Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, p)

	_, err := m.GenerateContent(context.Background(), &Request{Prompt: "hi"})
	if !errors.Is(err, ErrAuth) {
		t.Fatalf("expected ErrAuth, got %v", err)
	}
	if p.calls != 1 {
		t.Errorf("auth errors must not be retried, got %d calls", p.calls)
	}
}

func TestGenerateContentAllFail(t *testing.T) {
	p := &mockProvider{name: "gemini", errs: []error{errors.New("down")}}
	m := newTestManager(&Config{RetryAttempts: 1}, p)

	_, err := m.GenerateContent(context.Background(), &Request{Prompt: "hi"})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}
}

func TestGenerateContentNoProviders(t *testing.T) {
	m := newTestManager(&Config{RetryAttempts: 1})

	_, err := m.GenerateContent(context.Background(), &Request{Prompt: "hi"})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestGenerateContentEmptyPrompt(t *testing.T) {
	m := newTestManager(&Config{RetryAttempts: 1}, &mockProvider{name: "gemini"})

	_, err := m.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"unauthorized", &gemini.APIError{StatusCode: 401}, ErrAuth},
		{"forbidden", &gemini.APIError{StatusCode: 403}, ErrAuth},
		{"rate limited", &gemini.APIError{StatusCode: 429}, ErrRateLimited},
		{"gateway timeout", &gemini.APIError{StatusCode: 504}, ErrTimeout},
		{"deadline", context.DeadlineExceeded, ErrTimeout},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.in)
			if !errors.Is(got, tc.want) {
				t.Errorf("Classify(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}

	// Unrecognized errors pass through unchanged.
	plain := errors.New("boom")
	if got := Classify(plain); got != plain {
		t.Errorf("Classify should pass through unknown errors, got %v", got)
	}
	if Classify(nil) != nil {
		t.Error("Classify(nil) must be nil")
	}
}

func TestClassifyThroughProviderError(t *testing.T) {
	// Status carried inside a ProviderError wrapper is still found.
	wrapped := &ProviderError{Provider: "gemini", Err: &gemini.APIError{StatusCode: 429}}
	if !errors.Is(Classify(wrapped), ErrRateLimited) {
		t.Error("Classify must unwrap ProviderError")
	}
}
