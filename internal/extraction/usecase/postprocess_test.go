package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/suncom1029-bot/ai-todo-manager/internal/model"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/datemath"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                    {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                    {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                   {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any) {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                  {}
func (nopLogger) DPanicf(ctx context.Context, template string, args ...any) {
}
func (nopLogger) Panic(ctx context.Context, args ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

func newTestUseCase(t *testing.T) *implUseCase {
	t.Helper()
	resolver, err := datemath.NewResolver("UTC")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return New(nopLogger{}, nil, resolver)
}

func strPtr(s string) *string { return &s }

// Wednesday.
var testNow = time.Date(2026, 9, 2, 10, 30, 0, 0, time.UTC)

func TestPostProcessValidGuessUnchanged(t *testing.T) {
	uc := newTestUseCase(t)

	guess := modelGuess{
		Title:    "Prepare quarterly report",
		Priority: "high",
		Category: "work",
		DueDate:  strPtr("2026-09-04"),
		DueTime:  strPtr("15:00"),
	}
	res := uc.postProcess(guess, "prepare the quarterly report by friday 3pm", testNow)

	if res.Title != "Prepare quarterly report" {
		t.Errorf("title = %q", res.Title)
	}
	if res.Priority != model.PriorityHigh || res.Category != model.CategoryWork {
		t.Errorf("priority/category = %s/%s", res.Priority, res.Category)
	}
	want := time.Date(2026, 9, 4, 15, 0, 0, 0, time.UTC)
	if res.DueAt == nil || !res.DueAt.Equal(want) {
		t.Errorf("DueAt = %v, want %v", res.DueAt, want)
	}
}

func TestPostProcessTitleRepair(t *testing.T) {
	uc := newTestUseCase(t)

	t.Run("too short falls back to input head", func(t *testing.T) {
		res := uc.postProcess(modelGuess{Title: "x"}, "buy milk and bread on the way home from work", testNow)
		if res.Title != "buy milk and bread o" {
			t.Errorf("title = %q", res.Title)
		}
	})

	t.Run("too long is truncated with ellipsis", func(t *testing.T) {
		long := strings.Repeat("a", 150)
		res := uc.postProcess(modelGuess{Title: long}, "whatever", testNow)
		if got := len([]rune(res.Title)); got != 100 {
			t.Errorf("title length = %d, want 100", got)
		}
		if !strings.HasSuffix(res.Title, "...") {
			t.Errorf("title = %q, want ellipsis suffix", res.Title)
		}
	})
}

func TestPostProcessDefaults(t *testing.T) {
	uc := newTestUseCase(t)

	res := uc.postProcess(modelGuess{Title: "do the thing", Priority: "critical", Category: "chores"}, "do the thing", testNow)

	if res.Priority != model.PriorityMedium {
		t.Errorf("priority = %s, want medium", res.Priority)
	}
	if res.Category != model.CategoryOther {
		t.Errorf("category = %s, want other", res.Category)
	}
	if res.Description != "do the thing" {
		t.Errorf("description = %q, want raw input", res.Description)
	}
	if res.DueAt != nil {
		t.Errorf("DueAt = %v, want nil", res.DueAt)
	}
}

func TestPostProcessDateRepair(t *testing.T) {
	uc := newTestUseCase(t)

	t.Run("unparseable date drops the deadline", func(t *testing.T) {
		res := uc.postProcess(modelGuess{Title: "call mom", DueDate: strPtr("next-ish friday")}, "call mom", testNow)
		if res.DueAt != nil {
			t.Errorf("DueAt = %v, want nil", res.DueAt)
		}
	})

	t.Run("past date is bumped to today keeping the time", func(t *testing.T) {
		res := uc.postProcess(modelGuess{Title: "call mom", DueDate: strPtr("2026-08-30"), DueTime: strPtr("15:00")}, "call mom", testNow)
		want := time.Date(2026, 9, 2, 15, 0, 0, 0, time.UTC)
		if res.DueAt == nil || !res.DueAt.Equal(want) {
			t.Errorf("DueAt = %v, want %v", res.DueAt, want)
		}
	})

	t.Run("missing time defaults to 09:00", func(t *testing.T) {
		res := uc.postProcess(modelGuess{Title: "call mom", DueDate: strPtr("2026-09-05")}, "call mom", testNow)
		want := time.Date(2026, 9, 5, 9, 0, 0, 0, time.UTC)
		if res.DueAt == nil || !res.DueAt.Equal(want) {
			t.Errorf("DueAt = %v, want %v", res.DueAt, want)
		}
	})

	t.Run("part-of-day word resolves to its clock time", func(t *testing.T) {
		res := uc.postProcess(modelGuess{Title: "call mom", DueDate: strPtr("2026-09-05"), DueTime: strPtr("evening")}, "call mom", testNow)
		want := time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC)
		if res.DueAt == nil || !res.DueAt.Equal(want) {
			t.Errorf("DueAt = %v, want %v", res.DueAt, want)
		}
	})
}

func TestSanitizeJSONResponse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"title":"x"}`, `{"title":"x"}`},
		{"fenced", "```json\n{\"title\":\"x\"}\n```", `{"title":"x"}`},
		{"chatter around", "Sure, here you go: {\"title\":\"x\"} Hope that helps!", `{"title":"x"}`},
		{"no json at all", "I cannot help with that.", "I cannot help with that."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sanitizeJSONResponse(tc.in); got != tc.want {
				t.Errorf("sanitizeJSONResponse(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
