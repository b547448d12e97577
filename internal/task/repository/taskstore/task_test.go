package taskstore

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/suncom1029-bot/ai-todo-manager/internal/model"
	"github.com/suncom1029-bot/ai-todo-manager/internal/task/repository"
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

func newRepo(t *testing.T, handler http.HandlerFunc) repository.TaskRepository {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return New(NewClient(ts.URL, "store-token"), nopLogger{})
}

func TestListTasks(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer store-token" {
			t.Errorf("missing bearer token, got %q", got)
		}
		if got := r.URL.Query().Get("owner_id"); got != "user-1" {
			t.Errorf("owner_id = %q, want user-1", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tasks": [
			{"id": "t1", "owner_id": "user-1", "title": "Write report", "priority": "high",
			 "category": "work", "completed": false, "due_at": "2026-09-03T15:00:00Z",
			 "created_at": "2026-09-01T08:00:00Z"},
			{"id": "t2", "owner_id": "user-1", "title": "Read book", "priority": "bogus",
			 "category": "learning", "completed": true, "due_at": null,
			 "created_at": "2026-09-01T09:00:00Z"},
			{"id": "t3", "owner_id": "user-1", "title": "Broken", "priority": "low",
			 "category": "other", "completed": false, "created_at": "not-a-time"}
		]}`))
	})

	tasks, err := repo.ListTasks(context.Background(), model.Scope{UserID: "user-1"}, repository.ListTasksOptions{})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}

	// The malformed third record is skipped, not fatal.
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Priority != model.PriorityHigh || tasks[0].DueAt == nil {
		t.Errorf("unexpected first task: %+v", tasks[0])
	}
	// Unknown priority falls back to medium.
	if tasks[1].Priority != model.PriorityMedium {
		t.Errorf("expected medium fallback, got %s", tasks[1].Priority)
	}
}

func TestListTasksSessionExpired(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := repo.ListTasks(context.Background(), model.Scope{UserID: "user-1"}, repository.ListTasksOptions{})
	if !errors.Is(err, repository.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestListTasksStoreDown(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := repo.ListTasks(context.Background(), model.Scope{UserID: "user-1"}, repository.ListTasksOptions{})
	if !errors.Is(err, repository.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestGetTaskNotFound(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := repo.GetTask(context.Background(), model.Scope{UserID: "user-1"}, "missing")
	if !errors.Is(err, repository.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
