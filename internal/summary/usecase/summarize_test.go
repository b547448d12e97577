package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/suncom1029-bot/ai-todo-manager/internal/model"
	"github.com/suncom1029-bot/ai-todo-manager/internal/summary"
	"github.com/suncom1029-bot/ai-todo-manager/internal/task/repository"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/llmprovider"
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

type mockRepo struct {
	tasks []model.Task
	err   error
}

func (m *mockRepo) ListTasks(ctx context.Context, sc model.Scope, opts repository.ListTasksOptions) ([]model.Task, error) {
	return m.tasks, m.err
}

func (m *mockRepo) GetTask(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	for _, t := range m.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, repository.ErrTaskNotFound
}

type countingProvider struct {
	text    string
	err     error
	calls   int
	prompts []string
}

func (p *countingProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	p.calls++
	p.prompts = append(p.prompts, req.Prompt)
	if p.err != nil {
		return nil, p.err
	}
	return &llmprovider.Response{Text: p.text, ProviderName: p.Name(), ModelName: p.Model()}, nil
}

func (p *countingProvider) Name() string  { return "counting" }
func (p *countingProvider) Model() string { return "counting-1" }

func newSummaryUseCase(t *testing.T, repo *mockRepo, provider llmprovider.Provider) *implUseCase {
	t.Helper()
	manager := llmprovider.NewManager([]llmprovider.Provider{provider}, &llmprovider.Config{}, nopLogger{})
	return New(nopLogger{}, repo, manager, testResolver(t))
}

func TestSummarizeHappyPath(t *testing.T) {
	created := time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC)
	repo := &mockRepo{tasks: []model.Task{
		mkTask("a", true, model.PriorityHigh, model.CategoryWork, created, nil),
		mkTask("b", false, model.PriorityMedium, model.CategoryPersonal, created, nil),
	}}
	provider := &countingProvider{text: `{
		"synopsis": "You finished one of two tasks today.",
		"urgent_tasks": [],
		"insights": ["Work tasks got done first."],
		"recommendations": ["Tackle the personal task tomorrow morning."]
	}`}
	uc := newSummaryUseCase(t, repo, provider)

	out, err := uc.Summarize(context.Background(), model.Scope{UserID: "u1"}, summary.SummarizeInput{
		Period: summary.PeriodDay,
		Now:    testNow,
	})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want 1", provider.calls)
	}
	if out.Statistics.Total != 2 || out.Statistics.Completed != 1 {
		t.Errorf("stats = %d/%d, want 2/1", out.Statistics.Total, out.Statistics.Completed)
	}
	if out.Summary.Synopsis != "You finished one of two tasks today." {
		t.Errorf("synopsis = %q", out.Summary.Synopsis)
	}
	if len(out.Summary.Insights) != 1 || len(out.Summary.Recommendations) != 1 {
		t.Errorf("insights/recommendations = %d/%d, want 1/1", len(out.Summary.Insights), len(out.Summary.Recommendations))
	}
}

func TestSummarizeEmptyPeriodSkipsModel(t *testing.T) {
	// The only task is high priority but from long before the window: the
	// period is empty, so its title has no place in the narrative. It still
	// shows up in the statistics' urgent set.
	old := mkTask("old", false, model.PriorityHigh, model.CategoryWork,
		time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC), nil)
	repo := &mockRepo{tasks: []model.Task{old}}
	provider := &countingProvider{text: `{}`}
	uc := newSummaryUseCase(t, repo, provider)

	out, err := uc.Summarize(context.Background(), model.Scope{UserID: "u1"}, summary.SummarizeInput{
		Period: summary.PeriodWeek,
		Now:    testNow,
	})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if provider.calls != 0 {
		t.Errorf("provider calls = %d, want 0 for an empty period", provider.calls)
	}
	if out.Summary.Synopsis != emptyPeriodSynopsis {
		t.Errorf("synopsis = %q, want canned empty-period text", out.Summary.Synopsis)
	}
	if len(out.Summary.UrgentTasks) != 0 {
		t.Errorf("urgent titles = %v, want none for an empty period", out.Summary.UrgentTasks)
	}
	if len(out.Statistics.Urgent) != 1 {
		t.Errorf("urgent stats = %d tasks, want 1", len(out.Statistics.Urgent))
	}
}

func TestSummarizePromptCarriesTasks(t *testing.T) {
	created := time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC)
	repo := &mockRepo{tasks: []model.Task{
		mkTask("a", true, model.PriorityHigh, model.CategoryWork, created, timePtr(testNow.Add(4*time.Hour))),
		mkTask("b", false, model.PriorityMedium, model.CategoryPersonal, created, nil),
	}}
	provider := &countingProvider{text: `{"synopsis": "ok", "urgent_tasks": [], "insights": [], "recommendations": []}`}
	uc := newSummaryUseCase(t, repo, provider)

	_, err := uc.Summarize(context.Background(), model.Scope{UserID: "u1"}, summary.SummarizeInput{
		Period: summary.PeriodDay,
		Now:    testNow,
	})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(provider.prompts) != 1 {
		t.Fatalf("prompts = %d, want 1", len(provider.prompts))
	}
	prompt := provider.prompts[0]
	for _, fragment := range []string{
		"Statistics for the period",
		"Tasks in the period",
		`title="task a"`,
		"priority=high",
		"due=2026-09-02 14:30",
		`title="task b"`,
		"due=none",
	} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestSummarizeInvalidPeriod(t *testing.T) {
	uc := newSummaryUseCase(t, &mockRepo{}, &countingProvider{})

	_, err := uc.Summarize(context.Background(), model.Scope{UserID: "u1"}, summary.SummarizeInput{
		Period: "month",
		Now:    testNow,
	})
	if !errors.Is(err, summary.ErrInvalidPeriod) {
		t.Errorf("err = %v, want ErrInvalidPeriod", err)
	}
}

func TestSummarizeSchemaViolation(t *testing.T) {
	created := time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC)
	repo := &mockRepo{tasks: []model.Task{
		mkTask("a", true, model.PriorityHigh, model.CategoryWork, created, nil),
	}}

	t.Run("unparseable reply", func(t *testing.T) {
		provider := &countingProvider{text: "Here is your summary: everything went great!"}
		uc := newSummaryUseCase(t, repo, provider)
		_, err := uc.Summarize(context.Background(), model.Scope{UserID: "u1"}, summary.SummarizeInput{Period: summary.PeriodDay, Now: testNow})
		if !errors.Is(err, llmprovider.ErrSchemaViolation) {
			t.Errorf("err = %v, want ErrSchemaViolation", err)
		}
	})

	t.Run("missing field", func(t *testing.T) {
		provider := &countingProvider{text: `{"synopsis": "ok", "insights": [], "recommendations": []}`}
		uc := newSummaryUseCase(t, repo, provider)
		_, err := uc.Summarize(context.Background(), model.Scope{UserID: "u1"}, summary.SummarizeInput{Period: summary.PeriodDay, Now: testNow})
		if !errors.Is(err, llmprovider.ErrSchemaViolation) {
			t.Errorf("err = %v, want ErrSchemaViolation", err)
		}
	})
}

func TestSummarizePropagatesStoreFailure(t *testing.T) {
	repo := &mockRepo{err: repository.ErrStoreUnavailable}
	uc := newSummaryUseCase(t, repo, &countingProvider{})

	_, err := uc.Summarize(context.Background(), model.Scope{UserID: "u1"}, summary.SummarizeInput{
		Period: summary.PeriodDay,
		Now:    testNow,
	})
	if !errors.Is(err, repository.ErrStoreUnavailable) {
		t.Errorf("err = %v, want ErrStoreUnavailable", err)
	}
}
