package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/suncom1029-bot/ai-todo-manager/internal/model"
	"github.com/suncom1029-bot/ai-todo-manager/internal/summary"
	"github.com/suncom1029-bot/ai-todo-manager/internal/task/repository"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/llmprovider"
)

// emptyPeriodSynopsis is the canned narrative for a window with no tasks.
// No model call is made in that case.
const emptyPeriodSynopsis = "No tasks were scheduled for this period."

// narrativeGuess mirrors the JSON the model must produce. Pointer fields let
// us tell a missing key from an empty one.
type narrativeGuess struct {
	Synopsis        *string   `json:"synopsis"`
	UrgentTasks     *[]string `json:"urgent_tasks"`
	Insights        *[]string `json:"insights"`
	Recommendations *[]string `json:"recommendations"`
}

// Summarize aggregates the owner's tasks for the window and asks the model
// to narrate the numbers.
func (uc *implUseCase) Summarize(ctx context.Context, sc model.Scope, input summary.SummarizeInput) (summary.SummarizeOutput, error) {
	if _, ok := summary.ParsePeriod(string(input.Period)); !ok {
		return summary.SummarizeOutput{}, summary.ErrInvalidPeriod
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	tasks, err := uc.repo.ListTasks(ctx, sc, repository.ListTasksOptions{})
	if err != nil {
		return summary.SummarizeOutput{}, fmt.Errorf("listing tasks: %w", err)
	}

	stats, windowTasks := aggregate(tasks, input.Period, now, uc.resolver)
	uc.l.Infof(ctx, "Summarize: user=%s period=%s total=%d completed=%d urgent=%d",
		sc.UserID, input.Period, stats.Total, stats.Completed, len(stats.Urgent))

	if stats.Total == 0 {
		// Nothing to narrate, so no urgent titles either; the statistics
		// still carry the full urgent set.
		return summary.SummarizeOutput{
			Statistics: stats,
			Summary: summary.Summary{
				Synopsis:        emptyPeriodSynopsis,
				UrgentTasks:     []string{},
				Insights:        []string{},
				Recommendations: []string{},
			},
		}, nil
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: summarySystemPrompt,
		Prompt:            buildSummaryPrompt(stats, windowTasks),
		Temperature:       0.4,
		MaxTokens:         1024,
	})
	if err != nil {
		return summary.SummarizeOutput{}, fmt.Errorf("summary model call failed: %w", err)
	}

	var guess narrativeGuess
	cleaned := sanitizeJSONResponse(resp.Text)
	if err := json.Unmarshal([]byte(cleaned), &guess); err != nil {
		uc.l.Errorf(ctx, "Summarize: unparseable model reply. raw=%q err=%v", resp.Text, err)
		return summary.SummarizeOutput{}, fmt.Errorf("%w: %v", llmprovider.ErrSchemaViolation, err)
	}
	if guess.Synopsis == nil || guess.UrgentTasks == nil || guess.Insights == nil || guess.Recommendations == nil {
		return summary.SummarizeOutput{}, fmt.Errorf("%w: narrative is missing required fields", llmprovider.ErrSchemaViolation)
	}

	return summary.SummarizeOutput{
		Statistics: stats,
		Summary: summary.Summary{
			Synopsis:        *guess.Synopsis,
			UrgentTasks:     *guess.UrgentTasks,
			Insights:        *guess.Insights,
			Recommendations: *guess.Recommendations,
		},
	}, nil
}
