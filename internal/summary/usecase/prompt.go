package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/suncom1029-bot/ai-todo-manager/internal/model"
	"github.com/suncom1029-bot/ai-todo-manager/internal/summary"
)

const summarySystemPrompt = `You are a productivity assistant. You receive pre-computed task statistics for one reporting period, followed by the tasks the period covers. Write a short, friendly narrative about them.

Respond with ONLY a JSON object, no markdown fences, no commentary:
{
  "synopsis": "2-3 sentence overview of the period",
  "urgent_tasks": ["titles of the urgent tasks, verbatim"],
  "insights": ["1-3 observations grounded in the numbers"],
  "recommendations": ["1-3 concrete suggestions"]
}

Rules:
- Only use facts present in the statistics and the task list. Never invent tasks or numbers.
- Copy urgent task titles exactly as given.
- Keep every string under 200 characters.`

func buildSummaryPrompt(stats summary.PeriodStatistics, tasks []model.Task) string {
	var b strings.Builder

	b.WriteString("Statistics for the period:\n")

	// The stats struct is already shaped for JSON; hand it over as-is.
	encoded, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		fmt.Fprintf(&b, "total=%d completed=%d completion_rate=%.1f%%\n",
			stats.Total, stats.Completed, stats.CompletionRate)
	} else {
		b.Write(encoded)
		b.WriteString("\n")
	}

	b.WriteString("\nTasks in the period:\n")
	for _, t := range tasks {
		due := "none"
		if t.DueAt != nil {
			due = t.DueAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(&b, "- title=%q description=%q priority=%s category=%s completed=%t due=%s\n",
			t.Title, t.Description, t.Priority, t.Category, t.Completed, due)
	}

	return b.String()
}
