package usecase

import (
	"fmt"
	"strings"

	"github.com/suncom1029-bot/ai-todo-manager/internal/extraction"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/datemath"
)

const extractionSystemPrompt = `You are a task extraction assistant. The user writes a short note in natural language describing something to do. Extract a single task from it.

Respond with ONLY a JSON object, no markdown fences, no commentary:
{
  "title": "short imperative title",
  "description": "longer detail, or null",
  "priority": "high|medium|low",
  "category": "work|personal|learning|other",
  "due_date": "YYYY-MM-DD or null",
  "due_time": "HH:MM in 24-hour time, or null"
}

Rules:
- title: at most 100 characters, never empty.
- Resolve relative dates using the reference dates provided.
- If the note gives a part of day (morning, evening, ...) use the matching time.
- If no deadline is mentioned, both due_date and due_time are null.
- Never invent a deadline that is not in the note.`

func buildExtractionPrompt(text string, dc datemath.Context) string {
	var b strings.Builder

	b.WriteString("Reference dates:\n")
	fmt.Fprintf(&b, "- now: %s %s (%s)\n", dc.Now.Format(datemath.DateFormat), dc.Now.Format("15:04"), dc.Now.Weekday())
	fmt.Fprintf(&b, "- today: %s\n", dc.Today.Format(datemath.DateFormat))
	fmt.Fprintf(&b, "- tomorrow: %s\n", dc.Tomorrow.Format(datemath.DateFormat))
	fmt.Fprintf(&b, "- day after tomorrow: %s\n", dc.DayAfterTomorrow.Format(datemath.DateFormat))
	fmt.Fprintf(&b, "- this friday: %s\n", dc.ThisFriday.Format(datemath.DateFormat))
	fmt.Fprintf(&b, "- next monday: %s\n", dc.NextMonday.Format(datemath.DateFormat))

	b.WriteString("\nPart-of-day times:\n")
	for _, slot := range datemath.PartsOfDay() {
		fmt.Fprintf(&b, "- %s: %s\n", slot.Name, slot.Clock)
	}

	b.WriteString("\nPriority keywords:\n")
	for _, r := range extraction.PriorityRules() {
		fmt.Fprintf(&b, "- %s: %s\n", r.Priority, strings.Join(r.Keywords, ", "))
	}

	b.WriteString("\nCategory keywords:\n")
	for _, r := range extraction.CategoryRules() {
		fmt.Fprintf(&b, "- %s: %s\n", r.Category, strings.Join(r.Keywords, ", "))
	}

	b.WriteString("\nUser note:\n")
	b.WriteString(text)

	return b.String()
}
