package usecase

import (
	"strings"
	"time"

	"github.com/suncom1029-bot/ai-todo-manager/internal/extraction"
	"github.com/suncom1029-bot/ai-todo-manager/internal/model"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/datemath"
)

const (
	minTitleRunes      = 2
	maxTitleRunes      = 100
	fallbackTitleRunes = 20
	defaultDueClock    = "09:00"
)

// postProcess repairs a model guess into a valid result. It never fails:
// every field degrades to a safe default instead.
func (uc *implUseCase) postProcess(guess modelGuess, input string, now time.Time) extraction.Result {
	res := extraction.Result{
		Title:    repairTitle(guess.Title, input),
		Priority: model.PriorityMedium,
		Category: model.CategoryOther,
	}

	if p, ok := model.ParsePriority(guess.Priority); ok {
		res.Priority = p
	}
	if c, ok := model.ParseCategory(guess.Category); ok {
		res.Category = c
	}

	if guess.Description != nil && strings.TrimSpace(*guess.Description) != "" {
		res.Description = strings.TrimSpace(*guess.Description)
	} else {
		res.Description = input
	}

	res.DueAt = uc.repairDue(guess.DueDate, guess.DueTime, now)

	return res
}

// repairTitle enforces the 2..100 rune bound. A missing or too-short title
// falls back to the head of the raw input.
func repairTitle(title, input string) string {
	title = strings.TrimSpace(title)
	if len([]rune(title)) < minTitleRunes {
		head := []rune(input)
		if len(head) > fallbackTitleRunes {
			head = head[:fallbackTitleRunes]
		}
		title = strings.TrimSpace(string(head))
	}
	if runes := []rune(title); len(runes) > maxTitleRunes {
		return string(runes[:maxTitleRunes-3]) + "..."
	}
	return title
}

// repairDue combines the model's date and time guesses into a concrete
// deadline. A date in the past is bumped to today; an unparseable date means
// no deadline at all.
func (uc *implUseCase) repairDue(dueDate, dueTime *string, now time.Time) *time.Time {
	if dueDate == nil || strings.TrimSpace(*dueDate) == "" {
		return nil
	}

	date, err := time.ParseInLocation(datemath.DateFormat, strings.TrimSpace(*dueDate), uc.resolver.Location())
	if err != nil {
		return nil
	}
	if date.Before(uc.resolver.StartOfDay(now)) {
		date = uc.resolver.StartOfDay(now)
	}

	clock := defaultDueClock
	if dueTime != nil {
		if normalized, err := datemath.NormalizeClock(strings.TrimSpace(*dueTime)); err == nil {
			clock = normalized
		}
	}

	due, err := uc.resolver.At(date, clock)
	if err != nil {
		due, _ = uc.resolver.At(date, defaultDueClock)
	}
	return &due
}
