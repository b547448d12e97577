package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/suncom1029-bot/ai-todo-manager/internal/extraction"
	"github.com/suncom1029-bot/ai-todo-manager/internal/model"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/llmprovider"
)

// modelGuess is the model's raw structured guess, before repair. Pointer
// fields distinguish "absent" from "empty".
type modelGuess struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Priority    string  `json:"priority"`
	Category    string  `json:"category"`
	DueDate     *string `json:"due_date"` // "2006-01-02"
	DueTime     *string `json:"due_time"` // "HH:MM", 12-hour, or part-of-day word
}

// Extract converts free text into structured task fields via one model call.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input extraction.ExtractInput) (extraction.ExtractOutput, error) {
	text, err := extraction.Sanitize(input.RawText)
	if err != nil {
		return extraction.ExtractOutput{}, err
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	uc.l.Infof(ctx, "Extract: user=%s input_length=%d", sc.UserID, len(text))

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: extractionSystemPrompt,
		Prompt:            buildExtractionPrompt(text, uc.resolver.Resolve(now)),
		Temperature:       0.2, // low temperature for deterministic JSON output
		MaxTokens:         1024,
	})
	if err != nil {
		return extraction.ExtractOutput{}, fmt.Errorf("extraction model call failed: %w", err)
	}

	var guess modelGuess
	cleaned := sanitizeJSONResponse(resp.Text)
	if err := json.Unmarshal([]byte(cleaned), &guess); err != nil {
		uc.l.Errorf(ctx, "Extract: unparseable model reply. raw=%q cleaned=%q err=%v", resp.Text, cleaned, err)
		return extraction.ExtractOutput{}, fmt.Errorf("%w: %v", llmprovider.ErrSchemaViolation, err)
	}

	result := uc.postProcess(guess, text, now)

	// Deterministic cross-check: an unambiguous keyword in the input wins
	// over whatever the model classified.
	if p, ok := extraction.MatchPriority(text); ok {
		result.Priority = p
	}
	if c, ok := extraction.MatchCategory(text); ok {
		result.Category = c
	}

	uc.l.Infof(ctx, "Extract: user=%s title=%q priority=%s category=%s has_due=%t",
		sc.UserID, result.Title, result.Priority, result.Category, result.DueAt != nil)

	return extraction.ExtractOutput{Result: result}, nil
}
