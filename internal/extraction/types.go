package extraction

import (
	"time"

	"github.com/suncom1029-bot/ai-todo-manager/internal/model"
)

// ExtractInput is the input for natural-language task extraction.
type ExtractInput struct {
	RawText string    // free text from the user
	Now     time.Time // reference instant; zero means the server clock
}

// Result is a fully-populated set of structured task fields. Every field is
// defaulted by the post-processor, so callers can persist it as-is.
type Result struct {
	Title       string
	Description string
	Priority    model.Priority
	Category    model.Category
	DueAt       *time.Time // nil when no usable date was extracted
}

// ExtractOutput is the result of the extraction operation.
type ExtractOutput struct {
	Result Result
}
