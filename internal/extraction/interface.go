package extraction

import (
	"context"

	"github.com/suncom1029-bot/ai-todo-manager/internal/model"
)

// UseCase defines the business logic interface for the extraction domain.
type UseCase interface {
	// Extract converts free text into structured task fields via a single
	// model call, with deterministic sanitization before and repair after.
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ExtractOutput, error)
}
