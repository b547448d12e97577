package summary

import (
	"context"

	"github.com/suncom1029-bot/ai-todo-manager/internal/model"
)

// UseCase aggregates an owner's tasks for a period and narrates the result.
type UseCase interface {
	Summarize(ctx context.Context, sc model.Scope, input SummarizeInput) (SummarizeOutput, error)
}
