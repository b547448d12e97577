package usecase

import (
	"github.com/suncom1029-bot/ai-todo-manager/pkg/datemath"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/llmprovider"
	pkgLog "github.com/suncom1029-bot/ai-todo-manager/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      *llmprovider.Manager
	resolver *datemath.Resolver
}

// New creates a new extraction UseCase instance.
func New(l pkgLog.Logger, llm *llmprovider.Manager, resolver *datemath.Resolver) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		resolver: resolver,
	}
}
