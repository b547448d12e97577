package usecase

import (
	"github.com/suncom1029-bot/ai-todo-manager/internal/task/repository"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/datemath"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/llmprovider"
	pkgLog "github.com/suncom1029-bot/ai-todo-manager/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.TaskRepository
	llm      *llmprovider.Manager
	resolver *datemath.Resolver
}

// New creates the summary use case.
func New(l pkgLog.Logger, repo repository.TaskRepository, llm *llmprovider.Manager, resolver *datemath.Resolver) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		llm:      llm,
		resolver: resolver,
	}
}
