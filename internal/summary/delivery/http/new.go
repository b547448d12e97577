package http

import (
	"github.com/gin-gonic/gin"

	"github.com/suncom1029-bot/ai-todo-manager/internal/summary"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/log"
)

// Handler is the public interface for the summary HTTP delivery layer.
type Handler interface {
	Summarize(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc summary.UseCase
}

// New creates a new HTTP handler for the summary domain.
func New(l log.Logger, uc summary.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
