package http

import (
	"github.com/gin-gonic/gin"

	"github.com/suncom1029-bot/ai-todo-manager/internal/extraction"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/log"
)

// Handler is the public interface for the extraction HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc extraction.UseCase
}

// New creates a new HTTP handler for the extraction domain.
func New(l log.Logger, uc extraction.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
