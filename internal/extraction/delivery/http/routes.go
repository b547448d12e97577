package http

import (
	"github.com/gin-gonic/gin"

	"github.com/suncom1029-bot/ai-todo-manager/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw *middleware.Middleware) {
	rg.POST("/extract", mw.Auth(), mw.RateLimit(), h.Extract)
}
