package http

import (
	"github.com/gin-gonic/gin"

	"github.com/suncom1029-bot/ai-todo-manager/internal/summary"
)

// processSummarizeReq binds and validates the summarize query parameters.
func (h *handler) processSummarizeReq(c *gin.Context) (summarizeReq, error) {
	var req summarizeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, summary.ErrInvalidPeriod
	}
	if _, ok := summary.ParsePeriod(req.Period); !ok {
		return req, summary.ErrInvalidPeriod
	}
	return req, nil
}
