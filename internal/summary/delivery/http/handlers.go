package http

import (
	"github.com/gin-gonic/gin"

	"github.com/suncom1029-bot/ai-todo-manager/internal/middleware"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/response"
)

// Summarize godoc
// @Summary     Summarize a reporting period
// @Description Aggregates the caller's tasks for the period and narrates the result.
// @Tags        Assistant
// @Produce     json
// @Security    BearerAuth
// @Param       period query string true "Reporting period" Enums(day, week)
// @Success     200 {object} summarizeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Model rate limited"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Failure     502 {object} response.Resp "Task store unavailable"
// @Failure     504 {object} response.Resp "Model timeout"
// @Router      /api/v1/assistant/summary [GET]
func (h *handler) Summarize(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSummarizeReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Summarize(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Summarize: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSummarizeResp(output))
}
