package http

import (
	"github.com/gin-gonic/gin"

	"github.com/suncom1029-bot/ai-todo-manager/internal/middleware"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/response"
)

// Extract godoc
// @Summary     Extract a task from free text
// @Description Turns a natural-language note into structured task fields.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body extractReq true "Note to extract"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     422 {object} response.Resp "Unprocessable input"
// @Failure     429 {object} response.Resp "Model rate limited"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Failure     504 {object} response.Resp "Model timeout"
// @Router      /api/v1/assistant/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Extract(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExtractResp(output))
}
