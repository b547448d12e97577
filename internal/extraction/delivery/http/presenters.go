package http

import (
	"time"

	"github.com/suncom1029-bot/ai-todo-manager/internal/extraction"
)

// --- Request DTOs ---

type extractReq struct {
	Text string     `json:"text" binding:"required"`
	Now  *time.Time `json:"now"` // optional reference instant, mostly for clients in odd timezones
}

func (r extractReq) toInput() extraction.ExtractInput {
	in := extraction.ExtractInput{RawText: r.Text}
	if r.Now != nil {
		in.Now = *r.Now
	}
	return in
}

// --- Response DTOs ---

type taskFieldsResp struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	DueAt       *time.Time `json:"due_at"`
}

type extractResp struct {
	Task taskFieldsResp `json:"task"`
}

func (h *handler) newExtractResp(out extraction.ExtractOutput) extractResp {
	return extractResp{
		Task: taskFieldsResp{
			Title:       out.Result.Title,
			Description: out.Result.Description,
			Priority:    string(out.Result.Priority),
			Category:    string(out.Result.Category),
			DueAt:       out.Result.DueAt,
		},
	}
}
