package http

import (
	"time"

	"github.com/suncom1029-bot/ai-todo-manager/internal/summary"
)

// --- Request DTOs ---

type summarizeReq struct {
	Period string     `form:"period" binding:"required"`
	Now    *time.Time `form:"now" time_format:"2006-01-02T15:04:05Z07:00"`
}

func (r summarizeReq) toInput() summary.SummarizeInput {
	in := summary.SummarizeInput{Period: summary.Period(r.Period)}
	if r.Now != nil {
		in.Now = *r.Now
	}
	return in
}

// --- Response DTOs ---

type summarizeResp struct {
	Statistics summary.PeriodStatistics `json:"statistics"`
	Summary    narrativeResp            `json:"summary"`
}

type narrativeResp struct {
	Synopsis        string   `json:"synopsis"`
	UrgentTasks     []string `json:"urgent_tasks"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

func (h *handler) newSummarizeResp(out summary.SummarizeOutput) summarizeResp {
	return summarizeResp{
		Statistics: out.Statistics,
		Summary: narrativeResp{
			Synopsis:        out.Summary.Synopsis,
			UrgentTasks:     out.Summary.UrgentTasks,
			Insights:        out.Summary.Insights,
			Recommendations: out.Summary.Recommendations,
		},
	}
}
