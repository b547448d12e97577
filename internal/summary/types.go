package summary

import (
	"time"

	"github.com/suncom1029-bot/ai-todo-manager/internal/model"
)

// Period selects the reporting window.
type Period string

const (
	PeriodDay  Period = "day"
	PeriodWeek Period = "week"
)

// ParsePeriod validates a period string from the outside world.
func ParsePeriod(s string) (Period, bool) {
	switch Period(s) {
	case PeriodDay, PeriodWeek:
		return Period(s), true
	}
	return "", false
}

// BucketCount is one labelled aggregation bucket.
type BucketCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RateBucket is a bucket that tracks both volume and completions, so a
// completion rate can be derived per bucket.
type RateBucket struct {
	Label     string `json:"label"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

// OverdueTask pairs a task with how many days past its deadline it is.
type OverdueTask struct {
	Task        model.Task `json:"task"`
	DaysOverdue int        `json:"days_overdue"`
}

// PeriodStatistics is the deterministic aggregation for one reporting window.
// Everything here is computed locally, before any model involvement.
type PeriodStatistics struct {
	Period    Period    `json:"period"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`

	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"` // percent, 0..100

	// Change versus the immediately preceding window, in percentage points.
	CompletionRateChange float64 `json:"completion_rate_change"`

	ByPriority []BucketCount `json:"by_priority"`
	ByCategory []BucketCount `json:"by_category"`

	// Share of due-dated tasks in the window that were completed by their
	// deadline. 0 when no task in the window carries a deadline.
	DeadlineComplianceRate float64       `json:"deadline_compliance_rate"`
	Overdue                []OverdueTask `json:"overdue"`

	ByWeekday []RateBucket `json:"by_weekday"` // tasks per weekday, Monday first
	BySlot    []RateBucket `json:"by_slot"`    // tasks per time-of-day slot

	MostProductiveWeekday string `json:"most_productive_weekday"`
	MostProductiveSlot    string `json:"most_productive_slot"`
	EasiestCategory       string `json:"easiest_category"`        // highest completion rate
	MostPostponedCategory string `json:"most_postponed_category"` // most overdue tasks
	EasiestPriority       string `json:"easiest_priority"`

	// Urgent is computed over the owner's whole task list, not just the
	// window: incomplete and high priority, or due within a day of now.
	Urgent []model.Task `json:"urgent"`
}

// Summary is the model-written narrative companion to the statistics.
type Summary struct {
	Synopsis        string   `json:"synopsis"`
	UrgentTasks     []string `json:"urgent_tasks"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

type SummarizeInput struct {
	Period Period
	Now    time.Time // reference instant; zero means the server clock
}

type SummarizeOutput struct {
	Statistics PeriodStatistics
	Summary    Summary
}
