package usecase

import (
	"math"
	"sort"
	"time"

	"github.com/suncom1029-bot/ai-todo-manager/internal/model"
	"github.com/suncom1029-bot/ai-todo-manager/internal/summary"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/datemath"
)

// urgencyHorizon is how far ahead a deadline still counts as urgent. There
// is no lower bound: a deadline already missed stays urgent until the task
// is completed.
const urgencyHorizon = 24 * time.Hour

// weekdays is Monday-first, matching the ISO week the aggregation uses.
var weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// timeSlot buckets deadlines by hour of day. Tasks without a deadline are
// excluded from slot statistics.
type timeSlot struct {
	label    string
	from, to int // [from, to) hours
}

var timeSlots = []timeSlot{
	{label: "morning", from: 9, to: 12},
	{label: "afternoon", from: 12, to: 18},
	{label: "evening", from: 18, to: 21},
	{label: "night", from: 21, to: 24},
}

// aggregate computes every deterministic statistic for a window over the
// owner's full task snapshot. It also returns the tasks that fell inside the
// window, so the narrative prompt can quote them.
func aggregate(tasks []model.Task, period summary.Period, now time.Time, resolver *datemath.Resolver) (summary.PeriodStatistics, []model.Task) {
	start, end := window(period, now, resolver)
	days := 1
	if period == summary.PeriodWeek {
		days = 7
	}
	prevStart, prevEnd := start.AddDate(0, 0, -days), start

	current := inWindow(tasks, start, end)
	previous := inWindow(tasks, prevStart, prevEnd)

	stats := summary.PeriodStatistics{
		Period: period,
		Start:  start,
		End:    end,
		Total:  len(current),
	}

	for _, t := range current {
		if t.Completed {
			stats.Completed++
		}
	}
	stats.CompletionRate = rate(stats.Completed, stats.Total)
	stats.CompletionRateChange = stats.CompletionRate - completionRate(previous)

	stats.ByPriority = countByPriority(current)
	stats.ByCategory = countByCategory(current)

	stats.DeadlineComplianceRate = deadlineCompliance(current, now)
	stats.Overdue = overdueTasks(current, now)

	stats.ByWeekday = countByWeekday(current)
	stats.BySlot = countBySlot(current)

	stats.MostProductiveWeekday = topBucket(stats.ByWeekday)
	stats.MostProductiveSlot = topBucket(stats.BySlot)
	stats.EasiestCategory = easiestCategory(current)
	stats.MostPostponedCategory = mostPostponedCategory(stats.Overdue)
	stats.EasiestPriority = easiestPriority(current)

	stats.Urgent = urgentTasks(tasks, now)

	return stats, current
}

func window(period summary.Period, now time.Time, resolver *datemath.Resolver) (time.Time, time.Time) {
	if period == summary.PeriodWeek {
		start := resolver.StartOfWeek(now)
		return start, start.AddDate(0, 0, 7)
	}
	start := resolver.StartOfDay(now)
	return start, start.AddDate(0, 0, 1)
}

// inWindow selects tasks by due instant; tasks without a deadline fall back
// to their creation instant. A task created weeks ago but due today belongs
// to today's report.
func inWindow(tasks []model.Task, start, end time.Time) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		at := t.CreatedAt
		if t.DueAt != nil {
			at = *t.DueAt
		}
		if !at.Before(start) && at.Before(end) {
			out = append(out, t)
		}
	}
	return out
}

func rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func completionRate(tasks []model.Task) float64 {
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	return rate(done, len(tasks))
}

func countByPriority(tasks []model.Task) []summary.BucketCount {
	buckets := make([]summary.BucketCount, 0, len(model.Priorities()))
	for _, p := range model.Priorities() {
		n := 0
		for _, t := range tasks {
			if t.Priority == p {
				n++
			}
		}
		buckets = append(buckets, summary.BucketCount{Label: string(p), Count: n})
	}
	return buckets
}

func countByCategory(tasks []model.Task) []summary.BucketCount {
	buckets := make([]summary.BucketCount, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		n := 0
		for _, t := range tasks {
			if t.Category == c {
				n++
			}
		}
		buckets = append(buckets, summary.BucketCount{Label: string(c), Count: n})
	}
	return buckets
}

// deadlineCompliance is the share of due-dated window tasks that were
// completed by their deadline. Future deadlines count against the rate
// until the task is done; no due-dated tasks means 0.
func deadlineCompliance(tasks []model.Task, now time.Time) float64 {
	due, met := 0, 0
	for _, t := range tasks {
		if t.DueAt == nil {
			continue
		}
		due++
		if t.Completed && !t.DueAt.After(now) {
			met++
		}
	}
	return rate(met, due)
}

func overdueTasks(tasks []model.Task, now time.Time) []summary.OverdueTask {
	var out []summary.OverdueTask
	for _, t := range tasks {
		if !t.Overdue(now) {
			continue
		}
		days := int(math.Ceil(now.Sub(*t.DueAt).Hours() / 24))
		if days < 1 {
			days = 1
		}
		out = append(out, summary.OverdueTask{Task: t, DaysOverdue: days})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysOverdue > out[j].DaysOverdue
	})
	return out
}

func countByWeekday(tasks []model.Task) []summary.RateBucket {
	buckets := make([]summary.RateBucket, 0, len(weekdays))
	for _, wd := range weekdays {
		b := summary.RateBucket{Label: wd.String()}
		for _, t := range tasks {
			if t.CreatedAt.Weekday() != wd {
				continue
			}
			b.Total++
			if t.Completed {
				b.Completed++
			}
		}
		buckets = append(buckets, b)
	}
	return buckets
}

func countBySlot(tasks []model.Task) []summary.RateBucket {
	buckets := make([]summary.RateBucket, 0, len(timeSlots))
	for _, slot := range timeSlots {
		b := summary.RateBucket{Label: slot.label}
		for _, t := range tasks {
			if t.DueAt == nil {
				continue
			}
			if h := t.DueAt.Hour(); h >= slot.from && h < slot.to {
				b.Total++
				if t.Completed {
					b.Completed++
				}
			}
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// topBucket returns the label with the highest completion rate among buckets
// that saw any tasks. Ties break toward the earlier bucket; an all-empty
// distribution has no winner.
func topBucket(buckets []summary.RateBucket) string {
	best, bestRate := "", -1.0
	for _, b := range buckets {
		if b.Total == 0 {
			continue
		}
		if r := rate(b.Completed, b.Total); r > bestRate {
			best, bestRate = b.Label, r
		}
	}
	return best
}

func easiestCategory(tasks []model.Task) string {
	best, bestRate := "", -1.0
	for _, c := range model.Categories() {
		total, done := 0, 0
		for _, t := range tasks {
			if t.Category != c {
				continue
			}
			total++
			if t.Completed {
				done++
			}
		}
		if total == 0 {
			continue
		}
		if r := rate(done, total); r > bestRate {
			best, bestRate = string(c), r
		}
	}
	return best
}

func easiestPriority(tasks []model.Task) string {
	best, bestRate := "", -1.0
	for _, p := range model.Priorities() {
		total, done := 0, 0
		for _, t := range tasks {
			if t.Priority != p {
				continue
			}
			total++
			if t.Completed {
				done++
			}
		}
		if total == 0 {
			continue
		}
		if r := rate(done, total); r > bestRate {
			best, bestRate = string(p), r
		}
	}
	return best
}

func mostPostponedCategory(overdue []summary.OverdueTask) string {
	best, bestCount := "", 0
	for _, c := range model.Categories() {
		n := 0
		for _, ot := range overdue {
			if ot.Task.Category == c {
				n++
			}
		}
		if n > bestCount {
			best, bestCount = string(c), n
		}
	}
	return best
}

// urgentTasks scans the whole snapshot, not just the window: an overdue task
// created last month is still urgent today.
func urgentTasks(tasks []model.Task, now time.Time) []model.Task {
	horizon := now.Add(urgencyHorizon)
	var out []model.Task
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		dueSoon := t.DueAt != nil && t.DueAt.Before(horizon)
		if t.Priority == model.PriorityHigh || dueSoon {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].DueAt, out[j].DueAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return out
}
