package model

import "time"

// Priority is a task's urgency level.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities returns all priorities in a fixed order. Aggregation iterates
// this slice so bucket scans stay deterministic.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// ParsePriority normalizes a raw string into a Priority.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s), true
	}
	return "", false
}

// Category is a task's domain bucket.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryLearning Category = "learning"
	CategoryOther    Category = "other"
)

// Categories returns all categories in a fixed order.
func Categories() []Category {
	return []Category{CategoryWork, CategoryPersonal, CategoryLearning, CategoryOther}
}

// ParseCategory normalizes a raw string into a Category.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryWork, CategoryPersonal, CategoryLearning, CategoryOther:
		return Category(s), true
	}
	return "", false
}

// Task is a task record owned by a single user. The record store is the
// source of truth; this core only reads snapshots of it.
type Task struct {
	ID          string
	OwnerID     string
	Title       string // non-empty, at most 100 chars
	Description string // optional, at most 500 chars
	Priority    Priority
	Category    Category
	Completed   bool
	DueAt       *time.Time // optional; a past due instant means overdue, not invalid
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Overdue reports whether the task is incomplete with a due instant strictly
// before now.
func (t Task) Overdue(now time.Time) bool {
	return !t.Completed && t.DueAt != nil && t.DueAt.Before(now)
}
