package extraction

import (
	"strings"

	"github.com/suncom1029-bot/ai-todo-manager/internal/model"
)

// Keyword rule tables. These are sent to the model as instructions and also
// applied as a deterministic cross-check after the call, so the final
// priority/category is always consistent with an unambiguous keyword in the
// input regardless of what the model answered.

type PriorityRule struct {
	Keywords []string
	Priority model.Priority
}

type CategoryRule struct {
	Keywords []string
	Category model.Category
}

// First match wins; order matters.
var priorityRules = []PriorityRule{
	{Keywords: []string{"urgent", "important", "quickly", "must"}, Priority: model.PriorityHigh},
	{Keywords: []string{"relaxed", "slowly", "someday"}, Priority: model.PriorityLow},
}

var categoryRules = []CategoryRule{
	{Keywords: []string{"meeting", "report", "project"}, Category: model.CategoryWork},
	{Keywords: []string{"shopping", "friend", "family", "exercise", "hospital", "health"}, Category: model.CategoryPersonal},
	{Keywords: []string{"study", "book", "lecture"}, Category: model.CategoryLearning},
}

// MatchPriority scans the text for priority keywords, case-insensitively.
func MatchPriority(text string) (model.Priority, bool) {
	lower := strings.ToLower(text)
	for _, rule := range priorityRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Priority, true
			}
		}
	}
	return "", false
}

// MatchCategory scans the text for category keywords, case-insensitively.
func MatchCategory(text string) (model.Category, bool) {
	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Category, true
			}
		}
	}
	return "", false
}

// PriorityRules exposes the table for prompt construction.
func PriorityRules() []PriorityRule {
	return priorityRules
}

// CategoryRules exposes the table for prompt construction.
func CategoryRules() []CategoryRule {
	return categoryRules
}
