package extraction

import (
	"testing"

	"github.com/suncom1029-bot/ai-todo-manager/internal/model"
)

func TestMatchPriority(t *testing.T) {
	cases := []struct {
		in      string
		want    model.Priority
		matched bool
	}{
		{"urgent fix for the server", model.PriorityHigh, true},
		{"an IMPORTANT team meeting", model.PriorityHigh, true},
		{"must finish this quickly", model.PriorityHigh, true},
		{"read it slowly someday", model.PriorityLow, true},
		{"a relaxed walk", model.PriorityLow, true},
		{"buy milk", "", false},
		// Urgency words outrank leisure words when both appear.
		{"urgent but take it slowly", model.PriorityHigh, true},
	}

	for _, tc := range cases {
		got, ok := MatchPriority(tc.in)
		if ok != tc.matched {
			t.Errorf("MatchPriority(%q) matched = %v, want %v", tc.in, ok, tc.matched)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("MatchPriority(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestMatchCategory(t *testing.T) {
	cases := []struct {
		in      string
		want    model.Category
		matched bool
	}{
		{"prepare the quarterly report", model.CategoryWork, true},
		{"team meeting at noon", model.CategoryWork, true},
		{"go shopping with a friend", model.CategoryPersonal, true},
		{"hospital appointment", model.CategoryPersonal, true},
		{"study for the lecture", model.CategoryLearning, true},
		{"finish the book", model.CategoryLearning, true},
		{"water the plants", "", false},
	}

	for _, tc := range cases {
		got, ok := MatchCategory(tc.in)
		if ok != tc.matched {
			t.Errorf("MatchCategory(%q) matched = %v, want %v", tc.in, ok, tc.matched)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("MatchCategory(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
