package datemath

import "time"

// Context is the resolved temporal vocabulary for a reference instant. It is
// injected verbatim into extraction prompts so the model anchors relative
// expressions correctly.
type Context struct {
	Now              time.Time
	Today            time.Time // start of the current day
	Tomorrow         time.Time
	DayAfterTomorrow time.Time
	ThisFriday       time.Time // nearest Friday at or after Now
	NextMonday       time.Time // next Monday strictly after Now
}

// TimeSlot is a named part of the day with its canonical clock time.
type TimeSlot struct {
	Name  string
	Clock string // 24-hour "HH:MM"
}

// partOfDay maps part-of-day vocabulary onto fixed clock times.
var partOfDay = map[string]string{
	"morning":   "09:00",
	"noon":      "12:00",
	"afternoon": "14:00",
	"evening":   "18:00",
	"night":     "21:00",
}

// PartsOfDay returns the part-of-day table in a fixed order, for embedding
// into prompts.
func PartsOfDay() []TimeSlot {
	return []TimeSlot{
		{Name: "morning", Clock: "09:00"},
		{Name: "noon", Clock: "12:00"},
		{Name: "afternoon", Clock: "14:00"},
		{Name: "evening", Clock: "18:00"},
		{Name: "night", Clock: "21:00"},
	}
}

// ClockForPartOfDay resolves a part-of-day word to its 24-hour clock time.
func ClockForPartOfDay(word string) (string, bool) {
	clock, ok := partOfDay[word]
	return clock, ok
}
