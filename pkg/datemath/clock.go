package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	clock24Re = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)
	clock12Re = regexp.MustCompile(`^(1[0-2]|0?[1-9])(?::([0-5]\d))?\s*(am|pm)$`)
)

// NormalizeClock converts a clock expression to 24-hour "HH:MM" form.
// Accepted inputs: part-of-day words ("morning"), 24-hour times ("15:00"),
// and 12-hour times ("3pm", "3:30 PM").
func NormalizeClock(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("empty clock expression")
	}

	if clock, ok := ClockForPartOfDay(s); ok {
		return clock, nil
	}

	if m := clock24Re.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%02d:%s", hour, m[2]), nil
	}

	if m := clock12Re.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := m[2]
		if minute == "" {
			minute = "00"
		}
		if m[3] == "pm" && hour != 12 {
			hour += 12
		}
		if m[3] == "am" && hour == 12 {
			hour = 0
		}
		return fmt.Sprintf("%02d:%s", hour, minute), nil
	}

	return "", fmt.Errorf("unrecognized clock expression: %q", s)
}

// splitClock parses a normalized "HH:MM" string.
func splitClock(clock string) (hour, minute int, err error) {
	m := clock24Re.FindStringSubmatch(strings.TrimSpace(clock))
	if m == nil {
		return 0, 0, fmt.Errorf("invalid clock %q", clock)
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return hour, minute, nil
}
