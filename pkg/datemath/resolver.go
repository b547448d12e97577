package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the ISO date layout used throughout prompts and parsing.
const DateFormat = "2006-01-02"

// Resolver converts relative date/time expressions to absolute values in a
// fixed timezone. It is pure: every method is anchored on a caller-supplied
// reference instant and never consults the wall clock.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string,
// e.g. "Asia/Seoul".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// Location returns the resolver's timezone.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// Resolve builds the full temporal context for the given reference instant.
func (r *Resolver) Resolve(now time.Time) Context {
	now = now.In(r.location)
	today := r.StartOfDay(now)

	return Context{
		Now:              now,
		Today:            today,
		Tomorrow:         today.AddDate(0, 0, 1),
		DayAfterTomorrow: today.AddDate(0, 0, 2),
		ThisFriday:       r.weekdayAtOrAfter(today, time.Friday),
		NextMonday:       r.weekdayStrictlyAfter(today, time.Monday),
	}
}

// Parse converts a relative date phrase to an absolute start-of-day time.
func (r *Resolver) Parse(relative string, now time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return r.StartOfDay(now), nil
	case "tomorrow":
		return r.StartOfDay(now.AddDate(0, 0, 1)), nil
	case "day after tomorrow":
		return r.StartOfDay(now.AddDate(0, 0, 2)), nil
	case "yesterday":
		return r.StartOfDay(now.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return r.parseInDuration(relative, now)
	}

	if strings.HasPrefix(relative, "next ") {
		day, ok := weekdayByName(strings.TrimPrefix(relative, "next "))
		if !ok {
			return now, fmt.Errorf("unknown weekday in %q", relative)
		}
		return r.weekdayStrictlyAfter(r.StartOfDay(now), day), nil
	}

	if strings.HasPrefix(relative, "this ") {
		day, ok := weekdayByName(strings.TrimPrefix(relative, "this "))
		if !ok {
			return now, fmt.Errorf("unknown weekday in %q", relative)
		}
		return r.weekdayAtOrAfter(r.StartOfDay(now), day), nil
	}

	return now, fmt.Errorf("unrecognized relative date: %q", relative)
}

var inDurationRe = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (r *Resolver) parseInDuration(relative string, now time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return now, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])

	switch {
	case strings.HasPrefix(matches[2], "day"):
		return r.StartOfDay(now.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(matches[2], "week"):
		return r.StartOfDay(now.AddDate(0, 0, amount*7)), nil
	default:
		return r.StartOfDay(now.AddDate(0, amount, 0)), nil
	}
}

// StartOfDay returns midnight at the start of the given day in the
// resolver's timezone.
func (r *Resolver) StartOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}

// EndOfDay returns 23:59:59 of the day containing t.
func (r *Resolver) EndOfDay(t time.Time) time.Time {
	return r.StartOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// StartOfWeek returns midnight of the Monday of the ISO week containing t.
func (r *Resolver) StartOfWeek(t time.Time) time.Time {
	day := r.StartOfDay(t)
	weekday := int(day.Weekday())
	if weekday == 0 { // Sunday belongs to the preceding ISO week
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

// At combines a date with a 24-hour "HH:MM" clock string in the resolver's
// timezone.
func (r *Resolver) At(date time.Time, clock string) (time.Time, error) {
	hour, minute, err := splitClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	date = date.In(r.location)
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, r.location), nil
}

func (r *Resolver) weekdayAtOrAfter(day time.Time, target time.Weekday) time.Time {
	delta := (int(target) - int(day.Weekday()) + 7) % 7
	return day.AddDate(0, 0, delta)
}

func (r *Resolver) weekdayStrictlyAfter(day time.Time, target time.Weekday) time.Time {
	delta := (int(target) - int(day.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return day.AddDate(0, 0, delta)
}

func weekdayByName(name string) (time.Weekday, bool) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
	day, ok := weekdays[strings.TrimSpace(name)]
	return day, ok
}
