package scheduler

import (
	"strings"
	"time"
)

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Monday",
	time.Tuesday:   "Tuesday",
	time.Wednesday: "Wednesday",
	time.Thursday:  "Thursday",
	time.Friday:    "Friday",
	time.Saturday:  "Saturday",
	time.Sunday:    "Sunday",
}

func weekdayName(t time.Time) string {
	return weekdayNames[t.Weekday()]
}

// parseClock resolves an HH:MM string onto the given date. Malformed input
// yields 08:00 on that date and ok=false so callers can surface the issue.
func parseClock(date time.Time, clock string) (time.Time, bool) {
	parsed, err := time.Parse("15:04", strings.TrimSpace(clock))
	if err != nil {
		return time.Date(date.Year(), date.Month(), date.Day(), 8, 0, 0, 0, date.Location()), false
	}
	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), true
}

var dueLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseDue parses a task deadline. Strings without an offset are read in the
// reference location. Unparsable input defaults to reference+7d, ok=false.
func parseDue(raw string, reference time.Time) (time.Time, bool) {
	raw = strings.TrimSpace(strings.Replace(raw, "Z", "+00:00", 1))
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(reference.Location()), true
	}
	for _, layout := range dueLayouts[1:] {
		if t, err := time.ParseInLocation(layout, raw, reference.Location()); err == nil {
			return t, true
		}
	}
	return reference.Add(7 * 24 * time.Hour), false
}

func minutesBetween(a, b time.Time) int {
	return int(b.Sub(a).Minutes())
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// dateOnly truncates to midnight in t's location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// clampTodayStart rounds "now" up to the next five-minute mark and adds the
// transition buffer, so the first session of the day never starts mid-minute
// or immediately on top of the current instant.
func clampTodayStart(now time.Time) time.Time {
	rounded := now.Truncate(5 * time.Minute)
	if rounded.Before(now) {
		rounded = rounded.Add(5 * time.Minute)
	}
	return rounded.Add(todayBuffer)
}
