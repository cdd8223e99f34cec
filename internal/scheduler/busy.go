package scheduler

import (
	"sort"
	"time"
)

func containsDay(days []string, day string) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

// dayBlocks collects every fixed commitment occupying the given date:
// courses, jobs and commutes whose day-set includes the weekday, breaks whose
// single day matches, and synthesized meal windows when autoMeals is on.
// Blocks come back sorted ascending by start. Pure function of its inputs.
func (e *Engine) dayBlocks(date time.Time, payload Payload, prefs Preferences) []BusyBlock {
	day := weekdayName(date)
	var blocks []BusyBlock

	for _, c := range payload.Courses {
		if !containsDay(c.Days, day) {
			continue
		}
		start, _ := parseClock(date, c.Start)
		end, _ := parseClock(date, c.End)
		blocks = append(blocks, BusyBlock{Start: start, End: end, Label: "Class: " + orDefault(c.Name, "Course")})
	}

	for _, j := range payload.Jobs {
		if !containsDay(j.Days, day) {
			continue
		}
		start, _ := parseClock(date, j.Start)
		end, _ := parseClock(date, j.End)
		blocks = append(blocks, BusyBlock{Start: start, End: end, Label: "Work: " + orDefault(j.Name, "Job")})
	}

	for _, b := range payload.Breaks {
		if b.Day != day {
			continue
		}
		start, _ := parseClock(date, b.Start)
		end, _ := parseClock(date, b.End)
		blocks = append(blocks, BusyBlock{Start: start, End: end, Label: "Break: " + orDefault(b.Name, "Break")})
	}

	for _, c := range payload.Commutes {
		if !containsDay(c.Days, day) {
			continue
		}
		start, _ := parseClock(date, c.Start)
		end, _ := parseClock(date, c.End)
		blocks = append(blocks, BusyBlock{Start: start, End: end, Label: "Commute: " + orDefault(c.Name, "Commute")})
	}

	if prefs.AutoMeals {
		blocks = append(blocks, mealBlock(date, prefs.LunchStart, prefs.LunchEnd, "12:00", "13:00", "Meal: Lunch"))
		blocks = append(blocks, mealBlock(date, prefs.DinnerStart, prefs.DinnerEnd, "18:00", "19:00", "Meal: Dinner"))
	}

	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Start.Before(blocks[j].Start) })
	return blocks
}

func mealBlock(date time.Time, startClock, endClock, defaultStart, defaultEnd, label string) BusyBlock {
	if startClock == "" {
		startClock = defaultStart
	}
	if endClock == "" {
		endClock = defaultEnd
	}
	start, _ := parseClock(date, startClock)
	end, _ := parseClock(date, endClock)
	return BusyBlock{Start: start, End: end, Label: label}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
