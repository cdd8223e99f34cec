package scheduler

import (
	"sort"
	"time"

	"go.uber.org/zap"
)

func bucketFor(t time.Time) string {
	switch hour := t.Hour(); {
	case hour < 12:
		return "morning"
	case hour < 17:
		return "afternoon"
	case hour < 21:
		return "evening"
	default:
		return "night"
	}
}

func isClassLabel(label string) bool {
	return len(label) >= 6 && label[:6] == "Class:"
}

// findGaps returns the free intervals of one date, subtracting busy blocks
// from the wake/sleep window. Dates before today yield nothing; today's
// window is clamped so no gap starts in the past.
func (e *Engine) findGaps(date time.Time, payload Payload, prefs Preferences, now time.Time) []*Gap {
	if dateOnly(date).Before(dateOnly(now)) {
		return nil
	}
	if !prefs.WeekendStudy {
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			return nil
		}
	}

	dayStart, _ := parseClock(date, prefs.Wake)
	dayEnd, _ := parseClock(date, prefs.Sleep)
	today := sameDate(date, now)
	if today {
		dayStart = maxTime(dayStart, clampTodayStart(now))
		if !dayStart.Before(dayEnd) {
			return nil
		}
	}

	blocks := e.dayBlocks(date, payload, prefs)

	var gaps []*Gap
	cursor := dayStart
	for i, block := range blocks {
		if !block.End.After(cursor) {
			continue
		}
		if cursor.Before(block.Start) && minutesBetween(cursor, block.Start) >= MinUsableBlock {
			before := "wake up"
			if i > 0 {
				before = blocks[i-1].Label
			}
			gaps = append(gaps, e.newGap(date, cursor, block.Start, before, block.Label, now))
		}
		cursor = maxTime(cursor, block.End)
	}

	if cursor.Before(dayEnd) && minutesBetween(cursor, dayEnd) >= MinUsableBlock {
		before := "wake up"
		if len(blocks) > 0 {
			before = blocks[len(blocks)-1].Label
		}
		gaps = append(gaps, e.newGap(date, cursor, dayEnd, before, "sleep", now))
	}

	return gaps
}

func (e *Engine) newGap(date, start, end time.Time, before, after string, now time.Time) *Gap {
	return &Gap{
		Date:           dateOnly(date),
		Start:          start,
		End:            end,
		Duration:       minutesBetween(start, end),
		Before:         before,
		After:          after,
		BetweenClasses: isClassLabel(before) && isClassLabel(after),
		AfterSchool:    isClassLabel(before) && !isClassLabel(after),
		Bucket:         bucketFor(start),
		Today:          sameDate(date, now),
		HoursFromNow:   start.Sub(now).Hours(),
	}
}

// buildInventory walks every date from now through the horizon and collects
// the day gaps into one chronologically sorted pool. The ascending order is
// what makes the placer's full-fit pass prefer the earliest free time.
func (e *Engine) buildInventory(now, horizon time.Time, payload Payload, prefs Preferences) []*Gap {
	var gaps []*Gap
	for cursor := dateOnly(now); !cursor.After(dateOnly(horizon)); cursor = cursor.AddDate(0, 0, 1) {
		gaps = append(gaps, e.findGaps(cursor, payload, prefs, now)...)
	}
	sort.Slice(gaps, func(i, j int) bool { return gaps[i].Start.Before(gaps[j].Start) })

	if today := countToday(gaps); today > 0 {
		e.logger.Debug("gap inventory built",
			zap.Int("gaps", len(gaps)),
			zap.Int("today", today),
		)
	}
	return gaps
}

func countToday(gaps []*Gap) int {
	n := 0
	for _, g := range gaps {
		if g.Today {
			n++
		}
	}
	return n
}
