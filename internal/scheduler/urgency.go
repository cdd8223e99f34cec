package scheduler

import "time"

// urgencyInfo is the run-scoped annotation computed per task. It drives both
// the task ordering and the per-gap usability checks.
type urgencyInfo struct {
	Deadline      time.Time
	HoursUntilDue float64
	DueToday      bool
	DueTomorrow   bool
	Overdue       bool
	Level         string
	Priority      float64
	ParsedDue     bool
}

func modeMultiplier(mode string) float64 {
	switch mode {
	case "relaxed":
		return 0.5
	case "urgent":
		return 2.0
	default:
		return 1.0
	}
}

// computeUrgency classifies a task's deadline pressure. The deadline is the
// parsed due instant minus the configured buffer, so work is forced to finish
// ahead of the literal due time. Lower priority values sort first.
func computeUrgency(task Task, now time.Time, prefs Preferences) urgencyInfo {
	due, parsed := parseDue(task.Due, now)
	deadline := due.Add(-time.Duration(prefs.DeadlineBuffer) * time.Hour)

	info := urgencyInfo{
		Deadline:      deadline,
		HoursUntilDue: deadline.Sub(now).Hours(),
		ParsedDue:     parsed,
	}
	info.Overdue = info.HoursUntilDue < 0
	info.DueToday = !info.Overdue && sameDate(deadline, now)
	info.DueTomorrow = !info.Overdue && sameDate(deadline, now.AddDate(0, 0, 1))

	switch {
	case info.Overdue:
		info.Level = UrgencyOverdue
		info.Priority = -1000 + info.HoursUntilDue
	case info.DueToday:
		info.Level = UrgencyToday
		offset := 10.0
		switch task.Difficulty {
		case DifficultyHard:
			offset = 0
		case DifficultyEasy:
			offset = 20
		}
		info.Priority = offset + info.HoursUntilDue*modeMultiplier(prefs.UrgencyMode)
	case info.DueTomorrow:
		info.Level = UrgencyTomorrow
		info.Priority = 100 + info.HoursUntilDue
	default:
		info.Level = UrgencyNormal
		info.Priority = 1000 + (info.HoursUntilDue/24)*10
	}

	if prefs.PrioritizeHard && task.Difficulty == DifficultyHard {
		info.Priority *= 0.9
	}
	return info
}

func (u urgencyInfo) urgent() bool {
	return u.Overdue || u.DueToday || u.DueTomorrow
}

// usableGap reports whether any part of the gap can serve this task before
// its adjusted deadline.
func usableGap(gap *Gap, u urgencyInfo) bool {
	if !gap.Start.Before(u.Deadline) {
		return false
	}
	usableEnd := minTime(gap.End, u.Deadline)
	return minutesBetween(gap.Start, usableEnd) >= MinUsableBlock
}

func colorForUrgency(level string) string {
	switch level {
	case UrgencyToday, UrgencyOverdue:
		return colorToday
	case UrgencyTomorrow:
		return colorTomorrow
	default:
		return colorNormal
	}
}
