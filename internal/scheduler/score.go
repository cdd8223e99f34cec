package scheduler

import "time"

// Session-type preference classes for a task.
const (
	prefBetweenClasses = "between_classes"
	prefAfterSchool    = "after_school"
	prefFlexible       = "flexible"
)

// classifyTask maps a task onto its ideal session context: short, light work
// suits class breaks; long or hard work needs an uninterrupted block later in
// the day.
func classifyTask(task Task) string {
	duration := task.Duration
	if duration >= 120 || (task.Difficulty == DifficultyHard && duration >= 90) {
		return prefAfterSchool
	}
	if duration <= 70 && task.Difficulty != DifficultyHard {
		return prefBetweenClasses
	}
	return prefFlexible
}

// scoreGap ranks one (gap, task) pairing; lower wins, ties go to the earlier
// gap because the pool is scanned in chronological order.
func scoreGap(gap *Gap, task Task, u urgencyInfo, remaining int, dayLoad map[string]int, prefs Preferences) float64 {
	rule := ruleFor(task.Difficulty)
	taskPref := classifyTask(task)
	score := 0.0

	// Chronological pull: urgent work pays heavily for every hour it drifts
	// into the future; relaxed distant work barely cares.
	weight := 1.0
	if u.urgent() {
		weight = 6.0 * modeMultiplier(prefs.UrgencyMode)
	}
	score += gap.HoursFromNow * weight
	if gap.Today && u.urgent() {
		score -= 500
	}

	// Whole-task fit is worth a lot: one sitting beats fragmenting.
	usableEnd := minTime(gap.End, u.Deadline)
	if minutesBetween(gap.Start, usableEnd) >= remaining {
		score -= 300
	}

	// Context match only matters when there is slack to be picky.
	if u.Level == UrgencyNormal {
		switch {
		case taskPref == prefBetweenClasses && gap.BetweenClasses:
			score -= 50
		case taskPref == prefAfterSchool && (gap.AfterSchool || gap.Bucket == "evening" || gap.Bucket == "night"):
			score -= 50
		case taskPref == prefBetweenClasses && (gap.Bucket == "evening" || gap.Bucket == "night"):
			score += 30
		}
		if gap.BetweenClasses && task.Duration > prefs.BetweenClasses {
			score += 40
		}
	}

	// Daily load: stop piling non-urgent work onto an already full day.
	if u.Level == UrgencyNormal {
		load := dayLoad[dayKey(gap.Date)]
		dailyCap := prefs.MaxStudyHours * 60
		switch {
		case load >= dailyCap:
			score += 500
		case load >= 180:
			score += 300
		case load >= 120:
			score += 150
		}
	}

	// Size fit against the difficulty's session bounds.
	switch {
	case gap.Duration >= rule.MaxSession:
		score -= 20
	case gap.Duration >= rule.MinSession:
		score += 10
	default:
		score += 200
	}

	// Time-of-day preference.
	if prefs.StudyTime != "any" {
		if gap.Bucket == prefs.StudyTime {
			score -= 40
		} else {
			score += 15
		}
	}

	// Hard work lands best on a fresh morning brain.
	if prefs.PrioritizeHard && task.Difficulty == DifficultyHard && gap.Bucket == "morning" {
		score -= 30
	}

	return score
}

func dayKey(date time.Time) string {
	return date.Format("2006-01-02")
}
