package scheduler

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
)

// placeTask carves sessions for one study task out of the shared pool.
//
// It runs a two-phase search: first a chronological scan for a single gap
// that swallows the whole task, then (when allowed) a scored splitting loop.
// Whatever cannot be placed before the adjusted deadline is reported through
// a zero-duration incomplete marker rather than an error.
func (e *Engine) placeTask(task Task, u urgencyInfo, pool *gapPool, dayLoad map[string]int, prefs Preferences) []Session {
	rule := ruleFor(task.Difficulty)
	remaining := task.Duration
	color := colorForUrgency(u.Level)

	e.logger.Debug("placing task",
		zap.String("task", task.Name),
		zap.Int("duration", remaining),
		zap.String("urgency", u.Level),
	)

	// Phase 1: whole task in one sitting, earliest gap wins.
	for _, gap := range pool.gaps {
		if !usableGap(gap, u) {
			continue
		}
		usableEnd := minTime(gap.End, u.Deadline)
		if minutesBetween(gap.Start, usableEnd) < remaining {
			continue
		}
		if dayLoad[dayKey(gap.Date)]+remaining > prefs.MaxStudyHours*60 {
			continue
		}

		start := gap.Start
		end := start.Add(time.Duration(remaining) * time.Minute)
		session := e.newSession(task, task.Name, start, end, remaining, color, u.Level)
		dayLoad[dayKey(gap.Date)] += remaining
		pool.consume(gap, end, u.Deadline, 0)
		return []Session{session}
	}

	if !prefs.AutoSplit {
		return []Session{e.incompleteMarker(task, u, remaining)}
	}

	// Phase 2: split into scored chunks.
	var sessions []Session
	sessionNum := 1
	for remaining > 0 {
		type scored struct {
			score float64
			gap   *Gap
		}
		var candidates []scored
		for _, gap := range pool.gaps {
			if !usableGap(gap, u) {
				continue
			}
			candidates = append(candidates, scored{scoreGap(gap, task, u, remaining, dayLoad, prefs), gap})
		}
		if len(candidates) == 0 {
			break
		}
		sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score < candidates[j].score })

		placed := false
		for rank, candidate := range candidates {
			gap := candidate.gap
			usableEnd := minTime(gap.End, u.Deadline)
			span := minutesBetween(gap.Start, usableEnd)
			if span < MinUsableBlock {
				continue
			}

			chunk := remaining
			if span < chunk {
				chunk = span
			}
			if rule.MaxSession < chunk {
				chunk = rule.MaxSession
			}
			if prefs.SessionLength < chunk {
				chunk = prefs.SessionLength
			}
			if capLeft := prefs.MaxStudyHours*60 - dayLoad[dayKey(gap.Date)]; capLeft < chunk {
				chunk = capLeft
			}
			if chunk < MinUsableBlock {
				continue
			}
			// Undersized chunks are a last resort, not a first choice.
			if chunk < rule.MinSession && remaining > rule.MinSession && rank < len(candidates)-1 {
				continue
			}

			start := gap.Start
			end := start.Add(time.Duration(chunk) * time.Minute)
			title := fmt.Sprintf("%s (Session %d)", task.Name, sessionNum)
			sessions = append(sessions, e.newSession(task, title, start, end, chunk, color, u.Level))

			remaining -= chunk
			sessionNum++
			dayLoad[dayKey(gap.Date)] += chunk
			pool.consume(gap, end, u.Deadline, time.Duration(prefs.BreakDuration)*time.Minute)
			placed = true
			break
		}
		if !placed {
			break
		}
	}

	if remaining > 0 {
		e.logger.Warn("task not fully schedulable",
			zap.String("task", task.Name),
			zap.Int("missing_minutes", remaining),
		)
		sessions = append(sessions, e.incompleteMarker(task, u, remaining))
	}
	return sessions
}

func (e *Engine) newSession(task Task, title string, start, end time.Time, duration int, color, urgency string) Session {
	return Session{
		TaskID:     task.ID,
		Title:      title,
		Day:        weekdayName(start),
		Date:       start.Format("01/02/2006"),
		Start:      start.Format("15:04"),
		End:        end.Format("15:04"),
		Duration:   duration,
		Difficulty: task.Difficulty,
		Color:      color,
		Status:     StatusScheduled,
		Urgency:    urgency,
	}
}

// incompleteMarker is the reportable "could not fit" outcome: a zero-length
// session pinned at the adjusted deadline carrying the shortfall.
func (e *Engine) incompleteMarker(task Task, u urgencyInfo, missing int) Session {
	return Session{
		TaskID:   task.ID,
		Title:    fmt.Sprintf("INCOMPLETE: %s (%dmin missing)", task.Name, missing),
		Day:      weekdayName(u.Deadline),
		Date:     u.Deadline.Format("01/02/2006"),
		Start:    u.Deadline.Format("15:04"),
		End:      u.Deadline.Format("15:04"),
		Duration: 0,
		Color:    colorIncomplete,
		Status:   StatusIncomplete,
		Urgency:  u.Level,
		Missing:  missing,
	}
}
