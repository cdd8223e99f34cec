// Package scheduler implements the study-plan engine: it computes free time
// intervals from a week's fixed commitments, ranks pending tasks by deadline
// pressure and greedily carves study sessions out of a shared gap pool.
//
// A run is a pure, synchronous computation over its inputs. "Now" is captured
// once by the caller and reused for every decision inside the run, and the
// gap pool is owned by exactly one run, so two runs with the same inputs
// always produce the same output.
package scheduler

import (
	"sort"
	"time"

	"go.uber.org/zap"
)

// Engine runs scheduling passes. Safe for concurrent use: each Generate call
// builds its own gap pool and never shares state with another call.
type Engine struct {
	logger *zap.Logger
}

// NewEngine builds an engine. A nil logger is replaced with a no-op logger.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Generate produces the full schedule for the payload as seen from "now".
func (e *Engine) Generate(payload Payload, now time.Time) Result {
	prefs := payload.Preferences.withDefaults()

	if len(payload.Tasks) == 0 {
		return Result{Events: []Session{}, Summary: Summary{}}
	}

	var examTasks, studyTasks []Task
	for _, task := range payload.Tasks {
		if task.IsExam {
			examTasks = append(examTasks, task)
		} else {
			studyTasks = append(studyTasks, task)
		}
	}

	events := make([]Session, 0, len(payload.Tasks))
	for _, exam := range examTasks {
		events = append(events, e.placeExam(exam, payload, now))
	}

	summary := Summary{TotalTasks: len(payload.Tasks), Exams: len(examTasks)}
	if len(studyTasks) == 0 {
		return Result{Events: events, Summary: summary}
	}

	type rankedTask struct {
		task    Task
		urgency urgencyInfo
	}
	ranked := make([]rankedTask, 0, len(studyTasks))
	horizon := now
	for _, task := range studyTasks {
		u := computeUrgency(task, now, prefs)
		if !u.ParsedDue {
			e.logger.Warn("unparsable due date, defaulting to one week out", zap.String("task", task.Name))
		}
		if u.Deadline.After(horizon) {
			horizon = u.Deadline
		}
		ranked = append(ranked, rankedTask{task: task, urgency: u})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].urgency.Priority < ranked[j].urgency.Priority })

	pool := newGapPool(now, e.buildInventory(now, horizon, payload, prefs))
	dayLoad := make(map[string]int)

	e.logger.Info("scheduling run",
		zap.Int("study_tasks", len(studyTasks)),
		zap.Int("exams", len(examTasks)),
		zap.Int("gaps", len(pool.gaps)),
		zap.Time("horizon", horizon),
	)

	for _, entry := range ranked {
		sessions := e.placeTask(entry.task, entry.urgency, pool, dayLoad, prefs)
		for _, session := range sessions {
			switch session.Status {
			case StatusScheduled:
				summary.Scheduled++
			case StatusIncomplete:
				summary.Incomplete++
			}
		}
		events = append(events, sessions...)
	}

	return Result{Events: events, Summary: summary}
}

// NowIn resolves the current instant in the preferences' timezone, falling
// back to the host location when the zone name does not resolve.
func NowIn(timezone string) time.Time {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err == nil {
			return time.Now().In(loc)
		}
	}
	return time.Now()
}
