package dto

import "github.com/noah-isme/studytime-api/internal/scheduler"

// CourseInput describes a recurring class meeting in a schedule payload.
type CourseInput struct {
	Name  string   `json:"name" validate:"required"`
	Days  []string `json:"days" validate:"required,min=1,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Start string   `json:"start" validate:"required"`
	End   string   `json:"end" validate:"required"`
}

// BlockInput is the shared shape of jobs and commutes.
type BlockInput struct {
	Name  string   `json:"name" validate:"required"`
	Days  []string `json:"days" validate:"required,min=1,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Start string   `json:"start" validate:"required"`
	End   string   `json:"end" validate:"required"`
}

// BreakInput is a single-day recurring blocked window.
type BreakInput struct {
	Name  string `json:"name" validate:"required"`
	Day   string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// TaskInput is a pending assignment in a schedule payload.
type TaskInput struct {
	Name       string `json:"name" validate:"required"`
	Duration   int    `json:"duration" validate:"required,min=1"`
	Due        string `json:"due" validate:"required"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	IsExam     bool   `json:"is_exam"`
	Notes      string `json:"notes"`
}

// PreferencesInput tunes one scheduling run.
type PreferencesInput struct {
	Wake           string `json:"wake"`
	Sleep          string `json:"sleep"`
	Timezone       string `json:"timezone"`
	MaxStudyHours  int    `json:"maxStudyHours" validate:"omitempty,min=1,max=16"`
	SessionLength  int    `json:"sessionLength" validate:"omitempty,min=20,max=240"`
	BreakDuration  int    `json:"breakDuration" validate:"omitempty,min=0,max=120"`
	BetweenClasses int    `json:"betweenClasses"`
	AfterSchool    int    `json:"afterSchool"`
	UrgencyMode    string `json:"urgencyMode" validate:"omitempty,oneof=relaxed balanced urgent"`
	StudyTime      string `json:"studyTime" validate:"omitempty,oneof=morning afternoon evening any"`
	AutoSplit      bool   `json:"autoSplit"`
	PrioritizeHard bool   `json:"prioritizeHard"`
	WeekendStudy   bool   `json:"weekendStudy"`
	DeadlineBuffer int    `json:"deadlineBuffer" validate:"omitempty,min=0,max=168"`
	LunchStart     string `json:"lunchStart"`
	LunchEnd       string `json:"lunchEnd"`
	DinnerStart    string `json:"dinnerStart"`
	DinnerEnd      string `json:"dinnerEnd"`
	AutoMeals      bool   `json:"autoMeals"`
}

// GenerateScheduleRequest is the ad-hoc scheduling payload: the full weekly
// calendar, tasks and preferences in one request body.
type GenerateScheduleRequest struct {
	Courses     []CourseInput    `json:"courses" validate:"dive"`
	Tasks       []TaskInput      `json:"tasks" validate:"required,min=1,dive"`
	Breaks      []BreakInput     `json:"breaks" validate:"dive"`
	Jobs        []BlockInput     `json:"jobs" validate:"dive"`
	Commutes    []BlockInput     `json:"commutes" validate:"dive"`
	Preferences PreferencesInput `json:"preferences"`
}

// ToEngine converts the wire payload into the scheduler's input types.
func (r GenerateScheduleRequest) ToEngine() scheduler.Payload {
	payload := scheduler.Payload{
		Preferences: scheduler.Preferences{
			Wake:           r.Preferences.Wake,
			Sleep:          r.Preferences.Sleep,
			Timezone:       r.Preferences.Timezone,
			MaxStudyHours:  r.Preferences.MaxStudyHours,
			SessionLength:  r.Preferences.SessionLength,
			BreakDuration:  r.Preferences.BreakDuration,
			BetweenClasses: r.Preferences.BetweenClasses,
			AfterSchool:    r.Preferences.AfterSchool,
			UrgencyMode:    r.Preferences.UrgencyMode,
			StudyTime:      r.Preferences.StudyTime,
			AutoSplit:      r.Preferences.AutoSplit,
			PrioritizeHard: r.Preferences.PrioritizeHard,
			WeekendStudy:   r.Preferences.WeekendStudy,
			DeadlineBuffer: r.Preferences.DeadlineBuffer,
			LunchStart:     r.Preferences.LunchStart,
			LunchEnd:       r.Preferences.LunchEnd,
			DinnerStart:    r.Preferences.DinnerStart,
			DinnerEnd:      r.Preferences.DinnerEnd,
			AutoMeals:      r.Preferences.AutoMeals,
		},
	}
	for _, c := range r.Courses {
		payload.Courses = append(payload.Courses, scheduler.CourseBlock{Name: c.Name, Days: c.Days, Start: c.Start, End: c.End})
	}
	for _, t := range r.Tasks {
		payload.Tasks = append(payload.Tasks, scheduler.Task{
			Name:       t.Name,
			Duration:   t.Duration,
			Due:        t.Due,
			Difficulty: scheduler.Difficulty(t.Difficulty),
			IsExam:     t.IsExam,
			Notes:      t.Notes,
		})
	}
	for _, b := range r.Breaks {
		payload.Breaks = append(payload.Breaks, scheduler.BreakBlock{Name: b.Name, Day: b.Day, Start: b.Start, End: b.End})
	}
	for _, j := range r.Jobs {
		payload.Jobs = append(payload.Jobs, scheduler.JobBlock{Name: j.Name, Days: j.Days, Start: j.Start, End: j.End})
	}
	for _, c := range r.Commutes {
		payload.Commutes = append(payload.Commutes, scheduler.CommuteBlock{Name: c.Name, Days: c.Days, Start: c.Start, End: c.End})
	}
	return payload
}

// SaveScheduleRequest persists generated events.
type SaveScheduleRequest struct {
	Events []EventInput `json:"events" validate:"required,min=1,dive"`
}

// EventInput is one generated session to persist.
type EventInput struct {
	TaskID     string `json:"task_id"`
	Title      string `json:"title" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Start      string `json:"start" validate:"required"`
	End        string `json:"end" validate:"required"`
	Duration   int    `json:"duration" validate:"min=0"`
	Status     string `json:"status" validate:"omitempty,oneof=scheduled incomplete exam completed cancelled"`
	Difficulty string `json:"difficulty"`
	Color      string `json:"color"`
}

// StatsResponse summarises stored entities.
type StatsResponse struct {
	Courses  int       `json:"courses"`
	Tasks    TaskStats `json:"tasks"`
	Breaks   int       `json:"breaks"`
	Jobs     int       `json:"jobs"`
	Commutes int       `json:"commutes"`
}

// TaskStats splits task counts by completion.
type TaskStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// ExportScheduleRequest renders saved or provided events as a document.
type ExportScheduleRequest struct {
	Title  string       `json:"title"`
	Events []EventInput `json:"events" validate:"required,min=1,dive"`
}

// ExportJobResponse reports the state of an asynchronous export.
type ExportJobResponse struct {
	JobID    string `json:"job_id"`
	Status   string `json:"status"`
	Filename string `json:"filename,omitempty"`
	Error    string `json:"error,omitempty"`
}
