package models

import "time"

// Preferences stores per-user scheduling preferences; one row per user.
type Preferences struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"user_id"`
	Wake           string    `db:"wake" json:"wake"`
	Sleep          string    `db:"sleep" json:"sleep"`
	Timezone       string    `db:"timezone" json:"timezone"`
	MaxStudyHours  int       `db:"max_study_hours" json:"maxStudyHours"`
	SessionLength  int       `db:"session_length" json:"sessionLength"`
	BreakDuration  int       `db:"break_duration" json:"breakDuration"`
	BetweenClasses int       `db:"between_classes" json:"betweenClasses"`
	AfterSchool    int       `db:"after_school" json:"afterSchool"`
	UrgencyMode    string    `db:"urgency_mode" json:"urgencyMode"`
	StudyTime      string    `db:"study_time" json:"studyTime"`
	AutoSplit      bool      `db:"auto_split" json:"autoSplit"`
	PrioritizeHard bool      `db:"prioritize_hard" json:"prioritizeHard"`
	WeekendStudy   bool      `db:"weekend_study" json:"weekendStudy"`
	DeadlineBuffer int       `db:"deadline_buffer" json:"deadlineBuffer"`
	LunchStart     string    `db:"lunch_start" json:"lunchStart"`
	LunchEnd       string    `db:"lunch_end" json:"lunchEnd"`
	DinnerStart    string    `db:"dinner_start" json:"dinnerStart"`
	DinnerEnd      string    `db:"dinner_end" json:"dinnerEnd"`
	AutoMeals      bool      `db:"auto_meals" json:"autoMeals"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// DefaultPreferences returns the preference set used before a user saves
// their own.
func DefaultPreferences(userID string) Preferences {
	return Preferences{
		UserID:         userID,
		Wake:           "08:00",
		Sleep:          "23:00",
		Timezone:       "America/New_York",
		MaxStudyHours:  6,
		SessionLength:  60,
		BreakDuration:  15,
		BetweenClasses: 30,
		AfterSchool:    120,
		UrgencyMode:    "balanced",
		StudyTime:      "afternoon",
		AutoSplit:      true,
		PrioritizeHard: true,
		WeekendStudy:   true,
		DeadlineBuffer: 12,
		LunchStart:     "12:00",
		LunchEnd:       "13:00",
		DinnerStart:    "18:00",
		DinnerEnd:      "19:00",
		AutoMeals:      true,
	}
}
