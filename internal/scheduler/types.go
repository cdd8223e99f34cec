package scheduler

import "time"

// Difficulty grades how demanding a task is and drives session sizing.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// DifficultyRule bounds session length per difficulty grade.
type DifficultyRule struct {
	MinSession int
	MaxSession int
	Weight     float64
}

var difficultyRules = map[Difficulty]DifficultyRule{
	DifficultyEasy:   {MinSession: 20, MaxSession: 90, Weight: 1.0},
	DifficultyMedium: {MinSession: 30, MaxSession: 120, Weight: 1.5},
	DifficultyHard:   {MinSession: 45, MaxSession: 180, Weight: 2.0},
}

func ruleFor(d Difficulty) DifficultyRule {
	if rule, ok := difficultyRules[d]; ok {
		return rule
	}
	return difficultyRules[DifficultyMedium]
}

// MinUsableBlock is the shortest free interval worth scheduling into, in minutes.
const MinUsableBlock = 20

const (
	defaultWake  = "08:00"
	defaultSleep = "23:00"

	// todayBuffer keeps a transition window between "now" and the first
	// schedulable minute of the current day.
	todayBuffer = 15 * time.Minute
)

// Session status values.
const (
	StatusScheduled  = "scheduled"
	StatusIncomplete = "incomplete"
	StatusExam       = "exam"
)

// Urgency levels, ordered from most to least pressing.
const (
	UrgencyOverdue  = "OVERDUE"
	UrgencyToday    = "URGENT_TODAY"
	UrgencyTomorrow = "URGENT_TOMORROW"
	UrgencyNormal   = "NORMAL"
)

// Event colors matching the calendar frontend palette.
const (
	colorToday      = "#F44336"
	colorTomorrow   = "#FF9800"
	colorNormal     = "#4CAF50"
	colorExam       = "#E91E63"
	colorIncomplete = "#FF5722"
)

// CourseBlock is a recurring class meeting.
type CourseBlock struct {
	Name  string   `json:"name"`
	Days  []string `json:"days"`
	Start string   `json:"start"`
	End   string   `json:"end"`
}

// JobBlock is a recurring work shift.
type JobBlock struct {
	Name  string   `json:"name"`
	Days  []string `json:"days"`
	Start string   `json:"start"`
	End   string   `json:"end"`
}

// CommuteBlock is a recurring travel window.
type CommuteBlock struct {
	Name  string   `json:"name"`
	Days  []string `json:"days"`
	Start string   `json:"start"`
	End   string   `json:"end"`
}

// BreakBlock is a one-weekday recurring blocked window (lunch, gym, ...).
type BreakBlock struct {
	Name  string `json:"name"`
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Task is a pending assignment to place on the calendar. Read-only to a run.
type Task struct {
	ID         string     `json:"id,omitempty"`
	Name       string     `json:"name"`
	Duration   int        `json:"duration"`
	Due        string     `json:"due"`
	Difficulty Difficulty `json:"difficulty"`
	IsExam     bool       `json:"is_exam"`
	Notes      string     `json:"notes,omitempty"`
}

// Preferences tune a scheduling run. Zero values fall back to sane defaults
// via withDefaults.
type Preferences struct {
	Wake           string `json:"wake"`
	Sleep          string `json:"sleep"`
	Timezone       string `json:"timezone"`
	MaxStudyHours  int    `json:"maxStudyHours"`
	SessionLength  int    `json:"sessionLength"`
	BreakDuration  int    `json:"breakDuration"`
	BetweenClasses int    `json:"betweenClasses"`
	AfterSchool    int    `json:"afterSchool"`
	UrgencyMode    string `json:"urgencyMode"`
	StudyTime      string `json:"studyTime"`
	AutoSplit      bool   `json:"autoSplit"`
	PrioritizeHard bool   `json:"prioritizeHard"`
	WeekendStudy   bool   `json:"weekendStudy"`
	DeadlineBuffer int    `json:"deadlineBuffer"`
	LunchStart     string `json:"lunchStart"`
	LunchEnd       string `json:"lunchEnd"`
	DinnerStart    string `json:"dinnerStart"`
	DinnerEnd      string `json:"dinnerEnd"`
	AutoMeals      bool   `json:"autoMeals"`
}

func (p Preferences) withDefaults() Preferences {
	if p.Wake == "" {
		p.Wake = defaultWake
	}
	if p.Sleep == "" {
		p.Sleep = defaultSleep
	}
	if p.MaxStudyHours <= 0 {
		p.MaxStudyHours = 6
	}
	if p.SessionLength <= 0 {
		p.SessionLength = 60
	}
	if p.BreakDuration < 0 {
		p.BreakDuration = 0
	}
	if p.BetweenClasses <= 0 {
		p.BetweenClasses = 30
	}
	if p.AfterSchool <= 0 {
		p.AfterSchool = 120
	}
	if p.UrgencyMode == "" {
		p.UrgencyMode = "balanced"
	}
	if p.StudyTime == "" {
		p.StudyTime = "any"
	}
	if p.DeadlineBuffer < 0 {
		p.DeadlineBuffer = 0
	}
	return p
}

// Payload is the full input of one scheduling run.
type Payload struct {
	Courses     []CourseBlock  `json:"courses"`
	Tasks       []Task         `json:"tasks"`
	Breaks      []BreakBlock   `json:"breaks"`
	Jobs        []JobBlock     `json:"jobs"`
	Commutes    []CommuteBlock `json:"commutes"`
	Preferences Preferences    `json:"preferences"`
}

// BusyBlock is one fixed commitment on a concrete date.
type BusyBlock struct {
	Start time.Time
	End   time.Time
	Label string
}

// Gap is a free interval on a date. Gaps are owned by one run and mutated in
// place as sessions consume them.
type Gap struct {
	Date           time.Time
	Start          time.Time
	End            time.Time
	Duration       int
	Before         string
	After          string
	BetweenClasses bool
	AfterSchool    bool
	Bucket         string
	Today          bool
	HoursFromNow   float64
}

// Session is one placed block of study (or exam) time.
type Session struct {
	TaskID     string     `json:"task_id,omitempty"`
	Title      string     `json:"title"`
	Day        string     `json:"day"`
	Date       string     `json:"date"`
	Start      string     `json:"start"`
	End        string     `json:"end"`
	Duration   int        `json:"duration"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Color      string     `json:"color"`
	Status     string     `json:"status"`
	Urgency    string     `json:"urgency,omitempty"`
	Missing    int        `json:"missing,omitempty"`
}

// Summary aggregates one run's outcome counts.
type Summary struct {
	TotalTasks int `json:"total_tasks"`
	Scheduled  int `json:"scheduled"`
	Incomplete int `json:"incomplete"`
	Exams      int `json:"exams"`
}

// Result is the full output of one scheduling run.
type Result struct {
	Events  []Session `json:"events"`
	Summary Summary   `json:"summary"`
}
