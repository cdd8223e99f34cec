package dto

// CreateTaskRequest payload for adding a task or exam.
type CreateTaskRequest struct {
	Name       string `json:"name" validate:"required"`
	Duration   int    `json:"duration" validate:"required,min=1"`
	Due        string `json:"due" validate:"required"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	IsExam     bool   `json:"is_exam"`
	CourseID   string `json:"course_id"`
	Notes      string `json:"notes"`
	Color      string `json:"color"`
}

// UpdateTaskRequest carries partial task updates.
type UpdateTaskRequest struct {
	Name       *string `json:"name"`
	Duration   *int    `json:"duration" validate:"omitempty,min=1"`
	Due        *string `json:"due"`
	Difficulty *string `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	IsExam     *bool   `json:"is_exam"`
	Notes      *string `json:"notes"`
	Color      *string `json:"color"`
	Completed  *bool   `json:"completed"`
}

// TaskQuery mirrors supported listing filters.
type TaskQuery struct {
	Completed *bool
}

// UpdatePreferencesRequest replaces the stored preference set. All fields
// are required so a partial body cannot silently reset tuning knobs.
type UpdatePreferencesRequest struct {
	Wake           string `json:"wake" validate:"required"`
	Sleep          string `json:"sleep" validate:"required"`
	Timezone       string `json:"timezone" validate:"required"`
	MaxStudyHours  int    `json:"maxStudyHours" validate:"required,min=1,max=16"`
	SessionLength  int    `json:"sessionLength" validate:"required,min=20,max=240"`
	BreakDuration  int    `json:"breakDuration" validate:"min=0,max=120"`
	BetweenClasses int    `json:"betweenClasses" validate:"min=0"`
	AfterSchool    int    `json:"afterSchool" validate:"min=0"`
	UrgencyMode    string `json:"urgencyMode" validate:"required,oneof=relaxed balanced urgent"`
	StudyTime      string `json:"studyTime" validate:"required,oneof=morning afternoon evening any"`
	AutoSplit      bool   `json:"autoSplit"`
	PrioritizeHard bool   `json:"prioritizeHard"`
	WeekendStudy   bool   `json:"weekendStudy"`
	DeadlineBuffer int    `json:"deadlineBuffer" validate:"min=0,max=168"`
	LunchStart     string `json:"lunchStart"`
	LunchEnd       string `json:"lunchEnd"`
	DinnerStart    string `json:"dinnerStart"`
	DinnerEnd      string `json:"dinnerEnd"`
	AutoMeals      bool   `json:"autoMeals"`
}
