package dto

// CreateCourseRequest payload for adding a recurring class.
type CreateCourseRequest struct {
	Name  string   `json:"name" validate:"required"`
	Days  []string `json:"days" validate:"required,min=1,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Start string   `json:"start" validate:"required"`
	End   string   `json:"end" validate:"required"`
	Color string   `json:"color"`
}

// UpdateCourseRequest carries partial course updates.
type UpdateCourseRequest struct {
	Name  *string  `json:"name"`
	Days  []string `json:"days" validate:"omitempty,min=1,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Start *string  `json:"start"`
	End   *string  `json:"end"`
	Color *string  `json:"color"`
}

// CreateRecurringBlockRequest payload for jobs and commutes.
type CreateRecurringBlockRequest struct {
	Name  string   `json:"name" validate:"required"`
	Days  []string `json:"days" validate:"required,min=1,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Start string   `json:"start" validate:"required"`
	End   string   `json:"end" validate:"required"`
	Color string   `json:"color"`
}

// CreateBreakRequest payload for a single-day blocked window.
type CreateBreakRequest struct {
	Name  string `json:"name" validate:"required"`
	Day   string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
	Color string `json:"color"`
}
