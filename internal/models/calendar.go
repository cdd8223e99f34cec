package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList maps a JSONB array column onto a Go string slice.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported string list source %T", src)
	}
}

// Course represents a recurring class meeting.
type Course struct {
	ID        string     `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Days      StringList `db:"days" json:"days"`
	Start     string     `db:"start_time" json:"start"`
	End       string     `db:"end_time" json:"end"`
	Color     string     `db:"color" json:"color"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// Job represents a recurring work shift.
type Job struct {
	ID        string     `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Days      StringList `db:"days" json:"days"`
	Start     string     `db:"start_time" json:"start"`
	End       string     `db:"end_time" json:"end"`
	Color     string     `db:"color" json:"color"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// Commute represents recurring travel between home, campus and work.
type Commute struct {
	ID        string     `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Days      StringList `db:"days" json:"days"`
	Start     string     `db:"start_time" json:"start"`
	End       string     `db:"end_time" json:"end"`
	Color     string     `db:"color" json:"color"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// Break is a single-weekday recurring blocked window (lunch, gym, club).
type Break struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Day       string    `db:"day" json:"day"`
	Start     string    `db:"start_time" json:"start"`
	End       string    `db:"end_time" json:"end"`
	Color     string    `db:"color" json:"color"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}
