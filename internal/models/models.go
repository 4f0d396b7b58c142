package models

import "time"

// SessionStatus enumerates the states of a focus session.
type SessionStatus string

const (
	StatusIdle     SessionStatus = "idle"
	StatusRunning  SessionStatus = "running"
	StatusFinished SessionStatus = "finished"
)

// DayFocus is one history bucket: the focus minutes recorded on a calendar date.
type DayFocus struct {
	Date    string // "2006-01-02"
	Minutes float64
}

// SessionRecord is a completed focus session kept for reports.
type SessionRecord struct {
	ID              int64
	Goal            string
	FocusSeconds    int
	DurationSeconds int
	CompletedAt     time.Time
}

// FocusMinutes returns the recorded focus time in minutes.
func (r SessionRecord) FocusMinutes() int {
	return r.FocusSeconds / 60
}
