package testutil

import (
	"time"

	"github.com/akyairhashvil/zenith/internal/models"
)

// SessionRecordBuilder provides fluent API for creating test session records.
type SessionRecordBuilder struct {
	record models.SessionRecord
}

func NewSessionRecord() *SessionRecordBuilder {
	return &SessionRecordBuilder{
		record: models.SessionRecord{
			Goal:            "Test Goal",
			FocusSeconds:    1500,
			DurationSeconds: 1500,
			CompletedAt:     time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local),
		},
	}
}

func (b *SessionRecordBuilder) WithGoal(goal string) *SessionRecordBuilder {
	b.record.Goal = goal
	return b
}

func (b *SessionRecordBuilder) WithFocusSeconds(s int) *SessionRecordBuilder {
	b.record.FocusSeconds = s
	return b
}

func (b *SessionRecordBuilder) WithDurationSeconds(s int) *SessionRecordBuilder {
	b.record.DurationSeconds = s
	return b
}

func (b *SessionRecordBuilder) CompletedAt(at time.Time) *SessionRecordBuilder {
	b.record.CompletedAt = at
	return b
}

func (b *SessionRecordBuilder) Build() models.SessionRecord {
	return b.record
}

// HistoryBuilder assembles a date -> minutes mapping for heatmap and report tests.
type HistoryBuilder struct {
	days map[string]float64
}

func NewHistory() *HistoryBuilder {
	return &HistoryBuilder{days: make(map[string]float64)}
}

func (b *HistoryBuilder) WithDay(date string, minutes float64) *HistoryBuilder {
	b.days[date] += minutes
	return b
}

func (b *HistoryBuilder) Build() map[string]float64 {
	out := make(map[string]float64, len(b.days))
	for k, v := range b.days {
		out[k] = v
	}
	return out
}
