package database

import (
	"context"

	"github.com/akyairhashvil/zenith/internal/models"
)

// SettingsRepository is the key-value surface of the database.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
}

// SessionRepository stores completed focus sessions.
type SessionRepository interface {
	RecordSession(ctx context.Context, rec models.SessionRecord) (int64, error)
	RecentSessions(ctx context.Context, limit int) ([]models.SessionRecord, error)
	SessionTotals(ctx context.Context) (int, int, error)
}

// Repository combines all repository interfaces.
type Repository interface {
	SettingsRepository
	SessionRepository
}

var _ Repository = (*Database)(nil)
