package tui

import (
	"context"

	"github.com/akyairhashvil/zenith/internal/models"
)

// SessionLog is the persistence the TUI needs beyond the focus history.
type SessionLog interface {
	RecordSession(ctx context.Context, rec models.SessionRecord) (int64, error)
	RecentSessions(ctx context.Context, limit int) ([]models.SessionRecord, error)
	SessionTotals(ctx context.Context) (count int, focusSeconds int, err error)
}
