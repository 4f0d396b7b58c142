package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/akyairhashvil/zenith/internal/config"
	"github.com/akyairhashvil/zenith/internal/models"
)

// sessionRetention caps the session log; older rows are pruned on insert.
var sessionRetention = config.SessionRetention

// RecordSession appends a completed session and returns its ID. The insert
// and the retention prune share one transaction.
func (d *Database) RecordSession(ctx context.Context, rec models.SessionRecord) (int64, error) {
	completedAt := rec.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now()
	}
	var id int64
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO sessions (goal, focus_seconds, duration_seconds, completed_at) VALUES (?, ?, ?, ?)",
			rec.Goal, rec.FocusSeconds, rec.DurationSeconds, completedAt.UTC())
		if err != nil {
			return err
		}
		if id, err = res.LastInsertId(); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			DELETE FROM sessions WHERE id NOT IN (
				SELECT id FROM sessions ORDER BY completed_at DESC, id DESC LIMIT ?
			)`, sessionRetention)
		return err
	})
	if err != nil {
		return 0, wrapSessionErr("record", 0, err)
	}
	return id, nil
}

// RecentSessions lists the newest sessions first.
func (d *Database) RecentSessions(ctx context.Context, limit int) ([]models.SessionRecord, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, goal, focus_seconds, duration_seconds, completed_at
		FROM sessions
		ORDER BY completed_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, wrapSessionErr("list", 0, err)
	}
	defer rows.Close()

	var out []models.SessionRecord
	for rows.Next() {
		var r models.SessionRecord
		if err := rows.Scan(&r.ID, &r.Goal, &r.FocusSeconds, &r.DurationSeconds, &r.CompletedAt); err != nil {
			return nil, wrapSessionErr("list", 0, err)
		}
		r.CompletedAt = r.CompletedAt.Local()
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSessionErr("list", 0, err)
	}
	return out, nil
}

// SessionTotals returns the number of completed sessions and their summed focus seconds.
func (d *Database) SessionTotals(ctx context.Context) (int, int, error) {
	var count int
	var seconds sql.NullInt64
	err := d.DB.QueryRowContext(ctx, "SELECT COUNT(1), SUM(focus_seconds) FROM sessions").Scan(&count, &seconds)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, 0, wrapSessionErr("totals", 0, err)
	}
	return count, int(seconds.Int64), nil
}
