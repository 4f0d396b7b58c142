package database

import (
	"context"
	"database/sql"
	"errors"
)

// GetSetting returns the stored value for key and whether it was present.
// A missing key is not an error; a failed read is.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var value sql.NullString
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapSettingErr("get", err)
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

// SetSetting upserts key.
func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return wrapSettingErr("set", err)
}
