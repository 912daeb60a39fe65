package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Setting keys used by the application.
const (
	SettingAPIKey      = "api_key"
	SettingUseExternal = "use_external"
)

// SettingsRepo stores small key/value configuration.
type SettingsRepo struct {
	db *sql.DB
}

// Get returns the value for key, or ErrNotFound.
func (r *SettingsRepo) Get(ctx context.Context, key string) (string, error) {
	const query = `SELECT value FROM settings WHERE key = ?`
	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("setting %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

// Set stores the value for key, replacing any previous value.
func (r *SettingsRepo) Set(ctx context.Context, key, value string) error {
	const query = `INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (r *SettingsRepo) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM settings WHERE key = ?`
	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("delete setting %q: %w", key, err)
	}
	return nil
}

// GetBool reads key as a boolean flag. Absent keys read as false.
func (r *SettingsRepo) GetBool(ctx context.Context, key string) (bool, error) {
	value, err := r.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return value == "1" || value == "true", nil
}

// SetBool stores key as a boolean flag.
func (r *SettingsRepo) SetBool(ctx context.Context, key string, value bool) error {
	s := "0"
	if value {
		s = "1"
	}
	return r.Set(ctx, key, s)
}
