package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrSettingNotFound = errors.New("setting not found")

// SettingsRepo stores scalar application settings as key-value pairs.
type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}

type SettingsRepoImpl struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepoImpl {
	return &SettingsRepoImpl{db: db}
}

func (r SettingsRepoImpl) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM settings WHERE key = ?`
	row := r.db.QueryRowContext(ctx, query, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSettingNotFound
		}
		err := fmt.Errorf("could not read setting %s: %w", key, err)
		log.Error(err)
		return "", err
	}
	return value, nil
}

func (r SettingsRepoImpl) Set(ctx context.Context, key string, value string) error {
	query := `INSERT INTO settings (key, value) VALUES (?, ?)
				ON CONFLICT (key) DO UPDATE SET value = excluded.value`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		err := fmt.Errorf("could not store setting %s: %w", key, err)
		log.Error(err)
		return err
	}
	return nil
}
