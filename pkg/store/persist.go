package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/umputun/pulse/pkg/domain"
)

//go:embed schema.sql
var schema string

// DBConfig represents database configuration
type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// SQLitePersister keeps preferences and favorites in SQLite. Writes
// retry on lock errors; all other failures are final.
type SQLitePersister struct {
	db *sqlx.DB
}

// NewSQLitePersister opens the database and initializes the schema
func NewSQLitePersister(cfg DBConfig) (*SQLitePersister, error) {
	if cfg.DSN == "" {
		cfg.DSN = "file:pulse.db?cache=shared&mode=rwc"
	}

	conn, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if _, err := conn.Exec(schema); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SQLitePersister{db: conn}, nil
}

// Close closes the database connection
func (p *SQLitePersister) Close() error {
	return p.db.Close()
}

// LoadPreferences reads stored preferences, defaults for missing keys
func (p *SQLitePersister) LoadPreferences(ctx context.Context) (Preferences, error) {
	prefs := DefaultPreferences()

	rows := []struct {
		Key   string `db:"key"`
		Value string `db:"value"`
	}{}
	if err := p.db.SelectContext(ctx, &rows, `SELECT key, value FROM preferences`); err != nil {
		return prefs, fmt.Errorf("load preferences: %w", err)
	}

	for _, row := range rows {
		var err error
		switch row.Key {
		case "theme":
			err = json.Unmarshal([]byte(row.Value), &prefs.Theme)
		case "categories":
			err = json.Unmarshal([]byte(row.Value), &prefs.Categories)
		case "language":
			err = json.Unmarshal([]byte(row.Value), &prefs.Language)
		case "notifications":
			err = json.Unmarshal([]byte(row.Value), &prefs.Notifications)
		}
		if err != nil {
			return prefs, fmt.Errorf("decode preference %s: %w", row.Key, err)
		}
	}
	return prefs, nil
}

// SavePreferences upserts all preference keys in one transaction
func (p *SQLitePersister) SavePreferences(ctx context.Context, prefs Preferences) error {
	values := map[string]any{
		"theme":         prefs.Theme,
		"categories":    prefs.Categories,
		"language":      prefs.Language,
		"notifications": prefs.Notifications,
	}

	return p.withRetry(ctx, func() error {
		tx, err := p.db.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}
		query := `
			INSERT INTO preferences (key, value, updated_at)
			VALUES (?, ?, datetime('now'))
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`
		for key, value := range values {
			data, mErr := json.Marshal(value)
			if mErr != nil {
				_ = tx.Rollback()
				return &criticalError{err: fmt.Errorf("encode preference %s: %w", key, mErr)}
			}
			if _, err := tx.ExecContext(ctx, query, key, string(data)); err != nil {
				_ = tx.Rollback()
				return err
			}
		}
		return tx.Commit()
	})
}

// AddFavorite stores an item, replacing any previous row with the same ID
func (p *SQLitePersister) AddFavorite(ctx context.Context, item domain.ContentItem) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode favorite: %w", err)
	}

	return p.withRetry(ctx, func() error {
		query := `
			INSERT INTO favorites (id, payload, created_at)
			VALUES (?, ?, datetime('now'))
			ON CONFLICT(id) DO UPDATE SET payload = excluded.payload
		`
		_, err := p.db.ExecContext(ctx, query, item.ID, string(payload))
		return err
	})
}

// RemoveFavorite deletes a favorite by ID
func (p *SQLitePersister) RemoveFavorite(ctx context.Context, id string) error {
	return p.withRetry(ctx, func() error {
		_, err := p.db.ExecContext(ctx, `DELETE FROM favorites WHERE id = ?`, id)
		return err
	})
}

// ListFavorites returns stored favorites, newest first
func (p *SQLitePersister) ListFavorites(ctx context.Context) ([]domain.ContentItem, error) {
	var payloads []string
	query := `SELECT payload FROM favorites ORDER BY created_at DESC, id`
	if err := p.db.SelectContext(ctx, &payloads, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	items := make([]domain.ContentItem, 0, len(payloads))
	for _, payload := range payloads {
		var item domain.ContentItem
		if err := json.Unmarshal([]byte(payload), &item); err != nil {
			return nil, fmt.Errorf("decode favorite: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// withRetry runs a write with backoff on SQLite lock errors. Errors
// wrapped in criticalError and non-lock errors stop immediately.
func (p *SQLitePersister) withRetry(ctx context.Context, fn func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		err := fn()
		if err == nil {
			return nil
		}
		var critical *criticalError
		if errors.As(err, &critical) {
			return err
		}
		if isLockError(err) {
			return err // retry
		}
		return &criticalError{err: err}
	})
}

// criticalError wraps an error that must not be retried
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
