// Package sqlite persists resolved weather summaries between builds, so a
// redeploy does not re-fetch historical weather the provider already
// answered once.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
)

// Open opens (and creates if needed) the cache database at path.
func Open(path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	return db, nil
}

type WeatherCache struct {
	db *sqlx.DB
}

func NewWeatherCache(db *sqlx.DB) *WeatherCache {
	return &WeatherCache{db: db}
}

// Init creates the cache table when absent.
func (s *WeatherCache) Init(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS weather_cache (
			key        TEXT PRIMARY KEY,
			summary    TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`

	_, err := s.db.ExecContext(ctx, query)
	return err
}

func (s *WeatherCache) Get(ctx context.Context, key string) (string, bool, error) {
	var summary string
	err := s.db.GetContext(ctx, &summary,
		"SELECT summary FROM weather_cache WHERE key = $1", key)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return summary, true, nil
}

func (s *WeatherCache) Put(ctx context.Context, key, summary string) error {
	query := `
		INSERT INTO weather_cache (key, summary, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			summary = EXCLUDED.summary,
			created_at = EXCLUDED.created_at`

	_, err := s.db.ExecContext(ctx, query, key, summary, time.Now().UTC())
	return err
}
