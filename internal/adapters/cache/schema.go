package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// InitSchema creates the cache tables when they do not exist.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        lookup_key TEXT PRIMARY KEY,
        lat DOUBLE PRECISION NOT NULL,
        lng DOUBLE PRECISION NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
    );
	`

	createTravelCacheQuery := `
	CREATE TABLE IF NOT EXISTS travel_cache (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        duration_text TEXT NOT NULL,
        distance_text TEXT NOT NULL,
        duration_seconds INTEGER NOT NULL,
        distance_meters INTEGER NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
        PRIMARY KEY (origin, destination)
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_travel_cache_updated_at
    ON travel_cache(updated_at);
	`

	statements := []string{
		createGeocodeCacheQuery,
		createTravelCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// PruneTravelCache deletes travel cells older than maxAge and reports how many were removed.
func PruneTravelCache(ctx context.Context, db *sql.DB, maxAge time.Duration) (int64, error) {
	if db == nil {
		return 0, errors.New("prune travel cache: DB is nil")
	}

	res, err := db.ExecContext(ctx, `DELETE FROM travel_cache WHERE updated_at < $1;`, time.Now().Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("prune travel cache: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune travel cache: rows affected: %w", err)
	}
	return n, nil
}
