package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"midpoint-service/internal/platform/obs"
	"midpoint-service/internal/ports"
	"strings"
	"time"
)

// SQLTravelCache is a Postgres-backed cache of live travel matrix cells.
// Entries older than TTL are ignored on read; traffic makes them stale.
type SQLTravelCache struct {
	DB  *sql.DB
	TTL time.Duration
}

func NewSQLTravelCache(db *sql.DB, ttl time.Duration) *SQLTravelCache {
	return &SQLTravelCache{DB: db, TTL: ttl}
}

// Fetch cached cells for one origin and multiple destinations.
func (s *SQLTravelCache) GetMany(
	ctx context.Context,
	origin string,
	destinations []string,
) (_ map[string]ports.MatrixElement, err error) {
	defer obs.Time(ctx, "travel.cache.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("travel cache: db is nil")
	}

	if origin == "" {
		return nil, errors.New("get travel cache: origin must not be empty")
	}

	uniq := uniqueKeys(destinations)
	if len(uniq) == 0 {
		return map[string]ports.MatrixElement{}, nil
	}

	q := `
	SELECT destination, duration_text, distance_text, duration_seconds, distance_meters
    FROM travel_cache
    WHERE origin = $1
        AND destination = ANY($2::text[])
        AND updated_at > $3;
	`

	rows, err := s.DB.QueryContext(ctx, q, origin, uniq, time.Now().Add(-s.TTL))
	if err != nil {
		return nil, fmt.Errorf("get travel cache: query travel_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]ports.MatrixElement, len(uniq))
	for rows.Next() {
		var dest string
		elem := ports.MatrixElement{Status: ports.StatusOK}
		if err := rows.Scan(&dest, &elem.DurationText, &elem.DistanceText, &elem.DurationSeconds, &elem.DistanceMeters); err != nil {
			return nil, fmt.Errorf("get travel cache: scan rows: %w", err)
		}
		out[dest] = elem
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get travel cache: row iteration: %w", err)
	}

	return out, nil
}

// Store many live cells for a single origin.
func (s *SQLTravelCache) PutMany(
	ctx context.Context,
	origin string,
	results map[string]ports.MatrixElement,
) (err error) {
	defer obs.Time(ctx, "travel.cache.PutMany")(&err)

	if s.DB == nil {
		return errors.New("travel cache: db is nil")
	}

	if origin == "" {
		return errors.New("insert travel cache: origin must not be empty")
	}

	if len(results) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert travel cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO travel_cache (origin, destination, duration_text, distance_text, duration_seconds, distance_meters, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, now())
	ON CONFLICT (origin, destination) DO UPDATE
	SET duration_text = EXCLUDED.duration_text,
		distance_text = EXCLUDED.distance_text,
		duration_seconds = EXCLUDED.duration_seconds,
		distance_meters = EXCLUDED.distance_meters,
		updated_at = EXCLUDED.updated_at;
	`)
	if err != nil {
		return fmt.Errorf("insert travel cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for dest, e := range results {
		if strings.TrimSpace(dest) == "" {
			return fmt.Errorf("insert travel cache: empty destination key")
		}

		if _, err := stmt.ExecContext(ctx, origin, dest, e.DurationText, e.DistanceText, e.DurationSeconds, e.DistanceMeters); err != nil {
			return fmt.Errorf("insert travel cache dest=%q: %w", dest, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert travel cache commit: %w", err)
	}

	return nil
}
