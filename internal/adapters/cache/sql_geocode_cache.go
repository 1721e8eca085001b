package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"midpoint-service/internal/domain"
	"midpoint-service/internal/platform/obs"
	"strings"
)

// SQLGeocodeCache is a Postgres-backed cache mapping geocode lookup keys
// ("address:<text>" or "place_id:<id>") to coordinates.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// Fetch cached coordinates for the given lookup keys.
func (s *SQLGeocodeCache) GetMany(
	ctx context.Context,
	keys []string,
) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "geocode.cache.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("geocode cache: db is nil")
	}

	uniq := uniqueKeys(keys)
	if len(uniq) == 0 {
		return map[string]domain.Coordinates{}, nil
	}

	q := `
	SELECT lookup_key, lat, lng
    FROM geocode_cache
    WHERE lookup_key = ANY($1::text[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, uniq)
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.Coordinates, len(uniq))
	for rows.Next() {
		var key string
		var lat, lng float64
		if err := rows.Scan(&key, &lat, &lng); err != nil {
			return nil, fmt.Errorf("get geocode cache: scan rows: %w", err)
		}
		out[key] = domain.Coordinates{Lat: lat, Lng: lng}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get geocode cache: row iteration: %w", err)
	}

	return out, nil
}

// Store lookup key -> coordinate mappings in the cache.
func (s *SQLGeocodeCache) PutMany(ctx context.Context, results map[string]domain.Coordinates) (err error) {
	defer obs.Time(ctx, "geocode.cache.PutMany")(&err)

	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	if len(results) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert geocode cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO geocode_cache (lookup_key, lat, lng, updated_at)
    VALUES ($1, $2, $3, now())
	ON CONFLICT (lookup_key) DO UPDATE
	SET lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		updated_at = EXCLUDED.updated_at;
	`)
	if err != nil {
		return fmt.Errorf("insert geocode cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for key, c := range results {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("insert geocode cache: empty lookup key")
		}
		if !c.Valid() {
			return fmt.Errorf("insert geocode cache key=%q: invalid coordinates %v", key, c)
		}

		if _, err := stmt.ExecContext(ctx, key, c.Lat, c.Lng); err != nil {
			return fmt.Errorf("insert geocode cache key=%q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert geocode cache commit: %w", err)
	}

	return nil
}

// uniqueKeys trims, drops empties and de-duplicates while keeping order.
func uniqueKeys(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	uniq := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}

		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		uniq = append(uniq, k)
	}
	return uniq
}
