package db

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// -----------------------------------------------------------------------------
// Aggregation
// -----------------------------------------------------------------------------

// GetPreferenceStats computes the statistics overview: total record count,
// per-dimension rollups and the trailing-30-day submission series. The five
// sub-queries are independent and run concurrently; if any one fails the
// whole aggregation fails — there is no partial-result mode.
//
// Rollups group by the raw stored value, skip NULL/empty values and order by
// count descending with the group value ascending as the deterministic
// tie-break. byLocation is truncated to the top 10 groups.
func (db *DB) GetPreferenceStats(ctx context.Context) (*StatsOverview, error) {
	// Slices start empty, not nil, so empty rollups serialize as [] rather
	// than null.
	stats := &StatsOverview{
		ByEducation: []EducationCount{},
		BySector:    []SectorCount{},
		ByLocation:  []LocationCount{},
		Recent:      []DailyCount{},
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := db.pool.QueryRow(gCtx, `SELECT COUNT(*) FROM preferences`).Scan(&stats.Total); err != nil {
			return fmt.Errorf("total count failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		rows, err := db.pool.Query(gCtx,
			`SELECT education_level, COUNT(*) AS count
			 FROM preferences
			 WHERE education_level IS NOT NULL AND education_level <> ''
			 GROUP BY education_level
			 ORDER BY count DESC, education_level ASC`)
		if err != nil {
			return fmt.Errorf("byEducation query failed: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var c EducationCount
			if err := rows.Scan(&c.EducationLevel, &c.Count); err != nil {
				return fmt.Errorf("byEducation scan failed: %w", err)
			}
			stats.ByEducation = append(stats.ByEducation, c)
		}
		return rows.Err()
	})

	g.Go(func() error {
		rows, err := db.pool.Query(gCtx,
			`SELECT sector, COUNT(*) AS count
			 FROM preferences
			 WHERE sector IS NOT NULL AND sector <> ''
			 GROUP BY sector
			 ORDER BY count DESC, sector ASC`)
		if err != nil {
			return fmt.Errorf("bySector query failed: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var c SectorCount
			if err := rows.Scan(&c.Sector, &c.Count); err != nil {
				return fmt.Errorf("bySector scan failed: %w", err)
			}
			stats.BySector = append(stats.BySector, c)
		}
		return rows.Err()
	})

	g.Go(func() error {
		rows, err := db.pool.Query(gCtx,
			`SELECT location, COUNT(*) AS count
			 FROM preferences
			 WHERE location IS NOT NULL AND location <> ''
			 GROUP BY location
			 ORDER BY count DESC, location ASC
			 LIMIT 10`)
		if err != nil {
			return fmt.Errorf("byLocation query failed: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var c LocationCount
			if err := rows.Scan(&c.Location, &c.Count); err != nil {
				return fmt.Errorf("byLocation scan failed: %w", err)
			}
			stats.ByLocation = append(stats.ByLocation, c)
		}
		return rows.Err()
	})

	g.Go(func() error {
		rows, err := db.pool.Query(gCtx,
			`SELECT TO_CHAR(created_at::date, 'YYYY-MM-DD') AS date, COUNT(*) AS count
			 FROM preferences
			 WHERE created_at >= NOW() - INTERVAL '30 days'
			 GROUP BY created_at::date
			 ORDER BY created_at::date DESC`)
		if err != nil {
			return fmt.Errorf("recent query failed: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var c DailyCount
			if err := rows.Scan(&c.Date, &c.Count); err != nil {
				return fmt.Errorf("recent scan failed: %w", err)
			}
			stats.Recent = append(stats.Recent, c)
		}
		return rows.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute preference stats: %w", err)
	}
	return stats, nil
}
