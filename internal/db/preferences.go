package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Preference Methods
// -----------------------------------------------------------------------------

// SavePreference inserts a new preference record and returns its id.
func (db *DB) SavePreference(ctx context.Context, input PreferenceInput) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO preferences (session_id, user_ip, education_level, skills, sector, location)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		input.SessionID, input.UserIP, input.EducationLevel, input.Skills,
		input.Sector, input.Location,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save preference: %w", err)
	}
	return id, nil
}

// GetPreferenceBySession retrieves the latest preference record for a
// session, or nil when the session has none. Latest wins; earlier records
// for the session are history and are not merged.
func (db *DB) GetPreferenceBySession(ctx context.Context, sessionID string) (*Preference, error) {
	var p Preference
	err := db.pool.QueryRow(ctx,
		`SELECT id, session_id, user_ip, education_level, skills, sector, location,
		        created_at, updated_at
		 FROM preferences
		 WHERE session_id = $1
		 ORDER BY created_at DESC
		 LIMIT 1`,
		sessionID,
	).Scan(&p.ID, &p.SessionID, &p.UserIP, &p.EducationLevel, &p.Skills,
		&p.Sector, &p.Location, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preference by session: %w", err)
	}
	return &p, nil
}

// ListPreferences returns one page of preference records, newest first,
// along with the total record count.
func (db *DB) ListPreferences(ctx context.Context, opts ListPreferencesOptions) ([]Preference, int, error) {
	var total int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM preferences`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count preferences: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, session_id, user_ip, education_level, skills, sector, location,
		        created_at, updated_at
		 FROM preferences
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list preferences: %w", err)
	}
	defer rows.Close()

	prefs := make([]Preference, 0)
	for rows.Next() {
		var p Preference
		if err := rows.Scan(&p.ID, &p.SessionID, &p.UserIP, &p.EducationLevel,
			&p.Skills, &p.Sector, &p.Location, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan preference: %w", err)
		}
		prefs = append(prefs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read preferences: %w", err)
	}

	return prefs, total, nil
}

// UpdatePreference overwrites every mutable field of the record with the
// given id. Returns false when no such record exists.
func (db *DB) UpdatePreference(ctx context.Context, id int64, update PreferenceUpdate) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE preferences
		 SET education_level = $1, skills = $2, sector = $3, location = $4, updated_at = NOW()
		 WHERE id = $5`,
		update.EducationLevel, update.Skills, update.Sector, update.Location, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update preference: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeletePreference removes the record with the given id. Returns false when
// no such record exists.
func (db *DB) DeletePreference(ctx context.Context, id int64) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM preferences WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete preference: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
