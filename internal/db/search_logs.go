package db

import (
	"context"
	"fmt"
)

// InsertSearchLog records one catalog search event. Entries are append-only;
// the service never updates or reads them back.
func (db *DB) InsertSearchLog(ctx context.Context, input SearchLogInput) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO search_logs (session_id, user_ip, search_params, results_count)
		 VALUES ($1, $2, $3, $4)`,
		input.SessionID, input.UserIP, input.SearchParams, input.ResultsCount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert search log: %w", err)
	}
	return nil
}
