package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/internest/internest-backend/internal/db"
)

// searchLogTimeout bounds the detached audit write so an unresponsive store
// cannot pile up goroutines.
const searchLogTimeout = 5 * time.Second

// recordSearchActivity persists a search log entry for a completed catalog
// response. The write runs as a detached task: the caller's response is
// already finalized, and a failed or slow write is logged and dropped, never
// surfaced to the client.
func (s *Server) recordSearchActivity(r *http.Request, resultsCount int) {
	entry := buildSearchLog(r, resultsCount)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), searchLogTimeout)
		defer cancel()

		if err := s.searchLogs.InsertSearchLog(ctx, entry); err != nil {
			log.Printf("[search-log] Error logging search activity: %v", err)
		}
	}()
}

// buildSearchLog captures the request's session, caller address and query
// parameters into a search log entry.
func buildSearchLog(r *http.Request, resultsCount int) db.SearchLogInput {
	sessionID := r.Header.Get("X-Session-Id")
	if sessionID == "" {
		sessionID = db.AnonymousSession
	}

	// Single-valued copy of the query parameters, serialized for storage
	params := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	serialized, err := json.Marshal(params)
	if err != nil {
		serialized = []byte("{}")
	}

	return db.SearchLogInput{
		SessionID:    sessionID,
		UserIP:       clientIP(r),
		SearchParams: string(serialized),
		ResultsCount: resultsCount,
	}
}
