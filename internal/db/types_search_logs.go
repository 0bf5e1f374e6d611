package db

import "time"

// AnonymousSession is the sentinel session id recorded for catalog searches
// that carry no X-Session-Id header.
const AnonymousSession = "anonymous"

// SearchLog is one recorded catalog search event. Entries are write-once;
// nothing in this service updates or reads them back.
type SearchLog struct {
	ID           int64     `json:"id"`
	SessionID    string    `json:"session_id"`
	UserIP       string    `json:"user_ip"`
	SearchParams string    `json:"search_params"`
	ResultsCount int       `json:"results_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// SearchLogInput carries the fields for a new search log entry.
type SearchLogInput struct {
	SessionID    string
	UserIP       string
	SearchParams string
	ResultsCount int
}
