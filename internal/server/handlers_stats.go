package server

import (
	"net/http"
)

// handleGetStats serves the aggregated statistics overview. The five
// sub-queries run concurrently in the store; any sub-query failure fails the
// whole request — partial stats are never returned.
func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.prefs.GetPreferenceStats(r.Context())
	if err != nil {
		s.respondError(w, &ErrAggregation{Err: err}, "Failed to retrieve statistics")
		return
	}

	s.jsonResponse(w, http.StatusOK, envelope{Success: true, Data: stats})
}
