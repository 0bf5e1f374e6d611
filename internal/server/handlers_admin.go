package server

import (
	"net/http"

	"github.com/internest/internest-backend/internal/db"
	"github.com/internest/internest-backend/internal/mlexport"
	"github.com/internest/internest-backend/internal/types"
)

// adminPagination echoes the raw window of an admin export.
type adminPagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// handleAdminExport serves the raw record dump used for data inspection,
// or the ML feature-vector export when export_format=ml.
func (s *Server) handleAdminExport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var fieldErrs []types.FieldError
	limit, ferr := parseQueryInt(q, "limit", 100, 1, 0)
	if ferr != nil {
		fieldErrs = append(fieldErrs, *ferr)
	}
	offset, ferr := parseQueryInt(q, "offset", 0, 0, 0)
	if ferr != nil {
		fieldErrs = append(fieldErrs, *ferr)
	}
	if len(fieldErrs) > 0 {
		s.respondError(w, &ErrValidation{Fields: fieldErrs}, "")
		return
	}

	prefs, _, err := s.prefs.ListPreferences(r.Context(), db.ListPreferencesOptions{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		s.respondError(w, &ErrStorage{Op: "admin export", Err: err}, "Failed to retrieve preferences data")
		return
	}

	if q.Get("export_format") == "ml" {
		vectors := mlexport.ToFeatureVectors(prefs)
		count := len(vectors)
		s.jsonResponse(w, http.StatusOK, envelope{
			Success: true,
			Format:  "ml_ready",
			Count:   &count,
			Data:    vectors,
		})
		return
	}

	count := len(prefs)
	s.jsonResponse(w, http.StatusOK, envelope{
		Success:    true,
		Count:      &count,
		Data:       prefs,
		Pagination: adminPagination{Limit: limit, Offset: offset},
	})
}
