package server

import (
	"net/http"
	"strconv"

	"github.com/internest/internest-backend/internal/catalog"
	"github.com/internest/internest-backend/internal/types"
)

// catalogPagination is the pagination block on catalog responses.
type catalogPagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// filtersEcho mirrors the search predicates back to the caller.
type filtersEcho struct {
	Education string `json:"education,omitempty"`
	Skills    string `json:"skills,omitempty"`
	Sector    string `json:"sector,omitempty"`
	Location  string `json:"location,omitempty"`
}

// handleListInternships serves the filtered, paginated catalog.
func (s *Server) handleListInternships(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var fieldErrs []types.FieldError
	page, ferr := parseQueryInt(q, "page", 1, 1, 0)
	if ferr != nil {
		fieldErrs = append(fieldErrs, *ferr)
	}
	// The catalog path enforces no upper bound on limit
	limit, ferr := parseQueryInt(q, "limit", 10, 1, 0)
	if ferr != nil {
		fieldErrs = append(fieldErrs, *ferr)
	}
	if len(fieldErrs) > 0 {
		s.respondError(w, &ErrValidation{Fields: fieldErrs}, "")
		return
	}

	query := catalog.Query{
		Education: q.Get("education"),
		Skills:    q.Get("skills"),
		Sector:    q.Get("sector"),
		Location:  q.Get("location"),
	}

	result := catalog.Filter(s.catalog, query, page, limit)

	s.jsonResponse(w, http.StatusOK, envelope{
		Success: true,
		Data:    result.Items,
		Pagination: catalogPagination{
			Page:       page,
			Limit:      limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
		Filters: filtersEcho{
			Education: query.Education,
			Skills:    query.Skills,
			Sector:    query.Sector,
			Location:  query.Location,
		},
	})

	// Audit write happens after the response is finalized and never affects it
	s.recordSearchActivity(r, len(result.Items))
}

// handleGetInternship serves a single catalog posting.
func (s *Server) handleGetInternship(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		s.respondError(w, &ErrValidation{Fields: []types.FieldError{
			{Field: "id", Message: "must be an integer"},
		}}, "")
		return
	}

	internship := catalog.FindByID(s.catalog, id)
	if internship == nil {
		s.respondError(w, &ErrNotFound{Resource: "Internship"}, "")
		s.recordSearchActivity(r, 0)
		return
	}

	s.jsonResponse(w, http.StatusOK, envelope{Success: true, Data: internship})

	// Single-posting responses carry no result list
	s.recordSearchActivity(r, 0)
}
