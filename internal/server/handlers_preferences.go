package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/internest/internest-backend/internal/db"
	"github.com/internest/internest-backend/internal/session"
	"github.com/internest/internest-backend/internal/types"
)

// savePreferenceResponse is the body of a successful submission.
type savePreferenceResponse struct {
	ID          int64                  `json:"id"`
	SessionID   string                 `json:"sessionId,omitempty"`
	Preferences types.PreferenceFields `json:"preferences"`
}

// preferenceResponse is one stored record as returned by the read endpoints.
type preferenceResponse struct {
	ID          int64                  `json:"id"`
	SessionID   string                 `json:"sessionId"`
	UserIP      string                 `json:"userIP,omitempty"`
	Preferences types.PreferenceFields `json:"preferences"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// listPagination is the pagination block on preference listings.
type listPagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func toPreferenceResponse(p db.Preference, includeIP bool) preferenceResponse {
	resp := preferenceResponse{
		ID:        p.ID,
		SessionID: p.SessionID,
		Preferences: types.PreferenceFields{
			Education: p.EducationLevel,
			Skills:    p.Skills,
			Sector:    p.Sector,
			Location:  p.Location,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if includeIP {
		resp.UserIP = p.UserIP
	}
	return resp
}

// nilIfEmpty maps absent free-text fields to NULL columns.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// handleSavePreference stores a new preference snapshot for a session,
// assigning a session id when the caller supplies none.
func (s *Server) handleSavePreference(w http.ResponseWriter, r *http.Request) {
	var req types.PreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, &ErrValidation{Fields: []types.FieldError{
			{Field: "body", Message: "invalid JSON: " + err.Error()},
		}}, "")
		return
	}

	if errs := req.Validate(); errs != nil {
		s.respondError(w, &ErrValidation{Fields: errs}, "")
		return
	}

	sessionID := session.Resolve(req.SessionID, r.Header.Get("X-Session-Id"))

	input := db.PreferenceInput{
		SessionID:      sessionID,
		UserIP:         clientIP(r),
		EducationLevel: nilIfEmpty(req.Education),
		Skills:         nilIfEmpty(req.Skills),
		Sector:         nilIfEmpty(req.Sector),
		Location:       nilIfEmpty(req.Location),
	}

	id, err := s.prefs.SavePreference(r.Context(), input)
	if err != nil {
		s.respondError(w, &ErrStorage{Op: "save preference", Err: err}, "Failed to save preferences")
		return
	}

	s.jsonResponse(w, http.StatusCreated, envelope{
		Success: true,
		Message: "Preferences saved successfully",
		Data: savePreferenceResponse{
			ID:        id,
			SessionID: sessionID,
			Preferences: types.PreferenceFields{
				Education: input.EducationLevel,
				Skills:    input.Skills,
				Sector:    input.Sector,
				Location:  input.Location,
			},
		},
	})
}

// handleGetPreferenceBySession returns the latest record for a session.
func (s *Server) handleGetPreferenceBySession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	if sessionID == "" {
		s.respondError(w, &ErrValidation{Fields: []types.FieldError{
			{Field: "sessionId", Message: "is required"},
		}}, "")
		return
	}

	pref, err := s.prefs.GetPreferenceBySession(r.Context(), sessionID)
	if err != nil {
		s.respondError(w, &ErrStorage{Op: "get preference by session", Err: err}, "Failed to retrieve preferences")
		return
	}
	if pref == nil {
		s.respondError(w, &ErrNotFound{Message: "No preferences found for this session"}, "")
		return
	}

	s.jsonResponse(w, http.StatusOK, envelope{
		Success: true,
		Data:    toPreferenceResponse(*pref, false),
	})
}

// handleListPreferences returns a page of records across all sessions,
// newest first, with the true total count.
func (s *Server) handleListPreferences(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var fieldErrs []types.FieldError
	page, ferr := parseQueryInt(q, "page", 1, 1, 0)
	if ferr != nil {
		fieldErrs = append(fieldErrs, *ferr)
	}
	// Record listings cap limit at 100
	limit, ferr := parseQueryInt(q, "limit", 20, 1, 100)
	if ferr != nil {
		fieldErrs = append(fieldErrs, *ferr)
	}
	if len(fieldErrs) > 0 {
		s.respondError(w, &ErrValidation{Fields: fieldErrs}, "")
		return
	}

	prefs, total, err := s.prefs.ListPreferences(r.Context(), db.ListPreferencesOptions{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		s.respondError(w, &ErrStorage{Op: "list preferences", Err: err}, "Failed to retrieve preferences")
		return
	}

	data := make([]preferenceResponse, 0, len(prefs))
	for _, p := range prefs {
		data = append(data, toPreferenceResponse(p, true))
	}

	s.jsonResponse(w, http.StatusOK, envelope{
		Success: true,
		Data:    data,
		Pagination: listPagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	})
}

// handleUpdatePreference overwrites every mutable field of a record.
func (s *Server) handleUpdatePreference(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.respondError(w, &ErrValidation{Fields: []types.FieldError{
			{Field: "id", Message: "must be an integer"},
		}}, "")
		return
	}

	var req types.PreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, &ErrValidation{Fields: []types.FieldError{
			{Field: "body", Message: "invalid JSON: " + err.Error()},
		}}, "")
		return
	}

	if errs := req.Validate(); errs != nil {
		s.respondError(w, &ErrValidation{Fields: errs}, "")
		return
	}

	update := db.PreferenceUpdate{
		EducationLevel: nilIfEmpty(req.Education),
		Skills:         nilIfEmpty(req.Skills),
		Sector:         nilIfEmpty(req.Sector),
		Location:       nilIfEmpty(req.Location),
	}

	found, err := s.prefs.UpdatePreference(r.Context(), id, update)
	if err != nil {
		s.respondError(w, &ErrStorage{Op: "update preference", Err: err}, "Failed to update preferences")
		return
	}
	if !found {
		s.respondError(w, &ErrNotFound{Resource: "Preference"}, "")
		return
	}

	s.jsonResponse(w, http.StatusOK, envelope{
		Success: true,
		Message: "Preferences updated successfully",
		Data: savePreferenceResponse{
			ID: id,
			Preferences: types.PreferenceFields{
				Education: update.EducationLevel,
				Skills:    update.Skills,
				Sector:    update.Sector,
				Location:  update.Location,
			},
		},
	})
}

// handleDeletePreference removes a record by id.
func (s *Server) handleDeletePreference(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.respondError(w, &ErrValidation{Fields: []types.FieldError{
			{Field: "id", Message: "must be an integer"},
		}}, "")
		return
	}

	found, err := s.prefs.DeletePreference(r.Context(), id)
	if err != nil {
		s.respondError(w, &ErrStorage{Op: "delete preference", Err: err}, "Failed to delete preferences")
		return
	}
	if !found {
		s.respondError(w, &ErrNotFound{Resource: "Preference"}, "")
		return
	}

	s.jsonResponse(w, http.StatusOK, envelope{
		Success: true,
		Message: "Preferences deleted successfully",
	})
}
