package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internest/internest-backend/internal/db"
	"github.com/internest/internest-backend/internal/types"
)

var sessionIDPattern = regexp.MustCompile(`^session_\d+_[a-z0-9]{9}$`)

func strPtr(s string) *string { return &s }

func seedPreferences(store *fakePreferenceStore, n int) {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	// Newest first, matching the store's ordering contract
	for i := n; i >= 1; i-- {
		store.prefs = append(store.prefs, db.Preference{
			ID:             int64(i),
			SessionID:      fmt.Sprintf("session_%d_abc%06d", base.UnixMilli(), i),
			UserIP:         "10.0.0.1",
			EducationLevel: strPtr("Bachelor's Degree"),
			Skills:         strPtr("Python, SQL"),
			Sector:         strPtr("Technology"),
			Location:       strPtr("Mumbai"),
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
			UpdatedAt:      base.Add(time.Duration(i) * time.Minute),
		})
	}
	store.nextID = int64(n)
}

// TestHandleSavePreference_GeneratesSession tests that a submission without a
// session id gets one assigned and echoed back
func TestHandleSavePreference_GeneratesSession(t *testing.T) {
	s := newTestServer()

	body := `{"education": "Bachelor's Degree", "skills": "Python, SQL", "sector": "Technology", "location": "Mumbai"}`
	req := httptest.NewRequest(http.MethodPost, "/preferences", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleSavePreference(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			ID          int64                  `json:"id"`
			SessionID   string                 `json:"sessionId"`
			Preferences types.PreferenceFields `json:"preferences"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "Preferences saved successfully", resp.Message)
	assert.Equal(t, int64(1), resp.Data.ID)
	assert.Regexp(t, sessionIDPattern, resp.Data.SessionID)
	require.NotNil(t, resp.Data.Preferences.Education)
	assert.Equal(t, "Bachelor's Degree", *resp.Data.Preferences.Education)

	// The stored row carries the same generated session id
	require.Len(t, s.prefStore.saved, 1)
	assert.Equal(t, resp.Data.SessionID, s.prefStore.saved[0].SessionID)
}

// TestHandleSavePreference_SessionPrecedence tests that a body session id
// wins over the X-Session-Id header
func TestHandleSavePreference_SessionPrecedence(t *testing.T) {
	s := newTestServer()

	body := `{"sessionId": "session_1700000000000_bodywins1", "education": "Diploma"}`
	req := httptest.NewRequest(http.MethodPost, "/preferences", bytes.NewBufferString(body))
	req.Header.Set("X-Session-Id", "session_1700000000000_headerid1")
	w := httptest.NewRecorder()

	s.handleSavePreference(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, s.prefStore.saved, 1)
	assert.Equal(t, "session_1700000000000_bodywins1", s.prefStore.saved[0].SessionID)
}

func TestHandleSavePreference_HeaderSession(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/preferences", bytes.NewBufferString(`{"sector": "Finance"}`))
	req.Header.Set("X-Session-Id", "session_1700000000000_headerid1")
	w := httptest.NewRecorder()

	s.handleSavePreference(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, s.prefStore.saved, 1)
	assert.Equal(t, "session_1700000000000_headerid1", s.prefStore.saved[0].SessionID)
}

func TestHandleSavePreference_EmptyFieldsStoredAsNull(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/preferences", bytes.NewBufferString(`{"education": "PhD"}`))
	w := httptest.NewRecorder()

	s.handleSavePreference(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, s.prefStore.saved, 1)
	saved := s.prefStore.saved[0]
	require.NotNil(t, saved.EducationLevel)
	assert.Equal(t, "PhD", *saved.EducationLevel)
	assert.Nil(t, saved.Skills)
	assert.Nil(t, saved.Sector)
	assert.Nil(t, saved.Location)
}

func TestHandleSavePreference_FieldTooLong(t *testing.T) {
	s := newTestServer()

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}
	body := fmt.Sprintf(`{"education": %q}`, long)
	req := httptest.NewRequest(http.MethodPost, "/preferences", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	s.handleSavePreference(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool               `json:"success"`
		Message string             `json:"message"`
		Errors  []types.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation errors", resp.Message)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "Education", resp.Errors[0].Field)

	// Nothing reaches the store on validation failure
	assert.Empty(t, s.prefStore.saved)
}

func TestHandleSavePreference_InvalidJSON(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/preferences", bytes.NewBufferString(`{"education":`))
	w := httptest.NewRecorder()

	s.handleSavePreference(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, s.prefStore.saved)
}

func TestHandleGetPreferenceBySession(t *testing.T) {
	s := newTestServer()
	seedPreferences(s.prefStore, 3)
	target := s.prefStore.prefs[1]

	req := httptest.NewRequest(http.MethodGet, "/preferences/"+target.SessionID, nil)
	req.SetPathValue("sessionId", target.SessionID)
	w := httptest.NewRecorder()

	s.handleGetPreferenceBySession(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID        int64                  `json:"id"`
			SessionID string                 `json:"sessionId"`
			UserIP    string                 `json:"userIP"`
			Prefs     types.PreferenceFields `json:"preferences"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, target.ID, resp.Data.ID)
	assert.Equal(t, target.SessionID, resp.Data.SessionID)
	// Session reads never expose the caller address
	assert.Empty(t, resp.Data.UserIP)
}

func TestHandleGetPreferenceBySession_NotFound(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/preferences/session_1700000000000_nosuchid", nil)
	req.SetPathValue("sessionId", "session_1700000000000_nosuchid")
	w := httptest.NewRecorder()

	s.handleGetPreferenceBySession(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "No preferences found for this session", resp.Message)
}

// TestHandleListPreferences_Pagination walks the second page of five records
func TestHandleListPreferences_Pagination(t *testing.T) {
	s := newTestServer()
	seedPreferences(s.prefStore, 5)

	req := httptest.NewRequest(http.MethodGet, "/preferences?page=2&limit=2", nil)
	w := httptest.NewRecorder()

	s.handleListPreferences(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success    bool `json:"success"`
		Data       []preferenceResponse
		Pagination listPagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 2)
	// Records are newest first; page 2 of 2 holds the third and fourth
	assert.Equal(t, int64(3), resp.Data[0].ID)
	assert.Equal(t, int64(2), resp.Data[1].ID)

	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 2, resp.Pagination.Limit)
	assert.Equal(t, 5, resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)

	// Admin listings include the caller address
	assert.Equal(t, "10.0.0.1", resp.Data[0].UserIP)
}

func TestHandleListPreferences_Defaults(t *testing.T) {
	s := newTestServer()
	seedPreferences(s.prefStore, 3)

	req := httptest.NewRequest(http.MethodGet, "/preferences", nil)
	w := httptest.NewRecorder()

	s.handleListPreferences(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Pagination listPagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, 20, resp.Pagination.Limit)
	assert.Equal(t, 3, resp.Pagination.Total)
}

func TestHandleListPreferences_InvalidParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{name: "limit zero", query: "limit=0", field: "limit"},
		{name: "limit above cap", query: "limit=101", field: "limit"},
		{name: "limit non-numeric", query: "limit=ten", field: "limit"},
		{name: "page zero", query: "page=0", field: "page"},
		{name: "page non-numeric", query: "page=first", field: "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()

			req := httptest.NewRequest(http.MethodGet, "/preferences?"+tt.query, nil)
			w := httptest.NewRecorder()

			s.handleListPreferences(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp struct {
				Errors []types.FieldError `json:"errors"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Len(t, resp.Errors, 1)
			assert.Equal(t, tt.field, resp.Errors[0].Field)
		})
	}
}

func TestHandleUpdatePreference(t *testing.T) {
	s := newTestServer()
	seedPreferences(s.prefStore, 2)

	body := `{"education": "Master's Degree", "skills": "Go, Postgres"}`
	req := httptest.NewRequest(http.MethodPut, "/preferences/2", bytes.NewBufferString(body))
	req.SetPathValue("id", "2")
	w := httptest.NewRecorder()

	s.handleUpdatePreference(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			ID    int64                  `json:"id"`
			Prefs types.PreferenceFields `json:"preferences"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Preferences updated successfully", resp.Message)
	assert.Equal(t, int64(2), resp.Data.ID)
	require.NotNil(t, resp.Data.Prefs.Education)
	assert.Equal(t, "Master's Degree", *resp.Data.Prefs.Education)
	// Unsent fields are overwritten, not merged
	assert.Nil(t, resp.Data.Prefs.Sector)
}

func TestHandleUpdatePreference_NotFound(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPut, "/preferences/99", bytes.NewBufferString(`{}`))
	req.SetPathValue("id", "99")
	w := httptest.NewRecorder()

	s.handleUpdatePreference(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Preference not found", resp.Message)
}

func TestHandleUpdatePreference_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPut, "/preferences/abc", bytes.NewBufferString(`{}`))
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()

	s.handleUpdatePreference(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleDeletePreference(t *testing.T) {
	s := newTestServer()
	seedPreferences(s.prefStore, 2)

	req := httptest.NewRequest(http.MethodDelete, "/preferences/1", nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	s.handleDeletePreference(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, s.prefStore.prefs, 1)

	// Deleting the same id again is a 404
	req = httptest.NewRequest(http.MethodDelete, "/preferences/1", nil)
	req.SetPathValue("id", "1")
	w = httptest.NewRecorder()

	s.handleDeletePreference(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
