package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internest/internest-backend/internal/db"
	"github.com/internest/internest-backend/internal/mlexport"
)

func TestHandleAdminExport_Raw(t *testing.T) {
	s := newTestServer()
	seedPreferences(s.prefStore, 3)

	req := httptest.NewRequest(http.MethodGet, "/preferences/admin/all", nil)
	w := httptest.NewRecorder()

	s.handleAdminExport(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success    bool            `json:"success"`
		Count      int             `json:"count"`
		Data       []db.Preference `json:"data"`
		Pagination adminPagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Count)
	require.Len(t, resp.Data, 3)
	// Raw export keeps storage field names and the caller address
	assert.Equal(t, "10.0.0.1", resp.Data[0].UserIP)
	assert.Equal(t, 100, resp.Pagination.Limit)
	assert.Equal(t, 0, resp.Pagination.Offset)
}

func TestHandleAdminExport_Window(t *testing.T) {
	s := newTestServer()
	seedPreferences(s.prefStore, 5)

	req := httptest.NewRequest(http.MethodGet, "/preferences/admin/all?limit=2&offset=2", nil)
	w := httptest.NewRecorder()

	s.handleAdminExport(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count      int             `json:"count"`
		Data       []db.Preference `json:"data"`
		Pagination adminPagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, int64(3), resp.Data[0].ID)
	assert.Equal(t, 2, resp.Pagination.Limit)
	assert.Equal(t, 2, resp.Pagination.Offset)
}

// TestHandleAdminExport_MLFormat tests the feature-vector export path
func TestHandleAdminExport_MLFormat(t *testing.T) {
	s := newTestServer()
	seedPreferences(s.prefStore, 2)
	// One record with gaps to exercise the not_specified fallback
	s.prefStore.prefs[0].EducationLevel = nil
	s.prefStore.prefs[0].Skills = nil

	req := httptest.NewRequest(http.MethodGet, "/preferences/admin/all?export_format=ml", nil)
	w := httptest.NewRecorder()

	s.handleAdminExport(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                     `json:"success"`
		Format  string                   `json:"format"`
		Count   int                      `json:"count"`
		Data    []mlexport.FeatureVector `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "ml_ready", resp.Format)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Data, 2)

	assert.Equal(t, mlexport.NotSpecified, resp.Data[0].Features.EducationLevel)
	assert.Empty(t, resp.Data[0].Features.Skills)
	assert.Equal(t, "Technology", resp.Data[1].Features.Sector)
	assert.Equal(t, []string{"Python", "SQL"}, resp.Data[1].Features.Skills)
}

func TestHandleAdminExport_InvalidWindow(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/preferences/admin/all?offset=-1", nil)
	w := httptest.NewRecorder()

	s.handleAdminExport(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
