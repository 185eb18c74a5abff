package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchdeck-ai/platform/internal/model"
	"github.com/pitchdeck-ai/platform/internal/service"
	"github.com/pitchdeck-ai/platform/internal/store"
	"github.com/pitchdeck-ai/platform/pkg/logger"
)

func newVersionRouter() http.Handler {
	svc := service.NewVersionService(store.NewMemoryStore(), logger.NewNop())
	h := NewVersionHandler(svc, logger.NewNop())

	r := chi.NewRouter()
	r.Route("/slides/{slideID}/versions", func(r chi.Router) {
		r.Post("/", h.Save)
		r.Get("/", h.List)
		r.Post("/{versionID}/restore", h.Restore)
	})
	return r
}

func saveVersion(t *testing.T, router http.Handler, slideID string, slide model.Slide) model.SaveVersionResponse {
	t.Helper()

	body, err := json.Marshal(model.SaveVersionRequest{SlideID: slideID, SlideData: slide})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/slides/"+slideID+"/versions", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp model.SaveVersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestVersionSaveListRestore(t *testing.T) {
	router := newVersionRouter()

	saved := saveVersion(t, router, "slide_0", model.Slide{ID: "slide_0", Title: "Problem", Content: "v1"})
	assert.True(t, saved.Success)
	saveVersion(t, router, "slide_0", model.Slide{ID: "slide_0", Title: "Problem", Content: "v2"})

	// List newest first
	req := httptest.NewRequest(http.MethodGet, "/slides/slide_0/versions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var list model.ListVersionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Versions, 2)
	assert.Equal(t, "v2", list.Versions[0].SlideData.Content)
	assert.Equal(t, saved.VersionID, list.Versions[1].ID)

	// Restore the first snapshot
	req = httptest.NewRequest(http.MethodPost, "/slides/slide_0/versions/"+saved.VersionID+"/restore", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var restored model.RestoreVersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &restored))
	assert.Equal(t, "v1", restored.SlideData.Content)
}

func TestVersionRestoreNotFound(t *testing.T) {
	router := newVersionRouter()
	saveVersion(t, router, "slide_0", model.Slide{ID: "slide_0", Title: "Problem"})

	req := httptest.NewRequest(http.MethodPost, "/slides/slide_0/versions/v_missing/restore", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVersionSaveRejectsBadBody(t *testing.T) {
	router := newVersionRouter()

	req := httptest.NewRequest(http.MethodPost, "/slides/slide_0/versions", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVersionRestoreRejectsBadVersionID(t *testing.T) {
	router := newVersionRouter()

	req := httptest.NewRequest(http.MethodPost, "/slides/slide_0/versions/notaversion/restore", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
