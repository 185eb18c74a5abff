package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTemplateRouter() http.Handler {
	h := NewTemplateHandler()

	r := chi.NewRouter()
	r.Route("/templates", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{industry}", h.Get)
	})
	return r
}

func TestTemplateList(t *testing.T) {
	router := newTemplateRouter()

	req := httptest.NewRequest(http.MethodGet, "/templates", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Templates []struct {
			Key  string `json:"key"`
			Name string `json:"name"`
		} `json:"templates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Templates, 5)
}

func TestTemplateGet(t *testing.T) {
	router := newTemplateRouter()

	req := httptest.NewRequest(http.MethodGet, "/templates/fintech", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var tpl struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tpl))
	assert.Equal(t, "Fintech & Financial Services", tpl.Name)
}

func TestTemplateGetUnknownIndustry(t *testing.T) {
	router := newTemplateRouter()

	req := httptest.NewRequest(http.MethodGet, "/templates/blockchain", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
