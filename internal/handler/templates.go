package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pitchdeck-ai/platform/internal/prompt"
)

// TemplateHandler serves the industry pitch templates.
type TemplateHandler struct{}

// NewTemplateHandler creates a new template handler.
func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// List handles GET /api/v1/templates
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"templates": prompt.IndustryList(),
	})
}

// Get handles GET /api/v1/templates/:industry
func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	industry := chi.URLParam(r, "industry")

	tpl, ok := prompt.LookupIndustryTemplate(industry)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown industry")
		return
	}

	writeJSON(w, http.StatusOK, tpl)
}
