package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pitchdeck-ai/platform/internal/middleware"
	"github.com/pitchdeck-ai/platform/internal/model"
	"github.com/pitchdeck-ai/platform/internal/service"
	"github.com/pitchdeck-ai/platform/internal/store"
	"github.com/pitchdeck-ai/platform/pkg/logger"
)

// VersionHandler handles slide version history endpoints.
type VersionHandler struct {
	service *service.VersionService
	logger  *logger.Logger
}

// NewVersionHandler creates a new version handler.
func NewVersionHandler(svc *service.VersionService, log *logger.Logger) *VersionHandler {
	return &VersionHandler{
		service: svc,
		logger:  log,
	}
}

// Save handles POST /api/v1/slides/:slideID/versions
func (h *VersionHandler) Save(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slideID := chi.URLParam(r, "slideID")

	if err := middleware.ValidateSlideID(slideID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.SaveVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	version, err := h.service.Save(ctx, slideID, req.SlideData)
	if err != nil {
		h.logger.Error("failed to save version", zap.String("slide_id", slideID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to save version")
		return
	}

	writeJSON(w, http.StatusCreated, &model.SaveVersionResponse{
		Success:   true,
		VersionID: version.ID,
	})
}

// List handles GET /api/v1/slides/:slideID/versions
func (h *VersionHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slideID := chi.URLParam(r, "slideID")

	if err := middleware.ValidateSlideID(slideID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	versions, err := h.service.List(ctx, slideID)
	if err != nil {
		h.logger.Error("failed to list versions", zap.String("slide_id", slideID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list versions")
		return
	}

	writeJSON(w, http.StatusOK, &model.ListVersionsResponse{
		Versions: versions,
	})
}

// Restore handles POST /api/v1/slides/:slideID/versions/:versionID/restore
func (h *VersionHandler) Restore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slideID := chi.URLParam(r, "slideID")
	versionID := chi.URLParam(r, "versionID")

	if err := middleware.ValidateSlideID(slideID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := middleware.ValidateVersionID(versionID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	slide, err := h.service.Restore(ctx, slideID, versionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "version not found")
			return
		}
		h.logger.Error("failed to restore version",
			zap.String("slide_id", slideID),
			zap.String("version_id", versionID),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "failed to restore version")
		return
	}

	writeJSON(w, http.StatusOK, &model.RestoreVersionResponse{
		SlideData: *slide,
	})
}
