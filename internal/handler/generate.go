package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/pitchdeck-ai/platform/internal/model"
	"github.com/pitchdeck-ai/platform/internal/service"
	"github.com/pitchdeck-ai/platform/pkg/logger"
)

// GenerateHandler handles the single-shot content generation endpoints.
type GenerateHandler struct {
	service *service.GenerateService
	logger  *logger.Logger
}

// NewGenerateHandler creates a new generate handler.
func NewGenerateHandler(svc *service.GenerateService, log *logger.Logger) *GenerateHandler {
	return &GenerateHandler{
		service: svc,
		logger:  log,
	}
}

// Outline handles POST /api/v1/generate/outline
func (h *GenerateHandler) Outline(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateOutlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payload, err := h.service.Outline(r.Context(), &req)
	if err != nil {
		h.logger.Error("outline generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to generate outline")
		return
	}

	writeJSON(w, http.StatusOK, payload)
}

// SlideContent handles POST /api/v1/generate/slide-content
func (h *GenerateHandler) SlideContent(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateSlideContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.SlideContent(r.Context(), &req)
	if err != nil {
		h.logger.Error("slide content generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to generate slide content")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Script handles POST /api/v1/generate/script
func (h *GenerateHandler) Script(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateScriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Slides) == 0 {
		writeError(w, http.StatusBadRequest, "slides are required")
		return
	}

	resp, err := h.service.Script(r.Context(), &req)
	if err != nil {
		h.logger.Error("script generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to generate script")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// SlideScript handles POST /api/v1/generate/slide-script
func (h *GenerateHandler) SlideScript(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateSlideScriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.SlideScript(r.Context(), &req)
	if err != nil {
		h.logger.Error("slide script generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to generate slide script")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// SlideAssist handles POST /api/v1/generate/slide-assist
func (h *GenerateHandler) SlideAssist(w http.ResponseWriter, r *http.Request) {
	var req model.SlideAssistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.UserRequest == "" {
		writeError(w, http.StatusBadRequest, "userRequest is required")
		return
	}

	resp, err := h.service.SlideAssist(r.Context(), &req)
	if err != nil {
		h.logger.Error("slide assist failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to assist with slide")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// SearchImages handles POST /api/v1/generate/search-images
func (h *GenerateHandler) SearchImages(w http.ResponseWriter, r *http.Request) {
	var req model.SearchImagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.SearchImages(r.Context(), &req)
	if err != nil {
		h.logger.Error("image search failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to search images")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
