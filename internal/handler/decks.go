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

// DeckHandler handles deck CRUD endpoints.
type DeckHandler struct {
	deckService     *service.DeckService
	generateService *service.GenerateService
	logger          *logger.Logger
}

// NewDeckHandler creates a new deck handler.
func NewDeckHandler(deckSvc *service.DeckService, genSvc *service.GenerateService, log *logger.Logger) *DeckHandler {
	return &DeckHandler{
		deckService:     deckSvc,
		generateService: genSvc,
		logger:          log,
	}
}

// List handles GET /api/v1/decks
func (h *DeckHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.GetTenantID(ctx)

	resp, err := h.deckService.List(ctx, tenantID)
	if err != nil {
		h.logger.Error("failed to list decks", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list decks")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/decks/:id
func (h *DeckHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.GetTenantID(ctx)
	deckID := chi.URLParam(r, "id")

	if err := middleware.ValidateDeckID(deckID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	deck, err := h.deckService.Get(ctx, tenantID, deckID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "deck not found")
			return
		}
		h.logger.Error("failed to get deck", zap.String("deck_id", deckID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to get deck")
		return
	}

	writeJSON(w, http.StatusOK, deck)
}

// Update handles PUT /api/v1/decks/:id
// The request body fully replaces the deck's metadata and slides.
func (h *DeckHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.GetTenantID(ctx)
	deckID := chi.URLParam(r, "id")

	if err := middleware.ValidateDeckID(deckID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.UpdateDeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateTitle(req.Title); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	deck, err := h.deckService.Replace(ctx, tenantID, deckID, &req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "deck not found")
			return
		}
		h.logger.Error("failed to update deck", zap.String("deck_id", deckID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to update deck")
		return
	}

	writeJSON(w, http.StatusOK, deck)
}

// Delete handles DELETE /api/v1/decks/:id
func (h *DeckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.GetTenantID(ctx)
	deckID := chi.URLParam(r, "id")

	if err := middleware.ValidateDeckID(deckID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.deckService.Delete(ctx, tenantID, deckID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "deck not found")
			return
		}
		h.logger.Error("failed to delete deck", zap.String("deck_id", deckID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to delete deck")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Generate handles POST /api/v1/decks/generate
// It generates a full deck from a business description and persists it.
func (h *DeckHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.GetTenantID(ctx)

	var req model.GenerateDeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.BusinessDescription == "" {
		writeError(w, http.StatusBadRequest, "businessDescription is required")
		return
	}

	payload, err := h.generateService.Deck(ctx, &req)
	if err != nil {
		h.logger.Error("deck generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to generate deck")
		return
	}

	deck, err := h.deckService.CreateFromPayload(ctx, tenantID, payload)
	if err != nil {
		h.logger.Error("failed to save generated deck", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to save deck")
		return
	}

	writeJSON(w, http.StatusCreated, deck)
}
