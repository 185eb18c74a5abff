package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/pitchdeck-ai/platform/internal/model"
	"github.com/pitchdeck-ai/platform/internal/store"
	"github.com/pitchdeck-ai/platform/pkg/logger"
	"github.com/pitchdeck-ai/platform/pkg/metrics"
)

// DeckService handles deck persistence and lifecycle.
type DeckService struct {
	store  store.Store
	logger *logger.Logger
}

// NewDeckService creates a new deck service.
func NewDeckService(st store.Store, log *logger.Logger) *DeckService {
	return &DeckService{
		store:  st,
		logger: log,
	}
}

// CreateFromPayload materializes a deck from an extracted payload. Slide
// IDs are assigned positionally and every slide is normalized to the
// content type regardless of what the payload claimed.
func (s *DeckService) CreateFromPayload(ctx context.Context, tenantID string, payload *model.DeckPayload) (*model.Deck, error) {
	industry := payload.Industry
	if industry == "" {
		industry = "general"
	}

	slides := make([]model.Slide, len(payload.Slides))
	for i, ps := range payload.Slides {
		slides[i] = model.Slide{
			ID:              fmt.Sprintf("slide_%d", i),
			Type:            "content",
			Title:           ps.Title,
			Content:         ps.Content,
			SuggestedImages: ps.SuggestedImages,
			SpeakerNotes:    ps.SpeakerNotes,
		}
	}

	deck := &model.Deck{
		ID:          strconv.FormatInt(time.Now().UnixMilli(), 10),
		TenantID:    tenantID,
		Title:       payload.Title,
		Description: payload.Description,
		Industry:    industry,
		CreatedAt:   time.Now().Format("1/2/2006"),
		Slides:      slides,
	}

	if err := s.store.PutDeck(ctx, deck, slides); err != nil {
		return nil, fmt.Errorf("failed to persist deck: %w", err)
	}

	metrics.DecksGeneratedTotal.WithLabelValues(tenantID, industry).Inc()

	s.logger.Info("deck created",
		zap.String("deck_id", deck.ID),
		zap.String("tenant_id", tenantID),
		zap.String("industry", industry),
		zap.Int("slide_count", len(slides)),
	)

	return deck, nil
}

// List retrieves all decks for a tenant.
func (s *DeckService) List(ctx context.Context, tenantID string) (*model.ListDecksResponse, error) {
	decks, err := s.store.ListDecks(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}

	return &model.ListDecksResponse{
		Decks: decks,
		Total: len(decks),
	}, nil
}

// Get retrieves a deck by ID, scoped to the tenant.
func (s *DeckService) Get(ctx context.Context, tenantID, deckID string) (*model.Deck, error) {
	deck, err := s.store.GetDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if deck.TenantID != "" && deck.TenantID != tenantID {
		return nil, store.ErrNotFound
	}
	return deck, nil
}

// Replace fully replaces a deck's metadata and slide collection. Version
// history of slides that no longer exist in the new collection is dropped.
func (s *DeckService) Replace(ctx context.Context, tenantID, deckID string, req *model.UpdateDeckRequest) (*model.Deck, error) {
	existing, err := s.Get(ctx, tenantID, deckID)
	if err != nil {
		return nil, err
	}

	removed := removedSlideIDs(existing.Slides, req.Slides)

	industry := req.Industry
	if industry == "" {
		industry = existing.Industry
	}

	deck := &model.Deck{
		ID:          existing.ID,
		TenantID:    existing.TenantID,
		Title:       req.Title,
		Description: req.Description,
		Industry:    industry,
		CreatedAt:   existing.CreatedAt,
		Slides:      req.Slides,
	}

	if err := s.store.PutDeck(ctx, deck, req.Slides); err != nil {
		return nil, fmt.Errorf("failed to persist deck: %w", err)
	}

	for _, slideID := range removed {
		if err := s.store.DeleteVersions(ctx, slideID); err != nil {
			s.logger.Warn("failed to drop versions for removed slide",
				zap.String("slide_id", slideID),
				zap.Error(err),
			)
		}
	}

	return deck, nil
}

// Delete removes a deck along with its slides and their version history.
func (s *DeckService) Delete(ctx context.Context, tenantID, deckID string) error {
	if _, err := s.Get(ctx, tenantID, deckID); err != nil {
		return err
	}

	if err := s.store.DeleteDeck(ctx, deckID); err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}

	s.logger.Info("deck deleted",
		zap.String("deck_id", deckID),
		zap.String("tenant_id", tenantID),
	)

	return nil
}

func removedSlideIDs(before, after []model.Slide) []string {
	kept := make(map[string]struct{}, len(after))
	for _, s := range after {
		kept[s.ID] = struct{}{}
	}

	var removed []string
	for _, s := range before {
		if _, ok := kept[s.ID]; !ok {
			removed = append(removed, s.ID)
		}
	}
	return removed
}
