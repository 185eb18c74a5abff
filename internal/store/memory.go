package store

import (
	"context"
	"sync"

	"github.com/pitchdeck-ai/platform/internal/model"
)

// MemoryStore is an in-memory Store used in tests and development.
type MemoryStore struct {
	mu       sync.RWMutex
	decks    map[string]*model.Deck
	order    []string
	slides   map[string][]model.Slide
	versions map[string][]model.SlideVersion
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		decks:    make(map[string]*model.Deck),
		slides:   make(map[string][]model.Slide),
		versions: make(map[string][]model.SlideVersion),
	}
}

// ListDecks returns decks in insertion order. An empty tenant matches all.
func (s *MemoryStore) ListDecks(ctx context.Context, tenantID string) ([]model.Deck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	decks := make([]model.Deck, 0, len(s.order))
	for _, id := range s.order {
		deck := s.decks[id]
		if tenantID != "" && deck.TenantID != tenantID {
			continue
		}
		decks = append(decks, *deck)
	}
	return decks, nil
}

// GetDeck retrieves a deck by id.
func (s *MemoryStore) GetDeck(ctx context.Context, id string) (*model.Deck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deck, ok := s.decks[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *deck
	return &copied, nil
}

// PutDeck writes the deck record and its slide collection under one lock.
func (s *MemoryStore) PutDeck(ctx context.Context, deck *model.Deck, slides []model.Slide) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.decks[deck.ID]; !exists {
		s.order = append(s.order, deck.ID)
	}
	copied := *deck
	s.decks[deck.ID] = &copied
	s.slides[deck.ID] = append([]model.Slide(nil), slides...)
	return nil
}

// DeleteDeck removes the deck, its slides, and all per-slide versions.
func (s *MemoryStore) DeleteDeck(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.decks[id]; !ok {
		return ErrNotFound
	}
	for _, slide := range s.slides[id] {
		delete(s.versions, slide.ID)
	}
	delete(s.decks, id)
	delete(s.slides, id)
	for i, deckID := range s.order {
		if deckID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// GetSlides returns the slide collection for a deck.
func (s *MemoryStore) GetSlides(ctx context.Context, deckID string) ([]model.Slide, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slides, ok := s.slides[deckID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]model.Slide(nil), slides...), nil
}

// PutSlides replaces the slide collection for a deck.
func (s *MemoryStore) PutSlides(ctx context.Context, deckID string, slides []model.Slide) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.decks[deckID]; !ok {
		return ErrNotFound
	}
	s.slides[deckID] = append([]model.Slide(nil), slides...)
	return nil
}

// GetVersions returns the retained version collection for a slide, newest
// first. A slide with no saved versions yields an empty collection.
func (s *MemoryStore) GetVersions(ctx context.Context, slideID string) ([]model.SlideVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.SlideVersion(nil), s.versions[slideID]...), nil
}

// PutVersions replaces the version collection for a slide.
func (s *MemoryStore) PutVersions(ctx context.Context, slideID string, versions []model.SlideVersion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.versions[slideID] = append([]model.SlideVersion(nil), versions...)
	return nil
}

// DeleteVersions drops the version collection for a slide.
func (s *MemoryStore) DeleteVersions(ctx context.Context, slideID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.versions, slideID)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
