// Package store provides durable keyed storage for decks, slide
// collections, and slide version collections.
package store

import (
	"context"
	"errors"

	"github.com/pitchdeck-ai/platform/internal/model"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store is the narrow persistence interface. Call sites never touch the
// storage medium directly.
//
// PutDeck writes the deck record and its normalized slide collection as a
// single operation: either both land or neither does, so a partial
// failure can never leave an orphaned deck without slides.
//
// DeleteDeck removes the deck, its slide collection, and the version
// collection of every slide in it.
type Store interface {
	// Decks
	ListDecks(ctx context.Context, tenantID string) ([]model.Deck, error)
	GetDeck(ctx context.Context, id string) (*model.Deck, error)
	PutDeck(ctx context.Context, deck *model.Deck, slides []model.Slide) error
	DeleteDeck(ctx context.Context, id string) error

	// Slide collections, keyed by deck id
	GetSlides(ctx context.Context, deckID string) ([]model.Slide, error)
	PutSlides(ctx context.Context, deckID string, slides []model.Slide) error

	// Version collections, keyed by slide id
	GetVersions(ctx context.Context, slideID string) ([]model.SlideVersion, error)
	PutVersions(ctx context.Context, slideID string, versions []model.SlideVersion) error
	DeleteVersions(ctx context.Context, slideID string) error

	Close() error
}
