// Package model defines data structures for the pitch deck platform.
package model

// Slide is one presentation unit. Array position within a deck defines
// presentation order and is persisted.
type Slide struct {
	ID                string   `json:"id"`
	Type              string   `json:"type"`
	Title             string   `json:"title"`
	Content           string   `json:"content"`
	SuggestedImages   []string `json:"suggestedImages,omitempty"`
	SpeakerNotes      string   `json:"speakerNotes,omitempty"`
	MediaURLs         []string `json:"mediaUrls,omitempty"`
	MediaDescriptions []string `json:"mediaDescriptions,omitempty"`
}

// Deck is a named ordered collection of slides plus metadata. Decks are
// created once and fully replaced on edit; there are no partial patch
// semantics.
type Deck struct {
	ID          string  `json:"id"`
	TenantID    string  `json:"tenant_id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Industry    string  `json:"industry"`
	CreatedAt   string  `json:"createdAt"`
	Slides      []Slide `json:"slides"`
}

// SlideVersion is an immutable snapshot of a slide's fields captured at
// save time, with a derived human-readable change summary.
type SlideVersion struct {
	ID        string   `json:"id"`
	Timestamp string   `json:"timestamp"`
	SlideData Slide    `json:"slideData"`
	Changes   []string `json:"changes"`
}

// DeckPayload is the structured deck specification embedded in an
// assistant reply after the GENERATE_DECK sentinel.
type DeckPayload struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Industry    string         `json:"industry"`
	Slides      []PayloadSlide `json:"slides"`
}

// PayloadSlide is a slide as the assistant emits it. Any type the payload
// carries is discarded during normalization.
type PayloadSlide struct {
	Type            string   `json:"type,omitempty"`
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	SuggestedImages []string `json:"suggestedImages,omitempty"`
	KeyMetrics      []string `json:"keyMetrics,omitempty"`
	SpeakerNotes    string   `json:"speakerNotes,omitempty"`
}

// UpdateDeckRequest fully replaces a deck's metadata and slide collection.
type UpdateDeckRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Industry    string  `json:"industry,omitempty"`
	Slides      []Slide `json:"slides"`
}

// ListDecksResponse is the response for listing decks.
type ListDecksResponse struct {
	Decks []Deck `json:"decks"`
	Total int    `json:"total"`
}

// SaveVersionRequest captures a slide snapshot.
type SaveVersionRequest struct {
	SlideID   string `json:"slideId"`
	SlideData Slide  `json:"slideData"`
}

// SaveVersionResponse acknowledges a saved snapshot.
type SaveVersionResponse struct {
	Success   bool   `json:"success"`
	VersionID string `json:"versionId"`
}

// ListVersionsResponse returns the retained snapshots, newest first.
type ListVersionsResponse struct {
	Versions []SlideVersion `json:"versions"`
}

// RestoreVersionResponse returns the snapshot for the caller to reapply
// as the current slide state.
type RestoreVersionResponse struct {
	SlideData Slide `json:"slideData"`
}
