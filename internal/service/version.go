package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pitchdeck-ai/platform/internal/model"
	"github.com/pitchdeck-ai/platform/internal/store"
	"github.com/pitchdeck-ai/platform/pkg/logger"
	"github.com/pitchdeck-ai/platform/pkg/metrics"
)

// maxVersionsPerSlide caps retained history per slide, newest first.
const maxVersionsPerSlide = 10

// contentDeltaThreshold is the character delta beyond which a content
// edit is summarized as a major change.
const contentDeltaThreshold = 50

// VersionService handles slide version history.
type VersionService struct {
	store  store.Store
	logger *logger.Logger
}

// NewVersionService creates a new version service.
func NewVersionService(st store.Store, log *logger.Logger) *VersionService {
	return &VersionService{
		store:  st,
		logger: log,
	}
}

// Save captures a snapshot of the slide. The snapshot is prepended to the
// slide's history and anything beyond the retention cap falls off the end.
func (s *VersionService) Save(ctx context.Context, slideID string, slide model.Slide) (*model.SlideVersion, error) {
	existing, err := s.store.GetVersions(ctx, slideID)
	if err != nil {
		return nil, fmt.Errorf("failed to load versions: %w", err)
	}

	version := model.SlideVersion{
		ID:        "v_" + uuid.Must(uuid.NewV7()).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		SlideData: slide,
	}

	if len(existing) == 0 {
		version.Changes = []string{"Initial version"}
	} else {
		version.Changes = changeSummary(existing[0].SlideData, slide)
	}

	updated := append([]model.SlideVersion{version}, existing...)
	if len(updated) > maxVersionsPerSlide {
		updated = updated[:maxVersionsPerSlide]
	}

	if err := s.store.PutVersions(ctx, slideID, updated); err != nil {
		return nil, fmt.Errorf("failed to persist versions: %w", err)
	}

	metrics.SlideVersionsSavedTotal.Inc()

	s.logger.Debug("slide version saved",
		zap.String("slide_id", slideID),
		zap.String("version_id", version.ID),
		zap.Int("retained", len(updated)),
	)

	return &version, nil
}

// List returns the retained snapshots for a slide, newest first. A slide
// with no history yields an empty list, not an error.
func (s *VersionService) List(ctx context.Context, slideID string) ([]model.SlideVersion, error) {
	versions, err := s.store.GetVersions(ctx, slideID)
	if err != nil {
		return nil, fmt.Errorf("failed to load versions: %w", err)
	}
	if versions == nil {
		versions = []model.SlideVersion{}
	}
	return versions, nil
}

// Restore returns the snapshot identified by versionID so the caller can
// reapply it as the slide's current state. History is not rewritten.
func (s *VersionService) Restore(ctx context.Context, slideID, versionID string) (*model.Slide, error) {
	versions, err := s.store.GetVersions(ctx, slideID)
	if err != nil {
		return nil, fmt.Errorf("failed to load versions: %w", err)
	}

	for _, v := range versions {
		if v.ID == versionID {
			slide := v.SlideData
			return &slide, nil
		}
	}

	return nil, store.ErrNotFound
}

// changeSummary derives human-readable change labels by comparing the new
// snapshot against the previous one.
func changeSummary(prev, next model.Slide) []string {
	var changes []string

	if prev.Title != next.Title {
		changes = append(changes, "Title changed")
	}

	if prev.Content != next.Content {
		delta := len(next.Content) - len(prev.Content)
		if delta < 0 {
			delta = -delta
		}
		if delta > contentDeltaThreshold {
			changes = append(changes, "Content significantly modified")
		} else {
			changes = append(changes, "Content updated")
		}
	}

	if !slices.Equal(prev.SuggestedImages, next.SuggestedImages) {
		changes = append(changes, "Image suggestions updated")
	}

	if prev.SpeakerNotes != next.SpeakerNotes {
		changes = append(changes, "Speaker notes modified")
	}

	if len(changes) == 0 {
		changes = []string{"Minor changes"}
	}

	return changes
}
