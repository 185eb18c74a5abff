package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchdeck-ai/platform/internal/model"
	"github.com/pitchdeck-ai/platform/internal/store"
	"github.com/pitchdeck-ai/platform/pkg/logger"
)

func newVersionService() *VersionService {
	return NewVersionService(store.NewMemoryStore(), logger.NewNop())
}

func TestSaveFirstVersionIsInitial(t *testing.T) {
	svc := newVersionService()
	ctx := context.Background()

	v, err := svc.Save(ctx, "slide_0", model.Slide{ID: "slide_0", Title: "Problem", Content: "Big problem"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Initial version"}, v.Changes)
	assert.True(t, strings.HasPrefix(v.ID, "v_"))

	versions, err := svc.List(ctx, "slide_0")
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, v.ID, versions[0].ID)
}

func TestSaveIdenticalSnapshotIsMinorChanges(t *testing.T) {
	svc := newVersionService()
	ctx := context.Background()
	slide := model.Slide{ID: "slide_0", Title: "Problem", Content: "Big problem"}

	_, err := svc.Save(ctx, "slide_0", slide)
	require.NoError(t, err)

	v, err := svc.Save(ctx, "slide_0", slide)
	require.NoError(t, err)
	assert.Equal(t, []string{"Minor changes"}, v.Changes)
}

func TestSaveChangeSummaries(t *testing.T) {
	svc := newVersionService()
	ctx := context.Background()

	base := model.Slide{ID: "slide_0", Title: "Problem", Content: "Short content"}
	_, err := svc.Save(ctx, "slide_0", base)
	require.NoError(t, err)

	// Title change plus a small content edit
	edited := base
	edited.Title = "The Problem"
	edited.Content = "Short content."
	v, err := svc.Save(ctx, "slide_0", edited)
	require.NoError(t, err)
	assert.Equal(t, []string{"Title changed", "Content updated"}, v.Changes)

	// Content delta beyond the threshold
	major := edited
	major.Content = edited.Content + strings.Repeat(" more detail added to this slide", 3)
	v, err = svc.Save(ctx, "slide_0", major)
	require.NoError(t, err)
	assert.Contains(t, v.Changes, "Content significantly modified")

	// Image and speaker note changes
	visual := major
	visual.SuggestedImages = []string{"Growth chart"}
	visual.SpeakerNotes = "Pause here"
	v, err = svc.Save(ctx, "slide_0", visual)
	require.NoError(t, err)
	assert.Equal(t, []string{"Image suggestions updated", "Speaker notes modified"}, v.Changes)
}

func TestSaveEvictsBeyondCap(t *testing.T) {
	svc := newVersionService()
	ctx := context.Background()

	var ids []string
	for i := 0; i < 11; i++ {
		v, err := svc.Save(ctx, "slide_0", model.Slide{
			ID:      "slide_0",
			Title:   "Problem",
			Content: fmt.Sprintf("revision %d", i),
		})
		require.NoError(t, err)
		ids = append(ids, v.ID)
	}

	versions, err := svc.List(ctx, "slide_0")
	require.NoError(t, err)
	require.Len(t, versions, maxVersionsPerSlide)

	// Newest first, oldest snapshot evicted
	assert.Equal(t, ids[10], versions[0].ID)
	assert.Equal(t, ids[1], versions[len(versions)-1].ID)
	for _, v := range versions {
		assert.NotEqual(t, ids[0], v.ID)
	}
}

func TestRestoreReturnsSnapshot(t *testing.T) {
	svc := newVersionService()
	ctx := context.Background()

	first, err := svc.Save(ctx, "slide_0", model.Slide{ID: "slide_0", Title: "Problem", Content: "v1"})
	require.NoError(t, err)
	_, err = svc.Save(ctx, "slide_0", model.Slide{ID: "slide_0", Title: "Problem", Content: "v2"})
	require.NoError(t, err)

	slide, err := svc.Restore(ctx, "slide_0", first.ID)
	require.NoError(t, err)
	assert.Equal(t, "v1", slide.Content)

	// Restoring does not rewrite history
	versions, err := svc.List(ctx, "slide_0")
	require.NoError(t, err)
	assert.Len(t, versions, 2)
}

func TestRestoreUnknownVersion(t *testing.T) {
	svc := newVersionService()
	ctx := context.Background()

	_, err := svc.Save(ctx, "slide_0", model.Slide{ID: "slide_0", Title: "Problem"})
	require.NoError(t, err)

	_, err = svc.Restore(ctx, "slide_0", "v_missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListEmptyHistory(t *testing.T) {
	svc := newVersionService()

	versions, err := svc.List(context.Background(), "slide_without_history")
	require.NoError(t, err)
	assert.Empty(t, versions)
}
