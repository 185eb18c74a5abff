package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchdeck-ai/platform/internal/model"
	"github.com/pitchdeck-ai/platform/internal/store"
	"github.com/pitchdeck-ai/platform/pkg/logger"
)

func newDeckFixture() (*DeckService, *store.MemoryStore) {
	st := store.NewMemoryStore()
	return NewDeckService(st, logger.NewNop()), st
}

func samplePayload() *model.DeckPayload {
	return &model.DeckPayload{
		Title:       "Acme - SaaS Investor Pitch",
		Description: "Acme automates invoicing for SMBs",
		Industry:    "saas",
		Slides: []model.PayloadSlide{
			{Title: "Problem", Content: "Invoicing is manual and error prone"},
			{Title: "Solution", Content: "Acme automates the whole flow"},
			{Title: "Market", Content: "12M SMBs in the US alone"},
		},
	}
}

func TestCreateFromPayloadNormalizesSlides(t *testing.T) {
	svc, _ := newDeckFixture()
	ctx := context.Background()

	deck, err := svc.CreateFromPayload(ctx, "tenant-1", samplePayload())
	require.NoError(t, err)

	assert.NotEmpty(t, deck.ID)
	assert.Equal(t, "tenant-1", deck.TenantID)
	assert.Equal(t, "saas", deck.Industry)
	require.Len(t, deck.Slides, 3)

	for i, slide := range deck.Slides {
		assert.Equal(t, "content", slide.Type)
		assert.Equal(t, fmt.Sprintf("slide_%d", i), slide.ID)
	}
	assert.Equal(t, "Problem", deck.Slides[0].Title)
}

func TestCreateFromPayloadDefaultsIndustry(t *testing.T) {
	svc, _ := newDeckFixture()
	payload := samplePayload()
	payload.Industry = ""

	deck, err := svc.CreateFromPayload(context.Background(), "tenant-1", payload)
	require.NoError(t, err)
	assert.Equal(t, "general", deck.Industry)
}

func TestCreateFromPayloadPersistsDeckAndSlides(t *testing.T) {
	svc, st := newDeckFixture()
	ctx := context.Background()

	deck, err := svc.CreateFromPayload(ctx, "tenant-1", samplePayload())
	require.NoError(t, err)

	stored, err := st.GetDeck(ctx, deck.ID)
	require.NoError(t, err)
	assert.Equal(t, deck.Title, stored.Title)

	slides, err := st.GetSlides(ctx, deck.ID)
	require.NoError(t, err)
	assert.Len(t, slides, 3)
}

func TestGetScopedToTenant(t *testing.T) {
	svc, _ := newDeckFixture()
	ctx := context.Background()

	deck, err := svc.CreateFromPayload(ctx, "tenant-1", samplePayload())
	require.NoError(t, err)

	_, err = svc.Get(ctx, "tenant-2", deck.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	got, err := svc.Get(ctx, "tenant-1", deck.ID)
	require.NoError(t, err)
	assert.Equal(t, deck.ID, got.ID)
}

func TestReplaceDropsRemovedSlideVersions(t *testing.T) {
	svc, st := newDeckFixture()
	ctx := context.Background()

	deck, err := svc.CreateFromPayload(ctx, "tenant-1", samplePayload())
	require.NoError(t, err)

	// History for a slide that will be removed and one that survives
	require.NoError(t, st.PutVersions(ctx, "slide_2", []model.SlideVersion{{ID: "v_a"}}))
	require.NoError(t, st.PutVersions(ctx, "slide_0", []model.SlideVersion{{ID: "v_b"}}))

	updated, err := svc.Replace(ctx, "tenant-1", deck.ID, &model.UpdateDeckRequest{
		Title:       "Acme - Updated",
		Description: deck.Description,
		Slides:      deck.Slides[:2],
	})
	require.NoError(t, err)
	assert.Len(t, updated.Slides, 2)
	assert.Equal(t, deck.Industry, updated.Industry)
	assert.Equal(t, deck.CreatedAt, updated.CreatedAt)

	removed, err := st.GetVersions(ctx, "slide_2")
	require.NoError(t, err)
	assert.Empty(t, removed)

	kept, err := st.GetVersions(ctx, "slide_0")
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestDeleteRemovesDeckAndHistory(t *testing.T) {
	svc, st := newDeckFixture()
	ctx := context.Background()

	deck, err := svc.CreateFromPayload(ctx, "tenant-1", samplePayload())
	require.NoError(t, err)
	require.NoError(t, st.PutVersions(ctx, "slide_1", []model.SlideVersion{{ID: "v_x"}}))

	require.NoError(t, svc.Delete(ctx, "tenant-1", deck.ID))

	_, err = st.GetDeck(ctx, deck.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	versions, err := st.GetVersions(ctx, "slide_1")
	require.NoError(t, err)
	assert.Empty(t, versions)
}

func TestDeleteUnknownDeck(t *testing.T) {
	svc, _ := newDeckFixture()
	err := svc.Delete(context.Background(), "tenant-1", "1234")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
