package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchdeck-ai/platform/internal/model"
)

// forEachStore runs the test against both store implementations.
func forEachStore(t *testing.T, fn func(t *testing.T, st Store)) {
	t.Run("memory", func(t *testing.T) {
		st := NewMemoryStore()
		defer st.Close()
		fn(t, st)
	})

	t.Run("sqlite", func(t *testing.T) {
		st, err := NewSQLiteStore(filepath.Join(t.TempDir(), "decks.db"))
		require.NoError(t, err)
		defer st.Close()
		fn(t, st)
	})
}

func testDeck(id, tenant string) (*model.Deck, []model.Slide) {
	slides := []model.Slide{
		{ID: "slide_0", Type: "content", Title: "Problem", Content: "Invoicing is manual"},
		{ID: "slide_1", Type: "content", Title: "Solution", Content: "Acme automates it"},
	}
	return &model.Deck{
		ID:        id,
		TenantID:  tenant,
		Title:     "Acme Pitch",
		Industry:  "saas",
		CreatedAt: "1/2/2026",
		Slides:    slides,
	}, slides
}

func TestPutAndGetDeck(t *testing.T) {
	forEachStore(t, func(t *testing.T, st Store) {
		ctx := context.Background()
		deck, slides := testDeck("100", "tenant-1")

		require.NoError(t, st.PutDeck(ctx, deck, slides))

		got, err := st.GetDeck(ctx, "100")
		require.NoError(t, err)
		assert.Equal(t, deck.Title, got.Title)
		assert.Equal(t, deck.TenantID, got.TenantID)
		require.Len(t, got.Slides, 2)

		gotSlides, err := st.GetSlides(ctx, "100")
		require.NoError(t, err)
		assert.Equal(t, slides, gotSlides)
	})
}

func TestGetDeckNotFound(t *testing.T) {
	forEachStore(t, func(t *testing.T, st Store) {
		_, err := st.GetDeck(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPutDeckReplacesExisting(t *testing.T) {
	forEachStore(t, func(t *testing.T, st Store) {
		ctx := context.Background()
		deck, slides := testDeck("100", "tenant-1")
		require.NoError(t, st.PutDeck(ctx, deck, slides))

		deck.Title = "Acme Pitch v2"
		require.NoError(t, st.PutDeck(ctx, deck, slides[:1]))

		got, err := st.GetDeck(ctx, "100")
		require.NoError(t, err)
		assert.Equal(t, "Acme Pitch v2", got.Title)

		gotSlides, err := st.GetSlides(ctx, "100")
		require.NoError(t, err)
		assert.Len(t, gotSlides, 1)

		// Replacing does not duplicate the listing
		decks, err := st.ListDecks(ctx, "tenant-1")
		require.NoError(t, err)
		assert.Len(t, decks, 1)
	})
}

func TestListDecksFiltersByTenant(t *testing.T) {
	forEachStore(t, func(t *testing.T, st Store) {
		ctx := context.Background()
		d1, s1 := testDeck("100", "tenant-1")
		d2, s2 := testDeck("200", "tenant-2")
		require.NoError(t, st.PutDeck(ctx, d1, s1))
		require.NoError(t, st.PutDeck(ctx, d2, s2))

		decks, err := st.ListDecks(ctx, "tenant-1")
		require.NoError(t, err)
		require.Len(t, decks, 1)
		assert.Equal(t, "100", decks[0].ID)
	})
}

func TestDeleteDeckCascades(t *testing.T) {
	forEachStore(t, func(t *testing.T, st Store) {
		ctx := context.Background()
		deck, slides := testDeck("100", "tenant-1")
		require.NoError(t, st.PutDeck(ctx, deck, slides))
		require.NoError(t, st.PutVersions(ctx, "slide_0", []model.SlideVersion{{ID: "v_1"}}))

		require.NoError(t, st.DeleteDeck(ctx, "100"))

		_, err := st.GetDeck(ctx, "100")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = st.GetSlides(ctx, "100")
		assert.ErrorIs(t, err, ErrNotFound)

		versions, err := st.GetVersions(ctx, "slide_0")
		require.NoError(t, err)
		assert.Empty(t, versions)
	})
}

func TestDeleteDeckNotFound(t *testing.T) {
	forEachStore(t, func(t *testing.T, st Store) {
		err := st.DeleteDeck(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestVersionRoundTrip(t *testing.T) {
	forEachStore(t, func(t *testing.T, st Store) {
		ctx := context.Background()

		versions, err := st.GetVersions(ctx, "slide_0")
		require.NoError(t, err)
		assert.Empty(t, versions)

		saved := []model.SlideVersion{
			{ID: "v_2", Timestamp: "2026-08-29T10:00:00Z", Changes: []string{"Content updated"}},
			{ID: "v_1", Timestamp: "2026-08-29T09:00:00Z", Changes: []string{"Initial version"}},
		}
		require.NoError(t, st.PutVersions(ctx, "slide_0", saved))

		got, err := st.GetVersions(ctx, "slide_0")
		require.NoError(t, err)
		assert.Equal(t, saved, got)

		require.NoError(t, st.DeleteVersions(ctx, "slide_0"))
		got, err = st.GetVersions(ctx, "slide_0")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestPutSlidesRequiresDeck(t *testing.T) {
	forEachStore(t, func(t *testing.T, st Store) {
		err := st.PutSlides(context.Background(), "missing", []model.Slide{{ID: "slide_0"}})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
