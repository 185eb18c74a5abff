package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchdeck-ai/platform/internal/model"
	"github.com/pitchdeck-ai/platform/pkg/logger"
)

func newConversationService() *ConversationService {
	return NewConversationService(&fakeLog{}, logger.NewNop())
}

func TestConversationGetReturnsSnapshot(t *testing.T) {
	svc := newConversationService()
	ctx := context.Background()

	conv, err := svc.Create(ctx, "tenant-1", "user-1", &model.CreateConversationRequest{Title: "New deck"})
	require.NoError(t, err)

	before, err := svc.Get(ctx, "tenant-1", conv.ID)
	require.NoError(t, err)
	assert.Empty(t, before.DeckID)

	svc.LinkDeck(ctx, "tenant-1", conv.ID, "1724900000000")
	svc.Touch(ctx, "tenant-1", conv.ID)

	// The earlier snapshot is not mutated by later updates
	assert.Empty(t, before.DeckID)
	assert.Equal(t, before.UpdatedAt, conv.CreatedAt)

	after, err := svc.Get(ctx, "tenant-1", conv.ID)
	require.NoError(t, err)
	assert.Equal(t, "1724900000000", after.DeckID)
}

func TestConversationGetScopedToTenant(t *testing.T) {
	svc := newConversationService()
	ctx := context.Background()

	conv, err := svc.Create(ctx, "tenant-1", "user-1", &model.CreateConversationRequest{Title: "New deck"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "tenant-2", conv.ID)
	assert.Error(t, err)
}

func TestConversationDeleteHidesFromGetAndList(t *testing.T) {
	svc := newConversationService()
	ctx := context.Background()

	conv, err := svc.Create(ctx, "tenant-1", "user-1", &model.CreateConversationRequest{Title: "New deck"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "tenant-1", conv.ID))

	_, err = svc.Get(ctx, "tenant-1", conv.ID)
	assert.Error(t, err)

	convs, err := svc.List(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Empty(t, convs)
}
