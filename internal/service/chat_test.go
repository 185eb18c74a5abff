package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchdeck-ai/platform/internal/llm"
	"github.com/pitchdeck-ai/platform/internal/model"
	"github.com/pitchdeck-ai/platform/internal/store"
	"github.com/pitchdeck-ai/platform/pkg/logger"
)

// fakeLog is an in-memory MessageLog.
type fakeLog struct {
	mu       sync.Mutex
	seq      uint64
	messages []model.ChatMessage
	events   []model.ConversationEvent
}

func (f *fakeLog) PublishMessage(ctx context.Context, msg *model.ChatMessage) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	copied := *msg
	copied.Sequence = f.seq
	f.messages = append(f.messages, copied)
	return f.seq, nil
}

func (f *fakeLog) PublishEvent(ctx context.Context, event *model.ConversationEvent) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	f.events = append(f.events, *event)
	return f.seq, nil
}

func (f *fakeLog) GetMessages(ctx context.Context, tenantID, conversationID string, afterSequence uint64, limit int) ([]model.ChatMessage, uint64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.ChatMessage
	var last uint64
	for _, msg := range f.messages {
		if msg.TenantID != tenantID || msg.ConversationID != conversationID {
			continue
		}
		if msg.Sequence <= afterSequence {
			continue
		}
		out = append(out, msg)
		last = msg.Sequence
		if len(out) == limit {
			break
		}
	}
	return out, last, len(out) == limit, nil
}

// scriptedLLM streams a fixed reply.
type scriptedLLM struct {
	reply string
}

func (s *scriptedLLM) Complete(ctx context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	return &llm.CompletionResponse{Content: s.reply, Model: "scripted"}, nil
}

func (s *scriptedLLM) CompleteStream(ctx context.Context, req *llm.CompletionRequest, callback llm.StreamCallback) (*llm.CompletionResponse, error) {
	for i, word := range strings.SplitAfter(s.reply, " ") {
		if err := callback(word, i); err != nil {
			return nil, err
		}
	}
	return &llm.CompletionResponse{Content: s.reply, Model: "scripted"}, nil
}

func (s *scriptedLLM) Name() string     { return "scripted" }
func (s *scriptedLLM) Models() []string { return []string{"scripted"} }

const deckReply = "I'll create your SaaS pitch deck now!\n" +
	"GENERATE_DECK:\n" +
	"```json\n" +
	"{\n" +
	`  "industry": "saas",` + "\n" +
	`  "title": "Acme - SaaS Investor Pitch",` + "\n" +
	`  "description": "Acme automates invoicing",` + "\n" +
	`  "slides": [` + "\n" +
	`    {"title": "Problem", "content": "Invoicing is manual"},` + "\n" +
	`    {"title": "Solution", "content": "Acme automates it"}` + "\n" +
	"  ]\n" +
	"}\n" +
	"```"

func newChatFixture(client llm.Client) (*ChatService, *fakeLog, *store.MemoryStore, string) {
	log := logger.NewNop()
	msgLog := &fakeLog{}
	st := store.NewMemoryStore()
	convSvc := NewConversationService(msgLog, log)
	deckSvc := NewDeckService(st, log)
	chatSvc := NewChatService(msgLog, convSvc, deckSvc, client, log)

	conv, _ := convSvc.Create(context.Background(), "tenant-1", "user-1", &model.CreateConversationRequest{Title: "New deck"})
	return chatSvc, msgLog, st, conv.ID
}

func TestStreamChatMockFallback(t *testing.T) {
	svc, msgLog, st, convID := newChatFixture(nil)
	ctx := context.Background()

	var streamed strings.Builder
	result, err := svc.StreamChat(ctx, "tenant-1", convID, &model.SendMessageRequest{Content: "hello"}, func(token string, index int) error {
		streamed.WriteString(token)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, mockChatReply, streamed.String())
	assert.Equal(t, mockChatReply, result.AssistantMessage.Content)
	assert.Nil(t, result.Deck)
	assert.Empty(t, result.DeckError)

	// User and assistant messages persisted, no deck state created
	assert.Len(t, msgLog.messages, 2)
	decks, err := st.ListDecks(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, decks)
}

func TestStreamChatExtractsAndPersistsDeck(t *testing.T) {
	svc, msgLog, st, convID := newChatFixture(&scriptedLLM{reply: deckReply})
	ctx := context.Background()

	result, err := svc.StreamChat(ctx, "tenant-1", convID, &model.SendMessageRequest{Content: "generate my deck"}, func(string, int) error {
		return nil
	})
	require.NoError(t, err)

	require.NotNil(t, result.Deck)
	assert.Empty(t, result.DeckError)
	assert.Equal(t, 2, result.Deck.SlideCount)
	assert.Equal(t, "/editor/"+result.Deck.DeckID, result.Deck.RedirectTo)

	deck, err := st.GetDeck(ctx, result.Deck.DeckID)
	require.NoError(t, err)
	assert.Equal(t, "Acme - SaaS Investor Pitch", deck.Title)
	assert.Equal(t, "saas", deck.Industry)
	require.Len(t, deck.Slides, 2)
	assert.Equal(t, "slide_0", deck.Slides[0].ID)
	assert.Equal(t, "content", deck.Slides[0].Type)
	assert.Equal(t, "Problem", deck.Slides[0].Title)

	var created bool
	for _, ev := range msgLog.events {
		if ev.Type == model.EventTypeDeckCreated {
			created = true
			assert.Equal(t, result.Deck.DeckID, ev.DeckID)
		}
	}
	assert.True(t, created)
}

func TestStreamChatTruncatedPayloadIsTerminalError(t *testing.T) {
	truncated := strings.TrimSuffix(strings.TrimSuffix(deckReply, "```"), "}\n")
	svc, msgLog, st, convID := newChatFixture(&scriptedLLM{reply: truncated})
	ctx := context.Background()

	result, err := svc.StreamChat(ctx, "tenant-1", convID, &model.SendMessageRequest{Content: "generate my deck"}, func(string, int) error {
		return nil
	})
	require.NoError(t, err)

	assert.Nil(t, result.Deck)
	assert.NotEmpty(t, result.DeckError)

	decks, err := st.ListDecks(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, decks)

	var deckErrors int
	for _, ev := range msgLog.events {
		if ev.Type == model.EventTypeDeckError {
			deckErrors++
		}
	}
	assert.Equal(t, 1, deckErrors)
}

func TestStreamChatPlainReplyLeavesNoDeckState(t *testing.T) {
	svc, msgLog, st, convID := newChatFixture(&scriptedLLM{reply: "Tell me more about your startup."})
	ctx := context.Background()

	result, err := svc.StreamChat(ctx, "tenant-1", convID, &model.SendMessageRequest{Content: "hi"}, func(string, int) error {
		return nil
	})
	require.NoError(t, err)

	assert.Nil(t, result.Deck)
	assert.Empty(t, result.DeckError)
	assert.Empty(t, msgLog.events)

	decks, err := st.ListDecks(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, decks)
}

func TestGetMessagesClampsLimit(t *testing.T) {
	svc, msgLog, _, convID := newChatFixture(nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := msgLog.PublishMessage(ctx, &model.ChatMessage{
			ID:             "m",
			ConversationID: convID,
			TenantID:       "tenant-1",
			Role:           model.RoleUser,
			Content:        "hi",
		})
		require.NoError(t, err)
	}

	resp, err := svc.GetMessages(ctx, "tenant-1", convID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, resp.Messages, 3)
	assert.False(t, resp.HasMore)
}
