package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pitchdeck-ai/platform/internal/extract"
	"github.com/pitchdeck-ai/platform/internal/llm"
	"github.com/pitchdeck-ai/platform/internal/model"
	"github.com/pitchdeck-ai/platform/internal/prompt"
	"github.com/pitchdeck-ai/platform/pkg/logger"
	"github.com/pitchdeck-ai/platform/pkg/metrics"
)

// mockChatReply is streamed when no LLM credential is configured.
const mockChatReply = "I'd love to help you create a compelling pitch deck! To get started, can you tell me about your startup? What industry are you in and what problem does it solve?"

// TokenCallback is called for each token during streaming.
type TokenCallback func(token string, index int) error

// MessageLog is the durable conversation log. It is satisfied by the
// JetStream stream manager.
type MessageLog interface {
	PublishMessage(ctx context.Context, msg *model.ChatMessage) (uint64, error)
	PublishEvent(ctx context.Context, event *model.ConversationEvent) (uint64, error)
	GetMessages(ctx context.Context, tenantID, conversationID string, afterSequence uint64, limit int) ([]model.ChatMessage, uint64, bool, error)
}

// StreamResult is the outcome of one chat turn. Deck and DeckError are
// mutually exclusive; both are nil-ish when the assistant reply carried
// no deck payload.
type StreamResult struct {
	UserMessage      *model.ChatMessage
	AssistantMessage *model.ChatMessage
	Deck             *model.DeckCreatedEvent
	DeckError        string
}

// ChatService drives the deck-building chat loop: it streams assistant
// replies and turns embedded deck payloads into persisted decks.
type ChatService struct {
	streamManager MessageLog
	conversations *ConversationService
	decks         *DeckService
	llmClient     llm.Client
	logger        *logger.Logger
}

// NewChatService creates a new chat service. llmClient may be nil, in
// which case replies fall back to a canned response.
func NewChatService(
	streamManager MessageLog,
	conversations *ConversationService,
	decks *DeckService,
	llmClient llm.Client,
	log *logger.Logger,
) *ChatService {
	return &ChatService{
		streamManager: streamManager,
		conversations: conversations,
		decks:         decks,
		llmClient:     llmClient,
		logger:        log,
	}
}

// StreamChat publishes the user message, streams the assistant reply
// token by token through onToken, persists the completed reply, and then
// makes exactly one deck extraction attempt over the full reply text.
func (s *ChatService) StreamChat(
	ctx context.Context,
	tenantID, conversationID string,
	req *model.SendMessageRequest,
	onToken TokenCallback,
) (*StreamResult, error) {
	userMsg := &model.ChatMessage{
		ID:             uuid.Must(uuid.NewV7()).String(),
		ConversationID: conversationID,
		TenantID:       tenantID,
		Role:           model.RoleUser,
		Content:        req.Content,
		CreatedAt:      time.Now(),
	}

	seq, err := s.streamManager.PublishMessage(ctx, userMsg)
	if err != nil {
		return nil, fmt.Errorf("failed to publish user message: %w", err)
	}
	userMsg.Sequence = seq
	metrics.MessagesTotal.WithLabelValues(tenantID, string(model.RoleUser)).Inc()
	s.conversations.Touch(ctx, tenantID, conversationID)

	result := &StreamResult{UserMessage: userMsg}

	resp, err := s.complete(ctx, tenantID, conversationID, req, onToken)
	if err != nil {
		s.publishEvent(ctx, tenantID, conversationID, model.EventTypeError, err.Error(), "")
		return result, fmt.Errorf("LLM stream failed: %w", err)
	}

	assistantMsg := &model.ChatMessage{
		ID:             uuid.Must(uuid.NewV7()).String(),
		ConversationID: conversationID,
		TenantID:       tenantID,
		Role:           model.RoleAssistant,
		Content:        resp.Content,
		Model:          &resp.Model,
		TokensIn:       &resp.TokensIn,
		TokensOut:      &resp.TokensOut,
		LatencyMs:      &resp.LatencyMs,
		CreatedAt:      time.Now(),
	}

	seq, err = s.streamManager.PublishMessage(ctx, assistantMsg)
	if err != nil {
		return result, fmt.Errorf("failed to publish assistant message: %w", err)
	}
	assistantMsg.Sequence = seq
	result.AssistantMessage = assistantMsg
	metrics.MessagesTotal.WithLabelValues(tenantID, string(model.RoleAssistant)).Inc()
	metrics.RecordLLMStream(resp.Model, "success", float64(resp.LatencyMs)/1000.0, resp.TokensIn, resp.TokensOut)

	s.extractDeck(ctx, tenantID, conversationID, resp.Content, result)

	return result, nil
}

// complete runs the LLM stream, or the canned fallback when no client is
// configured.
func (s *ChatService) complete(
	ctx context.Context,
	tenantID, conversationID string,
	req *model.SendMessageRequest,
	onToken TokenCallback,
) (*llm.CompletionResponse, error) {
	if s.llmClient == nil {
		return s.mockComplete(ctx, onToken)
	}

	history, _, _, err := s.streamManager.GetMessages(ctx, tenantID, conversationID, 0, 50)
	if err != nil {
		return nil, fmt.Errorf("failed to get message history: %w", err)
	}

	chatMessages := make([]llm.ChatMessage, len(history))
	for i, msg := range history {
		chatMessages[i] = llm.ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}

	return s.llmClient.CompleteStream(ctx, &llm.CompletionRequest{
		Model:     req.Model,
		System:    prompt.ChatSystem,
		Messages:  chatMessages,
		MaxTokens: 4096,
	}, func(token string, index int) error {
		return onToken(token, index)
	})
}

// mockComplete streams the canned reply word by word.
func (s *ChatService) mockComplete(ctx context.Context, onToken TokenCallback) (*llm.CompletionResponse, error) {
	start := time.Now()
	words := strings.Split(mockChatReply, " ")
	for i, word := range words {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		token := word
		if i < len(words)-1 {
			token += " "
		}
		if err := onToken(token, i); err != nil {
			return nil, err
		}
	}

	return &llm.CompletionResponse{
		Content:   mockChatReply,
		Model:     "mock",
		LatencyMs: time.Since(start).Milliseconds(),
	}, nil
}

// extractDeck makes the single extraction attempt over the completed
// reply. A reply without the sentinel is the common case and records
// nothing beyond the outcome counter; any failure after the sentinel was
// seen surfaces as a terminal deck_error so the client is never left
// waiting for a redirect that cannot come.
func (s *ChatService) extractDeck(ctx context.Context, tenantID, conversationID, content string, result *StreamResult) {
	payload, err := extract.Payload(content)
	metrics.RecordExtraction(extract.Outcome(err))

	if errors.Is(err, extract.ErrNoSentinel) {
		return
	}

	if err != nil {
		result.DeckError = err.Error()
		s.publishEvent(ctx, tenantID, conversationID, model.EventTypeDeckError, err.Error(), "")
		s.logger.Warn("deck extraction failed",
			zap.String("conversation_id", conversationID),
			zap.Error(err),
		)
		return
	}

	deck, err := s.decks.CreateFromPayload(ctx, tenantID, payload)
	if err != nil {
		result.DeckError = "failed to save deck"
		s.publishEvent(ctx, tenantID, conversationID, model.EventTypeDeckError, err.Error(), "")
		s.logger.Error("deck persistence failed",
			zap.String("conversation_id", conversationID),
			zap.Error(err),
		)
		return
	}

	s.conversations.LinkDeck(ctx, tenantID, conversationID, deck.ID)
	s.publishEvent(ctx, tenantID, conversationID, model.EventTypeDeckCreated, "", deck.ID)

	result.Deck = &model.DeckCreatedEvent{
		DeckID:     deck.ID,
		RedirectTo: "/editor/" + deck.ID,
		SlideCount: len(deck.Slides),
	}
}

func (s *ChatService) publishEvent(ctx context.Context, tenantID, conversationID string, eventType model.EventType, reason, deckID string) {
	_, err := s.streamManager.PublishEvent(ctx, &model.ConversationEvent{
		ID:             uuid.Must(uuid.NewV7()).String(),
		ConversationID: conversationID,
		TenantID:       tenantID,
		Type:           eventType,
		Reason:         reason,
		DeckID:         deckID,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		s.logger.Warn("failed to publish event",
			zap.String("event_type", string(eventType)),
			zap.Error(err),
		)
	}
}

// GetMessages retrieves messages for a conversation.
func (s *ChatService) GetMessages(ctx context.Context, tenantID, conversationID string, afterSequence uint64, limit int) (*model.ListMessagesResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}

	messages, lastSeq, hasMore, err := s.streamManager.GetMessages(ctx, tenantID, conversationID, afterSequence, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	if messages == nil {
		messages = []model.ChatMessage{}
	}

	return &model.ListMessagesResponse{
		Messages:     messages,
		HasMore:      hasMore,
		LastSequence: lastSeq,
	}, nil
}
