// Package service provides business logic for the pitch deck platform.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pitchdeck-ai/platform/internal/model"
	"github.com/pitchdeck-ai/platform/pkg/logger"
)

// ConversationService handles conversation operations.
type ConversationService struct {
	streamManager MessageLog
	logger        *logger.Logger

	// In-memory registry; message content itself lives in JetStream.
	conversations map[string]*model.Conversation
	mu            sync.RWMutex
}

// NewConversationService creates a new conversation service.
func NewConversationService(streamManager MessageLog, log *logger.Logger) *ConversationService {
	return &ConversationService{
		streamManager: streamManager,
		logger:        log,
		conversations: make(map[string]*model.Conversation),
	}
}

// Create creates a new conversation.
func (s *ConversationService) Create(ctx context.Context, tenantID, userID string, req *model.CreateConversationRequest) (*model.Conversation, error) {
	now := time.Now()

	conv := &model.Conversation{
		ID:        uuid.Must(uuid.NewV7()).String(),
		TenantID:  tenantID,
		UserID:    userID,
		Title:     req.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.conversations[conv.ID] = conv
	s.mu.Unlock()

	s.logger.Info("conversation created",
		zap.String("conversation_id", conv.ID),
		zap.String("tenant_id", tenantID),
	)

	out := *conv
	return &out, nil
}

// Get retrieves a conversation by ID. The returned value is a copy so
// callers never observe concurrent updates mid-read.
func (s *ConversationService) Get(ctx context.Context, tenantID, conversationID string) (*model.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, exists := s.conversations[conversationID]
	if !exists || conv.TenantID != tenantID || conv.Deleted {
		return nil, fmt.Errorf("conversation not found")
	}

	out := *conv
	return &out, nil
}

// List retrieves conversations for a tenant.
func (s *ConversationService) List(ctx context.Context, tenantID string) ([]model.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	convs := []model.Conversation{}
	for _, conv := range s.conversations {
		if conv.TenantID == tenantID && !conv.Deleted {
			convs = append(convs, *conv)
		}
	}

	return convs, nil
}

// Delete soft deletes a conversation.
func (s *ConversationService) Delete(ctx context.Context, tenantID, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, exists := s.conversations[conversationID]
	if !exists || conv.TenantID != tenantID {
		return fmt.Errorf("conversation not found")
	}

	conv.Deleted = true
	conv.UpdatedAt = time.Now()

	return nil
}

// LinkDeck records the deck generated out of this conversation.
func (s *ConversationService) LinkDeck(ctx context.Context, tenantID, conversationID, deckID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, exists := s.conversations[conversationID]
	if !exists || conv.TenantID != tenantID {
		return
	}

	conv.DeckID = deckID
	conv.UpdatedAt = time.Now()
}

// Touch bumps the conversation's updated timestamp.
func (s *ConversationService) Touch(ctx context.Context, tenantID, conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, exists := s.conversations[conversationID]
	if !exists || conv.TenantID != tenantID {
		return
	}
	conv.UpdatedAt = time.Now()
}
