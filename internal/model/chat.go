package model

import (
	"time"
)

// Role represents the role of a chat message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Conversation represents a deck-building chat thread.
type Conversation struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	DeckID    string    `json:"deck_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Deleted   bool      `json:"deleted,omitempty"`
}

// CreateConversationRequest is the request to start a new conversation.
type CreateConversationRequest struct {
	Title string `json:"title"`
}

// ChatMessage is a persisted conversation message.
type ChatMessage struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversation_id"`
	TenantID       string `json:"tenant_id"`

	Role    Role   `json:"role"`
	Content string `json:"content"`

	// LLM metadata, nil for user messages.
	Model     *string `json:"model,omitempty"`
	TokensIn  *int    `json:"tokens_in,omitempty"`
	TokensOut *int    `json:"tokens_out,omitempty"`
	LatencyMs *int64  `json:"latency_ms,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	// JetStream sequence, populated on read.
	Sequence uint64 `json:"sequence,omitempty"`
}

// SendMessageRequest is the request to send a user message into a
// conversation stream.
type SendMessageRequest struct {
	Content string `json:"content"`
	Model   string `json:"model,omitempty"`
}

// EventType represents the type of conversation event.
type EventType string

const (
	EventTypeError       EventType = "error"
	EventTypeDeckCreated EventType = "deck_created"
	EventTypeDeckError   EventType = "deck_error"
)

// ConversationEvent represents an out-of-band event in a conversation.
type ConversationEvent struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	TenantID       string    `json:"tenant_id"`
	Type           EventType `json:"type"`
	Reason         string    `json:"reason,omitempty"`
	DeckID         string    `json:"deck_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// TokenEvent represents a streaming token event.
type TokenEvent struct {
	Token string `json:"token"`
	Index int    `json:"index"`
}

// DeckCreatedEvent tells the client a deck was extracted and persisted.
// RedirectTo addresses the editor view for the new deck.
type DeckCreatedEvent struct {
	DeckID     string `json:"deck_id"`
	RedirectTo string `json:"redirect_to"`
	SlideCount int    `json:"slide_count"`
}

// MessageCompleteEvent marks the end of an assistant reply stream.
type MessageCompleteEvent struct {
	Message  ChatMessage `json:"message"`
	Sequence uint64      `json:"sequence"`
}

// HeartbeatEvent keeps idle SSE connections alive.
type HeartbeatEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

// ErrorEvent represents an error event.
type ErrorEvent struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListMessagesResponse is the response for listing conversation messages.
type ListMessagesResponse struct {
	Messages     []ChatMessage `json:"messages"`
	HasMore      bool          `json:"has_more"`
	LastSequence uint64        `json:"last_sequence"`
}
