package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pitchdeck-ai/platform/internal/middleware"
	"github.com/pitchdeck-ai/platform/internal/model"
	"github.com/pitchdeck-ai/platform/internal/service"
	"github.com/pitchdeck-ai/platform/pkg/logger"
	"github.com/pitchdeck-ai/platform/pkg/metrics"
)

// ChatHandler handles chat message and SSE streaming endpoints.
type ChatHandler struct {
	chatService         *service.ChatService
	conversationService *service.ConversationService
	logger              *logger.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(
	chatSvc *service.ChatService,
	convSvc *service.ConversationService,
	log *logger.Logger,
) *ChatHandler {
	return &ChatHandler{
		chatService:         chatSvc,
		conversationService: convSvc,
		logger:              log,
	}
}

// ReplayCompleteEvent represents the completion of message replay.
type ReplayCompleteEvent struct {
	LastSequence uint64 `json:"last_sequence"`
	MessageCount int    `json:"message_count"`
}

// ListMessages handles GET /api/v1/conversations/:id/messages
func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.GetTenantID(ctx)
	conversationID := chi.URLParam(r, "id")

	if err := middleware.ValidateConversationID(conversationID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.conversationService.Get(ctx, tenantID, conversationID); err != nil {
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	}

	afterSequence := uint64(0)
	limit := 50

	if seq := r.URL.Query().Get("after_sequence"); seq != "" {
		if parsed, err := strconv.ParseUint(seq, 10, 64); err == nil {
			afterSequence = parsed
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	resp, err := h.chatService.GetMessages(ctx, tenantID, conversationID, afterSequence, limit)
	if err != nil {
		h.logger.Error("failed to get messages", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to get messages")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Stream handles GET /api/v1/conversations/:id/stream
// Supports ?after_sequence=N for resuming from a specific point.
func (h *ChatHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.GetTenantID(ctx)
	conversationID := chi.URLParam(r, "id")

	if err := middleware.ValidateConversationID(conversationID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.conversationService.Get(ctx, tenantID, conversationID); err != nil {
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	}

	var afterSequence uint64
	if seqStr := r.URL.Query().Get("after_sequence"); seqStr != "" {
		if seq, err := strconv.ParseUint(seqStr, 10, 64); err == nil {
			afterSequence = seq
		}
	}

	flusher, ok := h.startSSE(w)
	if !ok {
		return
	}

	metrics.IncrementSSEConnections()
	defer metrics.DecrementSSEConnections()

	done := ctx.Done()

	sendSSEEvent(w, flusher, "connected", map[string]string{
		"conversation_id": conversationID,
	})

	// Replay persisted messages in batches
	var lastSequence uint64
	var totalReplayed int

	for {
		resp, err := h.chatService.GetMessages(ctx, tenantID, conversationID, afterSequence, 50)
		if err != nil {
			h.logger.Error("failed to replay messages",
				zap.String("conversation_id", conversationID),
				zap.Error(err),
			)
			sendSSEEvent(w, flusher, "error", &model.ErrorEvent{
				Code:    "replay_error",
				Message: "Failed to replay messages",
			})
			break
		}

		for _, msg := range resp.Messages {
			select {
			case <-done:
				return
			default:
			}

			sendSSEEvent(w, flusher, "message", msg)
			lastSequence = msg.Sequence
			totalReplayed++
		}

		if resp.HasMore {
			afterSequence = lastSequence
		} else {
			break
		}
	}

	sendSSEEvent(w, flusher, "replay_complete", &ReplayCompleteEvent{
		LastSequence: lastSequence,
		MessageCount: totalReplayed,
	})

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-done:
			h.logger.Info("SSE client disconnected",
				zap.String("conversation_id", conversationID),
			)
			return

		case <-heartbeat.C:
			sendSSEEvent(w, flusher, "heartbeat", &model.HeartbeatEvent{
				Timestamp: time.Now(),
			})
		}
	}
}

// StreamMessage handles POST /api/v1/conversations/:id/stream
// It accepts a user message, streams the assistant reply token by token,
// and finishes with either deck_created or deck_error when the reply
// carried a deck payload.
func (h *ChatHandler) StreamMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.GetTenantID(ctx)
	conversationID := chi.URLParam(r, "id")

	if err := middleware.ValidateConversationID(conversationID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.conversationService.Get(ctx, tenantID, conversationID); err != nil {
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	}

	var req model.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateMessageContent(req.Content); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	flusher, ok := h.startSSE(w)
	if !ok {
		return
	}

	metrics.IncrementSSEConnections()
	defer metrics.DecrementSSEConnections()

	result, err := h.chatService.StreamChat(
		ctx,
		tenantID,
		conversationID,
		&req,
		func(token string, index int) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			return sendSSEEvent(w, flusher, "token", &model.TokenEvent{
				Token: token,
				Index: index,
			})
		},
	)
	if err != nil {
		sendSSEEvent(w, flusher, "error", &model.ErrorEvent{
			Code:    "stream_error",
			Message: err.Error(),
		})
		return
	}

	sendSSEEvent(w, flusher, "user_message", result.UserMessage)

	if result.AssistantMessage != nil {
		sendSSEEvent(w, flusher, "message_complete", &model.MessageCompleteEvent{
			Message:  *result.AssistantMessage,
			Sequence: result.AssistantMessage.Sequence,
		})
	}

	switch {
	case result.Deck != nil:
		sendSSEEvent(w, flusher, "deck_created", result.Deck)
	case result.DeckError != "":
		sendSSEEvent(w, flusher, "deck_error", &model.ErrorEvent{
			Code:    "deck_extraction_failed",
			Message: result.DeckError,
		})
	}

	sendSSEEvent(w, flusher, "done", map[string]bool{"success": true})
}

// startSSE sets the streaming headers and returns the flusher.
func (h *ChatHandler) startSSE(w http.ResponseWriter) (http.Flusher, bool) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return nil, false
	}
	return flusher, true
}

func sendSSEEvent(w http.ResponseWriter, flusher http.Flusher, event string, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "event: %s\n", event)
	fmt.Fprintf(w, "data: %s\n\n", jsonData)
	flusher.Flush()

	return nil
}
