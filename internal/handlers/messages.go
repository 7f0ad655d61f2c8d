package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rolandaayo/Astral-cu/internal/middleware"
	"github.com/rolandaayo/Astral-cu/internal/service"
)

type sendMessageRequest struct {
	Message     string     `json:"message"`
	RecipientID *uuid.UUID `json:"recipientId"`
}

// SendMessage handles POST /api/messages
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	senderID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		h.writeErrorCode(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	var req sendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, service.ErrCodeValidation, "invalid request body")
		return
	}

	msg, err := h.messageService.Send(r.Context(), senderID, req.Message, req.RecipientID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, msg)
}

// GetConversation handles GET /api/messages/conversation and
// GET /api/messages/conversation/{targetUserID}
func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		h.writeErrorCode(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	var targetUserID *uuid.UUID
	if raw := chi.URLParam(r, "targetUserID"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			h.writeErrorCode(w, http.StatusNotFound, service.ErrCodeNotFound, "user not found")
			return
		}
		targetUserID = &parsed
	}

	messages, conversationID, err := h.messageService.ListConversation(r.Context(), viewerID, targetUserID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"conversationId": conversationID,
		"messages":       messages,
	})
}

// GetAllConversations handles GET /api/messages/conversations
func (h *Handler) GetAllConversations(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		h.writeErrorCode(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	summaries, err := h.messageService.ListAllConversations(r.Context(), requesterID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"conversations": summaries,
	})
}

// UnreadCount handles GET /api/messages/unread-count
func (h *Handler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		h.writeErrorCode(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	count, err := h.messageService.UnreadCount(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]int{
		"unreadCount": count,
	})
}
