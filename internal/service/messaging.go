package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rolandaayo/Astral-cu/internal/models"
	"github.com/rolandaayo/Astral-cu/internal/repository"
)

// conversationLimit bounds how many messages a thread view returns.
const conversationLimit = 100

// MessagingService handles the two-party threads between members and the
// admin identity.
type MessagingService struct {
	messages repository.MessageRepository
	users    repository.UserRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewMessagingService creates a new MessagingService
func NewMessagingService(
	messages repository.MessageRepository,
	users repository.UserRepository,
	logger *slog.Logger,
) *MessagingService {
	return &MessagingService{
		messages: messages,
		users:    users,
		logger:   logger,
		now:      time.Now,
	}
}

// Send persists one message. The thread key is always derived from the
// non-admin party, so a user and the admin share exactly one conversation.
func (s *MessagingService) Send(ctx context.Context, senderID uuid.UUID, body string, recipientID *uuid.UUID) (*models.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, &ServiceError{Code: ErrCodeValidation, Message: "message cannot be empty"}
	}

	sender, err := s.users.FindByID(ctx, senderID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{Code: ErrCodeNotFound, Message: "sender not found"}
		}
		return nil, storeError("failed to load sender", err)
	}

	conversationID := models.ConversationIDFor(senderID)
	if sender.IsAdmin() && recipientID != nil {
		conversationID = models.ConversationIDFor(*recipientID)
	}

	message := &models.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       sender.ID,
		SenderName:     sender.Name,
		SenderEmail:    sender.Email,
		Body:           body,
		IsFromAdmin:    sender.IsAdmin(),
		IsRead:         false,
		CreatedAt:      s.now(),
	}

	if err := s.messages.Create(ctx, message); err != nil {
		return nil, storeError("failed to store message", err)
	}

	return message, nil
}

// ListConversation returns the newest 100 messages of a thread oldest-first
// and marks the other party's unread messages as read. An admin viewer with
// a target sees (and acknowledges) that user's thread; everyone else sees
// their own.
func (s *MessagingService) ListConversation(ctx context.Context, viewerID uuid.UUID, targetUserID *uuid.UUID) ([]*models.Message, string, error) {
	viewer, err := s.users.FindByID(ctx, viewerID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, "", &ServiceError{Code: ErrCodeNotFound, Message: "user not found"}
		}
		return nil, "", storeError("failed to load user", err)
	}

	conversationID := models.ConversationIDFor(viewerID)
	markFromAdmin := true // a member acknowledges admin-authored messages
	if viewer.IsAdmin() && targetUserID != nil {
		conversationID = models.ConversationIDFor(*targetUserID)
		markFromAdmin = false // the admin acknowledges member-authored ones
	}

	messages, err := s.messages.ListConversation(ctx, conversationID, conversationLimit)
	if err != nil {
		return nil, "", storeError("failed to list conversation", err)
	}

	if _, err := s.messages.MarkRead(ctx, conversationID, markFromAdmin); err != nil {
		// The viewer still gets the thread; unread counts catch up next view.
		s.logger.Error("failed to mark conversation read",
			"conversation_id", conversationID, "error", err)
	}

	return messages, conversationID, nil
}

// ListAllConversations returns every thread's newest message and unread
// member-message count, newest first. Admin only.
func (s *MessagingService) ListAllConversations(ctx context.Context, requesterID uuid.UUID) ([]*models.ConversationSummary, error) {
	requester, err := s.users.FindByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{Code: ErrCodeNotFound, Message: "user not found"}
		}
		return nil, storeError("failed to load user", err)
	}
	if !requester.IsAdmin() {
		return nil, &ServiceError{Code: ErrCodeForbidden, Message: "admin access required"}
	}

	heads, err := s.messages.ListConversationHeads(ctx)
	if err != nil {
		return nil, storeError("failed to list conversations", err)
	}

	summaries := make([]*models.ConversationSummary, 0, len(heads))
	for _, head := range heads {
		userID, ok := parseConversationUserID(head.Latest.ConversationID)
		if !ok {
			continue
		}

		user, err := s.users.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				// Thread of a deleted user; drop it from the inbox.
				continue
			}
			return nil, storeError("failed to load conversation user", err)
		}

		summaries = append(summaries, &models.ConversationSummary{
			ConversationID: head.Latest.ConversationID,
			UserID:         user.ID,
			UserName:       user.Name,
			UserEmail:      user.Email,
			AccountNumber:  user.AccountNumber,
			LatestMessage:  head.Latest,
			UnreadCount:    head.UnreadCount,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].LatestMessage.CreatedAt.After(summaries[j].LatestMessage.CreatedAt)
	})

	return summaries, nil
}

// UnreadCount counts unread admin-authored messages in the caller's thread.
func (s *MessagingService) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := s.messages.CountUnread(ctx, models.ConversationIDFor(userID), true)
	if err != nil {
		return 0, storeError("failed to count unread messages", err)
	}
	return count, nil
}

func parseConversationUserID(conversationID string) (uuid.UUID, bool) {
	raw, ok := strings.CutPrefix(conversationID, "user_")
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
