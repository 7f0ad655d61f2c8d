package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Message is one line in the two-party thread between a user and the admin.
type Message struct {
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	ConversationID string    `db:"conversation_id" json:"conversationId"`
	SenderName     string    `db:"sender_name" json:"senderName"`
	SenderEmail    string    `db:"sender_email" json:"senderEmail"`
	Body           string    `db:"body" json:"message"`
	IsFromAdmin    bool      `db:"is_from_admin" json:"isFromAdmin"`
	IsRead         bool      `db:"is_read" json:"isRead"`
	ID             uuid.UUID `db:"id" json:"id"`
	SenderID       uuid.UUID `db:"sender_id" json:"senderId"`
}

// ConversationIDFor derives the single thread key shared by a user and the
// admin. It is always a function of the non-admin party's id, so both
// directions of the thread land in the same conversation.
func ConversationIDFor(userID uuid.UUID) string {
	return fmt.Sprintf("user_%s", userID)
}

// ConversationHead is the newest message of one conversation plus its
// unread non-admin message count. Produced by the message store for the
// admin inbox listing.
type ConversationHead struct {
	Latest      Message
	UnreadCount int
}

// ConversationSummary is a ConversationHead joined with the owning user.
type ConversationSummary struct {
	ConversationID string    `json:"conversationId"`
	UserName       string    `json:"userName"`
	UserEmail      string    `json:"userEmail"`
	AccountNumber  string    `json:"accountNumber"`
	LatestMessage  Message   `json:"latestMessage"`
	UnreadCount    int       `json:"unreadCount"`
	UserID         uuid.UUID `json:"userId"`
}
