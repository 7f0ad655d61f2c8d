package repository

import (
	"context"
	"fmt"

	"github.com/rolandaayo/Astral-cu/internal/models"
)

// MessageRepository defines the interface for message access
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	ListConversation(ctx context.Context, conversationID string, limit int) ([]*models.Message, error)
	MarkRead(ctx context.Context, conversationID string, fromAdmin bool) (int64, error)
	CountUnread(ctx context.Context, conversationID string, fromAdmin bool) (int, error)
	ListConversationHeads(ctx context.Context) ([]*models.ConversationHead, error)
}

// messageRepository implements MessageRepository
type messageRepository struct {
	db DBTX
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db DBTX) MessageRepository {
	return &messageRepository{db: db}
}

const messageColumns = `id, conversation_id, sender_id, sender_name, sender_email,
	       body, is_from_admin, is_read, created_at`

// Create persists a message
func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (id, conversation_id, sender_id, sender_name, sender_email,
		                      body, is_from_admin, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		message.ID,
		message.ConversationID,
		message.SenderID,
		message.SenderName,
		message.SenderEmail,
		message.Body,
		message.IsFromAdmin,
		message.IsRead,
		message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}

// ListConversation returns the newest limit messages of a conversation in
// oldest-first order
func (r *messageRepository) ListConversation(ctx context.Context, conversationID string, limit int) ([]*models.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM (
			SELECT ` + messageColumns + `
			FROM messages
			WHERE conversation_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		) latest
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, conversationID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		var m models.Message
		err := rows.Scan(
			&m.ID,
			&m.ConversationID,
			&m.SenderID,
			&m.SenderName,
			&m.SenderEmail,
			&m.Body,
			&m.IsFromAdmin,
			&m.IsRead,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return messages, nil
}

// MarkRead flips is_read on all unread messages in the conversation authored
// by the given party (fromAdmin selects admin-authored messages)
func (r *messageRepository) MarkRead(ctx context.Context, conversationID string, fromAdmin bool) (int64, error) {
	query := `
		UPDATE messages
		SET is_read = TRUE
		WHERE conversation_id = $1 AND is_from_admin = $2 AND is_read = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, conversationID, fromAdmin)
	if err != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

// CountUnread counts unread messages authored by the given party in the
// conversation
func (r *messageRepository) CountUnread(ctx context.Context, conversationID string, fromAdmin bool) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM messages
		WHERE conversation_id = $1 AND is_from_admin = $2 AND is_read = FALSE
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, conversationID, fromAdmin).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}

	return count, nil
}

// ListConversationHeads returns the newest message of every conversation with
// its count of unread non-admin messages. Rows come back in conversation-id
// order; callers that want recency sort on the head timestamps.
func (r *messageRepository) ListConversationHeads(ctx context.Context) ([]*models.ConversationHead, error) {
	query := `
		SELECT DISTINCT ON (m.conversation_id)
		       m.id, m.conversation_id, m.sender_id, m.sender_name, m.sender_email,
		       m.body, m.is_from_admin, m.is_read, m.created_at,
		       u.unread_count
		FROM messages m
		LEFT JOIN (
			SELECT conversation_id, COUNT(*) AS unread_count
			FROM messages
			WHERE is_from_admin = FALSE AND is_read = FALSE
			GROUP BY conversation_id
		) u ON u.conversation_id = m.conversation_id
		ORDER BY m.conversation_id, m.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation heads: %w", err)
	}
	defer rows.Close()

	var heads []*models.ConversationHead
	for rows.Next() {
		var head models.ConversationHead
		var unread *int
		err := rows.Scan(
			&head.Latest.ID,
			&head.Latest.ConversationID,
			&head.Latest.SenderID,
			&head.Latest.SenderName,
			&head.Latest.SenderEmail,
			&head.Latest.Body,
			&head.Latest.IsFromAdmin,
			&head.Latest.IsRead,
			&head.Latest.CreatedAt,
			&unread,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conversation head: %w", err)
		}
		if unread != nil {
			head.UnreadCount = *unread
		}
		heads = append(heads, &head)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conversation heads: %w", err)
	}

	return heads, nil
}
