package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolandaayo/Astral-cu/internal/models"
)

var messageRows = []string{
	"id", "conversation_id", "sender_id", "sender_name", "sender_email",
	"body", "is_from_admin", "is_read", "created_at",
}

func TestMessageRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepository(db)

	msg := &models.Message{
		ID:             uuid.New(),
		ConversationID: "user_" + uuid.NewString(),
		SenderID:       uuid.New(),
		SenderName:     "Ada Lovelace",
		SenderEmail:    "ada@example.com",
		Body:           "hello",
		CreatedAt:      time.Now(),
	}

	mock.ExpectExec(`INSERT INTO messages`).
		WithArgs(
			msg.ID, msg.ConversationID, msg.SenderID, msg.SenderName,
			msg.SenderEmail, msg.Body, msg.IsFromAdmin, msg.IsRead, msg.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Create(context.Background(), msg))
}

func TestMessageRepository_ListConversation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepository(db)

	convID := "user_" + uuid.NewString()
	senderID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM \(\s*SELECT (.+) FROM messages\s+WHERE conversation_id = \$1`).
		WithArgs(convID, 100).
		WillReturnRows(sqlmock.NewRows(messageRows).
			AddRow(uuid.NewString(), convID, senderID.String(), "Ada", "ada@example.com",
				"first", false, true, now.Add(-time.Minute)).
			AddRow(uuid.NewString(), convID, senderID.String(), "Ada", "ada@example.com",
				"second", false, false, now))

	messages, err := repo.ListConversation(context.Background(), convID, 100)

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Body)
	assert.Equal(t, "second", messages[1].Body)
}

func TestMessageRepository_MarkRead(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepository(db)

	convID := "user_" + uuid.NewString()
	mock.ExpectExec(`UPDATE messages\s+SET is_read = TRUE`).
		WithArgs(convID, true).
		WillReturnResult(sqlmock.NewResult(0, 2))

	updated, err := repo.MarkRead(context.Background(), convID, true)

	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)
}

func TestMessageRepository_CountUnread(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepository(db)

	convID := "user_" + uuid.NewString()
	mock.ExpectQuery(`SELECT COUNT\(\*\)\s+FROM messages`).
		WithArgs(convID, true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountUnread(context.Background(), convID, true)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMessageRepository_ListConversationHeads(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepository(db)

	conv1 := "user_" + uuid.NewString()
	conv2 := "user_" + uuid.NewString()
	now := time.Now()

	mock.ExpectQuery(`SELECT DISTINCT ON \(m\.conversation_id\)`).
		WillReturnRows(sqlmock.NewRows(append(messageRows, "unread_count")).
			AddRow(uuid.NewString(), conv1, uuid.NewString(), "Ada", "ada@example.com",
				"latest from ada", false, false, now, 2).
			AddRow(uuid.NewString(), conv2, uuid.NewString(), "Bob", "bob@example.com",
				"latest from bob", true, true, now, nil))

	heads, err := repo.ListConversationHeads(context.Background())

	require.NoError(t, err)
	require.Len(t, heads, 2)
	assert.Equal(t, 2, heads[0].UnreadCount)
	assert.Equal(t, 0, heads[1].UnreadCount, "missing unread join row counts as zero")
}
