package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rolandaayo/Astral-cu/internal/models"
	"github.com/rolandaayo/Astral-cu/internal/repository/mocks"
)

func newMessagingFixture(t *testing.T) (*MessagingService, *mocks.MockMessageRepository, *mocks.MockUserRepository) {
	messages := mocks.NewMockMessageRepository(t)
	users := mocks.NewMockUserRepository(t)
	svc := NewMessagingService(messages, users, testLogger())
	return svc, messages, users
}

func TestSendMessage_MemberThreadKey(t *testing.T) {
	svc, messages, users := newMessagingFixture(t)

	memberID := uuid.New()
	users.On("FindByID", mock.Anything, memberID).
		Return(&models.User{
			ID:    memberID,
			Name:  "Ada Lovelace",
			Email: "ada@example.com",
			Role:  models.RoleUser,
		}, nil)
	messages.On("Create", mock.Anything, mock.MatchedBy(func(m *models.Message) bool {
		return m.ConversationID == models.ConversationIDFor(memberID) &&
			!m.IsFromAdmin &&
			!m.IsRead &&
			m.SenderName == "Ada Lovelace"
	})).Return(nil)

	msg, err := svc.Send(context.Background(), memberID, "  hello  ", nil)

	require.NoError(t, err)
	assert.Equal(t, "hello", msg.Body)
}

func TestSendMessage_AdminReplyLandsInMemberThread(t *testing.T) {
	svc, messages, users := newMessagingFixture(t)

	adminID := uuid.New()
	memberID := uuid.New()
	users.On("FindByID", mock.Anything, adminID).
		Return(&models.User{ID: adminID, Name: "Support", Role: models.RoleAdmin}, nil)
	messages.On("Create", mock.Anything, mock.MatchedBy(func(m *models.Message) bool {
		return m.ConversationID == models.ConversationIDFor(memberID) && m.IsFromAdmin
	})).Return(nil)

	msg, err := svc.Send(context.Background(), adminID, "we got you", &memberID)

	require.NoError(t, err)
	assert.True(t, msg.IsFromAdmin)
	assert.Equal(t, models.ConversationIDFor(memberID), msg.ConversationID)
}

func TestSendMessage_EmptyBody(t *testing.T) {
	svc, _, _ := newMessagingFixture(t)

	_, err := svc.Send(context.Background(), uuid.New(), "   ", nil)

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeValidation, svcErr.Code)
}

func TestSendMessage_UnknownSender(t *testing.T) {
	svc, _, users := newMessagingFixture(t)

	senderID := uuid.New()
	users.On("FindByID", mock.Anything, senderID).Return(nil, models.ErrNotFound)

	_, err := svc.Send(context.Background(), senderID, "hello", nil)

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeNotFound, svcErr.Code)
}

func TestListConversation_MemberMarksAdminMessagesRead(t *testing.T) {
	svc, messages, users := newMessagingFixture(t)

	memberID := uuid.New()
	convID := models.ConversationIDFor(memberID)
	users.On("FindByID", mock.Anything, memberID).
		Return(&models.User{ID: memberID, Role: models.RoleUser}, nil)
	messages.On("ListConversation", mock.Anything, convID, conversationLimit).
		Return([]*models.Message{{ConversationID: convID, Body: "hi"}}, nil)
	messages.On("MarkRead", mock.Anything, convID, true).Return(int64(1), nil)

	result, gotConvID, err := svc.ListConversation(context.Background(), memberID, nil)

	require.NoError(t, err)
	assert.Equal(t, convID, gotConvID)
	require.Len(t, result, 1)
}

func TestListConversation_AdminViewsTargetThread(t *testing.T) {
	svc, messages, users := newMessagingFixture(t)

	adminID := uuid.New()
	memberID := uuid.New()
	convID := models.ConversationIDFor(memberID)
	users.On("FindByID", mock.Anything, adminID).
		Return(&models.User{ID: adminID, Role: models.RoleAdmin}, nil)
	messages.On("ListConversation", mock.Anything, convID, conversationLimit).
		Return([]*models.Message{}, nil)
	messages.On("MarkRead", mock.Anything, convID, false).Return(int64(0), nil)

	_, gotConvID, err := svc.ListConversation(context.Background(), adminID, &memberID)

	require.NoError(t, err)
	assert.Equal(t, convID, gotConvID)
}

func TestListConversation_MarkReadFailureIsNotFatal(t *testing.T) {
	svc, messages, users := newMessagingFixture(t)

	memberID := uuid.New()
	convID := models.ConversationIDFor(memberID)
	users.On("FindByID", mock.Anything, memberID).
		Return(&models.User{ID: memberID, Role: models.RoleUser}, nil)
	messages.On("ListConversation", mock.Anything, convID, conversationLimit).
		Return([]*models.Message{{Body: "hi"}}, nil)
	messages.On("MarkRead", mock.Anything, convID, true).
		Return(int64(0), errors.New("deadlock"))

	result, _, err := svc.ListConversation(context.Background(), memberID, nil)

	require.NoError(t, err)
	require.Len(t, result, 1)
}

func TestListAllConversations_RequiresAdmin(t *testing.T) {
	svc, _, users := newMessagingFixture(t)

	memberID := uuid.New()
	users.On("FindByID", mock.Anything, memberID).
		Return(&models.User{ID: memberID, Role: models.RoleUser}, nil)

	_, err := svc.ListAllConversations(context.Background(), memberID)

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeForbidden, svcErr.Code)
}

func TestListAllConversations_NewestFirstAndDeletedUsersDropped(t *testing.T) {
	svc, messages, users := newMessagingFixture(t)

	adminID := uuid.New()
	oldUserID := uuid.New()
	newUserID := uuid.New()
	goneUserID := uuid.New()

	users.On("FindByID", mock.Anything, adminID).
		Return(&models.User{ID: adminID, Role: models.RoleAdmin}, nil)

	messages.On("ListConversationHeads", mock.Anything).Return([]*models.ConversationHead{
		{
			Latest: models.Message{
				ConversationID: models.ConversationIDFor(oldUserID),
				CreatedAt:      time.Now().Add(-time.Hour),
			},
			UnreadCount: 1,
		},
		{
			Latest: models.Message{
				ConversationID: models.ConversationIDFor(goneUserID),
				CreatedAt:      time.Now().Add(-30 * time.Minute),
			},
		},
		{
			Latest: models.Message{
				ConversationID: models.ConversationIDFor(newUserID),
				CreatedAt:      time.Now(),
			},
			UnreadCount: 2,
		},
	}, nil)

	users.On("FindByID", mock.Anything, oldUserID).
		Return(&models.User{ID: oldUserID, Name: "Old", Email: "old@example.com"}, nil)
	users.On("FindByID", mock.Anything, goneUserID).
		Return(nil, models.ErrNotFound)
	users.On("FindByID", mock.Anything, newUserID).
		Return(&models.User{ID: newUserID, Name: "New", Email: "new@example.com"}, nil)

	summaries, err := svc.ListAllConversations(context.Background(), adminID)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, newUserID, summaries[0].UserID)
	assert.Equal(t, 2, summaries[0].UnreadCount)
	assert.Equal(t, oldUserID, summaries[1].UserID)
}

func TestUnreadCount(t *testing.T) {
	svc, messages, _ := newMessagingFixture(t)

	userID := uuid.New()
	messages.On("CountUnread", mock.Anything, models.ConversationIDFor(userID), true).
		Return(4, nil)

	count, err := svc.UnreadCount(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
