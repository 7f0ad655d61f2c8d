package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rolandaayo/Astral-cu/internal/models"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Authenticator handles member login.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// Verifier handles the signup and email-verification workflow.
type Verifier interface {
	InitiateSignup(ctx context.Context, req SignupRequest) (*SignupResult, error)
	DirectSignup(ctx context.Context, req SignupRequest) (*AuthResult, error)
	SendCode(ctx context.Context, email string) error
	ResendCode(ctx context.Context, email string) error
	Confirm(ctx context.Context, email, code string) (*AuthResult, error)
	SweepExpired(ctx context.Context) (int64, error)
}

// TopUpRunner handles the daily balance top-up and its introspection.
type TopUpRunner interface {
	Run(ctx context.Context) (*TopUpSummary, error)
	Status(ctx context.Context) (*TopUpStatus, error)
	Details(ctx context.Context) (*TopUpDetails, error)
}

// Messenger handles the admin/user messaging inbox.
type Messenger interface {
	Send(ctx context.Context, senderID uuid.UUID, body string, recipientID *uuid.UUID) (*models.Message, error)
	ListConversation(ctx context.Context, viewerID uuid.UUID, targetUserID *uuid.UUID) ([]*models.Message, string, error)
	ListAllConversations(ctx context.Context, requesterID uuid.UUID) ([]*models.ConversationSummary, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
}

// UserAdmin handles user record access and administration.
type UserAdmin interface {
	Me(ctx context.Context, id uuid.UUID) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	SetBalance(ctx context.Context, id uuid.UUID, update BalanceUpdate) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Ensure concrete types implement interfaces
var (
	_ Authenticator = (*AuthService)(nil)
	_ Verifier      = (*VerificationService)(nil)
	_ TopUpRunner   = (*TopUpService)(nil)
	_ Messenger     = (*MessagingService)(nil)
	_ UserAdmin     = (*UserService)(nil)
)
