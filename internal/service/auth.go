package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rolandaayo/Astral-cu/internal/models"
	"github.com/rolandaayo/Astral-cu/internal/repository"
	"github.com/rolandaayo/Astral-cu/internal/security"
)

// AuthService handles member login.
type AuthService struct {
	users  repository.UserRepository
	tokens *security.TokenManager
	hasher security.PasswordHasher
	logger *slog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users repository.UserRepository,
	tokens *security.TokenManager,
	hasher security.PasswordHasher,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		logger: logger,
	}
}

// Login verifies credentials and returns a signed session token. Unverified
// non-admin members are rejected until they confirm their email.
func (s *AuthService) Login(ctx context.Context, emailAddr, password string) (*AuthResult, error) {
	emailAddr = normalizeEmail(emailAddr)

	user, err := s.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{Code: ErrCodeInvalidCredentials, Message: "user not found"}
		}
		return nil, storeError("failed to load user", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidCredentials, Message: "invalid password"}
	}

	if !user.EmailVerified && !user.IsAdmin() {
		return nil, &ServiceError{
			Code:    ErrCodeEmailUnverified,
			Message: "please verify your email before logging in",
		}
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		if errors.Is(err, security.ErrMissingSecret) {
			return nil, &ServiceError{
				Code:    ErrCodeConfig,
				Message: "server configuration error: signing secret is missing",
				Err:     err,
			}
		}
		return nil, &ServiceError{Code: ErrCodeInternalError, Message: "failed to sign token", Err: err}
	}

	s.logger.Info("login successful", "user_id", user.ID, "email", user.Email)

	return &AuthResult{Token: token, User: user}, nil
}
