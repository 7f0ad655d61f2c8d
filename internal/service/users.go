package service

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/rolandaayo/Astral-cu/internal/models"
	"github.com/rolandaayo/Astral-cu/internal/repository"
)

// BalanceUpdate sets either the fiat balance (dollars) or one crypto symbol
// balance. Exactly one of the two variants applies per call: a non-empty
// CryptoType selects the crypto variant.
type BalanceUpdate struct {
	Balance       *float64
	CryptoType    string
	CryptoBalance *float64
}

// UserService handles user record access and administration.
type UserService struct {
	users  repository.UserRepository
	logger *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(users repository.UserRepository, logger *slog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Me returns the caller's own record.
func (s *UserService) Me(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.Get(ctx, id)
}

// List returns all user records.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, storeError("failed to list users", err)
	}
	return users, nil
}

// Get returns one user record.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{Code: ErrCodeNotFound, Message: "user not found"}
		}
		return nil, storeError("failed to load user", err)
	}
	return user, nil
}

// SetBalance overwrites the fiat balance or one crypto balance and returns
// the updated record.
func (s *UserService) SetBalance(ctx context.Context, id uuid.UUID, update BalanceUpdate) (*models.User, error) {
	switch {
	case update.CryptoType != "":
		if !models.ValidCryptoSymbol(update.CryptoType) {
			return nil, &ServiceError{
				Code:    ErrCodeValidation,
				Message: "unknown crypto type: " + update.CryptoType,
			}
		}
		if update.CryptoBalance == nil {
			return nil, &ServiceError{Code: ErrCodeValidation, Message: "cryptoBalance is required"}
		}
		if err := s.users.SetCryptoBalance(ctx, id, update.CryptoType, *update.CryptoBalance); err != nil {
			return nil, s.mapUpdateError(err)
		}
	case update.Balance != nil:
		cents := int64(math.Round(*update.Balance * 100))
		if err := s.users.SetBalance(ctx, id, cents); err != nil {
			return nil, s.mapUpdateError(err)
		}
	default:
		return nil, &ServiceError{
			Code:    ErrCodeValidation,
			Message: "either balance or cryptoType with cryptoBalance is required",
		}
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, storeError("failed to reload user", err)
	}

	s.logger.Info("balance updated", "user_id", id)
	return user, nil
}

// Delete removes a user record.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return &ServiceError{Code: ErrCodeNotFound, Message: "user not found"}
		}
		return storeError("failed to delete user", err)
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}

func (s *UserService) mapUpdateError(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{Code: ErrCodeNotFound, Message: "user not found"}
	}
	return storeError("failed to update balance", err)
}
