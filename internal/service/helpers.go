package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rolandaayo/Astral-cu/internal/models"
	"github.com/rolandaayo/Astral-cu/internal/repository"
)

// maxAccountNumberAttempts bounds the uniqueness retry loop so a failing
// store cannot spin it forever.
const maxAccountNumberAttempts = 25

// generateVerificationCode returns a uniform random 6-digit code in
// [100000, 999999].
func generateVerificationCode() string {
	return fmt.Sprintf("%06d", 100000+rand.IntN(900000))
}

// generateAccountNumber returns a candidate account number in the
// XXXX-XXXX-XXXX format (12 digits).
func generateAccountNumber() string {
	part := func() int { return 1000 + rand.IntN(9000) }
	return fmt.Sprintf("%d-%d-%d", part(), part(), part())
}

// allocateAccountNumber generates candidates until one is free in the store.
func allocateAccountNumber(ctx context.Context, users repository.UserRepository) (string, error) {
	for attempt := 0; attempt < maxAccountNumberAttempts; attempt++ {
		candidate := generateAccountNumber()
		exists, err := users.ExistsByAccountNumber(ctx, candidate)
		if err != nil {
			return "", &ServiceError{
				Code:    ErrCodeStoreUnavailable,
				Message: "failed to check account number uniqueness",
				Err:     err,
			}
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", &ServiceError{
		Code:    ErrCodeInternalError,
		Message: "could not allocate a unique account number",
	}
}

// startOfDay returns local midnight of the instant's day.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// storeError wraps repository failures that are not domain errors.
func storeError(message string, err error) *ServiceError {
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{Code: ErrCodeNotFound, Message: message, Err: err}
	}
	return &ServiceError{Code: ErrCodeStoreUnavailable, Message: message, Err: err}
}
