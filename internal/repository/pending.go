package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rolandaayo/Astral-cu/internal/models"
)

// PendingRepository defines the interface for pending-verification access
type PendingRepository interface {
	Upsert(ctx context.Context, pending *models.PendingVerification) error
	FindByEmail(ctx context.Context, email string) (*models.PendingVerification, error)
	UpdateCode(ctx context.Context, email, code string, expiresAt time.Time) error
	Delete(ctx context.Context, email string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// pendingRepository implements PendingRepository
type pendingRepository struct {
	db DBTX
}

// NewPendingRepository creates a new PendingRepository
func NewPendingRepository(db DBTX) PendingRepository {
	return &pendingRepository{db: db}
}

// Upsert stores a pending verification, replacing any previous record for
// the same email. A stale record for the email is always superseded by the
// newest signup attempt.
func (r *pendingRepository) Upsert(ctx context.Context, pending *models.PendingVerification) error {
	query := `
		INSERT INTO pending_verifications (email, name, phone_number, ssn,
		                                   front_id_image, back_id_image, hashed_password,
		                                   verification_code, code_expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (email) DO UPDATE SET
			name = EXCLUDED.name,
			phone_number = EXCLUDED.phone_number,
			ssn = EXCLUDED.ssn,
			front_id_image = EXCLUDED.front_id_image,
			back_id_image = EXCLUDED.back_id_image,
			hashed_password = EXCLUDED.hashed_password,
			verification_code = EXCLUDED.verification_code,
			code_expires_at = EXCLUDED.code_expires_at,
			created_at = EXCLUDED.created_at
	`

	_, err := r.db.ExecContext(ctx, query,
		pending.Email,
		pending.Name,
		pending.PhoneNumber,
		pending.SSN,
		pending.FrontIDImage,
		pending.BackIDImage,
		pending.HashedPassword,
		pending.Code,
		pending.CodeExpiresAt,
		pending.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store pending verification: %w", err)
	}

	return nil
}

// FindByEmail retrieves a pending verification by email
func (r *pendingRepository) FindByEmail(ctx context.Context, email string) (*models.PendingVerification, error) {
	query := `
		SELECT email, name, phone_number, ssn, front_id_image, back_id_image,
		       hashed_password, verification_code, code_expires_at, created_at
		FROM pending_verifications
		WHERE email = $1
	`

	var pending models.PendingVerification
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&pending.Email,
		&pending.Name,
		&pending.PhoneNumber,
		&pending.SSN,
		&pending.FrontIDImage,
		&pending.BackIDImage,
		&pending.HashedPassword,
		&pending.Code,
		&pending.CodeExpiresAt,
		&pending.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("pending verification not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find pending verification: %w", err)
	}

	return &pending, nil
}

// UpdateCode refreshes the verification code and its expiry
func (r *pendingRepository) UpdateCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	query := `
		UPDATE pending_verifications
		SET verification_code = $2, code_expires_at = $3
		WHERE email = $1
	`

	result, err := r.db.ExecContext(ctx, query, email, code, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to update verification code: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("pending verification not found: %w", models.ErrNotFound)
	}

	return nil
}

// Delete removes a pending verification
func (r *pendingRepository) Delete(ctx context.Context, email string) error {
	query := `DELETE FROM pending_verifications WHERE email = $1`

	if _, err := r.db.ExecContext(ctx, query, email); err != nil {
		return fmt.Errorf("failed to delete pending verification: %w", err)
	}

	return nil
}

// DeleteExpired purges pending verifications whose code expiry has passed
func (r *pendingRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM pending_verifications WHERE code_expires_at < $1`

	result, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired verifications: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
