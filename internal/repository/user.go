package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rolandaayo/Astral-cu/internal/models"
)

// UserRepository defines the interface for user record access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error)
	List(ctx context.Context) ([]*models.User, error)
	SetBalance(ctx context.Context, id uuid.UUID, balanceCents int64) error
	SetCryptoBalance(ctx context.Context, id uuid.UUID, symbol string, amount float64) error
	SetRoleByEmail(ctx context.Context, email string, role models.Role) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListTopUpEligible(ctx context.Context, dayStart time.Time) ([]uuid.UUID, error)
	CreditTopUp(ctx context.Context, id uuid.UUID, amountCents int64, dayStart, now time.Time) (bool, error)
}

// userRepository implements UserRepository
type userRepository struct {
	db DBTX
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, phone_number, ssn, hashed_password,
	       account_number, routing_number, front_id_image, back_id_image,
	       email_verified, role, balance_cents,
	       crypto_dodge, crypto_eth, crypto_btc, crypto_spacex,
	       last_top_up, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var user models.User
	var lastTopUp sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PhoneNumber,
		&user.SSN,
		&user.HashedPassword,
		&user.AccountNumber,
		&user.RoutingNumber,
		&user.FrontIDImage,
		&user.BackIDImage,
		&user.EmailVerified,
		&user.Role,
		&user.BalanceCents,
		&user.Crypto.Dodge,
		&user.Crypto.Eth,
		&user.Crypto.Btc,
		&user.Crypto.Spacex,
		&lastTopUp,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastTopUp.Valid {
		t := lastTopUp.Time
		user.LastTopUp = &t
	}

	return &user, nil
}

// Create inserts a new user record
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, phone_number, ssn, hashed_password,
		                   account_number, routing_number, front_id_image, back_id_image,
		                   email_verified, role, balance_cents,
		                   crypto_dodge, crypto_eth, crypto_btc, crypto_spacex,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW(), NOW())
	`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PhoneNumber,
		user.SSN,
		user.HashedPassword,
		user.AccountNumber,
		user.RoutingNumber,
		user.FrontIDImage,
		user.BackIDImage,
		user.EmailVerified,
		user.Role,
		user.BalanceCents,
		user.Crypto.Dodge,
		user.Crypto.Eth,
		user.Crypto.Btc,
		user.Crypto.Spacex,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("user already exists: %w", models.ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// FindByID retrieves a user by its UUID
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}

	return user, nil
}

// FindByEmail retrieves a user by email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return user, nil
}

// ExistsByAccountNumber reports whether any user already holds the account number
func (r *userRepository) ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE account_number = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, accountNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account number: %w", err)
	}

	return exists, nil
}

// List retrieves all user records ordered by creation time
func (r *userRepository) List(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// SetBalance overwrites the fiat balance
func (r *userRepository) SetBalance(ctx context.Context, id uuid.UUID, balanceCents int64) error {
	query := `UPDATE users SET balance_cents = $2, updated_at = NOW() WHERE id = $1`

	return r.execExpectingRow(ctx, query, id, balanceCents)
}

// SetCryptoBalance overwrites one crypto symbol balance. The symbol must be
// one of the fixed tracked symbols; the column name is never interpolated
// from raw input.
func (r *userRepository) SetCryptoBalance(ctx context.Context, id uuid.UUID, symbol string, amount float64) error {
	var column string
	switch symbol {
	case models.CryptoDodge:
		column = "crypto_dodge"
	case models.CryptoEth:
		column = "crypto_eth"
	case models.CryptoBtc:
		column = "crypto_btc"
	case models.CryptoSpacex:
		column = "crypto_spacex"
	default:
		return fmt.Errorf("unknown crypto symbol %q", symbol)
	}

	query := `UPDATE users SET ` + column + ` = $2, updated_at = NOW() WHERE id = $1`

	return r.execExpectingRow(ctx, query, id, amount)
}

// SetRoleByEmail assigns a role to the user holding the email. Returns
// whether a row actually changed; a missing user or an already-matching
// role reports false without error, so startup promotion stays idempotent.
func (r *userRepository) SetRoleByEmail(ctx context.Context, email string, role models.Role) (bool, error) {
	query := `UPDATE users SET role = $2, updated_at = NOW() WHERE email = $1 AND role <> $2`

	result, err := r.db.ExecContext(ctx, query, email, role)
	if err != nil {
		return false, fmt.Errorf("failed to set user role: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected == 1, nil
}

// Delete removes a user record
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`

	return r.execExpectingRow(ctx, query, id)
}

// ListTopUpEligible returns ids of users whose last top-up predates dayStart
// or who have never been topped up
func (r *userRepository) ListTopUpEligible(ctx context.Context, dayStart time.Time) ([]uuid.UUID, error) {
	query := `SELECT id FROM users WHERE last_top_up IS NULL OR last_top_up < $1`

	rows, err := r.db.QueryContext(ctx, query, dayStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible users: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate eligible users: %w", err)
	}

	return ids, nil
}

// CreditTopUp applies the daily credit as a single conditional update. The
// eligibility check and the write are one statement, so two overlapping
// top-up runs cannot credit the same user twice in a day. Returns whether
// the row was actually credited.
func (r *userRepository) CreditTopUp(ctx context.Context, id uuid.UUID, amountCents int64, dayStart, now time.Time) (bool, error) {
	query := `
		UPDATE users
		SET balance_cents = balance_cents + $2,
		    last_top_up = $3,
		    updated_at = NOW()
		WHERE id = $1 AND (last_top_up IS NULL OR last_top_up < $4)
	`

	result, err := r.db.ExecContext(ctx, query, id, amountCents, now, dayStart)
	if err != nil {
		return false, fmt.Errorf("failed to credit top-up: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected == 1, nil
}

func (r *userRepository) execExpectingRow(ctx context.Context, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("user not found: %w", models.ErrNotFound)
	}

	return nil
}
