package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolandaayo/Astral-cu/internal/models"
)

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	user := &models.User{
		ID:            uuid.New(),
		Name:          "Ada Lovelace",
		Email:         "ada@example.com",
		AccountNumber: "1234-5678-9012",
		RoutingNumber: models.RoutingNumber,
		Role:          models.RoleUser,
		EmailVerified: true,
	}

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(
			user.ID, user.Name, user.Email, user.PhoneNumber, user.SSN,
			user.HashedPassword, user.AccountNumber, user.RoutingNumber,
			user.FrontIDImage, user.BackIDImage, user.EmailVerified, user.Role,
			user.BalanceCents, 0.0, 0.0, 0.0, 0.0,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), user)

	require.NoError(t, err)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &models.User{ID: uuid.New()})

	assert.ErrorIs(t, err, models.ErrDuplicate)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows(userRows).
			AddRow(userRowValues(id.String(), "ada@example.com", 1250, nil)...))

	user, err := repo.FindByEmail(context.Background(), "ada@example.com")

	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, int64(1250), user.BalanceCents)
	assert.Nil(t, user.LastTopUp)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
		WithArgs("missing@example.com").
		WillReturnRows(sqlmock.NewRows(userRows))

	_, err := repo.FindByEmail(context.Background(), "missing@example.com")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUserRepository_FindByID_ScansLastTopUp(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	topUpAt := time.Now().Add(-time.Hour).Truncate(time.Second)
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(userRows).
			AddRow(userRowValues(id.String(), "ada@example.com", 0, topUpAt)...))

	user, err := repo.FindByID(context.Background(), id)

	require.NoError(t, err)
	require.NotNil(t, user.LastTopUp)
	assert.True(t, user.LastTopUp.Equal(topUpAt))
}

func TestUserRepository_ExistsByAccountNumber(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("1234-5678-9012").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByAccountNumber(context.Background(), "1234-5678-9012")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_SetBalance_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	mock.ExpectExec(`UPDATE users SET balance_cents = \$2`).
		WithArgs(id, int64(5000)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetBalance(context.Background(), id, 5000)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUserRepository_SetRoleByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE users SET role = \$2, updated_at = NOW\(\) WHERE email = \$1 AND role <> \$2`).
		WithArgs("admin@astral.com", models.RoleAdmin).
		WillReturnResult(sqlmock.NewResult(0, 1))

	promoted, err := repo.SetRoleByEmail(context.Background(), "admin@astral.com", models.RoleAdmin)

	require.NoError(t, err)
	assert.True(t, promoted)
}

func TestUserRepository_SetRoleByEmail_NoMatchingUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE users SET role = \$2`).
		WithArgs("admin@astral.com", models.RoleAdmin).
		WillReturnResult(sqlmock.NewResult(0, 0))

	promoted, err := repo.SetRoleByEmail(context.Background(), "admin@astral.com", models.RoleAdmin)

	require.NoError(t, err)
	assert.False(t, promoted)
}

func TestUserRepository_SetCryptoBalance(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	mock.ExpectExec(`UPDATE users SET crypto_btc = \$2`).
		WithArgs(id, 0.25).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetCryptoBalance(context.Background(), id, models.CryptoBtc, 0.25)

	require.NoError(t, err)
}

func TestUserRepository_SetCryptoBalance_UnknownSymbol(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewUserRepository(db)

	err := repo.SetCryptoBalance(context.Background(), uuid.New(), "gold", 1)

	assert.Error(t, err)
}

func TestUserRepository_ListTopUpEligible(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	id1, id2 := uuid.New(), uuid.New()
	dayStart := time.Now().Truncate(24 * time.Hour)
	mock.ExpectQuery(`SELECT id FROM users WHERE last_top_up IS NULL OR last_top_up < \$1`).
		WithArgs(dayStart).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).
			AddRow(id1.String()).
			AddRow(id2.String()))

	ids, err := repo.ListTopUpEligible(context.Background(), dayStart)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id1, id2}, ids)
}

func TestUserRepository_CreditTopUp(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	now := time.Now()
	dayStart := now.Truncate(24 * time.Hour)

	mock.ExpectExec(`UPDATE users\s+SET balance_cents = balance_cents \+ \$2`).
		WithArgs(id, int64(700), now, dayStart).
		WillReturnResult(sqlmock.NewResult(0, 1))

	credited, err := repo.CreditTopUp(context.Background(), id, 700, dayStart, now)

	require.NoError(t, err)
	assert.True(t, credited)
}

func TestUserRepository_CreditTopUp_AlreadyCreditedToday(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	now := time.Now()
	dayStart := now.Truncate(24 * time.Hour)

	// The conditional WHERE clause filters the row out when last_top_up is
	// already inside today's window.
	mock.ExpectExec(`UPDATE users\s+SET balance_cents = balance_cents \+ \$2`).
		WithArgs(id, int64(700), now, dayStart).
		WillReturnResult(sqlmock.NewResult(0, 0))

	credited, err := repo.CreditTopUp(context.Background(), id, 700, dayStart, now)

	require.NoError(t, err)
	assert.False(t, credited)
}

func TestUserRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), id))
}
