package repository

import (
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to open sqlmock")

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet(), "unmet sql expectations")
		db.Close()
	})

	return db, mock
}

var userRows = []string{
	"id", "name", "email", "phone_number", "ssn", "hashed_password",
	"account_number", "routing_number", "front_id_image", "back_id_image",
	"email_verified", "role", "balance_cents",
	"crypto_dodge", "crypto_eth", "crypto_btc", "crypto_spacex",
	"last_top_up", "created_at", "updated_at",
}

// userRowValues builds one users row; lastTopUp is nil or a time.Time.
func userRowValues(id, email string, balanceCents int64, lastTopUp driver.Value) []driver.Value {
	now := time.Now()
	return []driver.Value{
		id, "Test User", email, "555-0100", "123-45-6789", "hashed",
		"1234-5678-9012", "021000021", "front.png", "back.png",
		true, "user", balanceCents,
		0.0, 0.0, 0.0, 0.0,
		lastTopUp, now, now,
	}
}
