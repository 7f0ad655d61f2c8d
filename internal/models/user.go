package models

import (
	"time"

	"github.com/google/uuid"
)

// RoutingNumber is the institution-wide ABA routing number. It is the same
// for every account and independent of the per-user account number.
const RoutingNumber = "021000021"

// Role determines access to administrative operations.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Crypto symbols tracked per user. The set is fixed; balances default to zero.
const (
	CryptoDodge  = "dodge"
	CryptoEth    = "eth"
	CryptoBtc    = "btc"
	CryptoSpacex = "spacex"
)

// CryptoBalances holds the per-symbol crypto balances for a user.
type CryptoBalances struct {
	Dodge  float64 `json:"dodge"`
	Eth    float64 `json:"eth"`
	Btc    float64 `json:"btc"`
	Spacex float64 `json:"spacex"`
}

// ValidCryptoSymbol reports whether symbol is one of the tracked symbols.
func ValidCryptoSymbol(symbol string) bool {
	switch symbol {
	case CryptoDodge, CryptoEth, CryptoBtc, CryptoSpacex:
		return true
	}
	return false
}

// User represents a verified member record with identity and financial state
type User struct {
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	LastTopUp      *time.Time     `db:"last_top_up"`
	Name           string         `db:"name"`
	Email          string         `db:"email"`
	PhoneNumber    string         `db:"phone_number"`
	SSN            string         `db:"ssn"`
	HashedPassword string         `db:"hashed_password"`
	AccountNumber  string         `db:"account_number"`
	RoutingNumber  string         `db:"routing_number"`
	FrontIDImage   string         `db:"front_id_image"`
	BackIDImage    string         `db:"back_id_image"`
	Role           Role           `db:"role"`
	Crypto         CryptoBalances `db:"-"`
	BalanceCents   int64          `db:"balance_cents"`
	EmailVerified  bool           `db:"email_verified"`
	ID             uuid.UUID      `db:"id"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// BalanceDollars returns the fiat balance in dollars.
func (u *User) BalanceDollars() float64 {
	return float64(u.BalanceCents) / 100
}
