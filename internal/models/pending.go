package models

import "time"

// PendingVerification is a signup waiting for email-code confirmation.
// At most one exists per email; it is promoted into a User on confirm
// and removed on expiry.
type PendingVerification struct {
	CreatedAt      time.Time `db:"created_at"`
	CodeExpiresAt  time.Time `db:"code_expires_at"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	PhoneNumber    string    `db:"phone_number"`
	SSN            string    `db:"ssn"`
	FrontIDImage   string    `db:"front_id_image"`
	BackIDImage    string    `db:"back_id_image"`
	HashedPassword string    `db:"hashed_password"`
	Code           string    `db:"verification_code"`
}

// Expired reports whether the verification code is past its expiry.
func (p *PendingVerification) Expired(now time.Time) bool {
	return now.After(p.CodeExpiresAt)
}
