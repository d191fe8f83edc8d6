// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountType distinguishes the two kinds of login identities.
type AccountType string

const (
	// AccountTypeOwner is a business owner's login identity.
	AccountTypeOwner AccountType = "owner"
	// AccountTypeClient is a system-generated client login identity.
	AccountTypeClient AccountType = "client"
)

// String returns the string representation of the AccountType.
func (t AccountType) String() string {
	return string(t)
}

// IsValid checks if the AccountType is a valid value.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeOwner, AccountTypeClient:
		return true
	default:
		return false
	}
}

// EmailDomain returns the synthesized login-email domain for the account type.
func (t AccountType) EmailDomain() string {
	return string(t) + ".internal"
}

// LoginEmail synthesizes the internal login email for a phone number and
// account type, e.g. "0712345678@owner.internal". The suffix convention is
// preserved from the original system so existing credentials keep resolving.
func LoginEmail(phoneNumber string, accountType AccountType) string {
	return phoneNumber + "@" + accountType.EmailDomain()
}

// Identity is an authentication record held by the identity directory.
// Its email is always synthesized from the phone number; the account type is
// stored explicitly rather than being inferred from the email suffix alone.
type Identity struct {
	ID           uuid.UUID   // The unique identifier of the identity.
	Email        string      // Synthesized login email, {phone}@{type}.internal.
	PhoneNumber  string      // The phone number the email was synthesized from.
	AccountType  AccountType // Explicit owner/client marker.
	PasswordHash string      // bcrypt hash of the password or PIN.
	CreatedAt    time.Time   // Timestamp of when this identity was created.
	UpdatedAt    time.Time   // Timestamp of the last credential change.
}

// RefreshToken represents a long-lived, authorized session.
// It is used to obtain a new access token after the old one expires.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the identity it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // The exact time when this refresh token becomes invalid.
	CreatedAt time.Time // Timestamp of when this session was created.
}
