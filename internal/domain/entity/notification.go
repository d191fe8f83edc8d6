package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a persisted in-app message addressed to one user. It stays
// in the inbox until marked read or deleted.
type Notification struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	UserID    uuid.UUID
	Title     string
	Message   string
	Type      string // Free-form category, e.g. "invoice" or "payment".
	Read      bool
	CreatedAt time.Time
}
