package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account stored credentials of an identity
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
}

// Identity authenticated user acting on the system
type Identity struct {
	ID    uuid.UUID
	Email string
}

// Session an issued access token bound to an identity
type Session struct {
	Token     string
	TokenID   string
	User      Identity
	IssuedAt  time.Time
	ExpiresAt time.Time
}
