package domain

import (
	"context"
	"time"
)

// User is a registered account. The session token minted at registration is
// the account's sole credential: one session per user, stable for the
// lifetime of the record.
type User struct {
	ID        string
	SessionID string
	Name      string
	Email     string
	CreatedAt time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetBySessionID(ctx context.Context, sessionID string) (*User, error)
}
