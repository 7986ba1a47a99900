package domain

import (
	"context"
	"time"
)

// User is a registered account. PasswordHash holds the bcrypt digest of the
// password; the plaintext is never stored.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Delete removes the user. Posts and comments authored by the user are
	// removed by the schema's cascade rules.
	Delete(ctx context.Context, id string) error
}
