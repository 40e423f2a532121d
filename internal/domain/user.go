package domain

import (
	"context"
	"time"
)

// User is a registered user record.
type User struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create persists the user and assigns its ID and CreatedAt.
	// IDs are monotonically increasing and never reused.
	Create(ctx context.Context, user *User) error
	// ListAll returns every user ordered by ascending ID (insertion order).
	ListAll(ctx context.Context) ([]User, error)
}
