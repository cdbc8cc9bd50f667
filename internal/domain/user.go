package domain

import (
	"context"
	"time"
)

// User represents a registered user of the application.
type User struct {
	ID           int64
	Email        string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Roles a user can hold. Users without a mapping in the role store are
// treated as RoleUser.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// RoleRepository is the user-to-role mapping consulted by the access guard.
// Get returns ErrNotFound when no mapping exists for the user.
type RoleRepository interface {
	Get(ctx context.Context, userID int64) (string, error)
	Assign(ctx context.Context, userID int64, role string) error
}
