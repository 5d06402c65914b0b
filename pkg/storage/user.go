package storage

import (
	"context"

	"careerbridge/pkg/domain"
)

// UserStorage defines persistence operations for identity records.
type UserStorage interface {
	// UserByEmail fetches a user by email. Returns nil when no user exists;
	// the lookup is the read half of the read-then-write email uniqueness
	// check and must run inside the same transaction as the insert.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// StoreUser inserts a new user and returns the stored row including
	// generated fields. A duplicate email surfaces as ErrDuplicate.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
}
