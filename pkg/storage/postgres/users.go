package postgres

import (
	"context"
	"fmt"

	"careerbridge/pkg/domain"
	"careerbridge/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const usersTable = "users"

// UserByEmail fetches a user by email, returning nil when no row matches.
// Inside a transaction this is the read half of the read-then-write email
// uniqueness check; the unique index on users.email remains the backstop.
func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("email").Eq(email)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by email: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// StoreUser inserts a new user and returns the stored row as it exists in the
// database. A duplicate email surfaces as storage.ErrDuplicate.
func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var pgUser PgUser
	pgUser.FromDomain(user)

	var row PgUser
	found, err := p.Builder.Insert(usersTable).
		Rows(pgUser).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store user into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store user into pg: no row returned")
	}

	return row.ToDomain(), nil
}
