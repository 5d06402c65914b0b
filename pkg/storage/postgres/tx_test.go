package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"careerbridge/pkg/domain"
	"careerbridge/pkg/storage"
	"careerbridge/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success: begin from *sql.DB
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// Should be a *postgres.PgSQL with underlying *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// Error: begin when already in tx
	_, err = inner.Begin(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	// Cleanup the opened transaction
	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Error path: calling Commit on non-tx
	err := pg.Commit()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	// Success path: committed insert is visible outside the tx
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	inner := txStorage.(*postgres.PgSQL)

	_, err = inner.StoreUser(ctx, domain.User{
		FirstName:      "Grace",
		LastName:       "Hopper",
		Email:          "grace@example.com",
		CredentialHash: "$2a$10$hash",
		Role:           domain.RoleApplicant,
	})
	require.NoError(t, err)

	require.NoError(t, inner.Commit())

	user, err := pg.UserByEmail(ctx, "grace@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Error path: calling Rollback on non-tx
	err := pg.Rollback()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	// Success path: rollback discards the insert
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	inner := txStorage.(*postgres.PgSQL)

	_, err = inner.StoreUser(ctx, domain.User{
		FirstName:      "Alan",
		LastName:       "Turing",
		Email:          "alan@example.com",
		CredentialHash: "$2a$10$hash",
		Role:           domain.RoleApplicant,
	})
	require.NoError(t, err)

	require.NoError(t, inner.Rollback())

	user, err := pg.UserByEmail(ctx, "alan@example.com")
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success callback: should commit
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreUser(ctx, domain.User{
			FirstName:      "Edsger",
			LastName:       "Dijkstra",
			Email:          "edsger@example.com",
			CredentialHash: "$2a$10$hash",
			Role:           domain.RoleRecruiter,
		})

		return e //nolint: wrapcheck
	})
	require.NoError(t, err)

	user, err := pg.UserByEmail(ctx, "edsger@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)

	// Error in callback: should rollback
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.StoreUser(ctx, domain.User{
			FirstName:      "Tony",
			LastName:       "Hoare",
			Email:          "tony@example.com",
			CredentialHash: "$2a$10$hash",
			Role:           domain.RoleRecruiter,
		})

		return errors.New("boom")
	})
	require.Error(t, err)

	user, err = pg.UserByEmail(ctx, "tony@example.com")
	require.NoError(t, err)
	require.Nil(t, user)
}
