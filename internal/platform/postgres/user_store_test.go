//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/phrazzld/coupon-api/internal/domain"
	"github.com/phrazzld/coupon-api/internal/platform/postgres"
	"github.com/phrazzld/coupon-api/internal/store"
	"github.com/phrazzld/coupon-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresUserStore_CreateAndGet(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		s := postgres.NewPostgresUserStore(tx, nil)

		u, err := domain.NewUser("store-alice", "secret", "Alice", "")
		require.NoError(t, err)
		u.HashedPassword = "$2a$10$abcdefghijklmnopqrstuv"
		require.NoError(t, s.Create(ctx, u))
		assert.Positive(t, u.ID)

		got, err := s.GetByUsername(ctx, "store-alice")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		assert.Equal(t, "Alice", got.Name)
		assert.Equal(t, domain.DefaultRole, got.Role)
		assert.Equal(t, u.HashedPassword, got.HashedPassword)
		assert.Empty(t, got.Password)

		_, err = s.GetByUsername(ctx, "STORE-ALICE")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestPostgresUserStore_DuplicateUsername(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		s := postgres.NewPostgresUserStore(tx, nil)

		first := &domain.User{Username: "store-bob", Name: "Bob", Role: "customer", HashedPassword: "hash"}
		require.NoError(t, s.Create(ctx, first))

		second := &domain.User{Username: "store-bob", Name: "Other", Role: "customer", HashedPassword: "hash"}
		assert.ErrorIs(t, s.Create(ctx, second), store.ErrUsernameExists)
	})
}

func TestPostgresUserStore_RequiresHash(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		s := postgres.NewPostgresUserStore(tx, nil)
		err := s.Create(context.Background(), &domain.User{Username: "store-nohash", Password: "plain"})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}
