package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserOperations(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("create and get user", func(t *testing.T) {
		user := &User{ID: "user-1", Email: "alice@example.com", Name: "Alice"}
		err := db.CreateUser(ctx, user)
		require.NoError(t, err)

		retrieved, err := db.GetUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", retrieved.Email)
		assert.Equal(t, "Alice", retrieved.Name)
		assert.False(t, retrieved.CreatedAt.IsZero())
	})

	t.Run("name defaults to email local part", func(t *testing.T) {
		user := &User{ID: "user-2", Email: "bob@example.com"}
		err := db.CreateUser(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, "bob", user.Name)

		retrieved, err := db.GetUser(ctx, "user-2")
		require.NoError(t, err)
		assert.Equal(t, "bob", retrieved.Name)
	})

	t.Run("get by email", func(t *testing.T) {
		user, err := db.GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		err := db.CreateUser(ctx, &User{ID: "user-3", Email: "alice@example.com"})
		require.Error(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := db.GetUser(ctx, "nope")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")

		_, err = db.GetUserByEmail(ctx, "nope@example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}
