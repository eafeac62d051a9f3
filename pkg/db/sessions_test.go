package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionOperations(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	user := &User{ID: "user-1", Email: "alice@example.com", Name: "Alice"}
	require.NoError(t, db.CreateUser(ctx, user))

	t.Run("create and get session", func(t *testing.T) {
		id, err := db.CreateSession(ctx, "user-1", time.Hour, "test-agent", "127.0.0.1")
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		session, err := db.GetSession(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "user-1", session.UserID)
		assert.Equal(t, "alice@example.com", session.Email)
		assert.Equal(t, "Alice", session.Name)
		assert.True(t, session.Fresh)
		assert.Equal(t, "test-agent", session.UserAgent)
	})

	t.Run("expired session not returned", func(t *testing.T) {
		id, err := db.CreateSession(ctx, "user-1", -time.Minute, "", "")
		require.NoError(t, err)

		_, err = db.GetSession(ctx, id)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("delete session", func(t *testing.T) {
		id, err := db.CreateSession(ctx, "user-1", time.Hour, "", "")
		require.NoError(t, err)

		err = db.DeleteSession(ctx, id)
		require.NoError(t, err)

		_, err = db.GetSession(ctx, id)
		require.Error(t, err)
	})

	t.Run("delete expired sessions", func(t *testing.T) {
		_, err := db.CreateSession(ctx, "user-1", -time.Minute, "", "")
		require.NoError(t, err)
		live, err := db.CreateSession(ctx, "user-1", time.Hour, "", "")
		require.NoError(t, err)

		deleted, err := db.DeleteExpiredSessions(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, deleted, int64(1))

		// live session survives
		_, err = db.GetSession(ctx, live)
		require.NoError(t, err)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := db.GetSession(ctx, "no-such-session")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}
