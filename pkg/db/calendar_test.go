package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarConnectionOperations(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, db.CreateUser(ctx, &User{ID: "user-1", Email: "alice@example.com"}))

	t.Run("save and get", func(t *testing.T) {
		conn := &CalendarConnection{
			UserID:      "user-1",
			Provider:    "google",
			AccessToken: "token-1",
			Email:       "alice@example.com",
		}
		err := db.SaveCalendarConnection(ctx, conn)
		require.NoError(t, err)
		assert.NotZero(t, conn.ID)

		retrieved, err := db.GetCalendarConnection(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "google", retrieved.Provider)
		assert.Equal(t, "token-1", retrieved.AccessToken)
	})

	t.Run("save replaces prior connection for same provider", func(t *testing.T) {
		conn := &CalendarConnection{
			UserID:      "user-1",
			Provider:    "google",
			AccessToken: "token-2",
		}
		err := db.SaveCalendarConnection(ctx, conn)
		require.NoError(t, err)

		retrieved, err := db.GetCalendarConnection(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "token-2", retrieved.AccessToken)

		var count int
		err = db.conn.Get(&count, `SELECT COUNT(*) FROM calendar_connections WHERE user_id = 'user-1'`)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("disconnect", func(t *testing.T) {
		err := db.DeleteCalendarConnections(ctx, "user-1")
		require.NoError(t, err)

		_, err = db.GetCalendarConnection(ctx, "user-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}
