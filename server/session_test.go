package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brieflyhq/briefly/pkg/db"
)

func TestServer_Login(t *testing.T) {
	t.Run("new user created", func(t *testing.T) {
		m := newTestMocks()
		m.store.GetUserByEmailFunc = func(_ context.Context, email string) (*db.User, error) {
			return nil, fmt.Errorf("user not found")
		}
		m.store.CreateUserFunc = func(_ context.Context, user *db.User) error {
			assert.NotEmpty(t, user.ID)
			assert.Equal(t, "new@example.com", user.Email)
			assert.Equal(t, "New User", user.Name)
			return nil
		}
		m.store.CreateSessionFunc = func(_ context.Context, userID string, ttl time.Duration, _, _ string) (string, error) {
			assert.Equal(t, time.Hour, ttl)
			return "sess-new", nil
		}
		srv := m.server()

		rec := request(srv, http.MethodPost, "/api/v1/auth/login",
			strings.NewReader(`{"email":"New@Example.com","name":"New User"}`))
		require.Equal(t, http.StatusOK, rec.Code)

		require.Len(t, m.store.CreateUserCalls(), 1)
		require.Len(t, m.store.CreateSessionCalls(), 1)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, sessionCookie, cookies[0].Name)
		assert.Equal(t, "sess-new", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("existing user restores goal state", func(t *testing.T) {
		m := newTestMocks()
		m.store.GetUserByEmailFunc = func(_ context.Context, email string) (*db.User, error) {
			return &db.User{ID: "user-1", Email: email, Name: "U"}, nil
		}
		m.store.CreateSessionFunc = func(_ context.Context, userID string, _ time.Duration, _, _ string) (string, error) {
			assert.Equal(t, "user-1", userID)
			return "sess-1", nil
		}
		m.store.GetPreferencesFunc = func(_ context.Context, userID string) (*db.Preferences, error) {
			return &db.Preferences{UserID: userID, Goals: `{"text":"Ship v2"}`, Progress: `[]`}, nil
		}
		m.tracker.ImportStateFunc = func(userID, goal, progress string) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, `{"text":"Ship v2"}`, goal)
		}
		srv := m.server()

		rec := request(srv, http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"u@example.com"}`))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, m.tracker.ImportStateCalls(), 1)
		assert.Empty(t, m.store.CreateUserCalls())

		var resp struct {
			User db.User `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "user-1", resp.User.ID)
	})

	t.Run("missing email rejected", func(t *testing.T) {
		srv := newTestMocks().server()
		rec := request(srv, http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"name":"No Email"}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		srv := newTestMocks().server()
		rec := request(srv, http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"not-an-email"}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad json rejected", func(t *testing.T) {
		srv := newTestMocks().server()
		rec := request(srv, http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{bad`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Logout(t *testing.T) {
	t.Run("deletes session and clears cookie", func(t *testing.T) {
		m := newTestMocks()
		m.store.GetSessionFunc = func(_ context.Context, id string) (*db.SessionWithUser, error) {
			session := &db.SessionWithUser{}
			session.ID = id
			session.UserID = "user-1"
			return session, nil
		}
		m.store.DeleteSessionFunc = func(_ context.Context, id string) error {
			assert.Equal(t, "sess-1", id)
			return nil
		}
		srv := m.server()

		rec := request(srv, http.MethodPost, "/api/v1/auth/logout", nil,
			&http.Cookie{Name: sessionCookie, Value: "sess-1"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, m.store.DeleteSessionCalls(), 1)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("anonymous logout is a no-op", func(t *testing.T) {
		m := newTestMocks()
		srv := m.server()

		rec := request(srv, http.MethodPost, "/api/v1/auth/logout", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, m.store.DeleteSessionCalls())
	})
}
