package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/brieflyhq/briefly/pkg/db"
)

const sessionCookie = "session_id"

type ctxKey int

const userCtxKey ctxKey = iota

// sessionUser is the resolved identity attached to the request context
type sessionUser struct {
	ID        string
	Email     string
	Name      string
	SessionID string
}

// sessionMiddleware resolves the session cookie into a user. Requests
// without a valid session act as the shared default user; a cookie that
// no longer maps to a live session is cleared.
func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := sessionUser{ID: defaultUserID}

		if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
			session, err := s.store.GetSession(r.Context(), cookie.Value)
			if err != nil {
				clearSessionCookie(w)
			} else {
				user = sessionUser{
					ID:        session.UserID,
					Email:     session.Email,
					Name:      session.Name,
					SessionID: session.ID,
				}
			}
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userCtxKey, user)))
	})
}

// requestUser returns the identity resolved by the session middleware
func requestUser(r *http.Request) sessionUser {
	if user, ok := r.Context().Value(userCtxKey).(sessionUser); ok {
		return user
	}
	return sessionUser{ID: defaultUserID}
}

// signedIn reports whether the request carries a real session
func (u sessionUser) signedIn() bool {
	return u.SessionID != ""
}

// loginHandler creates or finds the user by email and issues a session
func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		renderError(w, r, fmt.Errorf("valid email is required"), http.StatusBadRequest)
		return
	}

	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		user = &db.User{ID: uuid.NewString(), Email: req.Email, Name: req.Name}
		if err := s.store.CreateUser(ctx, user); err != nil {
			log.Printf("[ERROR] failed to create user: %v", err)
			renderError(w, r, err, http.StatusInternalServerError)
			return
		}
	}

	ttl, _ := s.config.GetAuthConfig()
	sessionID, err := s.store.CreateSession(ctx, user.ID, ttl, r.UserAgent(), clientIP(r))
	if err != nil {
		log.Printf("[ERROR] failed to create session: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	// restore persisted goal state into the in-memory tracker
	if prefs, err := s.store.GetPreferences(ctx, user.ID); err == nil {
		s.tracker.ImportState(user.ID, prefs.Goals, prefs.Progress)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"user": user})
}

// logoutHandler deletes the current session and clears the cookie
func (s *Server) logoutHandler(w http.ResponseWriter, r *http.Request) {
	user := requestUser(r)
	if user.signedIn() {
		if err := s.store.DeleteSession(r.Context(), user.SessionID); err != nil {
			log.Printf("[WARN] failed to delete session: %v", err)
		}
	}
	clearSessionCookie(w)
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "logged out"})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
