package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateSession creates a new session for the user with the given lifetime
// and returns the session ID
func (db *DB) CreateSession(ctx context.Context, userID string, ttl time.Duration, userAgent, ipAddress string) (string, error) {
	session := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
		Fresh:     true,
		UserAgent: userAgent,
		IPAddress: ipAddress,
	}

	query := `
		INSERT INTO sessions (id, user_id, expires_at, fresh, user_agent, ip_address)
		VALUES (:id, :user_id, :expires_at, :fresh, :user_agent, :ip_address)
	`
	err := db.withRetry(ctx, func() error {
		_, err := db.conn.NamedExecContext(ctx, query, session)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}
	return session.ID, nil
}

// GetSession retrieves a non-expired session joined with its user. Expired
// or unknown sessions report "session not found".
func (db *DB) GetSession(ctx context.Context, id string) (*SessionWithUser, error) {
	var session SessionWithUser
	query := `
		SELECT s.*, u.email, u.name
		FROM sessions s
		JOIN users u ON s.user_id = u.id
		WHERE s.id = ? AND s.expires_at > ?
	`
	err := db.conn.GetContext(ctx, &session, query, id, time.Now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &session, nil
}

// DeleteSession removes a session
func (db *DB) DeleteSession(ctx context.Context, id string) error {
	err := db.withRetry(ctx, func() error {
		_, err := db.conn.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions removes all sessions past their expiry and returns
// the number deleted
func (db *DB) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	var deleted int64
	err := db.withRetry(ctx, func() error {
		result, err := db.conn.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, time.Now())
		if err != nil {
			return err
		}
		deleted, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return deleted, nil
}
