package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SaveCalendarConnection stores a calendar connection, replacing any prior
// connection for the same user and provider
func (db *DB) SaveCalendarConnection(ctx context.Context, conn *CalendarConnection) error {
	return db.InTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM calendar_connections WHERE user_id = ? AND provider = ?`,
			conn.UserID, conn.Provider); err != nil {
			return fmt.Errorf("delete prior connection: %w", err)
		}

		query := `
			INSERT INTO calendar_connections (
				user_id, provider, access_token, refresh_token, expires_at, calendar_id, email
			) VALUES (
				:user_id, :provider, :access_token, :refresh_token, :expires_at, :calendar_id, :email
			)
		`
		result, err := tx.NamedExecContext(ctx, query, conn)
		if err != nil {
			return fmt.Errorf("insert connection: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get insert id: %w", err)
		}
		conn.ID = id
		return nil
	})
}

// GetCalendarConnection retrieves a user's calendar connection
func (db *DB) GetCalendarConnection(ctx context.Context, userID string) (*CalendarConnection, error) {
	var conn CalendarConnection
	err := db.conn.GetContext(ctx, &conn,
		`SELECT * FROM calendar_connections WHERE user_id = ? ORDER BY created_at DESC LIMIT 1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("calendar connection not found")
		}
		return nil, fmt.Errorf("get calendar connection: %w", err)
	}
	return &conn, nil
}

// DeleteCalendarConnections removes all calendar connections for a user
func (db *DB) DeleteCalendarConnections(ctx context.Context, userID string) error {
	err := db.withRetry(ctx, func() error {
		_, err := db.conn.ExecContext(ctx, `DELETE FROM calendar_connections WHERE user_id = ?`, userID)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete calendar connections: %w", err)
	}
	return nil
}
