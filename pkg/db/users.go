package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// CreateUser creates a new user. An empty name defaults to the local part
// of the email address.
func (db *DB) CreateUser(ctx context.Context, user *User) error {
	if user.Name == "" {
		user.Name = strings.SplitN(user.Email, "@", 2)[0]
	}

	query := `
		INSERT INTO users (id, email, name)
		VALUES (:id, :email, :name)
	`
	err := db.withRetry(ctx, func() error {
		_, err := db.conn.NamedExecContext(ctx, query, user)
		return err
	})
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID
func (db *DB) GetUser(ctx context.Context, id string) (*User, error) {
	var user User
	err := db.conn.GetContext(ctx, &user, `SELECT * FROM users WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := db.conn.GetContext(ctx, &user, `SELECT * FROM users WHERE email = ?`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}
