package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// GetPreferences retrieves preferences for a user
func (db *DB) GetPreferences(ctx context.Context, userID string) (*Preferences, error) {
	var prefs Preferences
	err := db.conn.GetContext(ctx, &prefs, `SELECT * FROM user_preferences WHERE user_id = ?`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("preferences not found")
		}
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return &prefs, nil
}

// UpsertPreferences creates or replaces preferences for prefs.UserID
func (db *DB) UpsertPreferences(ctx context.Context, prefs *Preferences) error {
	if prefs.Timezone == "" {
		prefs.Timezone = "UTC"
	}
	if prefs.WeatherUnit == "" {
		prefs.WeatherUnit = "celsius"
	}

	query := `
		INSERT INTO user_preferences (
			user_id, location, timezone, weather_unit, interests,
			calendar_connected, calendar_provider, goals, progress
		) VALUES (
			:user_id, :location, :timezone, :weather_unit, :interests,
			:calendar_connected, :calendar_provider, :goals, :progress
		)
		ON CONFLICT(user_id) DO UPDATE SET
			location = excluded.location,
			timezone = excluded.timezone,
			weather_unit = excluded.weather_unit,
			interests = excluded.interests,
			calendar_connected = excluded.calendar_connected,
			calendar_provider = excluded.calendar_provider,
			goals = excluded.goals,
			progress = excluded.progress,
			updated_at = CURRENT_TIMESTAMP
	`
	err := db.withRetry(ctx, func() error {
		_, err := db.conn.NamedExecContext(ctx, query, prefs)
		return err
	})
	if err != nil {
		return fmt.Errorf("upsert preferences: %w", err)
	}
	return nil
}

// UpdateLocation sets only the location field, creating the preferences row
// if it does not exist yet
func (db *DB) UpdateLocation(ctx context.Context, userID, location string) error {
	query := `
		INSERT INTO user_preferences (user_id, location)
		VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			location = excluded.location,
			updated_at = CURRENT_TIMESTAMP
	`
	err := db.withRetry(ctx, func() error {
		_, err := db.conn.ExecContext(ctx, query, userID, location)
		return err
	})
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// UpdateGoalState stores the tracker's serialized goal and progress blobs
// for a user, creating the preferences row if needed
func (db *DB) UpdateGoalState(ctx context.Context, userID, goals, progress string) error {
	query := `
		INSERT INTO user_preferences (user_id, goals, progress)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			goals = excluded.goals,
			progress = excluded.progress,
			updated_at = CURRENT_TIMESTAMP
	`
	err := db.withRetry(ctx, func() error {
		_, err := db.conn.ExecContext(ctx, query, userID, goals, progress)
		return err
	})
	if err != nil {
		return fmt.Errorf("update goal state: %w", err)
	}
	return nil
}
