package db

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"time"
)

type (
	// NullString is a type alias for sql.NullString
	NullString = sql.NullString
	// NullTime is a type alias for sql.NullTime
	NullTime = sql.NullTime
)

// User represents a registered user
type User struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Session represents an authenticated browser session
type Session struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	Fresh     bool      `db:"fresh" json:"fresh"`
	UserAgent string    `db:"user_agent" json:"-"`
	IPAddress string    `db:"ip_address" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SessionWithUser is a session joined with its user
type SessionWithUser struct {
	Session
	Email string `db:"email" json:"email"`
	Name  string `db:"name" json:"name"`
}

// Preferences represents a user's stored preferences. Goals and Progress
// are opaque serialized strings owned by the tracker.
type Preferences struct {
	ID                int64         `db:"id" json:"id"`
	UserID            string        `db:"user_id" json:"user_id"`
	Location          string        `db:"location" json:"location"`
	Timezone          string        `db:"timezone" json:"timezone"`
	WeatherUnit       string        `db:"weather_unit" json:"weather_unit"`
	Interests         InterestsList `db:"interests" json:"interests"`
	CalendarConnected bool          `db:"calendar_connected" json:"calendar_connected"`
	CalendarProvider  string        `db:"calendar_provider" json:"calendar_provider"`
	Goals             string        `db:"goals" json:"goals,omitempty"`
	Progress          string        `db:"progress" json:"progress,omitempty"`
	CreatedAt         time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time     `db:"updated_at" json:"updated_at"`
}

// CalendarConnection represents a stored calendar provider connection
type CalendarConnection struct {
	ID           int64        `db:"id" json:"id"`
	UserID       string       `db:"user_id" json:"user_id"`
	Provider     string       `db:"provider" json:"provider"`
	AccessToken  string       `db:"access_token" json:"-"`
	RefreshToken string       `db:"refresh_token" json:"-"`
	ExpiresAt    sql.NullTime `db:"expires_at" json:"expires_at,omitempty"`
	CalendarID   string       `db:"calendar_id" json:"calendar_id"`
	Email        string       `db:"email" json:"email"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}

// InterestsList is a JSON array of interest strings for SQL operations
type InterestsList []string

// Value implements driver.Valuer for database storage
func (t InterestsList) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner for database retrieval
func (t *InterestsList) Scan(value interface{}) error {
	if value == nil {
		*t = InterestsList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*t = InterestsList{}
		return nil
	}

	return json.Unmarshal(data, t)
}
