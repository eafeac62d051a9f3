package domain

import "time"

// Preferences represents user news and location preferences
type Preferences struct {
	Location  string   `json:"location,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

// Location represents a user's reported location
type Location struct {
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// CalendarEvent is a single entry from an external calendar, supplied by
// the caller. Only the title is inspected by the core.
type CalendarEvent struct {
	Title string    `json:"title"`
	Start time.Time `json:"start,omitempty"`
	End   time.Time `json:"end,omitempty"`
}

// UserContext carries everything the digest composer needs for one user
type UserContext struct {
	UserID         string
	Location       *Location
	CalendarEvents []CalendarEvent
}
