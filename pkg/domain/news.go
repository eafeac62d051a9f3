package domain

import "time"

// NewsItem represents a single story in a briefing
type NewsItem struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
	Relevance   float64   `json:"relevance"` // always within [0,1]
}

// Briefing is a set of news items with a one-line summary
type Briefing struct {
	Items       []NewsItem `json:"items"`
	Summary     string     `json:"summary"`
	GeneratedAt time.Time  `json:"generated_at"`
	Source      string     `json:"source"`
}

// BriefingStyle controls briefing length and summary wording
type BriefingStyle string

const (
	StyleConcise      BriefingStyle = "concise"
	StyleDetailed     BriefingStyle = "detailed"
	StyleMotivational BriefingStyle = "motivational"
)
