package domain

import "time"

// Digest is a composed text briefing combining goal/progress status, news,
// and a motivational tip. Degradations lists the reasons any section fell
// back to default content.
type Digest struct {
	Text         string    `json:"text"`
	Degradations []string  `json:"degradations,omitempty"`
	GeneratedAt  time.Time `json:"generated_at"`
}
