// Package tracker keeps per-user goals and progress achievements and
// derives success insights from them.
package tracker

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/brieflyhq/briefly/pkg/domain"
)

// Tracker is an in-memory store of goals and progress entries keyed by
// user ID. It is created once at startup and passed by handle; a single
// goal record exists per user at any time, progress entries are
// append-only.
type Tracker struct {
	mu       sync.RWMutex
	goals    map[string]Goal
	progress map[string][]ProgressEntry
	now      func() time.Time
}

// Goal is a user's single active goal
type Goal struct {
	Text     string     `json:"text"`
	Deadline *time.Time `json:"deadline,omitempty"`
}

// ProgressEntry is one logged achievement
type ProgressEntry struct {
	Achievement string    `json:"achievement"`
	Timestamp   time.Time `json:"timestamp"`
}

// New creates an empty tracker
func New() *Tracker {
	return &Tracker{
		goals:    make(map[string]Goal),
		progress: make(map[string][]ProgressEntry),
		now:      time.Now,
	}
}

// SetGoal replaces any existing goal for the user. Empty goal text is
// accepted as-is.
func (t *Tracker) SetGoal(userID, goal string, deadline *time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.goals[userID] = Goal{Text: goal, Deadline: deadline}
}

// LogProgress appends a timestamped achievement to the user's progress,
// creating the sequence if absent. Duplicate achievement text is permitted.
func (t *Tracker) LogProgress(userID, achievement string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.progress[userID] = append(t.progress[userID], ProgressEntry{
		Achievement: achievement,
		Timestamp:   t.now(),
	})
}

// Insights aggregates the user's goal and progress state together with the
// supplied calendar events into summary fields. Pure read, no mutation.
func (t *Tracker) Insights(userID string, events []domain.CalendarEvent) domain.Insights {
	t.mu.RLock()
	goal, hasGoal := t.goals[userID]
	progress := make([]ProgressEntry, len(t.progress[userID]))
	copy(progress, t.progress[userID])
	t.mu.RUnlock()

	productiveHours := productiveHours(events)

	// count achievements logged on the current calendar day, local time
	today := t.now()
	progressToday := 0
	for _, p := range progress {
		if sameDay(p.Timestamp, today) {
			progressToday++
		}
	}

	motivation := "Ready to start!"
	switch {
	case progressToday >= 3:
		motivation = "Crushing it! 🚀"
	case progressToday >= 1:
		motivation = "Making progress! 👍"
	case hasGoal:
		motivation = "Ready to begin! 💪"
	}

	return domain.Insights{
		HasGoal:           hasGoal,
		GoalText:          goal.Text,
		ProgressToday:     progressToday,
		MotivationLevel:   motivation,
		ProductiveHours:   productiveHours,
		Suggestions:       suggestions(hasGoal, progressToday, productiveHours),
		TotalAchievements: len(progress),
	}
}

// ExportState serializes the user's goal and progress as opaque JSON
// strings for external persistence. Empty strings mean no state.
func (t *Tracker) ExportState(userID string) (goal, progress string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if g, ok := t.goals[userID]; ok {
		if data, err := json.Marshal(g); err == nil {
			goal = string(data)
		}
	}
	if entries := t.progress[userID]; len(entries) > 0 {
		if data, err := json.Marshal(entries); err == nil {
			progress = string(data)
		}
	}
	return goal, progress
}

// ImportState restores previously exported goal and progress blobs,
// replacing any in-memory state for the user. Malformed blobs are ignored.
func (t *Tracker) ImportState(userID, goal, progress string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if goal != "" {
		var g Goal
		if err := json.Unmarshal([]byte(goal), &g); err == nil {
			t.goals[userID] = g
		}
	}
	if progress != "" {
		var entries []ProgressEntry
		if err := json.Unmarshal([]byte(progress), &entries); err == nil {
			t.progress[userID] = entries
		}
	}
}

// productiveHours estimates scheduled productive time from calendar
// events: with no events supplied it assumes 2 hours, otherwise it counts
// events whose title mentions focused work, capped at 8.
func productiveHours(events []domain.CalendarEvent) int {
	if len(events) == 0 {
		return 2
	}

	count := 0
	for _, ev := range events {
		title := strings.ToLower(ev.Title)
		if strings.Contains(title, "focus") || strings.Contains(title, "work") || strings.Contains(title, "meeting") {
			count++
		}
	}
	if count > 8 {
		count = 8
	}
	return count
}

// suggestions builds 2-3 actionable suggestions from goal presence,
// today's progress count, and the productive-hours bucket. The last entry
// is always the generic review reminder.
func suggestions(hasGoal bool, progressToday, productiveHours int) []string {
	var result []string

	switch {
	case !hasGoal:
		result = append(result, "Set a specific goal for today to get started")
	case progressToday == 0:
		result = append(result, "Take the first step toward your goal today")
	case progressToday < 2:
		result = append(result, "Build on your early progress with another small win")
	default:
		result = append(result, "Maintain your momentum with consistent action")
	}

	if productiveHours < 3 {
		result = append(result, "Schedule focused work blocks in your calendar")
	} else if productiveHours > 6 {
		result = append(result, "Remember to take breaks to maintain energy")
	}

	result = append(result, "Review your progress and adjust your approach as needed")
	return result
}

// sameDay reports whether two times fall on the same local calendar day
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
