package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brieflyhq/briefly/pkg/domain"
)

func TestTracker_SetGoal(t *testing.T) {
	tr := New()

	tr.SetGoal("u1", "Ship v2", nil)
	insights := tr.Insights("u1", nil)
	assert.True(t, insights.HasGoal)
	assert.Equal(t, "Ship v2", insights.GoalText)

	// setting again replaces the goal
	deadline := time.Now().Add(48 * time.Hour)
	tr.SetGoal("u1", "Ship v3", &deadline)
	insights = tr.Insights("u1", nil)
	assert.Equal(t, "Ship v3", insights.GoalText)

	// empty goal text is accepted
	tr.SetGoal("u2", "", nil)
	insights = tr.Insights("u2", nil)
	assert.True(t, insights.HasGoal)
	assert.Empty(t, insights.GoalText)
}

func TestTracker_LogProgress(t *testing.T) {
	tr := New()

	tr.LogProgress("u1", "wrote docs")
	tr.LogProgress("u1", "wrote docs") // duplicates permitted
	tr.LogProgress("u1", "fixed bug")

	insights := tr.Insights("u1", nil)
	assert.Equal(t, 3, insights.ProgressToday)
	assert.Equal(t, 3, insights.TotalAchievements)

	// other users unaffected
	assert.Equal(t, 0, tr.Insights("u2", nil).TotalAchievements)
}

func TestTracker_ProgressToday(t *testing.T) {
	tr := New()

	// log one entry yesterday and two today
	yesterday := time.Now().Add(-24 * time.Hour)
	tr.now = func() time.Time { return yesterday }
	tr.LogProgress("u1", "old achievement")

	tr.now = time.Now
	tr.LogProgress("u1", "morning win")
	tr.LogProgress("u1", "afternoon win")

	insights := tr.Insights("u1", nil)
	assert.Equal(t, 2, insights.ProgressToday)
	assert.Equal(t, 3, insights.TotalAchievements)
}

func TestTracker_MotivationLevels(t *testing.T) {
	tests := []struct {
		name          string
		progressToday int
		hasGoal       bool
		want          string
	}{
		{"no activity no goal", 0, false, "Ready to start!"},
		{"goal but no progress", 0, true, "Ready to begin! 💪"},
		{"one achievement", 1, false, "Making progress! 👍"},
		{"two achievements", 2, true, "Making progress! 👍"},
		{"three achievements", 3, true, "Crushing it! 🚀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New()
			if tt.hasGoal {
				tr.SetGoal("u1", "some goal", nil)
			}
			for i := 0; i < tt.progressToday; i++ {
				tr.LogProgress("u1", "win")
			}

			insights := tr.Insights("u1", nil)
			assert.Equal(t, tt.want, insights.MotivationLevel)
		})
	}
}

func TestTracker_ProductiveHours(t *testing.T) {
	tr := New()

	t.Run("default assumption without events", func(t *testing.T) {
		insights := tr.Insights("u1", nil)
		assert.Equal(t, 2, insights.ProductiveHours)
	})

	t.Run("counts focused events only", func(t *testing.T) {
		events := []domain.CalendarEvent{
			{Title: "Focus block"},
			{Title: "Team meeting"},
			{Title: "Deep work session"},
			{Title: "Lunch with Sam"},
		}
		insights := tr.Insights("u1", events)
		assert.Equal(t, 3, insights.ProductiveHours)
	})

	t.Run("capped at 8", func(t *testing.T) {
		var events []domain.CalendarEvent
		for i := 0; i < 12; i++ {
			events = append(events, domain.CalendarEvent{Title: "work sprint"})
		}
		insights := tr.Insights("u1", events)
		assert.Equal(t, 8, insights.ProductiveHours)
	})
}

func TestTracker_Suggestions(t *testing.T) {
	t.Run("no goal", func(t *testing.T) {
		tr := New()
		insights := tr.Insights("u1", nil)
		require.Len(t, insights.Suggestions, 3)
		assert.Equal(t, "Set a specific goal for today to get started", insights.Suggestions[0])
		assert.Equal(t, "Schedule focused work blocks in your calendar", insights.Suggestions[1])
		assert.Equal(t, "Review your progress and adjust your approach as needed", insights.Suggestions[2])
	})

	t.Run("goal with early progress", func(t *testing.T) {
		tr := New()
		tr.SetGoal("u1", "Ship v2", nil)
		tr.LogProgress("u1", "wrote docs")

		events := []domain.CalendarEvent{
			{Title: "Focus block"}, {Title: "work review"}, {Title: "team meeting"},
		}
		insights := tr.Insights("u1", events)
		require.Len(t, insights.Suggestions, 2)
		assert.Equal(t, "Build on your early progress with another small win", insights.Suggestions[0])
		assert.Equal(t, "Review your progress and adjust your approach as needed", insights.Suggestions[1])
	})

	t.Run("heavy schedule", func(t *testing.T) {
		tr := New()
		tr.SetGoal("u1", "Ship v2", nil)
		tr.LogProgress("u1", "a")
		tr.LogProgress("u1", "b")

		var events []domain.CalendarEvent
		for i := 0; i < 7; i++ {
			events = append(events, domain.CalendarEvent{Title: "meeting"})
		}
		insights := tr.Insights("u1", events)
		require.Len(t, insights.Suggestions, 3)
		assert.Equal(t, "Maintain your momentum with consistent action", insights.Suggestions[0])
		assert.Equal(t, "Remember to take breaks to maintain energy", insights.Suggestions[1])
	})
}

func TestTracker_Scenario(t *testing.T) {
	tr := New()
	tr.SetGoal("u1", "Ship v2", nil)
	tr.LogProgress("u1", "wrote docs")

	insights := tr.Insights("u1", []domain.CalendarEvent{{Title: "Focus block"}})
	assert.True(t, insights.HasGoal)
	assert.Equal(t, "Ship v2", insights.GoalText)
	assert.Equal(t, 1, insights.ProgressToday)
	assert.Equal(t, 1, insights.ProductiveHours)
	assert.Equal(t, "Making progress! 👍", insights.MotivationLevel)
}

func TestTracker_Idempotence(t *testing.T) {
	tr := New()
	tr.SetGoal("u1", "Ship v2", nil)
	tr.LogProgress("u1", "wrote docs")

	events := []domain.CalendarEvent{{Title: "Focus block"}}
	first := tr.Insights("u1", events)
	second := tr.Insights("u1", events)
	assert.Equal(t, first, second)
}

func TestTracker_ExportImportState(t *testing.T) {
	tr := New()
	deadline := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	tr.SetGoal("u1", "Ship v2", &deadline)
	tr.LogProgress("u1", "wrote docs")

	goal, progress := tr.ExportState("u1")
	require.NotEmpty(t, goal)
	require.NotEmpty(t, progress)

	restored := New()
	restored.ImportState("u1", goal, progress)

	insights := restored.Insights("u1", nil)
	assert.True(t, insights.HasGoal)
	assert.Equal(t, "Ship v2", insights.GoalText)
	assert.Equal(t, 1, insights.TotalAchievements)

	// empty blobs leave state untouched
	restored.ImportState("u2", "", "")
	assert.False(t, restored.Insights("u2", nil).HasGoal)

	// malformed blobs ignored
	restored.ImportState("u3", "{not json", "[broken")
	assert.False(t, restored.Insights("u3", nil).HasGoal)
}
