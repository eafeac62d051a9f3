package domain

// Insights aggregates a user's goal and progress state into summary fields
type Insights struct {
	HasGoal           bool     `json:"has_goal"`
	GoalText          string   `json:"goal_text"`
	ProgressToday     int      `json:"progress_today"`
	MotivationLevel   string   `json:"motivation_level"`
	ProductiveHours   int      `json:"productive_hours"`
	Suggestions       []string `json:"suggestions"`
	TotalAchievements int      `json:"total_achievements"`
}
