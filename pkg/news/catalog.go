package news

import (
	"time"

	"github.com/brieflyhq/briefly/pkg/domain"
)

// catalog builds the built-in story catalog used when no live feeds are
// available. Items are keyed by lower-case category; order within a
// category is significant.
func catalog(now time.Time) map[string][]domain.NewsItem {
	return map[string][]domain.NewsItem{
		"technology": {
			{
				Title:       "AI Assistants Becoming More Context-Aware",
				Description: "New language models can maintain context over longer conversations, making AI assistants more helpful for daily planning.",
				Category:    "technology",
				Source:      "Tech Insights",
				PublishedAt: now,
				URL:         "#",
				Relevance:   0.9,
			},
			{
				Title:       "Productivity Apps Integrate AI Features",
				Description: "Popular productivity tools are adding AI-powered summarization and planning features to help users manage their time better.",
				Category:    "technology",
				Source:      "Productivity Weekly",
				PublishedAt: now,
				URL:         "#",
				Relevance:   0.8,
			},
		},
		"health": {
			{
				Title:       "Morning Sunlight Boosts Productivity",
				Description: "Research confirms that 10-15 minutes of morning sunlight can significantly improve focus and energy levels throughout the day.",
				Category:    "health",
				Source:      "Wellness Daily",
				PublishedAt: now,
				URL:         "#",
				Relevance:   0.7,
			},
			{
				Title:       "Digital Detox Improves Sleep Quality",
				Description: "Studies show that avoiding screens 1 hour before bed can improve sleep quality by 30%.",
				Category:    "health",
				Source:      "Sleep Science",
				PublishedAt: now,
				URL:         "#",
				Relevance:   0.6,
			},
		},
		"productivity": {
			{
				Title:       "Time-Blocking Gains Popularity",
				Description: "More professionals are adopting time-blocking techniques to manage their schedules more effectively.",
				Category:    "productivity",
				Source:      "Work Smart",
				PublishedAt: now,
				URL:         "#",
				Relevance:   0.9,
			},
			{
				Title:       "The 2-Minute Rule for Task Management",
				Description: "If a task takes less than 2 minutes, do it immediately. This simple rule is helping people reduce procrastination.",
				Category:    "productivity",
				Source:      "Efficiency Tips",
				PublishedAt: now,
				URL:         "#",
				Relevance:   0.8,
			},
		},
		"local": {
			{
				Title:       "Local Tech Meetup This Weekend",
				Description: "Monthly tech community gathering focused on AI and productivity tools.",
				Category:    "local",
				Source:      "Community Events",
				PublishedAt: now,
				URL:         "#",
				Relevance:   0.5,
			},
		},
	}
}
